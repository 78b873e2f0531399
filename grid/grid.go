// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements regular Cartesian product grids with per-axis
// boundary-condition operators: the G and B components of the HJI core.
package grid

import (
	"math"

	"github.com/cpmech/hjisolve/errs"
)

// MaxDim is the largest grid dimension this package supports; New rejects
// a larger dimension with a SpecificationError.
const MaxDim = 5

// GridSpec is a partial grid specification as accepted by New. Any subset
// of fields may be given; New fills in the rest per the normalisation
// normalization rules below. It is JSON-tagged so a driver may load it from a config
// file the way gofem's inp.Data is loaded.
type GridSpec struct {
	Dim      int           `json:"dim"`
	Min      []float64     `json:"min"`
	Max      []float64     `json:"max"`
	N        []int         `json:"N"`
	Dx       []float64     `json:"dx"`
	Bdry     []string      `json:"bdry"`
	BdryData []interface{} `json:"bdryData"`
}

// Grid holds per-axis coordinate vectors, spacings, extents, dimension
// count, and per-axis boundary operators. Immutable once built; shared
// read-only by deriv, lax and integrate.
type Grid struct {
	Dim   int
	Min   []float64
	Max   []float64
	Dx    []float64
	N     []int
	Vs    [][]float64 // per-axis coordinate vectors, length N[i]
	Shape []int       // == N, the row-major iteration shape

	bdryTag  []string
	bdryData []interface{}
	bdryFn   []BoundaryFunc
}

// New normalises a partial GridSpec into a fully-populated, validated Grid.
func New(spec GridSpec) (*Grid, error) {
	dim := spec.Dim
	switch {
	case dim == 0 && len(spec.N) > 0:
		dim = len(spec.N)
	case dim == 0 && len(spec.Min) > 0:
		dim = len(spec.Min)
	case dim == 0 && len(spec.Max) > 0:
		dim = len(spec.Max)
	case dim == 0 && len(spec.Dx) > 0:
		dim = len(spec.Dx)
	}
	if dim <= 0 {
		return nil, errs.Spec("dim", "grid structure must contain a positive dimension")
	}
	if dim > MaxDim {
		return nil, errs.Spec("dim", "dimension %d exceeds the supported maximum of %d", dim, MaxDim)
	}

	g := &Grid{Dim: dim}

	// min/max defaults: 0/1
	g.Min = fillFloats(spec.Min, dim, 0)
	g.Max = fillFloats(spec.Max, dim, 1)
	for i := 0; i < dim; i++ {
		if g.Max[i] <= g.Min[i] {
			return nil, errs.Spec("max", "axis %d: max (%v) must be > min (%v)", i, g.Max[i], g.Min[i])
		}
	}

	// N / dx: infer the missing one, or check consistency if both given.
	haveN := len(spec.N) > 0
	haveDx := len(spec.Dx) > 0
	g.N = make([]int, dim)
	g.Dx = make([]float64, dim)
	switch {
	case haveN && haveDx:
		nS := fillInts(spec.N, dim, 101)
		dxS := fillFloats(spec.Dx, dim, 0)
		for i := 0; i < dim; i++ {
			expectedDx := (g.Max[i] - g.Min[i]) / float64(nS[i]-1)
			tol := 1e-15 * math.Max(math.Abs(g.Min[i]), math.Abs(g.Max[i]))
			if tol == 0 {
				tol = 1e-15
			}
			if math.Abs(expectedDx-dxS[i]) > tol {
				return nil, errs.Spec("dx", "axis %d: N=%d and dx=%v are inconsistent with [min,max]=[%v,%v]", i, nS[i], dxS[i], g.Min[i], g.Max[i])
			}
			g.N[i] = nS[i]
			g.Dx[i] = dxS[i]
		}
	case haveN:
		nS := fillInts(spec.N, dim, 101)
		for i := 0; i < dim; i++ {
			if nS[i] < 2 {
				return nil, errs.Spec("N", "axis %d: N must be >= 2, got %d", i, nS[i])
			}
			g.N[i] = nS[i]
			g.Dx[i] = (g.Max[i] - g.Min[i]) / float64(nS[i]-1)
		}
	case haveDx:
		dxS := fillFloats(spec.Dx, dim, 0)
		for i := 0; i < dim; i++ {
			if dxS[i] <= 0 {
				return nil, errs.Spec("dx", "axis %d: dx must be > 0, got %v", i, dxS[i])
			}
			n := int(math.Round((g.Max[i]-g.Min[i])/dxS[i])) + 1
			g.N[i] = n
			g.Dx[i] = (g.Max[i] - g.Min[i]) / float64(n-1)
		}
	default:
		nS := fillInts(nil, dim, 101)
		for i := 0; i < dim; i++ {
			g.N[i] = nS[i]
			g.Dx[i] = (g.Max[i] - g.Min[i]) / float64(nS[i]-1)
		}
	}
	for i := 0; i < dim; i++ {
		if g.N[i] < 2 {
			return nil, errs.Spec("N", "axis %d: N must be >= 2, got %d", i, g.N[i])
		}
		if g.Dx[i] <= 0 {
			return nil, errs.Spec("dx", "axis %d: dx must be > 0, got %v", i, g.Dx[i])
		}
	}

	// coordinate vectors
	g.Vs = make([][]float64, dim)
	for i := 0; i < dim; i++ {
		vs := make([]float64, g.N[i])
		for k := 0; k < g.N[i]; k++ {
			vs[k] = g.Min[i] + float64(k)*g.Dx[i]
		}
		vs[g.N[i]-1] = g.Max[i] // avoid float64 drift at the endpoint
		for k := 1; k < len(vs); k++ {
			if vs[k] <= vs[k-1] {
				return nil, errs.Spec("vs", "axis %d: coordinate vector is not strictly increasing", i)
			}
		}
		g.Vs[i] = vs
	}
	g.Shape = append([]int(nil), g.N...)

	// boundary operators: default periodic on every axis
	tags := make([]string, dim)
	for i := range tags {
		tags[i] = Periodic
	}
	for i, t := range spec.Bdry {
		if i < dim {
			tags[i] = t
		}
	}
	g.bdryTag = tags
	g.bdryData = make([]interface{}, dim)
	for i, d := range spec.BdryData {
		if i < dim {
			g.bdryData[i] = d
		}
	}
	g.bdryFn = make([]BoundaryFunc, dim)
	for i, t := range tags {
		fn, err := GetBoundary(t)
		if err != nil {
			return nil, err
		}
		g.bdryFn[i] = fn
	}

	return g, nil
}

// BoundaryTag returns the registered tag for axis i (e.g. "periodic").
func (g *Grid) BoundaryTag(i int) string { return g.bdryTag[i] }

// Pad returns data padded with width ghost cells on each end along axis,
// leaving the interior identical, using the boundary operator registered
// for that axis.
func (g *Grid) Pad(data *Array, axis, width int) (*Array, error) {
	if !data.SameShape(&Array{Shape: g.Shape}) {
		return nil, errs.Contract("data", "shape %v does not match grid shape %v", data.Shape, g.Shape)
	}
	outShape := append([]int(nil), g.Shape...)
	outShape[axis] += 2 * width
	out := NewArray(outShape)

	n := g.Shape[axis]
	fn := g.bdryFn[axis]
	param := g.bdryData[axis]

	dataBases := LineBases(g.Shape, axis)
	outBases := LineBases(outShape, axis)
	dataStride := data.Strides()[axis]
	outStride := out.Strides()[axis]

	var scratch []float64
	for k, base := range dataBases {
		line := data.Line(base, dataStride, n, scratch)
		padded := fn(line, width, param)
		out.SetLine(outBases[k], outStride, n+2*width, padded)
	}
	return out, nil
}

func fillFloats(v []float64, dim int, def float64) []float64 {
	out := make([]float64, dim)
	for i := 0; i < dim; i++ {
		if len(v) == 1 {
			out[i] = v[0]
		} else if i < len(v) {
			out[i] = v[i]
		} else {
			out[i] = def
		}
	}
	return out
}

func fillInts(v []int, dim int, def int) []int {
	out := make([]int, dim)
	for i := 0; i < dim; i++ {
		if len(v) == 1 {
			out[i] = v[0]
		} else if i < len(v) {
			out[i] = v[i]
		} else {
			out[i] = def
		}
	}
	return out
}
