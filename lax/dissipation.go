// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lax implements the Lax-Friedrichs term approximator (L): the
// dissipation-coefficient combiner shared by every Hamiltonian, and the
// Leaf/Sum/Restrict term-composition variants that implement scheme.Term.
package lax

import (
	"math"

	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/scheme"
)

// PartialHBound returns max(|dH/dp_axis|) over the hyper-rectangle of
// costate values [pLo,pHi] at position x, for a Hamiltonian whose partial
// derivative a concrete implementation (ham package) knows in closed form.
// ComputeDissipation calls this once per axis per cell (with a bounding box
// that depends on DissType) and never needs to know the Hamiltonian's
// analytic form itself.
type PartialHBound func(axis int, x []float64, pLo, pHi float64) float64

// ComputeDissipation assembles the Lax-Friedrichs numerical-dissipation
// array and CFL stepBound for one of the three variants:
//
//   - Global: a single alpha_d per axis, the bound's sup over the whole grid
//     given the grid-wide min/max of the one-sided derivatives.
//   - Local: alpha_d(x) bounded using a small neighbourhood's derivative
//     extrema around x (cheaper dissipation, needs a smoother H).
//   - LocalLocal: alpha_d(x) bounded using only cell x's own derivatives
//     (the least dissipative, most accurate variant).
//
// diss[x] = sum_d alpha_d(x) * (derivR[d][x]-derivL[d][x]) / 2, and
// stepBound = 1 / sum_d(max_x(alpha_d(x)) / dx_d).
func ComputeDissipation(g *grid.Grid, dissType scheme.DissType, derivL, derivR []*grid.Array, bound PartialHBound) (diss *grid.Array, stepBound float64) {
	dim := g.Dim
	n := derivL[0].Len()
	diss = grid.NewArray(g.Shape)
	maxAlpha := make([]float64, dim)

	if dissType == scheme.Global {
		pLo := make([]float64, dim)
		pHi := make([]float64, dim)
		for d := 0; d < dim; d++ {
			lo, hi := math.Inf(1), math.Inf(-1)
			for i := 0; i < n; i++ {
				l, r := derivL[d].Data[i], derivR[d].Data[i]
				lo = math.Min(lo, math.Min(l, r))
				hi = math.Max(hi, math.Max(l, r))
			}
			pLo[d], pHi[d] = lo, hi
		}
		for i := 0; i < n; i++ {
			x := coordsAt(g, grid.Unflatten(g.Shape, i))
			for d := 0; d < dim; d++ {
				a := math.Abs(bound(d, x, pLo[d], pHi[d]))
				if a > maxAlpha[d] {
					maxAlpha[d] = a
				}
			}
		}
		for i := 0; i < n; i++ {
			s := 0.0
			for d := 0; d < dim; d++ {
				s += maxAlpha[d] * (derivR[d].Data[i] - derivL[d].Data[i]) / 2
			}
			diss.Data[i] = s
		}
	} else {
		perCellAlpha := make([][]float64, dim)
		for d := range perCellAlpha {
			perCellAlpha[d] = make([]float64, n)
		}
		grid.ForEachCell(n, func(i int) {
			idx := grid.Unflatten(g.Shape, i)
			x := coordsAt(g, idx)
			s := 0.0
			for d := 0; d < dim; d++ {
				var lo, hi float64
				if dissType == scheme.LocalLocal {
					lo = math.Min(derivL[d].Data[i], derivR[d].Data[i])
					hi = math.Max(derivL[d].Data[i], derivR[d].Data[i])
				} else {
					lo, hi = neighbourhoodBounds(g, derivL[d], derivR[d], idx, d)
				}
				a := math.Abs(bound(d, x, lo, hi))
				perCellAlpha[d][i] = a
				s += a * (derivR[d].Data[i] - derivL[d].Data[i]) / 2
			}
			diss.Data[i] = s
		})
		for d := 0; d < dim; d++ {
			m := 0.0
			for _, a := range perCellAlpha[d] {
				if a > m {
					m = a
				}
			}
			maxAlpha[d] = m
		}
	}

	cfl := 0.0
	for d := 0; d < dim; d++ {
		cfl += maxAlpha[d] / g.Dx[d]
	}
	if cfl <= 0 {
		stepBound = math.Inf(1)
	} else {
		stepBound = 1.0 / cfl
	}
	return
}

// coordsAt decodes a multi-index into the physical coordinate vector.
func coordsAt(g *grid.Grid, idx []int) []float64 {
	x := make([]float64, g.Dim)
	for d := 0; d < g.Dim; d++ {
		x[d] = g.Vs[d][idx[d]]
	}
	return x
}

// neighbourhoodBounds returns the min/max of derivL[axis]/derivR[axis] over
// idx and its immediate neighbours along axis (clamped at the domain edge;
// no wraparound is attempted even under periodic boundaries, since the
// neighbourhood is meant to be a local smoothing window, not a global one).
func neighbourhoodBounds(g *grid.Grid, derivL, derivR *grid.Array, idx []int, axis int) (lo, hi float64) {
	st := derivL.Strides()[axis]
	base := 0
	strides := derivL.Strides()
	for d, k := range idx {
		base += k * strides[d]
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for off := -1; off <= 1; off++ {
		k := idx[axis] + off
		if k < 0 || k >= g.Shape[axis] {
			continue
		}
		i := base + off*st
		l, r := derivL.Data[i], derivR.Data[i]
		lo = math.Min(lo, math.Min(l, r))
		hi = math.Max(hi, math.Max(l, r))
	}
	return
}
