// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deriv

import (
	"math"

	"github.com/cpmech/hjisolve/grid"
)

// dividedDifferences builds the first, second and third (uniform-grid)
// Newton divided-difference tables of a padded line:
//
//	D1[p] = (v[p+1]-v[p]) / dx                f[x_p, x_{p+1}]
//	D2[p] = (D1[p+1]-D1[p]) / (2dx)            f[x_p, x_{p+1}, x_{p+2}]
//	D3[p] = (D2[p+1]-D2[p]) / (3dx)            f[x_p, ..., x_{p+3}]
func dividedDifferences(v []float64, dx float64) (D1, D2, D3 []float64) {
	m := len(v)
	D1 = make([]float64, m-1)
	for p := 0; p < m-1; p++ {
		D1[p] = (v[p+1] - v[p]) / dx
	}
	D2 = make([]float64, m-2)
	for p := 0; p < m-2; p++ {
		D2[p] = (D1[p+1] - D1[p]) / (2 * dx)
	}
	D3 = make([]float64, m-3)
	for p := 0; p < m-3; p++ {
		D3[p] = (D2[p+1] - D2[p]) / (3 * dx)
	}
	return
}

// enoStencil chooses the ENO stencil's leftmost index kstar by repeatedly
// extending the base 2-point stencil [kstar0, kstar0+1] either left or
// right, picking whichever side's higher divided difference has smaller
// magnitude (the essentially-non-oscillatory choice) and breaking ties in
// favour of the lower-indexed (more leftward) stencil, for `extensions`
// steps. Returns the final kstar and stencil width (2+extensions).
func enoStencil(kstar0 int, extensions int, D2, D3 []float64) (kstar, width int) {
	kstar = kstar0
	width = 2
	for step := 0; step < extensions; step++ {
		var left, right float64
		switch width {
		case 2:
			left, right = D2[kstar-1], D2[kstar]
		case 3:
			left, right = D3[kstar-1], D3[kstar]
		}
		if math.Abs(left) <= math.Abs(right) {
			kstar--
		}
		width++
	}
	return
}

// newtonDeriv evaluates, at padded coordinate q, the derivative of the
// Newton-form interpolating polynomial anchored at kstar with the given
// final stencil width (up to 4, i.e. up to a cubic).
func newtonDeriv(q, kstar, width int, dx float64, D1, D2, D3 []float64) float64 {
	m := q - kstar
	d := D1[kstar]
	if width >= 3 {
		d += D2[kstar] * dx * float64(2*m-1)
	}
	if width >= 4 {
		d += D3[kstar] * dx * dx * float64((m-1)*(m-2)+m*(m-2)+m*(m-1))
	}
	return d
}

// eno computes left- and right-biased ENO derivatives of the given order
// (extensions = order-1 additional stencil points beyond the base upwind
// difference).
func eno(g *grid.Grid, data *grid.Array, axis, width, extensions int) (derivL, derivR *grid.Array, err error) {
	dx := g.Dx[axis]
	n := g.Shape[axis]
	return lineSweep(g, data, axis, width, func(_, padded, outL, outR []float64) {
		D1, D2, D3 := dividedDifferences(padded, dx)
		for i := 0; i < n; i++ {
			q := i + width

			kstarL, wL := enoStencil(q-1, extensions, D2, D3)
			outL[i] = newtonDeriv(q, kstarL, wL, dx, D1, D2, D3)

			kstarR, wR := enoStencil(q, extensions, D2, D3)
			outR[i] = newtonDeriv(q, kstarR, wR, dx, D1, D2, D3)
		}
	})
}

// ENO2 computes second-order accurate one-sided derivatives.
func ENO2(g *grid.Grid, data *grid.Array, axis int) (derivL, derivR *grid.Array, err error) {
	return eno(g, data, axis, GhostWidth[Medium], 1)
}

// ENO3 computes third-order accurate one-sided derivatives.
func ENO3(g *grid.Grid, data *grid.Array, axis int) (derivL, derivR *grid.Array, err error) {
	return eno(g, data, axis, GhostWidth[High], 2)
}
