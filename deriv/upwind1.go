// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deriv

import "github.com/cpmech/hjisolve/grid"

// Upwind1 computes the first-order one-sided differences:
//
//	derivL[i] = (u[i]-u[i-1]) / dx
//	derivR[i] = (u[i+1]-u[i]) / dx
func Upwind1(g *grid.Grid, data *grid.Array, axis int) (derivL, derivR *grid.Array, err error) {
	const width = 1
	dx := g.Dx[axis]
	n := g.Shape[axis]
	return lineSweep(g, data, axis, width, func(_, padded, outL, outR []float64) {
		for i := 0; i < n; i++ {
			q := i + width
			outL[i] = (padded[q] - padded[q-1]) / dx
			outR[i] = (padded[q+1] - padded[q]) / dx
		}
	})
}
