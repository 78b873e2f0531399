// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deriv

import "github.com/cpmech/hjisolve/grid"

// lineSweep drives fn once per 1-D line along axis, handing it the
// interior line (from data), the corresponding ghost-padded line (of the
// requested width), and destination slices to fill with the left- and
// right-biased derivatives. Lines are independent units of work, so the
// sweep fans out across a worker pool.
func lineSweep(g *grid.Grid, data *grid.Array, axis, width int, fn func(line, padded, outL, outR []float64)) (derivL, derivR *grid.Array, err error) {
	padded, err := g.Pad(data, axis, width)
	if err != nil {
		return nil, nil, err
	}
	n := g.Shape[axis]
	derivL = grid.NewArray(g.Shape)
	derivR = grid.NewArray(g.Shape)

	// dataBases[k] and paddedBases[k] describe the same line: both
	// shapes agree on every axis except axis, and LineBases' traversal
	// order depends only on the non-axis dimensions.
	dataBases := grid.LineBases(g.Shape, axis)
	paddedBases := grid.LineBases(padded.Shape, axis)
	dataStride := data.Strides()[axis]
	paddedStride := padded.Strides()[axis]

	grid.ForEachCell(len(dataBases), func(k int) {
		line := data.Line(dataBases[k], dataStride, n, nil)
		pLine := padded.Line(paddedBases[k], paddedStride, n+2*width, nil)
		outL := make([]float64, n)
		outR := make([]float64, n)

		fn(line, pLine, outL, outR)

		derivL.SetLine(dataBases[k], dataStride, n, outL)
		derivR.SetLine(dataBases[k], dataStride, n, outR)
	})
	return derivL, derivR, nil
}
