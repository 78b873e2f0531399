// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deriv

import (
	"sync"

	"github.com/cpmech/hjisolve/grid"
)

// weightsL and weightsR are the Jiang-Shu linear weights for the
// left-biased and right-biased WENO5 combinations.
var weightsL = [3]float64{0.1, 0.6, 0.3}
var weightsR = [3]float64{0.3, 0.6, 0.1}

// WENO5 computes fifth-order accurate one-sided derivatives using a
// Weighted Essentially Non-Oscillatory combination of three third-order
// ENO candidates, with the default (b) epsilon selector: 1e-6 times the
// maximum squared first divided difference over the whole grid, plus
// 1e-99.
func WENO5(g *grid.Grid, data *grid.Array, axis int) (derivL, derivR *grid.Array, err error) {
	const width = 3
	dx := g.Dx[axis]
	n := g.Shape[axis]

	padded, err := g.Pad(data, axis, width)
	if err != nil {
		return nil, nil, err
	}

	dataBases := grid.LineBases(g.Shape, axis)
	paddedBases := grid.LineBases(padded.Shape, axis)
	dataStride := data.Strides()[axis]
	paddedStride := padded.Strides()[axis]

	// Pass 1: maxOverGrid epsilon selector needs the global max of D1^2
	// before any cell's derivative can be finalised.
	var maxD1Sq float64
	var mu sync.Mutex
	grid.ForEachCell(len(dataBases), func(k int) {
		pLine := padded.Line(paddedBases[k], paddedStride, n+2*width, nil)
		local := 0.0
		for p := 0; p < len(pLine)-1; p++ {
			d1 := (pLine[p+1] - pLine[p]) / dx
			if sq := d1 * d1; sq > local {
				local = sq
			}
		}
		mu.Lock()
		if local > maxD1Sq {
			maxD1Sq = local
		}
		mu.Unlock()
	})
	eps := 1e-6*maxD1Sq + 1e-99

	derivL = grid.NewArray(g.Shape)
	derivR = grid.NewArray(g.Shape)
	grid.ForEachCell(len(dataBases), func(k int) {
		pLine := padded.Line(paddedBases[k], paddedStride, n+2*width, nil)
		outL := make([]float64, n)
		outR := make([]float64, n)
		for i := 0; i < n; i++ {
			q := i + width
			a := (pLine[q-2] - pLine[q-3]) / dx
			b := (pLine[q-1] - pLine[q-2]) / dx
			c := (pLine[q] - pLine[q-1]) / dx
			d := (pLine[q+1] - pLine[q]) / dx
			e := (pLine[q+2] - pLine[q+1]) / dx
			f := (pLine[q+3] - pLine[q+2]) / dx
			outL[i] = weno5Left(a, b, c, d, e, eps)
			outR[i] = weno5Right(b, c, d, e, f, eps)
		}
		derivL.SetLine(dataBases[k], dataStride, n, outL)
		derivR.SetLine(dataBases[k], dataStride, n, outR)
	})
	return derivL, derivR, nil
}

// weno5Left combines the three left-biased third-order ENO candidates
// built from the five consecutive first divided differences a..e.
func weno5Left(a, b, c, d, e, eps float64) float64 {
	d0 := (1.0/3.0)*a - (7.0/6.0)*b + (11.0/6.0)*c
	d1 := -(1.0/6.0)*b + (5.0/6.0)*c + (1.0/3.0)*d
	d2 := (1.0/3.0)*c + (5.0/6.0)*d - (1.0/6.0)*e
	beta0, beta1, beta2 := smoothness(a, b, c, d, e)
	return weightWENO([3]float64{d0, d1, d2}, [3]float64{beta0, beta1, beta2}, weightsL, eps)
}

// weno5Right combines the three right-biased third-order ENO candidates,
// built from the five consecutive first divided differences that start one
// cell to the right of weno5Left's (the caller passes b..f as a..e).
func weno5Right(a, b, c, d, e, eps float64) float64 {
	d0 := -(1.0/6.0)*a + (5.0/6.0)*b + (1.0/3.0)*c
	d1 := (1.0/3.0)*b + (5.0/6.0)*c - (1.0/6.0)*d
	d2 := (11.0/6.0)*c - (7.0/6.0)*d + (1.0/3.0)*e
	beta0, beta1, beta2 := smoothness(a, b, c, d, e)
	return weightWENO([3]float64{d0, d1, d2}, [3]float64{beta0, beta1, beta2}, weightsR, eps)
}

// smoothness computes the Jiang-Shu smoothness indicators of the stencils
// {a,b,c}, {b,c,d}, {c,d,e} of whichever five differences it is given; the
// left- and right-biased combinations call it on their own five.
func smoothness(a, b, c, d, e float64) (beta0, beta1, beta2 float64) {
	beta0 = (13.0/12.0)*sq(a-2*b+c) + 0.25*sq(a-4*b+3*c)
	beta1 = (13.0/12.0)*sq(b-2*c+d) + 0.25*sq(b-d)
	beta2 = (13.0/12.0)*sq(c-2*d+e) + 0.25*sq(3*c-4*d+e)
	return
}

func sq(x float64) float64 { return x * x }

// weightWENO applies the nonlinear WENO weighting (3.39)-(3.41) in Osher
// & Fedkiw: alpha_k = w_k/(beta_k+eps)^2, normalised to omega_k, combined
// with the candidate derivatives d_k.
func weightWENO(d, beta, w [3]float64, eps float64) float64 {
	var alpha [3]float64
	var sum float64
	for k := 0; k < 3; k++ {
		denom := beta[k] + eps
		alpha[k] = w[k] / (denom * denom)
		sum += alpha[k]
	}
	var out float64
	for k := 0; k < 3; k++ {
		out += alpha[k] * d[k]
	}
	return out / sum
}
