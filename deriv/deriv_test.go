// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deriv

import (
	"math"
	"testing"

	"github.com/cpmech/hjisolve/grid"
)

func makeLinearGrid(tst *testing.T, n int, bdry string) (*grid.Grid, *grid.Array, float64) {
	g, err := grid.New(grid.GridSpec{Dim: 1, Min: []float64{0}, Max: []float64{10}, N: []int{n}, Bdry: []string{bdry}})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	const a, b = 2.3, -1.1
	data := grid.NewArray(g.Shape)
	for i, x := range g.Vs[0] {
		data.Data[i] = a*x + b
	}
	return g, data, a
}

func checkShapeClosure(tst *testing.T, g *grid.Grid, derivL, derivR *grid.Array) {
	if !derivL.SameShape(&grid.Array{Shape: g.Shape}) || !derivR.SameShape(&grid.Array{Shape: g.Shape}) {
		tst.Errorf("derivL/derivR shape = %v/%v, want %v", derivL.Shape, derivR.Shape, g.Shape)
	}
}

func Test_shapeClosure_allSchemes(tst *testing.T) {
	for acc, name := range map[Accuracy]string{Low: "upwind1", Medium: "ENO2", High: "ENO3", VeryHigh: "WENO5"} {
		fn, err := Factory(acc)
		if err != nil {
			tst.Fatalf("%s: Factory failed: %v", name, err)
		}
		g, data, _ := makeLinearGrid(tst, 41, grid.Extrapolate)
		derivL, derivR, err := fn(g, data, 0)
		if err != nil {
			tst.Fatalf("%s: deriv failed: %v", name, err)
		}
		checkShapeClosure(tst, g, derivL, derivR)
	}
}

func Test_linearExactness(tst *testing.T) {
	for acc, name := range map[Accuracy]string{Low: "upwind1", Medium: "ENO2", High: "ENO3", VeryHigh: "WENO5"} {
		fn, _ := Factory(acc)
		g, data, slope := makeLinearGrid(tst, 61, grid.Extrapolate)
		derivL, derivR, err := fn(g, data, 0)
		if err != nil {
			tst.Fatalf("%s: deriv failed: %v", name, err)
		}
		// interior cells only: extrapolate BC is exact for a linear
		// function, so all cells should recover the slope exactly.
		for i := 2; i < g.Shape[0]-2; i++ {
			if math.Abs(derivL.Data[i]-slope) > 1e-8 {
				tst.Errorf("%s: derivL[%d] = %v, want %v", name, i, derivL.Data[i], slope)
			}
			if math.Abs(derivR.Data[i]-slope) > 1e-8 {
				tst.Errorf("%s: derivR[%d] = %v, want %v", name, i, derivR.Data[i], slope)
			}
		}
	}
}

func Test_periodicRoundTrip(tst *testing.T) {
	// derivative of a periodic sine wave at the wrap cell must equal the
	// derivative computed as if the line simply continued (invariant 6's
	// spatial analogue).
	n := 101
	g, err := grid.New(grid.GridSpec{Dim: 1, Min: []float64{0}, Max: []float64{2 * math.Pi * float64(n-1) / float64(n)}, N: []int{n}, Bdry: []string{grid.Periodic}})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	data := grid.NewArray(g.Shape)
	for i, x := range g.Vs[0] {
		data.Data[i] = math.Sin(x)
	}
	fn, _ := Factory(VeryHigh)
	derivL, derivR, err := fn(g, data, 0)
	if err != nil {
		tst.Fatalf("WENO5 failed: %v", err)
	}
	// at the seam, left/right derivatives should be close to cos(0)=1
	if math.Abs(derivL.Data[0]-1) > 0.05 || math.Abs(derivR.Data[0]-1) > 0.05 {
		tst.Errorf("seam derivative = (%v,%v), want ~1", derivL.Data[0], derivR.Data[0])
	}
}

func weno5MaxErr(n int) float64 {
	g, _ := grid.New(grid.GridSpec{Dim: 1, Min: []float64{-1}, Max: []float64{1}, N: []int{n}, Bdry: []string{grid.Extrapolate}})
	data := grid.NewArray(g.Shape)
	for i, x := range g.Vs[0] {
		data.Data[i] = x * x * x * x
	}
	derivL, derivR, _ := WENO5(g, data, 0)
	maxErr := 0.0
	for i := 4; i < g.Shape[0]-4; i++ {
		x := g.Vs[0][i]
		exact := 4 * x * x * x
		if e := math.Abs(derivL.Data[i] - exact); e > maxErr {
			maxErr = e
		}
		if e := math.Abs(derivR.Data[i] - exact); e > maxErr {
			maxErr = e
		}
	}
	return maxErr
}

func Test_weno5_polynomialOrder(tst *testing.T) {
	errCoarse := weno5MaxErr(41)
	errFine := weno5MaxErr(81)
	if errFine == 0 {
		tst.Fatalf("unexpected exact zero error")
	}
	ratio := errCoarse / errFine
	if ratio < 24 {
		tst.Errorf("WENO5 convergence ratio = %v on halving dx, want >= 24 (5th order)", ratio)
	}
}
