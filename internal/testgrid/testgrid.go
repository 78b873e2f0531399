// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package testgrid holds analytic fixtures shared by the deriv and ham
// test suites, the domain analog of the tests.Kb helper
// (tests/debugKb.go): one place for the periodic sine field and the
// finite-difference cross-check those tests lean on.
package testgrid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/hjisolve/grid"
)

// Periodic1D builds a 1-D periodic grid of n cells spanning one full period
// of 2*pi/freq. A periodic grid must not duplicate the point at the period
// boundary, so the last sample sits one dx short of a full period.
func Periodic1D(n int, freq float64) (*grid.Grid, error) {
	period := 2 * math.Pi / freq
	span := period * float64(n-1) / float64(n)
	return grid.New(grid.GridSpec{Dim: 1, Min: []float64{0}, Max: []float64{span}, N: []int{n}, Bdry: []string{grid.Periodic}})
}

// SineIC samples amplitude*sin(freq*x) onto g's first axis.
func SineIC(g *grid.Grid, amplitude, freq float64) *grid.Array {
	out := grid.NewArray(g.Shape)
	for i, x := range g.Vs[0] {
		out.Data[i] = amplitude * math.Sin(freq*x)
	}
	return out
}

// CheckDerivAgainstFD compares an analytic derivative value at x0 against a
// central finite-difference estimate of f, matching mdl/gen's
// num.DerivCentral + chk.Scalar convention.
func CheckDerivAgainstFD(tst *testing.T, label string, f func(x float64) float64, analytic, x0, h, tol float64) {
	dnum, err := num.DerivCentral(func(x float64, args ...interface{}) float64 {
		return f(x)
	}, x0, h)
	if err != nil {
		tst.Fatalf("%s: DerivCentral failed: %v", label, err)
	}
	chk.Scalar(tst, label, tol, analytic, dnum)
}
