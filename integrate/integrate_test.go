// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"
	"testing"

	"github.com/cpmech/hjisolve/deriv"
	"github.com/cpmech/hjisolve/errs"
	"github.com/cpmech/hjisolve/grid"
)

// decayRHS is dy/dt = -y, a scalar (1-cell grid) ODE whose exact solution
// y(t) = y0*exp(-t) lets every integrator's order be checked directly.
func decayRHS(t float64, y *grid.Array) (*grid.Array, float64, error) {
	out := grid.NewArray(y.Shape)
	for i := range out.Data {
		out.Data[i] = -y.Data[i]
	}
	return out, 0.1, nil
}

func Test_RK1_RK2_RK3_convergenceOrder(tst *testing.T) {
	y0 := grid.NewArray([]int{1})
	y0.Data[0] = 1.0
	exact := math.Exp(-1.0)

	cases := []struct {
		acc   deriv.Accuracy
		order int
	}{
		{deriv.Low, 1},
		{deriv.Medium, 2},
		{deriv.High, 3},
	}
	for _, c := range cases {
		integ, err := Factory(c.acc)
		if err != nil {
			tst.Fatalf("Factory failed: %v", err)
		}
		if integ.Order() != c.order {
			tst.Errorf("acc=%d: Order() = %d, want %d", c.acc, integ.Order(), c.order)
		}

		errAt := func(n int) float64 {
			dt := 1.0 / float64(n)
			y := y0.Clone()
			t := 0.0
			for i := 0; i < n; i++ {
				var e error
				y, _, e = integ.Step(t, dt, y, decayRHS)
				if e != nil {
					tst.Fatalf("Step failed: %v", e)
				}
				t += dt
			}
			return math.Abs(y.Data[0] - exact)
		}
		eCoarse := errAt(10)
		eFine := errAt(20)
		if eFine == 0 {
			tst.Fatalf("acc=%d: unexpected exact zero error", c.acc)
		}
		ratio := eCoarse / eFine
		want := math.Pow(2, float64(c.order)) * 0.5 // allow some slack below the asymptotic rate
		if ratio < want {
			tst.Errorf("acc=%d: convergence ratio = %v, want >= %v for order %d", c.acc, ratio, want, c.order)
		}
	}
}

func Test_Run_reachesTarget(tst *testing.T) {
	y0 := grid.NewArray([]int{1})
	y0.Data[0] = 1.0
	y, tEnd, stats, err := Run(0, y0, 1.0, deriv.Low, decayRHS, Options{CFL: 0.5})
	if err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	if math.Abs(tEnd-1.0) > 1e-9 {
		tst.Errorf("tEnd = %v, want 1.0", tEnd)
	}
	if stats.Steps == 0 {
		tst.Errorf("expected at least one step")
	}
	exact := math.Exp(-1.0)
	if math.Abs(y.Data[0]-exact) > 0.05 {
		tst.Errorf("y = %v, want close to %v", y.Data[0], exact)
	}
}

func Test_Run_propagatesNumericalError(tst *testing.T) {
	calls := 0
	benignRHS := func(t float64, y *grid.Array) (*grid.Array, float64, error) {
		calls++
		out := grid.NewArray(y.Shape)
		for i := range out.Data {
			out.Data[i] = -y.Data[i]
		}
		return out, 10.0, nil
	}
	y0 := grid.NewArray([]int{1})
	y0.Data[0] = 1.0

	integ := RK1{}
	// RK1 never errors on its own: a Step with an oversized dt succeeds for
	// this benign RHS after exactly one RHS call, passing its stepBound on.
	_, sb, err := integ.Step(0, 50.0, y0, benignRHS)
	if err != nil {
		tst.Fatalf("Step failed: %v", err)
	}
	if sb != 10.0 {
		tst.Errorf("stepBound = %v, want 10.0", sb)
	}
	if calls != 1 {
		tst.Errorf("calls = %d, want 1", calls)
	}

	// a genuinely failing RHS must surface its NumericalError from Run
	// (here Run's initial RHS probe already fails, before any step).
	nanRHS := func(t float64, y *grid.Array) (*grid.Array, float64, error) {
		return nil, 0, errs.Numerical(t, nil, "synthetic failure")
	}
	_, _, _, err = Run(0, y0, 1.0, deriv.Low, nanRHS, Options{MaxRetries: 2})
	if err == nil || !errs.Is(err, errs.Numerical) {
		tst.Errorf("expected a propagated NumericalError, got %v", err)
	}
}
