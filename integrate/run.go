// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"

	"github.com/cpmech/hjisolve/deriv"
	"github.com/cpmech/hjisolve/errs"
	"github.com/cpmech/hjisolve/grid"
)

// Options configures Run's adaptive CFL loop (factorCFL, maxStep,
// singleStep, terminalEvent).
type Options struct {
	CFL           float64            // Courant number (factorCFL), default 0.8 if <= 0
	MaxRetries    int                // bisection retries per micro-step on a NumericalError, default 5
	MaxStep       float64            // cap on dt regardless of the CFL estimate; 0 means unbounded
	SingleStep    bool               // return after exactly one accepted micro-step
	TerminalEvent func(t float64, y *grid.Array) bool // optional early-return predicate, checked after each accepted micro-step
}

// Stats accumulates bookkeeping about a Run call, surfaced to the driver
// for diagnostics/logging.
type Stats struct {
	Steps        int
	Retries      int
	MinStepBound float64
}

// Run advances y0 from t0 to tTarget using the integrator paired with acc,
// choosing each micro-step's dt as CFL*stepBound from the previous step's
// RHS evaluation (the first step is primed with an extra RHS probe at t0).
// On a NumericalError from a step, dt is bisected and the step retried up
// to MaxRetries times before the error is returned to the caller, who may
// checkpoint using the error's carried t_now/cell index (errs.Numerical).
func Run(t0 float64, y0 *grid.Array, tTarget float64, acc deriv.Accuracy, rhs RHS, opts Options) (y *grid.Array, tEnd float64, stats Stats, err error) {
	integ, err := Factory(acc)
	if err != nil {
		return nil, t0, stats, err
	}
	cfl := opts.CFL
	if cfl <= 0 {
		cfl = 0.8
	}
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 5
	}
	if tTarget < t0 {
		return nil, t0, stats, errs.Contract("tTarget", "tTarget (%v) must be >= t0 (%v)", tTarget, t0)
	}

	t := t0
	y = y0.Clone()

	_, sb, err := rhs(t, y)
	if err != nil {
		return nil, t, stats, err
	}
	dt := cfl * sb
	if opts.MaxStep > 0 && dt > opts.MaxStep {
		dt = opts.MaxStep
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, t, stats, errs.Numerical(t, nil, "non-positive or non-finite initial CFL stepBound")
	}

	const eps = 1e-12
	for t < tTarget-eps {
		if t+dt > tTarget {
			dt = tTarget - t
		}

		var yNext *grid.Array
		retries := 0
		for {
			yNext, sb, err = integ.Step(t, dt, y, rhs)
			if err == nil {
				break
			}
			if !errs.Is(err, errs.Numerical) || retries >= maxRetries {
				return nil, t, stats, err
			}
			dt *= 0.5
			retries++
			stats.Retries++
		}

		y = yNext
		t += dt
		stats.Steps++
		if stats.Steps == 1 || sb < stats.MinStepBound {
			stats.MinStepBound = sb
		}

		if opts.SingleStep {
			return y, t, stats, nil
		}
		if opts.TerminalEvent != nil && opts.TerminalEvent(t, y) {
			return y, t, stats, nil
		}

		dt = cfl * sb
		if opts.MaxStep > 0 && dt > opts.MaxStep {
			dt = opts.MaxStep
		}
		if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
			return nil, t, stats, errs.Numerical(t, nil, "non-positive or non-finite CFL stepBound")
		}
	}
	return y, t, stats, nil
}
