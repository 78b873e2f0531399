// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/hjisolve/errs"
	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/integrate"
)

// Solve is the one exported driver operation: it advances phi0 across
// every consecutive pair of tau, driving sd.Term through integrate.Run at
// each macro-step, applying the requested compMethod combinator, obstacle
// clamp and discount shrinkage after each accepted step, and checking the
// configured early-termination predicates between steps. It returns the
// phi history (shaped by extraArgs' memory policy), the tau slice that
// history corresponds to, and a bundle of driver diagnostics.
//
// On a NumericalError, the returned error carries t_now, the offending
// cell index and the last successful phi slice (errs.Numerical); Solve
// itself returns no history in that case, since the caller recovers the
// last-good state from the error. On cooperative cancellation (extraArgs.
// Cancel returning true), Solve returns errs.Cancelled() together with
// every slice completed so far, a non-fatal sentinel rather than a failure.
func Solve(phi0 *grid.Array, tau []float64, sd *Data, compMethod CompMethod, extraArgs Options) (history []*grid.Array, tauOut []float64, extra ExtraOuts, err error) {
	if len(tau) < 2 {
		return nil, nil, extra, errs.Spec("tau", "tau must have length >= 2, got %d", len(tau))
	}
	for k := 1; k < len(tau); k++ {
		if tau[k] <= tau[k-1] {
			return nil, nil, extra, errs.Spec("tau", "tau must be strictly monotone at index %d", k)
		}
	}
	if sd == nil || sd.Grid == nil {
		return nil, nil, extra, errs.Contract("sd", "scheme data carries no grid")
	}
	if !phi0.SameShape(&grid.Array{Shape: sd.Grid.Shape}) {
		return nil, nil, extra, errs.Contract("phi0", "shape %v does not match grid shape %v", phi0.Shape, sd.Grid.Shape)
	}
	if sd.Term == nil {
		return nil, nil, extra, errs.Contract("Term", "scheme data carries no Term")
	}

	istart := extraArgs.Istart
	if istart < 0 || istart >= len(tau)-1 {
		istart = 0
	}

	store := newHistoryStore(extraArgs)
	phi0Ref := phi0.Clone()
	phi := phi0Ref
	store.push(tau[istart], phi)

	integOpts := integrate.Options{
		CFL:        extraArgs.FactorCFL,
		MaxStep:    extraArgs.MaxStep,
		SingleStep: extraArgs.SingleStep,
		MaxRetries: extraArgs.MaxRetries,
	}

	cur := sd
	var totalStats integrate.Stats

	for k := istart; k < len(tau)-1; k++ {
		if extraArgs.Cancel != nil && extraArgs.Cancel() {
			return store.phis, store.taus, extra, errs.Cancelled()
		}

		prev := phi
		rhs := func(t float64, y *grid.Array) (*grid.Array, float64, error) {
			ydot, sb, sdOut, e := cur.Term.Eval(t, y, cur)
			if e != nil {
				return nil, 0, e
			}
			if sdOut != nil {
				cur = sdOut
			}
			return ydot, sb, nil
		}

		next, tEnd, stats, e := integrate.Run(tau[k], phi, tau[k+1], cur.Accuracy, rhs, integOpts)
		if e != nil {
			if ce, ok := e.(*errs.Error); ok && ce.Kind == errs.Numerical {
				ce.LastGood = prev
			}
			return nil, nil, extra, e
		}
		totalStats.Steps += stats.Steps
		totalStats.Retries += stats.Retries
		if k == istart || stats.MinStepBound < totalStats.MinStepBound {
			totalStats.MinStepBound = stats.MinStepBound
		}
		phi = next

		if extraArgs.ObstacleFunction != nil {
			obstacle := extraArgs.ObstacleFunction(tEnd)
			for i := range phi.Data {
				if v := -obstacle.Data[i]; v > phi.Data[i] {
					phi.Data[i] = v
				}
			}
		}

		phi = applyCompMethod(compMethod, phi, prev, phi0Ref, extraArgs.TargetFunction, tEnd)

		if extraArgs.DiscountFactor > 0 {
			applyDiscount(phi, phi0Ref, extraArgs.DiscountFactor, extraArgs.DiscountMode)
		}

		store.push(tEnd, phi)

		if !extraArgs.Quiet {
			io.Pf("> macro-step %d/%d: t=%23.10f (%d sub-steps, %d retries)\n", k+1-istart, len(tau)-1-istart, tEnd, stats.Steps, stats.Retries)
		}

		if reason, stop := checkStop(cur.Grid, phi, prev, extraArgs); stop {
			extra.StoppedEarly = true
			extra.StopReason = reason
			if !extraArgs.Quiet {
				io.Pfyel("> stopped early: %s\n", reason)
			}
			break
		}
	}

	extra.Stats = totalStats
	extra.FinalData = cur
	history = store.phis
	tauOut = store.taus
	if extraArgs.FlipOutput {
		reverseArrays(history)
		reverseFloats(tauOut)
	}
	return history, tauOut, extra, nil
}
