// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrate implements the explicit TVD Runge-Kutta time
// integrator (T): RK1/RK2/RK3 stepping a generic ODE right-hand side that
// also reports a CFL stepBound, and the CFL-constrained adaptive loop that
// drives them from t0 to a target time with bisection retry on numerical
// failure.
package integrate

import (
	"github.com/cpmech/hjisolve/deriv"
	"github.com/cpmech/hjisolve/errs"
	"github.com/cpmech/hjisolve/grid"
)

// RHS is the semi-discrete right-hand side dy/dt = RHS(t,y): it returns the
// rate of change and the largest dt for which the update remains CFL-stable
// (from whichever Term/Hamiltonian produced ydot). The scheme package binds
// a Term/Data pair into a closure of this shape so integrate never needs to
// depend on scheme.
type RHS func(t float64, y *grid.Array) (ydot *grid.Array, stepBound float64, err error)

// Integrator advances y by one step of size dt, returning the smallest
// stepBound reported by its RHS evaluations within the step (used as the
// next step's CFL estimate).
type Integrator interface {
	Step(t, dt float64, y *grid.Array, rhs RHS) (yNext *grid.Array, stepBound float64, err error)
	Order() int
}

// RK1 is forward Euler, first-order, TVD for any CFL number <= 1.
type RK1 struct{}

// Step implements Integrator.
func (RK1) Step(t, dt float64, y *grid.Array, rhs RHS) (yNext *grid.Array, stepBound float64, err error) {
	ydot, sb, err := rhs(t, y)
	if err != nil {
		return nil, 0, err
	}
	yNext = grid.NewArray(y.Shape)
	for i := range yNext.Data {
		yNext.Data[i] = y.Data[i] + dt*ydot.Data[i]
	}
	return yNext, sb, nil
}

// Order implements Integrator.
func (RK1) Order() int { return 1 }

// RK2 is Heun's second-order strong-stability-preserving (TVD) scheme.
type RK2 struct{}

// Step implements Integrator.
func (RK2) Step(t, dt float64, y *grid.Array, rhs RHS) (yNext *grid.Array, stepBound float64, err error) {
	ydot1, sb1, err := rhs(t, y)
	if err != nil {
		return nil, 0, err
	}
	y1 := grid.NewArray(y.Shape)
	for i := range y1.Data {
		y1.Data[i] = y.Data[i] + dt*ydot1.Data[i]
	}

	ydot2, sb2, err := rhs(t+dt, y1)
	if err != nil {
		return nil, 0, err
	}
	yNext = grid.NewArray(y.Shape)
	for i := range yNext.Data {
		yNext.Data[i] = 0.5*y.Data[i] + 0.5*(y1.Data[i]+dt*ydot2.Data[i])
	}
	return yNext, minStepBound(sb1, sb2), nil
}

// Order implements Integrator.
func (RK2) Order() int { return 2 }

// RK3 is the Shu-Osher third-order strong-stability-preserving (TVD)
// scheme, the standard pairing for ENO3/WENO5 in space.
type RK3 struct{}

// Step implements Integrator.
func (RK3) Step(t, dt float64, y *grid.Array, rhs RHS) (yNext *grid.Array, stepBound float64, err error) {
	ydot1, sb1, err := rhs(t, y)
	if err != nil {
		return nil, 0, err
	}
	y1 := grid.NewArray(y.Shape)
	for i := range y1.Data {
		y1.Data[i] = y.Data[i] + dt*ydot1.Data[i]
	}

	ydot2, sb2, err := rhs(t+dt, y1)
	if err != nil {
		return nil, 0, err
	}
	y2 := grid.NewArray(y.Shape)
	for i := range y2.Data {
		y2.Data[i] = 0.75*y.Data[i] + 0.25*(y1.Data[i]+dt*ydot2.Data[i])
	}

	ydot3, sb3, err := rhs(t+0.5*dt, y2)
	if err != nil {
		return nil, 0, err
	}
	yNext = grid.NewArray(y.Shape)
	for i := range yNext.Data {
		yNext.Data[i] = (1.0/3.0)*y.Data[i] + (2.0/3.0)*(y2.Data[i]+dt*ydot3.Data[i])
	}
	return yNext, minStepBound(sb1, minStepBound(sb2, sb3)), nil
}

// Order implements Integrator.
func (RK3) Order() int { return 3 }

func minStepBound(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Factory returns the integrator paired with the given spatial accuracy
// level, matching deriv.Factory 1:1: Low/upwind1 pairs with RK1,
// Medium/ENO2 with RK2, and High/ENO3 and VeryHigh/WENO5 both pair with
// RK3, the highest time order available and the standard choice for WENO5
// in the literature.
func Factory(acc deriv.Accuracy) (Integrator, error) {
	switch acc {
	case deriv.Low:
		return RK1{}, nil
	case deriv.Medium:
		return RK2{}, nil
	case deriv.High, deriv.VeryHigh:
		return RK3{}, nil
	}
	return nil, errs.Spec("accuracy", "unknown integrator accuracy level %d", acc)
}
