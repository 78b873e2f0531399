// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scheme declares the Scheme-data bundle (S) and the Hamiltonian
// (H) and Term (L) contracts that close over it. It is the one package
// every concrete Hamiltonian (ham) and Lax-Friedrichs term (lax) depends
// on, and the one the driver (solve) orchestrates against.
package scheme

import (
	"github.com/cpmech/hjisolve/deriv"
	"github.com/cpmech/hjisolve/grid"
)

// DissType selects the Lax-Friedrichs dissipation coefficient strategy
// Global uses one grid-wide bound per axis, Local a neighbourhood
// bound per cell, LocalLocal the cell's own one-sided derivatives.
type DissType int

const (
	Global DissType = iota
	Local
	LocalLocal
)

func (d DissType) String() string {
	switch d {
	case Global:
		return "global"
	case Local:
		return "local"
	case LocalLocal:
		return "locallocal"
	}
	return "unknown"
}

// Hamiltonian is the H contract. Value evaluates H(x,t,p) pointwise
// from the centred derivative and may return an updated S (sdOut) that
// Dissipation is then called with, e.g. to thread a once-per-step cache
// of optimal controls/disturbances computed during Value. Dissipation
// returns the numerical-dissipation array and the CFL stepBound =
// 1/sum(alpha_d/dx_d).
type Hamiltonian interface {
	Value(t float64, data *grid.Array, derivC []*grid.Array, sd *Data) (ham *grid.Array, sdOut *Data, err error)
	Dissipation(t float64, data *grid.Array, derivL, derivR []*grid.Array, sd *Data) (diss *grid.Array, stepBound float64, err error)
}

// Term is the L contract: the right-hand side of the semi-discrete ODE
// dphi/dt = -H(x,t,Dphi) + dissipation, generalised to a tagged variant
// (Leaf/Sum/Restrict) so that composite terms, sums of independent
// dynamics, or a restricted update that freezes part of the domain,
// present the same pure functional RHS signature
// (t, y, S) -> (ydot, stepBound, S') that the integrator drives.
type Term interface {
	Eval(t float64, y *grid.Array, sd *Data) (ydot *grid.Array, stepBound float64, sdOut *Data, err error)
}

// Data is the scheme-data bundle S: the read-mostly context threaded
// through every stage of a solve. Term is never nil once a Data reaches
// Term.Eval: the "plain" (non-composed) case is simply a lax.Leaf wrapping
// Grid/Accuracy/DissType/Ham, constructed once by lax.NewLeaf. Aux lets a
// Hamiltonian thread implementation-private state (e.g. a cached optimal
// control) across the Value -> Dissipation call pair without widening this
// struct for every possible Hamiltonian.
type Data struct {
	Grid     *grid.Grid
	Accuracy deriv.Accuracy
	DissType DissType
	Ham      Hamiltonian
	Term     Term
	Aux      interface{}
}
