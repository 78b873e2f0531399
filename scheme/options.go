// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/integrate"
)

// CompMethod selects the pointwise combinator Solve applies to phi after
// every accepted macro-step.
type CompMethod int

const (
	MethodSet         CompMethod = iota // identity
	MethodNone                          // identity
	MethodZero                          // max-with-0 handled upstream via lax.Restrict; no-op here
	MethodMinWithZero                   // same as MethodZero
	MethodMinVOverTime
	MethodMaxVOverTime
	MethodMinVWithL
	MethodMaxVWithL
	MethodMinVWithV0
	MethodMaxVWithV0
)

// DiscountMode selects the discount-factor shrinkage formula (see the Open
// Question 4).
type DiscountMode int

const (
	DiscountJaime DiscountMode = iota // phi <- phi0 + factor*(phi-phi0)
	DiscountKene                      // phi <- factor*phi + (1-factor)*phi0
)

// DiscountAnneal is accepted and threaded through but not acted on by
// Solve: annealing policy (how the factor itself changes call over call)
// is a driver concern, not a core one.
type DiscountAnneal int

const (
	AnnealNone DiscountAnneal = iota
	AnnealSoft
	AnnealHard
)

// TimeField is a possibly time-varying scalar field over the grid, the
// shape used by obstacleFunction/targetFunction.
type TimeField func(t float64) *grid.Array

// Options is the driver's extraArgs bundle. All fields are optional;
// the zero value disables every feature it controls.
type Options struct {
	// CFL-loop knobs, passed through to integrate.Run.
	FactorCFL  float64 // default 0.8
	MaxStep    float64 // 0 means unbounded
	SingleStep bool
	MaxRetries int // default 5

	// Pointwise field combinators.
	ObstacleFunction TimeField
	TargetFunction   TimeField

	// Early-termination predicates, checked between macro-steps.
	StopInit          []float64 // stop once phi at the nearest cell to this point is <= 0
	StopSet           *grid.Array
	StopLevel         float64
	StopLevelEnabled  bool
	StopConverge      bool
	ConvergeThreshold float64
	IgnoreBoundary    bool

	// Discount-factor shrinkage, applied once per accepted macro-step.
	DiscountFactor float64 // 0 disables
	DiscountMode   DiscountMode
	DiscountAnneal DiscountAnneal

	// Memory/IO flags.
	KeepLast   bool
	LowMemory  bool
	FlipOutput bool
	Quiet      bool
	Istart     int

	// Cancel, if non-nil, is polled between macro-steps, the cooperative
	// cancellation point).
	Cancel func() bool
}

// ExtraOuts is the driver's extraOuts bundle: diagnostics that do not
// belong in the phi history itself.
type ExtraOuts struct {
	Stats        integrate.Stats
	StoppedEarly bool
	StopReason   string
	FinalData    *Data
}
