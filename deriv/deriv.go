// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package deriv implements the upwind ENO/WENO spatial derivative
// approximators (D): given a grid, a data array and an axis, it returns
// the left- and right-biased first-derivative arrays needed by the
// Lax-Friedrichs term.
package deriv

import (
	"github.com/cpmech/hjisolve/errs"
	"github.com/cpmech/hjisolve/grid"
)

// Accuracy selects a (derivFunc, integratorFunc) pair: the same value keys
// both Factory here and integrate.Factory.
type Accuracy int

const (
	Low      Accuracy = iota // first-order upwind
	Medium                   // ENO2
	High                     // ENO3
	VeryHigh                 // WENO5
)

// Scheme computes the left- and right-biased first-derivative
// approximations of data along axis. Both outputs have the same shape as
// data (shape closure).
type Scheme func(g *grid.Grid, data *grid.Array, axis int) (derivL, derivR *grid.Array, err error)

var registry = map[Accuracy]Scheme{
	Low:      Upwind1,
	Medium:   ENO2,
	High:     ENO3,
	VeryHigh: WENO5,
}

// GhostWidth is the number of ghost cells each scheme requires on each
// end, order-dependent on the scheme.
var GhostWidth = map[Accuracy]int{
	Low:      1,
	Medium:   2,
	High:     3,
	VeryHigh: 3,
}

// Factory returns the derivative scheme registered for the given accuracy
// level, mirroring ele.New's type-keyed lookup.
func Factory(acc Accuracy) (Scheme, error) {
	fn, ok := registry[acc]
	if !ok {
		return nil, errs.Spec("accuracy", "unknown derivative accuracy level %d", acc)
	}
	return fn, nil
}
