// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lax

import (
	"math"

	"github.com/cpmech/hjisolve/deriv"
	"github.com/cpmech/hjisolve/errs"
	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/scheme"
)

// Leaf is the plain (non-composed) Lax-Friedrichs term: it runs the
// derivative scheme along every axis, calls the Hamiltonian's Value and
// Dissipation, and assembles dphi/dt = -(ham - diss). It implements
// scheme.Term directly; Sum and Restrict wrap one or more Terms (which are
// typically Leaves) to build composite dynamics.
type Leaf struct {
	Deriv deriv.Scheme
}

// NewLeaf resolves the derivative scheme registered for sd.Accuracy and
// returns a ready-to-use Leaf.
func NewLeaf(sd *scheme.Data) (*Leaf, error) {
	fn, err := deriv.Factory(sd.Accuracy)
	if err != nil {
		return nil, err
	}
	return &Leaf{Deriv: fn}, nil
}

// Eval implements scheme.Term.
func (l *Leaf) Eval(t float64, y *grid.Array, sd *scheme.Data) (ydot *grid.Array, stepBound float64, sdOut *scheme.Data, err error) {
	g := sd.Grid
	if !y.SameShape(&grid.Array{Shape: g.Shape}) {
		return nil, 0, nil, errs.Contract("data", "shape %v does not match grid shape %v", y.Shape, g.Shape)
	}
	if sd.Ham == nil {
		return nil, 0, nil, errs.Contract("ham", "scheme data carries no Hamiltonian")
	}

	dim := g.Dim
	derivL := make([]*grid.Array, dim)
	derivR := make([]*grid.Array, dim)
	derivC := make([]*grid.Array, dim)
	for d := 0; d < dim; d++ {
		dl, dr, e := l.Deriv(g, y, d)
		if e != nil {
			return nil, 0, nil, e
		}
		derivL[d], derivR[d] = dl, dr
		dc := grid.NewArray(g.Shape)
		for i := range dc.Data {
			dc.Data[i] = 0.5 * (dl.Data[i] + dr.Data[i])
		}
		derivC[d] = dc
	}

	hamArr, sd2, e := sd.Ham.Value(t, y, derivC, sd)
	if e != nil {
		return nil, 0, nil, e
	}
	if sd2 == nil {
		sd2 = sd
	}
	if !hamArr.SameShape(&grid.Array{Shape: g.Shape}) {
		return nil, 0, nil, errs.Contract("ham", "Value returned shape %v, want %v", hamArr.Shape, g.Shape)
	}

	diss, sb, e := sd2.Ham.Dissipation(t, y, derivL, derivR, sd2)
	if e != nil {
		return nil, 0, nil, e
	}
	if sb < 0 {
		return nil, 0, nil, errs.Numerical(t, nil, "dissipation returned a negative stepBound")
	}

	ydot = grid.NewArray(g.Shape)
	for i := range ydot.Data {
		v := -(hamArr.Data[i] - diss.Data[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, nil, errs.Numerical(t, grid.Unflatten(g.Shape, i), "non-finite value in Lax-Friedrichs RHS")
		}
		ydot.Data[i] = v
	}
	return ydot, sb, sd2, nil
}
