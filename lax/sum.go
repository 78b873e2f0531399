// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lax

import (
	"math"

	"github.com/cpmech/hjisolve/errs"
	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/scheme"
)

// Sum composes independent dynamics by addition: dphi/dt = sum_i Terms[i],
// each evaluated against its own scheme data (Datas[i], which may carry a
// different Hamiltonian or accuracy level than the parent). The combined
// stepBound is the minimum across terms, the tightest CFL constraint
// governs the whole sum.
type Sum struct {
	Terms []scheme.Term
	Datas []*scheme.Data
}

// Eval implements scheme.Term. sd is unused for dispatch (each inner term
// carries its own data) but is returned unchanged as sdOut, since a Sum has
// no single updated S of its own to report.
func (s *Sum) Eval(t float64, y *grid.Array, sd *scheme.Data) (ydot *grid.Array, stepBound float64, sdOut *scheme.Data, err error) {
	if len(s.Terms) != len(s.Datas) {
		return nil, 0, nil, errs.Contract("Sum", "Terms and Datas must have equal length, got %d and %d", len(s.Terms), len(s.Datas))
	}
	if len(s.Terms) == 0 {
		return nil, 0, nil, errs.Contract("Sum", "empty term list")
	}

	ydot = grid.NewArray(y.Shape)
	stepBound = math.Inf(1)
	for i, term := range s.Terms {
		yd, sb, _, e := term.Eval(t, y, s.Datas[i])
		if e != nil {
			return nil, 0, nil, e
		}
		if !yd.SameShape(ydot) {
			return nil, 0, nil, errs.Contract("Sum", "term %d returned shape %v, want %v", i, yd.Shape, ydot.Shape)
		}
		for k := range ydot.Data {
			ydot.Data[k] += yd.Data[k]
		}
		if sb < stepBound {
			stepBound = sb
		}
	}
	return ydot, stepBound, sd, nil
}
