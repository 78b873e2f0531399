// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ham

import (
	"math"

	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/scheme"
)

// Advection is H(x,t,p) = A . p, constant-velocity linear advection. The
// simplest possible test Hamiltonian: dH/dp_d = A[d] everywhere, so every
// dissipation variant degenerates to the same constant alpha (Scenario A).
type Advection struct {
	LFDissipation
	A []float64
}

// NewAdvection builds an Advection Hamiltonian with per-axis velocity a.
func NewAdvection(a []float64) *Advection {
	h := &Advection{A: append([]float64(nil), a...)}
	h.Bound = func(axis int, x []float64, pLo, pHi float64) float64 { return h.A[axis] }
	return h
}

// Value implements scheme.Hamiltonian.
func (h *Advection) Value(t float64, data *grid.Array, derivC []*grid.Array, sd *scheme.Data) (ham *grid.Array, sdOut *scheme.Data, err error) {
	ham = grid.NewArray(data.Shape)
	grid.ForEachCell(ham.Len(), func(i int) {
		s := 0.0
		for d, a := range h.A {
			s += a * derivC[d].Data[i]
		}
		ham.Data[i] = s
	})
	return ham, sd, nil
}

// Burgers is H(x,t,p) = p^2/2, the inviscid Burgers Hamiltonian in 1D.
// dH/dp = p, so the dissipation coefficient is the largest magnitude of the
// costate bound given to PartialHBound (Scenario B).
type Burgers struct {
	LFDissipation
}

// NewBurgers builds the 1D Burgers Hamiltonian.
func NewBurgers() *Burgers {
	h := &Burgers{}
	h.Bound = func(axis int, x []float64, pLo, pHi float64) float64 {
		return math.Max(math.Abs(pLo), math.Abs(pHi))
	}
	return h
}

// Value implements scheme.Hamiltonian.
func (h *Burgers) Value(t float64, data *grid.Array, derivC []*grid.Array, sd *scheme.Data) (ham *grid.Array, sdOut *scheme.Data, err error) {
	ham = grid.NewArray(data.Shape)
	p := derivC[0]
	grid.ForEachCell(ham.Len(), func(i int) {
		ham.Data[i] = 0.5 * p.Data[i] * p.Data[i]
	})
	return ham, sd, nil
}

// Rotation is H(x,t,p) = -x[1]*p[0] + x[0]*p[1], rigid rotation about the
// origin at unit angular velocity (Scenario C, a 2D test field whose level
// sets simply rotate and whose dH/dp depends on position, not p).
type Rotation struct {
	LFDissipation
}

// NewRotation builds the 2D rigid-rotation Hamiltonian.
func NewRotation() *Rotation {
	h := &Rotation{}
	h.Bound = func(axis int, x []float64, pLo, pHi float64) float64 {
		switch axis {
		case 0:
			return math.Abs(x[1])
		case 1:
			return math.Abs(x[0])
		}
		return 0
	}
	return h
}

// Value implements scheme.Hamiltonian.
func (h *Rotation) Value(t float64, data *grid.Array, derivC []*grid.Array, sd *scheme.Data) (ham *grid.Array, sdOut *scheme.Data, err error) {
	g := sd.Grid
	ham = grid.NewArray(data.Shape)
	px, py := derivC[0], derivC[1]
	grid.ForEachCell(ham.Len(), func(i int) {
		idx := grid.Unflatten(g.Shape, i)
		x, y := g.Vs[0][idx[0]], g.Vs[1][idx[1]]
		ham.Data[i] = -y*px.Data[i] + x*py.Data[i]
	})
	return ham, sd, nil
}
