// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ham

import (
	"math"

	"github.com/cpmech/hjisolve/errs"
	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/scheme"
)

// AffineDynamics describes xdot = Drift(t,x) + GU(t,x)*u + GD(t,x)*d, the
// control-affine form used throughout the reachability literature: Drift is
// the dim-vector drift, GU and GD are dim x nu and dim x nd matrices
// (row-major, one row per state axis) giving each control's and
// disturbance's linear effect on the state. DynSysAdapter's dissipation
// bound only samples these at t=0, so time-varying dynamics are supported
// by Value but the CFL bound they get is the one in force at t=0. Pass
// time-invariant Drift/GU/GD unless the system's magnitude is known not to
// grow with t.
type AffineDynamics struct {
	Drift func(t float64, x []float64) []float64
	GU    func(t float64, x []float64) [][]float64
	GD    func(t float64, x []float64) [][]float64
}

// Box is a hyper-rectangular bound on a control or disturbance vector.
type Box struct {
	Lo, Hi []float64
}

// DynSysAdapter turns an AffineDynamics system plus control/disturbance
// bounds into a Hamiltonian via pointwise bang-bang optimisation, the
// standard reachability construction H(x,t,p) = ext_u ext_d p.f(x,t,u,d):
// because f is affine in u and d, each component's optimal value sits at
// one of its box's two extremes, found in closed form from the sign of
// p's projection onto that component's effect column; no numerical
// optimiser is needed. MinU/MinD select which player (minimiser or
// maximiser) controls u/d, matching the two-player zero-sum HJI convention
// (e.g. pursuit-evasion: the pursuer's control MinD=false chases, the
// evader's disturbance MinU=true flees).
type DynSysAdapter struct {
	LFDissipation
	Dyn  AffineDynamics
	U, D Box
	MinU bool
	MinD bool
}

// NewDynSysAdapter validates the control/disturbance box shapes and returns
// a ready-to-use adapter. The dissipation bound is the standard affine
// reachability estimate: dH/dp_axis <= |Drift_axis| + sum_j |GU[axis][j]| *
// max(|Lo_j|,|Hi_j|) + sum_k |GD[axis][k]| * max(|Lo_k|,|Hi_k|), which only
// needs GU/GD's magnitudes, not the sign choice made by Value.
func NewDynSysAdapter(dyn AffineDynamics, u, d Box, minU, minD bool) (*DynSysAdapter, error) {
	if len(u.Lo) != len(u.Hi) {
		return nil, errs.Contract("U", "Lo/Hi length mismatch: %d vs %d", len(u.Lo), len(u.Hi))
	}
	if len(d.Lo) != len(d.Hi) {
		return nil, errs.Contract("D", "Lo/Hi length mismatch: %d vs %d", len(d.Lo), len(d.Hi))
	}
	h := &DynSysAdapter{Dyn: dyn, U: u, D: d, MinU: minU, MinD: minD}
	h.Bound = h.partialBound
	return h, nil
}

// extremize picks the box bound that minimises (minimise=true) or maximises
// (minimise=false) coef*value for a scalar decision variable confined to
// [lo,hi]: lo if (coef>=0) == minimise, else hi. Ties (coef==0) resolve to
// lo when minimising and to hi when maximising.
func extremize(coef, lo, hi float64, minimise bool) float64 {
	if (coef >= 0) == minimise {
		return lo
	}
	return hi
}

// optimalControl returns the control/disturbance vector extremising
// p . (G * vec) over the box, component by component (valid because the
// objective is separable and affine in each component).
func optimalControl(p []float64, g [][]float64, box Box, minimise bool) []float64 {
	nu := len(box.Lo)
	out := make([]float64, nu)
	for j := 0; j < nu; j++ {
		coef := 0.0
		for axis := range p {
			coef += p[axis] * g[axis][j]
		}
		out[j] = extremize(coef, box.Lo[j], box.Hi[j], minimise)
	}
	return out
}

func matVec(g [][]float64, v []float64, dim int) []float64 {
	out := make([]float64, dim)
	for axis := 0; axis < dim; axis++ {
		s := 0.0
		for j, vj := range v {
			s += g[axis][j] * vj
		}
		out[axis] = s
	}
	return out
}

// Value implements scheme.Hamiltonian. It also returns, as sdOut, a copy of
// sd whose Aux holds the optimal (u,d) pair that attains H at every grid
// node, indexed by flat cell index (sd itself is left unchanged), so a
// caller inspecting Data.Aux after Solve can recover
// the extremal policy without re-solving the optimisation.
func (h *DynSysAdapter) Value(t float64, data *grid.Array, derivC []*grid.Array, sd *scheme.Data) (ham *grid.Array, sdOut *scheme.Data, err error) {
	g := sd.Grid
	dim := g.Dim
	ham = grid.NewArray(data.Shape)
	optimal := make([][2][]float64, ham.Len())

	var evalErr error
	grid.ForEachCell(ham.Len(), func(i int) {
		idx := grid.Unflatten(g.Shape, i)
		x := make([]float64, dim)
		for d := 0; d < dim; d++ {
			x[d] = g.Vs[d][idx[d]]
		}
		p := make([]float64, dim)
		for d := 0; d < dim; d++ {
			p[d] = derivC[d].Data[i]
		}

		drift := h.Dyn.Drift(t, x)
		if len(drift) != dim {
			evalErr = errs.Contract("Drift", "returned length %d, want %d", len(drift), dim)
			return
		}
		hval := 0.0
		for d := 0; d < dim; d++ {
			hval += p[d] * drift[d]
		}

		var uStar, dStar []float64
		if len(h.U.Lo) > 0 {
			gu := h.Dyn.GU(t, x)
			uStar = optimalControl(p, gu, h.U, h.MinU)
			effect := matVec(gu, uStar, dim)
			for d := 0; d < dim; d++ {
				hval += p[d] * effect[d]
			}
		}
		if len(h.D.Lo) > 0 {
			gd := h.Dyn.GD(t, x)
			dStar = optimalControl(p, gd, h.D, h.MinD)
			effect := matVec(gd, dStar, dim)
			for d := 0; d < dim; d++ {
				hval += p[d] * effect[d]
			}
		}

		ham.Data[i] = hval
		optimal[i] = [2][]float64{uStar, dStar}
	})
	if evalErr != nil {
		return nil, nil, evalErr
	}

	sdOut = &scheme.Data{Grid: sd.Grid, Accuracy: sd.Accuracy, DissType: sd.DissType, Ham: sd.Ham, Term: sd.Term, Aux: optimal}
	return ham, sdOut, nil
}

// partialBound is the PartialHBound used by LFDissipation.
func (h *DynSysAdapter) partialBound(axis int, x []float64, pLo, pHi float64) float64 {
	const t0 = 0.0
	alpha := math.Abs(h.Dyn.Drift(t0, x)[axis])
	if len(h.U.Lo) > 0 {
		gu := h.Dyn.GU(t0, x)
		for j := range h.U.Lo {
			alpha += math.Abs(gu[axis][j]) * math.Max(math.Abs(h.U.Lo[j]), math.Abs(h.U.Hi[j]))
		}
	}
	if len(h.D.Lo) > 0 {
		gd := h.Dyn.GD(t0, x)
		for k := range h.D.Lo {
			alpha += math.Abs(gd[axis][k]) * math.Max(math.Abs(h.D.Lo[k]), math.Abs(h.D.Hi[k]))
		}
	}
	return alpha
}
