// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"math"

	"github.com/cpmech/hjisolve/grid"
)

// checkStop evaluates every enabled early-termination predicate,
// supplemented from hji_solver.py's guard conditions, and reports the first
// one that fires.
func checkStop(g *grid.Grid, phi, prev *grid.Array, o Options) (reason string, stop bool) {
	if len(o.StopInit) > 0 {
		idx := nearestCell(g, o.StopInit)
		if phi.At(idx) <= 0 {
			return "stopInit", true
		}
	}
	if o.StopSet != nil {
		for i := range phi.Data {
			if phi.Data[i] <= 0 && o.StopSet.Data[i] <= 0 {
				return "stopSet", true
			}
		}
	}
	if o.StopLevelEnabled {
		m := math.Inf(1)
		for _, v := range phi.Data {
			if v < m {
				m = v
			}
		}
		if m <= o.StopLevel {
			return "stopLevel", true
		}
	}
	if o.StopConverge {
		maxDiff := 0.0
		for i := range phi.Data {
			if o.IgnoreBoundary && onBoundaryShell(g, i) {
				continue
			}
			if d := math.Abs(phi.Data[i] - prev.Data[i]); d > maxDiff {
				maxDiff = d
			}
		}
		if maxDiff < o.ConvergeThreshold {
			return "stopConverge", true
		}
	}
	return "", false
}

// nearestCell rounds a physical coordinate to the nearest grid index per
// axis, clamped to the valid range.
func nearestCell(g *grid.Grid, x []float64) []int {
	idx := make([]int, g.Dim)
	for d := 0; d < g.Dim && d < len(x); d++ {
		k := int(math.Round((x[d] - g.Min[d]) / g.Dx[d]))
		if k < 0 {
			k = 0
		}
		if k > g.N[d]-1 {
			k = g.N[d] - 1
		}
		idx[d] = k
	}
	return idx
}

// onBoundaryShell reports whether flat index i lies on the outermost
// one-cell shell of the grid along any axis.
func onBoundaryShell(g *grid.Grid, i int) bool {
	idx := grid.Unflatten(g.Shape, i)
	for d, k := range idx {
		if k == 0 || k == g.N[d]-1 {
			return true
		}
	}
	return false
}

// historyStore accumulates (tau, phi) pairs under the memory policy
// selected by KeepLast/LowMemory ("array of slices, not a stacked
// tensor" guidance): default keeps every slice, LowMemory keeps the last
// two, KeepLast keeps only the most recent.
type historyStore struct {
	keepLast  bool
	lowMemory bool
	phis      []*grid.Array
	taus      []float64
}

func newHistoryStore(o Options) *historyStore {
	return &historyStore{keepLast: o.KeepLast, lowMemory: o.LowMemory}
}

func (h *historyStore) push(t float64, phi *grid.Array) {
	h.phis = append(h.phis, phi)
	h.taus = append(h.taus, t)
	switch {
	case h.keepLast:
		if len(h.phis) > 1 {
			h.phis = h.phis[len(h.phis)-1:]
			h.taus = h.taus[len(h.taus)-1:]
		}
	case h.lowMemory:
		if len(h.phis) > 2 {
			h.phis = h.phis[len(h.phis)-2:]
			h.taus = h.taus[len(h.taus)-2:]
		}
	}
}

func reverseArrays(a []*grid.Array) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

func reverseFloats(a []float64) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
