// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/hjisolve/errs"

// BoundaryFunc pads a 1-D line with width ghost cells on each end. data is
// the bundle registered for this axis (e.g. the Dirichlet value); it may
// be nil. The returned slice has length len(line)+2*width and leaves the
// interior (slice[width:width+len(line)]) identical to line.
type BoundaryFunc func(line []float64, width int, data interface{}) []float64

// boundaryFactory holds all registered boundary-condition operators,
// keyed by the tag used in GridSpec.Bdry.
var boundaryFactory = make(map[string]BoundaryFunc)

// RegisterBoundary installs a new boundary-condition operator under tag.
// Panics if tag is already registered, matching ele.SetAllocator.
func RegisterBoundary(tag string, fn BoundaryFunc) {
	if _, ok := boundaryFactory[tag]; ok {
		panic("grid: boundary operator already registered: " + tag)
	}
	boundaryFactory[tag] = fn
}

// GetBoundary looks up a registered boundary-condition operator.
func GetBoundary(tag string) (BoundaryFunc, error) {
	fn, ok := boundaryFactory[tag]
	if !ok {
		return nil, errs.Spec("bdry", "unknown boundary operator %q", tag)
	}
	return fn, nil
}

const (
	Periodic    = "periodic"
	Extrapolate = "extrapolate"
	Dirichlet   = "dirichlet"
	Neumann     = "neumann"
)

func init() {
	RegisterBoundary(Periodic, padPeriodic)
	RegisterBoundary(Extrapolate, padExtrapolate)
	RegisterBoundary(Dirichlet, padDirichlet)
	RegisterBoundary(Neumann, padNeumann)
}

// padPeriodic wraps: ghost[-k] = interior[N-k], ghost[N-1+k] = interior[k-1].
func padPeriodic(line []float64, width int, _ interface{}) []float64 {
	n := len(line)
	out := make([]float64, n+2*width)
	copy(out[width:width+n], line)
	for k := 1; k <= width; k++ {
		out[width-k] = line[(n-k%n)%n]
		out[width+n-1+k] = line[(k-1)%n]
	}
	return out
}

// padExtrapolate linearly extrapolates from the two nearest interior
// entries: ghost[-k] = interior[0] + k*(interior[0]-interior[1]), symmetric
// at the high side.
func padExtrapolate(line []float64, width int, _ interface{}) []float64 {
	n := len(line)
	out := make([]float64, n+2*width)
	copy(out[width:width+n], line)
	slopeLo := line[0] - line[minInt(1, n-1)]
	slopeHi := line[n-1] - line[n-1-minInt(1, n-1)]
	for k := 1; k <= width; k++ {
		out[width-k] = line[0] + float64(k)*slopeLo
		out[width+n-1+k] = line[n-1] + float64(k)*slopeHi
	}
	return out
}

// padDirichlet fills all ghosts with a constant value. data must be a
// float64 (the Dirichlet value); it defaults to 0 if nil or of the wrong
// type.
func padDirichlet(line []float64, width int, data interface{}) []float64 {
	n := len(line)
	out := make([]float64, n+2*width)
	copy(out[width:width+n], line)
	v, _ := data.(float64)
	for k := 0; k < width; k++ {
		out[k] = v
		out[width+n+k] = v
	}
	return out
}

// padNeumann copies the boundary interior value (zero-slope ghost cells).
func padNeumann(line []float64, width int, _ interface{}) []float64 {
	n := len(line)
	out := make([]float64, n+2*width)
	copy(out[width:width+n], line)
	for k := 1; k <= width; k++ {
		out[width-k] = line[0]
		out[width+n-1+k] = line[n-1]
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
