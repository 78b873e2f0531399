// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import "github.com/cpmech/hjisolve/grid"

// applyCompMethod implements the post-step combinator dispatch.
// MethodZero/MethodMinWithZero are a no-op at this layer: the max-with-0
// effect is realized upstream via lax.Restrict composed into sd.Term, not
// here (a driver that wants that compMethod must also compose its Term
// with a Restrict instead).
func applyCompMethod(m CompMethod, phi, prev, phi0 *grid.Array, target TimeField, t float64) *grid.Array {
	switch m {
	case MethodMinVOverTime:
		return elementwiseMin(phi, prev)
	case MethodMaxVOverTime:
		return elementwiseMax(phi, prev)
	case MethodMinVWithV0:
		return elementwiseMin(phi, phi0)
	case MethodMaxVWithV0:
		return elementwiseMax(phi, phi0)
	case MethodMinVWithL:
		if target == nil {
			return phi
		}
		return elementwiseMin(phi, target(t))
	case MethodMaxVWithL:
		if target == nil {
			return phi
		}
		return elementwiseMax(phi, target(t))
	default: // MethodSet, MethodNone, MethodZero, MethodMinWithZero
		return phi
	}
}

func elementwiseMin(a, b *grid.Array) *grid.Array {
	out := grid.NewArray(a.Shape)
	for i := range out.Data {
		if a.Data[i] < b.Data[i] {
			out.Data[i] = a.Data[i]
		} else {
			out.Data[i] = b.Data[i]
		}
	}
	return out
}

func elementwiseMax(a, b *grid.Array) *grid.Array {
	out := grid.NewArray(a.Shape)
	for i := range out.Data {
		if a.Data[i] > b.Data[i] {
			out.Data[i] = a.Data[i]
		} else {
			out.Data[i] = b.Data[i]
		}
	}
	return out
}

// applyDiscount shrinks phi toward phi0 in place by the Jaime or Kene
// formula: the core applies one fixed discount
// step per call and leaves annealing across calls to the driver.
func applyDiscount(phi, phi0 *grid.Array, factor float64, mode DiscountMode) {
	for i := range phi.Data {
		if mode == DiscountKene {
			phi.Data[i] = factor*phi.Data[i] + (1-factor)*phi0.Data[i]
		} else {
			phi.Data[i] = phi0.Data[i] + factor*(phi.Data[i]-phi0.Data[i])
		}
	}
}
