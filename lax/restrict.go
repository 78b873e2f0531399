// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lax

import (
	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/scheme"
)

// Restrict wraps an inner Term and masks its update so that one side of the
// zero level set never crosses into the other, the "freeze the target/
// obstacle region" pattern used by reachability recipes. Sign<0 preserves
// {phi<=0} from growing past zero (an update that would push phi positive
// is clamped to zero there); Sign>0 preserves {phi>=0} symmetrically.
type Restrict struct {
	Inner scheme.Term
	Sign  int
}

// Eval implements scheme.Term.
func (r *Restrict) Eval(t float64, y *grid.Array, sd *scheme.Data) (ydot *grid.Array, stepBound float64, sdOut *scheme.Data, err error) {
	inner, sb, sd2, e := r.Inner.Eval(t, y, sd)
	if e != nil {
		return nil, 0, nil, e
	}
	out := inner.Clone()
	for i, phi := range y.Data {
		if r.Sign < 0 {
			if phi <= 0 && out.Data[i] > 0 {
				out.Data[i] = 0
			}
		} else {
			if phi >= 0 && out.Data[i] < 0 {
				out.Data[i] = 0
			}
		}
	}
	return out, sb, sd2, nil
}
