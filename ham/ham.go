// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ham provides concrete Hamiltonians (H): the Hamiltonian contract
// itself is declared in scheme (to avoid an import cycle with lax, which
// every Dissipation implementation here delegates to); this package
// supplies the analytic test Hamiltonians used by the core's own test
// suite and DynSysAdapter, a general affine-dynamics-driven Hamiltonian
// for reachability-style problems.
package ham

import (
	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/lax"
	"github.com/cpmech/hjisolve/scheme"
)

// LFDissipation implements the Dissipation half of scheme.Hamiltonian by
// delegating to lax.ComputeDissipation with a fixed PartialHBound. Concrete
// Hamiltonians embed it and only need to implement Value, the same way
// gofem's diffusion elements embed a shared conductivity model instead of
// re-deriving the flux law each time.
type LFDissipation struct {
	Bound lax.PartialHBound
}

// Dissipation implements scheme.Hamiltonian.
func (d LFDissipation) Dissipation(t float64, data *grid.Array, derivL, derivR []*grid.Array, sd *scheme.Data) (diss *grid.Array, stepBound float64, err error) {
	diss, stepBound = lax.ComputeDissipation(sd.Grid, sd.DissType, derivL, derivR, d.Bound)
	return diss, stepBound, nil
}
