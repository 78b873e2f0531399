// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ham

import (
	"math"
	"testing"

	"github.com/cpmech/hjisolve/deriv"
	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/scheme"
)

func Test_advection_valueAndDissipation(tst *testing.T) {
	g, err := grid.New(grid.GridSpec{Dim: 1, Min: []float64{0}, Max: []float64{10}, N: []int{21}, Bdry: []string{grid.Extrapolate}})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	h := NewAdvection([]float64{2.0})
	sd := &scheme.Data{Grid: g, Accuracy: deriv.Low, DissType: scheme.Global, Ham: h}

	p := grid.NewArray(g.Shape)
	for i := range p.Data {
		p.Data[i] = 3.0
	}
	data := grid.NewArray(g.Shape)
	hamArr, _, err := h.Value(0, data, []*grid.Array{p}, sd)
	if err != nil {
		tst.Fatalf("Value failed: %v", err)
	}
	for _, v := range hamArr.Data {
		if math.Abs(v-6.0) > 1e-12 {
			tst.Errorf("Value = %v, want 6.0 (2*3)", v)
		}
	}

	derivL := grid.NewArray(g.Shape)
	derivR := grid.NewArray(g.Shape)
	diss, stepBound, err := h.Dissipation(0, data, []*grid.Array{derivL}, []*grid.Array{derivR}, sd)
	if err != nil {
		tst.Fatalf("Dissipation failed: %v", err)
	}
	for _, v := range diss.Data {
		if v != 0 {
			tst.Errorf("diss = %v, want 0 (derivL==derivR)", v)
		}
	}
	wantBound := g.Dx[0] / 2.0
	if math.Abs(stepBound-wantBound) > 1e-12 {
		tst.Errorf("stepBound = %v, want %v", stepBound, wantBound)
	}
}

func Test_burgers_valueIsHalfPSquared(tst *testing.T) {
	g, _ := grid.New(grid.GridSpec{Dim: 1, Min: []float64{-1}, Max: []float64{1}, N: []int{11}, Bdry: []string{grid.Extrapolate}})
	h := NewBurgers()
	sd := &scheme.Data{Grid: g, Accuracy: deriv.Low, DissType: scheme.LocalLocal, Ham: h}
	p := grid.NewArray(g.Shape)
	for i := range p.Data {
		p.Data[i] = 4.0
	}
	data := grid.NewArray(g.Shape)
	hamArr, _, err := h.Value(0, data, []*grid.Array{p}, sd)
	if err != nil {
		tst.Fatalf("Value failed: %v", err)
	}
	for _, v := range hamArr.Data {
		if math.Abs(v-8.0) > 1e-12 {
			tst.Errorf("Value = %v, want 8.0 (0.5*4^2)", v)
		}
	}
}

func Test_rotation_valueMatchesCrossProduct(tst *testing.T) {
	g, _ := grid.New(grid.GridSpec{Dim: 2, Min: []float64{-1, -1}, Max: []float64{1, 1}, N: []int{5, 5}, Bdry: []string{grid.Extrapolate, grid.Extrapolate}})
	h := NewRotation()
	sd := &scheme.Data{Grid: g, Accuracy: deriv.Low, DissType: scheme.Global, Ham: h}
	px := grid.NewArray(g.Shape)
	py := grid.NewArray(g.Shape)
	for i := range px.Data {
		px.Data[i] = 1.0
		py.Data[i] = 0.0
	}
	data := grid.NewArray(g.Shape)
	hamArr, _, err := h.Value(0, data, []*grid.Array{px, py}, sd)
	if err != nil {
		tst.Fatalf("Value failed: %v", err)
	}
	idx := []int{0, 0}
	x, y := g.Vs[0][idx[0]], g.Vs[1][idx[1]]
	want := -y*1.0 + x*0.0
	got := hamArr.At(idx)
	if math.Abs(got-want) > 1e-12 {
		tst.Errorf("Value at corner = %v, want %v", got, want)
	}
}

func Test_dynSysAdapter_bangBangPursuit(tst *testing.T) {
	// xdot = u + d, u in [-1,1] drives toward the origin (minimiser), d in
	// [-0.2,0.2] is an adversarial disturbance (maximiser): standard
	// pursuit-style reach-avoid dynamics in 1D.
	dyn := AffineDynamics{
		Drift: func(t float64, x []float64) []float64 { return []float64{0} },
		GU:    func(t float64, x []float64) [][]float64 { return [][]float64{{1}} },
		GD:    func(t float64, x []float64) [][]float64 { return [][]float64{{1}} },
	}
	h, err := NewDynSysAdapter(dyn, Box{Lo: []float64{-1}, Hi: []float64{1}}, Box{Lo: []float64{-0.2}, Hi: []float64{0.2}}, true, false)
	if err != nil {
		tst.Fatalf("NewDynSysAdapter failed: %v", err)
	}

	g, _ := grid.New(grid.GridSpec{Dim: 1, Min: []float64{-1}, Max: []float64{1}, N: []int{11}, Bdry: []string{grid.Extrapolate}})
	sd := &scheme.Data{Grid: g, Accuracy: deriv.Low, DissType: scheme.Global, Ham: h}
	p := grid.NewArray(g.Shape)
	for i := range p.Data {
		p.Data[i] = 1.0 // positive costate: minimiser picks u=-1, maximiser picks d=+0.2
	}
	data := grid.NewArray(g.Shape)
	hamArr, sdOut, err := h.Value(0, data, []*grid.Array{p}, sd)
	if err != nil {
		tst.Fatalf("Value failed: %v", err)
	}
	want := 1.0*(-1.0) + 1.0*0.2 // p.(u*+d*)
	for _, v := range hamArr.Data {
		if math.Abs(v-want) > 1e-12 {
			tst.Errorf("Value = %v, want %v", v, want)
		}
	}
	if sdOut.Aux == nil {
		tst.Fatalf("expected Aux to carry the optimal-control trace")
	}

	_, stepBound, err := h.Dissipation(0, data, []*grid.Array{p}, []*grid.Array{p}, sdOut)
	if err != nil {
		tst.Fatalf("Dissipation failed: %v", err)
	}
	wantAlpha := 1.0 + 0.2 // |GU|*max(|lo|,|hi|) + |GD|*max(|lo|,|hi|)
	wantBound := g.Dx[0] / wantAlpha
	if math.Abs(stepBound-wantBound) > 1e-9 {
		tst.Errorf("stepBound = %v, want %v", stepBound, wantBound)
	}
}
