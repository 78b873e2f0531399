// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"flag"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/hjisolve/deriv"
	"github.com/cpmech/hjisolve/grid"
	"github.com/cpmech/hjisolve/ham"
	"github.com/cpmech/hjisolve/lax"
	"github.com/cpmech/hjisolve/scheme"
)

// runConfig is the JSON-tagged run file this binary loads, the domain
// analog of gofem's .sim simulation file (inp.Data): a 1-D grid plus one
// of the analytic Hamiltonians in ham/analytic.go, run through scheme.Solve.
type runConfig struct {
	Grid        grid.GridSpec `json:"grid"`
	Accuracy    string        `json:"accuracy"` // low|medium|high|veryhigh
	DissType    string        `json:"dissType"` // global|local|locallocal
	Hamiltonian string        `json:"hamiltonian"`
	Advection   []float64     `json:"advection"` // only for hamiltonian=="advection"
	InitialSine struct {
		Amplitude float64 `json:"amplitude"`
		Frequency float64 `json:"frequency"`
	} `json:"initialSine"`
	Tau       []float64 `json:"tau"`
	FactorCFL float64   `json:"factorCFL"`
}

func parseAccuracy(s string) deriv.Accuracy {
	switch s {
	case "medium":
		return deriv.Medium
	case "high":
		return deriv.High
	case "veryhigh":
		return deriv.VeryHigh
	default:
		return deriv.Low
	}
}

func parseDissType(s string) scheme.DissType {
	switch s {
	case "local":
		return scheme.Local
	case "locallocal":
		return scheme.LocalLocal
	default:
		return scheme.Global
	}
}

func buildHamiltonian(cfg *runConfig) scheme.Hamiltonian {
	switch cfg.Hamiltonian {
	case "burgers":
		return ham.NewBurgers()
	case "rotation":
		return ham.NewRotation()
	default:
		a := cfg.Advection
		if len(a) == 0 {
			a = []float64{1}
		}
		return ham.NewAdvection(a)
	}
}

func buildInitialSine(g *grid.Grid, amplitude, frequency float64) *grid.Array {
	phi0 := grid.NewArray(g.Shape)
	for i, x := range g.Vs[0] {
		phi0.Data[i] = amplitude * math.Sin(frequency*x)
	}
	return phi0
}

func main() {
	defer utl.DoProf(false)()

	flag.Parse()
	if len(flag.Args()) == 0 {
		chk.Panic("please provide a run configuration file. Ex.: advection.hji")
	}
	fnamepath := flag.Arg(0)
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".hji"
	}

	io.Pf("\nhjisolve -- Hamilton-Jacobi-Isaacs solver core\n\n")

	buf, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("cannot read configuration file %q: %v", fnamepath, err)
	}
	var cfg runConfig
	if err := json.Unmarshal(buf, &cfg); err != nil {
		chk.Panic("cannot parse configuration file %q: %v", fnamepath, err)
	}

	g, err := grid.New(cfg.Grid)
	if err != nil {
		chk.Panic("invalid grid: %v", err)
	}

	sd := &scheme.Data{Grid: g, Accuracy: parseAccuracy(cfg.Accuracy), DissType: parseDissType(cfg.DissType), Ham: buildHamiltonian(&cfg)}
	leaf, err := lax.NewLeaf(sd)
	if err != nil {
		chk.Panic("cannot build the Lax-Friedrichs term: %v", err)
	}
	sd.Term = leaf

	amplitude := cfg.InitialSine.Amplitude
	if amplitude == 0 {
		amplitude = 1
	}
	frequency := cfg.InitialSine.Frequency
	if frequency == 0 {
		frequency = 1
	}
	phi0 := buildInitialSine(g, amplitude, frequency)

	factorCFL := cfg.FactorCFL
	if factorCFL == 0 {
		factorCFL = 0.8
	}

	history, tauOut, extra, err := scheme.Solve(phi0, cfg.Tau, sd, scheme.MethodSet, scheme.Options{FactorCFL: factorCFL})
	if err != nil {
		chk.Panic("solve failed: %v", err)
	}

	io.Pf("\ncompleted %d macro-step(s), %d sub-step(s) total\n", len(tauOut)-1, extra.Stats.Steps)
	for i, t := range tauOut {
		io.Pf("t=%23.10f : phi[0]=%23.10f\n", t, history[i].Data[0])
	}
}
