// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs implements the error taxonomy shared by the grid, deriv,
// ham, lax, integrate and scheme packages. Message formatting is handed to
// gosl/chk so that the wording and %v-vs-%q conventions match the rest of
// the stack; only the typed Kind/TNow/CellIdx/LastGood envelope on top is
// this module's own.
package errs

import (
	"github.com/cpmech/gosl/chk"
)

// Kind classifies a core error per the error-handling design: Specification
// and Contract errors are always fatal, Numerical errors are fatal but carry
// enough state for the driver to checkpoint, and Cancellation is not an
// error but a cooperative abort signal.
type Kind int

const (
	Specification Kind = iota
	Numerical
	Contract
	Cancellation
)

func (k Kind) String() string {
	switch k {
	case Specification:
		return "SpecificationError"
	case Numerical:
		return "NumericalError"
	case Contract:
		return "ContractError"
	case Cancellation:
		return "Cancellation"
	}
	return "UnknownError"
}

// Error is the concrete error type returned by every package in this
// module. Field is the offending field/argument name (Specification,
// Contract) or empty (Numerical, Cancellation).
type Error struct {
	Kind  Kind
	Field string
	Msg   string

	// Numerical-only context: the solver surfaces enough state for the
	// driver to checkpoint on a NumericalError.
	TNow     float64
	CellIdx  []int
	HasCell  bool
	LastGood interface{} // *grid.Array, kept as interface{} to avoid an import cycle
}

func (e *Error) Error() string {
	if e.Field != "" {
		return chk.Err("%s: %s (field=%q)", e.Kind, e.Msg, e.Field).Error()
	}
	return chk.Err("%s: %s", e.Kind, e.Msg).Error()
}

// Spec builds a SpecificationError.
func Spec(field, format string, args ...interface{}) error {
	return &Error{Kind: Specification, Field: field, Msg: chk.Err(format, args...).Error()}
}

// Contract builds a ContractError.
func Contract(field, format string, args ...interface{}) error {
	return &Error{Kind: Contract, Field: field, Msg: chk.Err(format, args...).Error()}
}

// Numerical builds a NumericalError carrying t_now and the failing cell
// index so the driver can checkpoint the last successful slice.
func Numerical(tNow float64, cellIdx []int, format string, args ...interface{}) error {
	e := &Error{Kind: Numerical, Msg: chk.Err(format, args...).Error(), TNow: tNow}
	if cellIdx != nil {
		e.CellIdx = cellIdx
		e.HasCell = true
	}
	return e
}

// Must panics via chk.Panic when err is a programmer-error condition that
// the caller has already guaranteed cannot happen in correct use (e.g. an
// unregistered factory key reached after validation). Not used for any
// condition reachable from caller-supplied data.
func Must(err error) {
	if err != nil {
		chk.Panic("%v", err)
	}
}

// Cancelled builds the Cancellation pseudo-error returned when a driver's
// cancellation check aborts the loop between macro-steps.
func Cancelled() error {
	return &Error{Kind: Cancellation, Msg: "solve cancelled between macro-steps"}
}

// Is reports whether err is a core Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
