// SPDX-License-Identifier: MIT

// Package validate - the error reporter: the single chokepoint through
// which every validation failure becomes caller-visible.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// snapshotLimit bounds the stringified rendering of an offending value so
// a pathological input cannot blow up error messages or logs.
const snapshotLimit = 128

// Error is the single structured error shape produced by this package.
// It carries the failing parameter name, the expected contract, a bounded
// string snapshot of the offending value and the originating validator,
// and wraps exactly one taxonomy sentinel (errors.go) via Unwrap.
//
// Error values are created fresh at the point of failure, never retried
// and never persisted.
type Error struct {
	// Param is the caller-facing name of the failing parameter
	// ("p", "states[2]", "initial"). May be empty until the call
	// boundary attaches it via Wrap.
	Param string

	// Contract is the human-readable expected contract
	// ("float in [0, 1]", "one of [heatmap projection]").
	Contract string

	// Received is the bounded string rendering of the offending input.
	Received string

	// Validator names the validator that detected the failure.
	Validator string

	// Err is the taxonomy sentinel (ErrTypeMismatch, ErrRangeViolation, ...).
	Err error
}

// Error renders the failure on one line; the sentinel text comes last so
// the taxonomy stays grep-able.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Validator)
	if e.Param != "" {
		fmt.Fprintf(&b, ": parameter %q", e.Param)
	}
	fmt.Fprintf(&b, ": expected %s", e.Contract)
	if e.Received != "" {
		fmt.Fprintf(&b, ", received %s", e.Received)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

// Unwrap exposes the taxonomy sentinel for errors.Is matching.
func (e *Error) Unwrap() error { return e.Err }

// newError is the construction chokepoint used by every validator in the
// package: it snapshots the offending value and binds the sentinel.
func newError(validator, contract string, received any, sentinel error) *Error {
	return &Error{
		Contract:  contract,
		Received:  snapshot(received),
		Validator: validator,
		Err:       sentinel,
	}
}

// Wrap attaches the caller-facing parameter name to a validation failure.
// Public entry points of the surrounding library funnel every validator
// error through this function, so consumers only ever need to handle
// *Error regardless of which validator failed.
//
// A nil err passes through; an existing *Error gets its Param filled (an
// already-set Param is preserved - the innermost name is the precise one);
// any other error is adopted into the *Error shape with its text as the
// contract-violation description.
func Wrap(param string, err error) error {
	if err == nil {
		return nil
	}
	var ve *Error
	if errors.As(err, &ve) {
		if ve.Param == "" {
			ve.Param = param
		}
		return ve
	}
	return &Error{
		Param:     param,
		Contract:  "valid value",
		Received:  "",
		Validator: "Wrap",
		Err:       err,
	}
}

// AsError extracts the structured *Error from an error chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// snapshot renders v with %v, truncated to snapshotLimit runes.
func snapshot(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= snapshotLimit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= snapshotLimit {
		return s
	}
	return string(runes[:snapshotLimit]) + "..."
}
