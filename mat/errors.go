// SPDX-License-Identifier: MIT

// Package mat: sentinel error set.
// All routines in this package return these sentinels (possibly wrapped
// with fmt.Errorf("ctx: %w", ...)) and never panic on user input; tests
// match them via errors.Is.
package mat

import "errors"

var (
	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("mat: nil matrix")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("mat: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between a
	// matrix and an expected shape (non-square, ragged rows, wrong length).
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("mat: NaN or Inf encountered")

	// ErrNegativeEntry signals a negative value in a matrix required to be
	// element-wise non-negative (probability storage).
	ErrNegativeEntry = errors.New("mat: negative entry")

	// ErrRowSum signals that a row of a stochastic matrix does not sum to 1
	// within the configured tolerance.
	ErrRowSum = errors.New("mat: row does not sum to 1")
)
