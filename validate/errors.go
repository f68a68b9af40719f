// SPDX-License-Identifier: MIT

// Package validate: taxonomy sentinels.
// Every failure produced by this package wraps exactly one of these
// sentinels; tests and callers match them via errors.Is. The taxonomy is
// closed - validators never invent ad-hoc error kinds.
package validate

import "errors"

var (
	// ErrTypeMismatch indicates input of the wrong fundamental kind
	// (a string where a number is required, a nil callback, ...).
	ErrTypeMismatch = errors.New("validate: type mismatch")

	// ErrRangeViolation indicates a numeric bound was broken; the message
	// of the carrying *Error names the violated bound and its direction.
	ErrRangeViolation = errors.New("validate: range violation")

	// ErrShapeMismatch indicates a size/arity/length disagreement against
	// an expected count (vector length vs state count, pair arity, ...).
	ErrShapeMismatch = errors.New("validate: shape mismatch")

	// ErrMembershipViolation indicates a value outside an allowed or known
	// set (unknown enumerator, unknown state name).
	ErrMembershipViolation = errors.New("validate: membership violation")

	// ErrStructuralViolation indicates a cross-field invariant failure on
	// a compound object (row sum, interval ordering, graph/universe
	// disagreement, misbehaving transition callback).
	ErrStructuralViolation = errors.New("validate: structural violation")

	// ErrDuplicateKey indicates broken uniqueness in a structured mapping.
	ErrDuplicateKey = errors.New("validate: duplicate key")
)
