// SPDX-License-Identifier: MIT

// Package validate - primitive validators: scalar coercion against
// explicit bounds and allowed sets.
package validate

import "fmt"

// Resolution limits for figure-rendering consumers; DPI outside this
// window is either unreadable or unrenderable.
const (
	// MinDPI is the smallest accepted resolution.
	MinDPI = 25
	// MaxDPI is the conventional resolution ceiling.
	MaxDPI = 1000
)

// Boundary condition symbols understood by the walk simulators.
const (
	// BoundaryAbsorbing keeps the walk at the boundary state forever.
	BoundaryAbsorbing = "absorbing"
	// BoundaryReflecting bounces the walk back into the interior.
	BoundaryReflecting = "reflecting"
)

// boundarySymbols is the closed set of symbolic boundary conditions.
var boundarySymbols = []string{BoundaryAbsorbing, BoundaryReflecting}

// Boolean succeeds iff v is a Go bool and returns it unchanged. There is
// deliberately no coercion from integers or strings: a flag is a flag.
//
// Errors: ErrTypeMismatch. Complexity: O(1).
func Boolean(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, newError("Boolean", "boolean", v, ErrTypeMismatch)
	}
	return b, nil
}

// Integer succeeds iff v is numeric with an integral value (5.5 is
// rejected even though it is numeric) and satisfies the optional bounds;
// each side is independently inclusive or exclusive via Bound.Open.
// A nil bound is unbounded.
//
// Errors: ErrTypeMismatch (non-numeric or fractional), ErrRangeViolation
// (violated side named in the message). Complexity: O(1).
func Integer(v any, lower, upper *Bound) (int64, error) {
	n, ok := asInt(v)
	if !ok {
		return 0, newError("Integer", "integer", v, ErrTypeMismatch)
	}
	// Bounds live in the float64 domain; comparisons lose exactness beyond
	// ±2^53. The bounds in use here stay far below that.
	if err := checkBounds("Integer", float64(n), lower, upper, v); err != nil {
		return 0, err
	}
	return n, nil
}

// Float succeeds iff v is a finite numeric value satisfying the optional
// bounds. NaN and ±Inf are a type failure, not a range failure: they are
// not usable numbers under the package numeric policy.
//
// Errors: ErrTypeMismatch, ErrRangeViolation. Complexity: O(1).
func Float(v any, lower, upper *Bound) (float64, error) {
	f, ok := asFloat(v)
	if !ok {
		return 0, newError("Float", "finite float", v, ErrTypeMismatch)
	}
	if err := checkBounds("Float", f, lower, upper, v); err != nil {
		return 0, err
	}
	return f, nil
}

// Enumerator succeeds iff v is a string equal (exact, case-sensitive) to
// one of allowed, and returns the matched string.
//
// Errors: ErrTypeMismatch (non-string), ErrMembershipViolation (the
// contract lists the allowed set). Complexity: O(len(allowed)).
func Enumerator(v any, allowed []string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", newError("Enumerator", fmt.Sprintf("one of %v", allowed), v, ErrTypeMismatch)
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", newError("Enumerator", fmt.Sprintf("one of %v", allowed), v, ErrMembershipViolation)
}

// DPI validates a rendering resolution: an integer in [MinDPI, MaxDPI].
//
// Errors: ErrTypeMismatch, ErrRangeViolation. Complexity: O(1).
func DPI(v any) (int64, error) {
	n, err := Integer(v, Closed(MinDPI), Closed(MaxDPI))
	if err != nil {
		// Re-tag so the reporter names the specialized validator.
		if ve, ok := AsError(err); ok {
			ve.Validator = "DPI"
		}
		return 0, err
	}
	return n, nil
}

// BoundaryKind discriminates the two variants a boundary condition can
// canonicalize to; consumers must branch on it.
type BoundaryKind int

const (
	// BoundaryNumeric marks a probability-valued boundary condition.
	BoundaryNumeric BoundaryKind = iota
	// BoundarySymbolic marks a named boundary semantic.
	BoundarySymbolic
)

// BoundaryCondition is the tagged-union canonical result of Boundary:
// either a probability in [0, 1] or one of the named symbols. Exactly one
// accessor is meaningful; Kind tells which.
type BoundaryCondition struct {
	kind BoundaryKind
	num  float64
	sym  string
}

// Kind reports which variant was produced.
func (b BoundaryCondition) Kind() BoundaryKind { return b.kind }

// Float returns the numeric variant's probability; valid only when
// Kind() == BoundaryNumeric (zero otherwise).
func (b BoundaryCondition) Float() float64 { return b.num }

// Symbol returns the symbolic variant's name; valid only when
// Kind() == BoundarySymbolic (empty otherwise).
func (b BoundaryCondition) Symbol() string { return b.sym }

// String renders the active variant.
func (b BoundaryCondition) String() string {
	if b.kind == BoundarySymbolic {
		return b.sym
	}
	return fmt.Sprintf("%g", b.num)
}

// Boundary validates a boundary condition: a numeric value in [0, 1] or
// one of the symbols {absorbing, reflecting}. The result intentionally
// preserves the input's fundamental kind as a tagged union instead of
// collapsing both into one representation, because simulators branch on
// which variant was supplied.
//
// Errors: ErrTypeMismatch (neither numeric nor string),
// ErrRangeViolation (numeric outside [0, 1]), ErrMembershipViolation
// (unknown symbol). Complexity: O(1).
func Boundary(v any) (BoundaryCondition, error) {
	if f, ok := asFloat(v); ok {
		if f < 0 || f > 1 {
			return BoundaryCondition{}, newError("Boundary", "value in [0, 1]", v, ErrRangeViolation)
		}
		return BoundaryCondition{kind: BoundaryNumeric, num: f}, nil
	}
	if s, ok := v.(string); ok {
		for _, sym := range boundarySymbols {
			if s == sym {
				return BoundaryCondition{kind: BoundarySymbolic, sym: s}, nil
			}
		}
		return BoundaryCondition{}, newError("Boundary", fmt.Sprintf("one of %v", boundarySymbols), v, ErrMembershipViolation)
	}
	return BoundaryCondition{}, newError("Boundary", "number or boundary symbol", v, ErrTypeMismatch)
}
