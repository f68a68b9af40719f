// SPDX-License-Identifier: MIT

// Package validate - structured validators: compound inputs built from
// primitives (keyed mappings, intervals, hyperparameter vectors).
package validate

import (
	"fmt"
	"strings"
)

// DictKey is a mapping key: one or more scalar components. A single
// component is a plain scalar key; several components form a tuple key
// (all keys of one mapping must share the same arity).
type DictKey []any

// DictEntry is one key→value pair of a caller-supplied mapping. Entries
// are ordered so validation failures are reported deterministically.
type DictEntry struct {
	Key   DictKey
	Value any
}

// fingerprint renders a key component-wise with its dynamic type, so
// "1" (string) and 1 (int) never collide in the uniqueness check.
func (k DictKey) fingerprint() string {
	parts := make([]string, len(k))
	for i, c := range k {
		parts[i] = fmt.Sprintf("%T=%v", c, c)
	}
	return strings.Join(parts, "|")
}

// isScalar accepts the key component kinds a mapping may be indexed by.
func isScalar(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	if _, ok := v.(bool); ok {
		return true
	}
	_, ok := asFloat(v)
	return ok
}

// Dictionary validates a caller-supplied mapping: non-empty, every key
// component a scalar, uniform key arity across all entries, and pairwise
// unique keys. The entries come back unchanged, asserted well-formed.
//
// Errors: ErrShapeMismatch (empty input, zero-arity key, mixed arity),
// ErrTypeMismatch (non-scalar key component), ErrDuplicateKey.
// Complexity: O(n·k) for n entries of arity k.
func Dictionary(entries []DictEntry) ([]DictEntry, error) {
	if len(entries) == 0 {
		return nil, newError("Dictionary", "non-empty mapping", entries, ErrShapeMismatch)
	}
	arity := len(entries[0].Key)
	if arity == 0 {
		return nil, newError("Dictionary", "key with at least one component", entries[0].Key, ErrShapeMismatch)
	}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if len(e.Key) != arity {
			return nil, newError("Dictionary",
				fmt.Sprintf("uniform key arity %d (entry %d has %d)", arity, i, len(e.Key)),
				e.Key, ErrShapeMismatch)
		}
		for _, c := range e.Key {
			if !isScalar(c) {
				return nil, newError("Dictionary", "scalar key components", c, ErrTypeMismatch)
			}
		}
		fp := e.Key.fingerprint()
		if _, dup := seen[fp]; dup {
			return nil, newError("Dictionary", fmt.Sprintf("unique keys (entry %d repeats)", i), e.Key, ErrDuplicateKey)
		}
		seen[fp] = struct{}{}
	}
	return entries, nil
}

// Interval validates a closed interval supplied as a 2-element ordered
// pair of numbers (any numeric kinds, homogeneous or mixed) and returns
// the canonical (lower, upper) float pair with lower < upper strictly.
//
// Accepted shapes: []float64, []int, []any of numerics, [2]float64.
//
// Errors: ErrTypeMismatch (not a pair of numbers), ErrShapeMismatch
// (wrong arity), ErrStructuralViolation (not strictly increasing).
// Complexity: O(1).
func Interval(v any) (lower, upper float64, err error) {
	var elems []any
	switch x := v.(type) {
	case []float64:
		elems = make([]any, len(x))
		for i, f := range x {
			elems[i] = f
		}
	case []int:
		elems = make([]any, len(x))
		for i, n := range x {
			elems[i] = n
		}
	case [2]float64:
		elems = []any{x[0], x[1]}
	case []any:
		elems = x
	default:
		return 0, 0, newError("Interval", "ordered pair of numbers", v, ErrTypeMismatch)
	}
	if len(elems) != 2 {
		return 0, 0, newError("Interval", "exactly 2 elements", v, ErrShapeMismatch)
	}
	lo, ok := asFloat(elems[0])
	if !ok {
		return 0, 0, newError("Interval", "finite numeric lower endpoint", elems[0], ErrTypeMismatch)
	}
	hi, ok := asFloat(elems[1])
	if !ok {
		return 0, 0, newError("Interval", "finite numeric upper endpoint", elems[1], ErrTypeMismatch)
	}
	if lo >= hi {
		return 0, 0, newError("Interval", "lower < upper strictly", v, ErrStructuralViolation)
	}
	return lo, hi, nil
}

// Hyperparameter validates a Dirichlet-style concentration vector: length
// exactly size, every element a finite non-negative number, and at least
// one element strictly positive (the all-zero vector parameterizes
// nothing and is rejected). Returns a fresh []float64 copy.
//
// Errors: ErrTypeMismatch (non-vector input or non-numeric element),
// ErrShapeMismatch (length), ErrRangeViolation (negative element),
// ErrStructuralViolation (all-zero). Complexity: O(size).
func Hyperparameter(v any, size int) ([]float64, error) {
	var elems []any
	switch x := v.(type) {
	case []float64:
		elems = make([]any, len(x))
		for i, f := range x {
			elems[i] = f
		}
	case []int:
		elems = make([]any, len(x))
		for i, n := range x {
			elems[i] = n
		}
	case []any:
		elems = x
	default:
		return nil, newError("Hyperparameter", "numeric vector", v, ErrTypeMismatch)
	}
	if len(elems) != size {
		return nil, newError("Hyperparameter", fmt.Sprintf("vector of length %d", size), v, ErrShapeMismatch)
	}
	out := make([]float64, size)
	allZero := true
	for i, e := range elems {
		f, ok := asFloat(e)
		if !ok {
			return nil, newError("Hyperparameter", fmt.Sprintf("finite number at [%d]", i), e, ErrTypeMismatch)
		}
		if f < 0 {
			return nil, newError("Hyperparameter", fmt.Sprintf("non-negative value at [%d]", i), e, ErrRangeViolation)
		}
		if f > 0 {
			allZero = false
		}
		out[i] = f
	}
	if allZero {
		return nil, newError("Hyperparameter", "at least one strictly positive element", v, ErrStructuralViolation)
	}
	return out, nil
}
