// SPDX-License-Identifier: MIT

// Package validate - state reference resolution against a state universe.
//
// A universe is an ordered sequence of unique state names; the position
// of a name is its canonical integer identity. Validators borrow the
// universe read-only and never mutate or retain it.
package validate

import (
	"fmt"
	"strings"
)

// Universe checks that names is usable as a state universe: non-empty,
// every name non-blank, no duplicates (exact, case-sensitive comparison).
//
// Errors: ErrShapeMismatch (empty), ErrTypeMismatch (blank name),
// ErrDuplicateKey (repeated name). Complexity: O(n).
func Universe(names []string) error {
	if len(names) == 0 {
		return newError("Universe", "at least one state name", names, ErrShapeMismatch)
	}
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return newError("Universe", fmt.Sprintf("non-blank state name at [%d]", i), name, ErrTypeMismatch)
		}
		if _, dup := seen[name]; dup {
			return newError("Universe", fmt.Sprintf("unique state names ([%d] repeats)", i), name, ErrDuplicateKey)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// State resolves a single state reference to its canonical integer index
// within universe. A string must be an exact, case-sensitive member; an
// integer must lie in [0, len(universe)). Any other kind is rejected.
//
// Errors: ErrMembershipViolation (unknown state name), ErrRangeViolation
// (index out of range), ErrTypeMismatch. Complexity: O(n) for names,
// O(1) for indices.
func State(v any, universe []string) (int, error) {
	if s, ok := v.(string); ok {
		for i, name := range universe {
			if name == s {
				return i, nil
			}
		}
		return 0, newError("State", "known state name", v, ErrMembershipViolation)
	}
	if isIntKind(v) {
		idx, _ := asInt(v)
		if idx < 0 || idx >= int64(len(universe)) {
			return 0, newError("State", fmt.Sprintf("index in [0, %d)", len(universe)), v, ErrRangeViolation)
		}
		return int(idx), nil
	}
	return 0, newError("State", "state name or index", v, ErrTypeMismatch)
}

// States resolves a sequence of state references (strings and integer
// indices may be mixed) against universe. Resolution is atomic: the first
// invalid element aborts with its position attached as "<param>[i]" and
// no partial result is returned. An empty sequence is rejected unless
// allowEmpty.
//
// Accepted shapes: []string, []int, []any of mixed references.
//
// Errors: ErrTypeMismatch (non-sequence input or bad element),
// ErrShapeMismatch (empty when not allowed), plus whatever State reports
// per element. Complexity: O(len(v) · len(universe)).
func States(v any, universe []string, param string, allowEmpty bool) ([]int, error) {
	var elems []any
	switch x := v.(type) {
	case []string:
		elems = make([]any, len(x))
		for i, s := range x {
			elems[i] = s
		}
	case []int:
		elems = make([]any, len(x))
		for i, n := range x {
			elems[i] = n
		}
	case []any:
		elems = x
	default:
		return nil, Wrap(param, newError("States", "sequence of state references", v, ErrTypeMismatch))
	}
	if len(elems) == 0 {
		if allowEmpty {
			return []int{}, nil
		}
		return nil, Wrap(param, newError("States", "non-empty sequence of state references", v, ErrShapeMismatch))
	}
	out := make([]int, len(elems))
	for i, e := range elems {
		idx, err := State(e, universe)
		if err != nil {
			// Atomic failure: report the offending position, drop the rest.
			return nil, Wrap(fmt.Sprintf("%s[%d]", param, i), err)
		}
		out[i] = idx
	}
	return out, nil
}
