// SPDX-License-Identifier: MIT

// Package chain - StateUniverse: ordered unique state names.
package chain

import "github.com/katalvlaran/dtmc/validate"

// StateUniverse is an ordered sequence of unique, non-blank state names.
// The position of a name is its canonical integer identity; validators
// borrow a universe read-only to resolve state references.
type StateUniverse []string

// NewStateUniverse validates names and returns them as a fresh universe.
// The input slice is copied, never retained.
//
// Errors: the validate taxonomy via validate.Universe. Complexity: O(n).
func NewStateUniverse(names []string) (StateUniverse, error) {
	if err := validate.Universe(names); err != nil {
		return nil, validate.Wrap("states", err)
	}
	u := make(StateUniverse, len(names))
	copy(u, names)
	return u, nil
}

// Len returns the number of states. Complexity: O(1).
func (u StateUniverse) Len() int { return len(u) }

// Name returns the state name at canonical index i.
// Errors: validate.ErrRangeViolation. Complexity: O(1).
func (u StateUniverse) Name(i int) (string, error) {
	idx, err := validate.State(i, u)
	if err != nil {
		return "", validate.Wrap("index", err)
	}
	return u[idx], nil
}

// Index resolves a state name to its canonical index.
// Errors: validate.ErrMembershipViolation. Complexity: O(n).
func (u StateUniverse) Index(name string) (int, error) {
	return validate.State(name, u)
}

// Contains reports whether name is a member of the universe.
// Complexity: O(n).
func (u StateUniverse) Contains(name string) bool {
	_, err := validate.State(name, u)
	return err == nil
}
