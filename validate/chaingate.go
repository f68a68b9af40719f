// SPDX-License-Identifier: MIT

// Package validate - the top-level chain gate.
package validate

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/dtmc/mat"
)

// ChainLike is the contract a Markov chain object must expose to pass
// the gate: its ordered state universe and its one-step transition
// matrix. Accepting the interface here (rather than a concrete chain
// type) keeps the validation layer free of upward dependencies.
type ChainLike interface {
	// States returns the ordered state universe.
	States() []string
	// P returns the transition matrix (row i = distribution out of state i).
	P() *mat.Dense
}

// Chain is the top-level gate every chain-consuming operation calls
// before touching raw fields: the universe must be valid (non-empty,
// unique, non-blank names), the matrix square, sized to the universe,
// element-wise non-negative, and each row summing to 1 within
// mat.RowSumTol.
//
// Errors: ErrTypeMismatch (nil chain or matrix), ErrShapeMismatch
// (non-square or size disagreement), ErrStructuralViolation (negative
// entry or broken row sum), plus Universe failures.
// Complexity: O(n²) for n states.
func Chain(mc ChainLike) error {
	if mc == nil || isNilChain(mc) {
		return newError("Chain", "Markov chain", nil, ErrTypeMismatch)
	}
	states := mc.States()
	if err := Universe(states); err != nil {
		return Wrap("states", err)
	}
	p := mc.P()
	if p == nil {
		return Wrap("p", newError("Chain", "transition matrix", nil, ErrTypeMismatch))
	}
	if p.Rows() != p.Cols() || p.Rows() != len(states) {
		return Wrap("p", newError("Chain",
			fmt.Sprintf("square %d×%d transition matrix", len(states), len(states)),
			fmt.Sprintf("%d×%d", p.Rows(), p.Cols()), ErrShapeMismatch))
	}
	if err := mat.ValidateRowStochastic(p, mat.RowSumTol); err != nil {
		return Wrap("p", newError("Chain", "row-stochastic transition matrix", err.Error(), ErrStructuralViolation))
	}
	return nil
}

// isNilChain reports whether mc wraps a nil concrete value. An interface
// holding a typed nil compares unequal to nil, yet calling States or P on
// it would dereference a nil receiver, so the gate must catch it here.
func isNilChain(mc ChainLike) bool {
	rv := reflect.ValueOf(mc)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
