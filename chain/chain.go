// SPDX-License-Identifier: MIT

// Package chain - MarkovChain: a state universe bound to a
// row-stochastic transition matrix.
package chain

import (
	"fmt"

	"github.com/katalvlaran/dtmc/mat"
	"github.com/katalvlaran/dtmc/validate"
)

// MarkovChain is the canonical discrete-time Markov chain: an ordered
// state universe and a square, non-negative, row-stochastic transition
// matrix sized to it. Valid by construction and immutable afterwards.
type MarkovChain struct {
	states StateUniverse
	p      *mat.Dense
}

// New builds a MarkovChain from state names and transition rows. Both
// inputs travel through the validation layer: the universe rule set for
// states, the row-stochastic gate for p. Inputs are copied.
//
// Errors: validate taxonomy, parameter names "states" / "p".
// Complexity: O(n²).
func New(states []string, p [][]float64) (*MarkovChain, error) {
	universe, err := NewStateUniverse(states)
	if err != nil {
		return nil, err
	}
	m, err := mat.FromRows(p)
	if err != nil {
		return nil, validate.Wrap("p", err)
	}
	mc := &MarkovChain{states: universe, p: m}
	if err = validate.Chain(mc); err != nil {
		return nil, err
	}
	return mc, nil
}

// States returns the ordered state universe as a fresh []string, per the
// validate.ChainLike contract. Complexity: O(n).
func (mc *MarkovChain) States() []string {
	out := make([]string, len(mc.states))
	copy(out, mc.states)
	return out
}

// Universe returns the chain's StateUniverse (shared, read-only by
// convention). Complexity: O(1).
func (mc *MarkovChain) Universe() StateUniverse { return mc.states }

// Size returns the number of states. Complexity: O(1).
func (mc *MarkovChain) Size() int { return len(mc.states) }

// P returns the transition matrix. The matrix is part of the chain's
// immutable canonical state, so a deep copy is returned; mutating it
// cannot invalidate the chain. Complexity: O(n²).
func (mc *MarkovChain) P() *mat.Dense { return mc.p.Clone() }

// TransitionProbability resolves two state references (names or integer
// indices, mixed freely) and returns p[from][to].
//
// Errors: validate taxonomy with parameter names "from" / "to".
// Complexity: O(n) for name resolution.
func (mc *MarkovChain) TransitionProbability(from, to any) (float64, error) {
	i, err := validate.State(from, mc.states)
	if err != nil {
		return 0, validate.Wrap("from", err)
	}
	j, err := validate.State(to, mc.states)
	if err != nil {
		return 0, validate.Wrap("to", err)
	}
	v, err := mc.p.At(i, j)
	if err != nil {
		return 0, validate.Wrap("p", err)
	}
	return v, nil
}

// String renders a compact identity for diagnostics.
func (mc *MarkovChain) String() string {
	return fmt.Sprintf("MarkovChain(%d states)", len(mc.states))
}
