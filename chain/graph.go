// SPDX-License-Identifier: MIT

// Package chain - conversions between chains and directed graphs.
package chain

import (
	"github.com/katalvlaran/dtmc/digraph"
	"github.com/katalvlaran/dtmc/mat"
	"github.com/katalvlaran/dtmc/validate"
)

// FromGraph builds a MarkovChain from a directed graph: vertices become
// states (in the graph's canonical order) and each vertex's outgoing
// edge weights are normalized into a probability row. A vertex whose
// total outgoing weight is at most mat.DefaultEpsilon becomes absorbing
// (probability 1 of staying put) instead of dividing by a vanishing
// total.
//
// The graph is validated/canonicalized first; edge weights must be
// finite and non-negative, which digraph guarantees at insertion.
//
// Errors: validate taxonomy, parameter name "g". Complexity: O(V²).
func FromGraph(g *digraph.Graph) (*MarkovChain, error) {
	canon, err := validate.Graph(g, nil)
	if err != nil {
		return nil, validate.Wrap("g", err)
	}
	states := canon.Vertices()
	n := len(states)

	rows := make([][]float64, n)
	for i, from := range states {
		row := make([]float64, n)
		succ, serr := canon.Successors(from)
		if serr != nil {
			return nil, validate.Wrap("g", serr)
		}
		// Sum outgoing weights for row normalization.
		var total float64
		for _, to := range succ {
			w, werr := canon.Weight(from, to)
			if werr != nil {
				return nil, validate.Wrap("g", werr)
			}
			total += w
		}
		if total <= mat.DefaultEpsilon {
			// Negligible outgoing mass: absorbing state.
			row[i] = 1
		} else {
			for _, to := range succ {
				w, _ := canon.Weight(from, to)
				j := indexOf(states, to)
				row[j] = w / total
			}
		}
		rows[i] = row
	}
	return New(states, rows)
}

// ToGraph exports the chain as a directed graph: one vertex per state in
// universe order, one edge per strictly positive transition probability,
// weighted by that probability. Complexity: O(n²).
func (mc *MarkovChain) ToGraph() *digraph.Graph {
	g := digraph.New()
	for _, name := range mc.states {
		// Labels come from a valid universe; AddVertex cannot fail.
		_ = g.AddVertex(name)
	}
	n := len(mc.states)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := mc.p.At(i, j)
			if v > 0 {
				_ = g.AddEdge(mc.states[i], mc.states[j], v)
			}
		}
	}
	return g
}

// indexOf performs a linear label lookup; n is small and the call sites
// are O(n²) already.
func indexOf(states []string, name string) int {
	for i, s := range states {
		if s == name {
			return i
		}
	}
	return -1
}

// Identity returns the n×n identity chain over the given states: every
// state absorbing. Useful as a neutral element in tests and fitting.
//
// Errors: validate taxonomy for the universe. Complexity: O(n²).
func Identity(states []string) (*MarkovChain, error) {
	universe, err := NewStateUniverse(states)
	if err != nil {
		return nil, err
	}
	n := universe.Len()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}
	m, _ := mat.FromRows(rows)
	return &MarkovChain{states: universe, p: m}, nil
}
