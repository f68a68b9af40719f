// SPDX-License-Identifier: MIT

// Package validate - directed-graph validation and canonicalization.
package validate

import (
	"fmt"

	"github.com/katalvlaran/dtmc/digraph"
)

// Graph validates a caller-supplied directed graph and canonicalizes it.
// The graph must be non-nil and non-empty; label uniqueness, blankness
// and edge-conflict freedom are enforced structurally by digraph at
// insertion time, so a *digraph.Graph that exists already satisfies them.
//
// When a universe is supplied (non-nil), the graph's vertex set must
// match it exactly: same cardinality, every universe state present. The
// canonical result is then rebuilt with vertices ordered by the universe,
// so downstream index arithmetic lines up with canonical state
// identities. With a nil universe the graph's own insertion order is
// already canonical and the input is returned as-is.
//
// Errors: ErrTypeMismatch (nil graph), ErrStructuralViolation (empty
// graph), ErrShapeMismatch (vertex count vs universe size),
// ErrMembershipViolation (universe state missing from the graph).
// Complexity: O(V + E) with a universe, O(1) without.
func Graph(g *digraph.Graph, universe []string) (*digraph.Graph, error) {
	if g == nil {
		return nil, newError("Graph", "directed graph", g, ErrTypeMismatch)
	}
	if g.VertexCount() == 0 {
		return nil, newError("Graph", "graph with at least one vertex", g.Vertices(), ErrStructuralViolation)
	}
	if universe == nil {
		return g, nil
	}

	if g.VertexCount() != len(universe) {
		return nil, newError("Graph",
			fmt.Sprintf("graph with exactly %d vertices", len(universe)),
			g.Vertices(), ErrShapeMismatch)
	}
	for _, name := range universe {
		if !g.HasVertex(name) {
			return nil, newError("Graph", fmt.Sprintf("vertex for state %q", name), g.Vertices(), ErrMembershipViolation)
		}
	}

	// Rebuild in universe order so vertex positions equal state indices.
	canon := digraph.New()
	for _, name := range universe {
		// Labels were already accepted once; re-adding cannot fail.
		if err := canon.AddVertex(name); err != nil {
			return nil, newError("Graph", "consistent vertex labels", name, ErrStructuralViolation)
		}
	}
	for _, from := range g.Vertices() {
		succ, err := g.Successors(from)
		if err != nil {
			return nil, newError("Graph", "consistent adjacency", from, ErrStructuralViolation)
		}
		for _, to := range succ {
			w, werr := g.Weight(from, to)
			if werr != nil {
				return nil, newError("Graph", "consistent adjacency", from, ErrStructuralViolation)
			}
			if err = canon.AddEdge(from, to, w); err != nil {
				return nil, newError("Graph", "conflict-free edges", fmt.Sprintf("%s->%s", from, to), ErrStructuralViolation)
			}
		}
	}
	return canon, nil
}
