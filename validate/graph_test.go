// SPDX-License-Identifier: MIT
// Package validate_test contains unit tests for graph validation.
package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtmc/digraph"
	"github.com/katalvlaran/dtmc/validate"
)

// TestGraphBasic covers nil/empty rejection and acceptance without a universe.
func TestGraphBasic(t *testing.T) {
	t.Parallel()

	_, err := validate.Graph(nil, nil)
	require.True(t, errors.Is(err, validate.ErrTypeMismatch))

	_, err = validate.Graph(digraph.New(), nil)
	require.True(t, errors.Is(err, validate.ErrStructuralViolation))

	g := digraph.New()
	require.NoError(t, g.AddEdge("A", "B", 0.5))
	require.NoError(t, g.AddEdge("B", "A", 1.0))

	got, err := validate.Graph(g, nil)
	require.NoError(t, err)
	require.Same(t, g, got) // no universe: input already canonical
}

// TestGraphDuplicateLabels documents that duplicate node labels cannot
// even be constructed: the graph type rejects them at insertion.
func TestGraphDuplicateLabels(t *testing.T) {
	t.Parallel()

	g := digraph.New()
	require.NoError(t, g.AddVertex("A"))
	require.True(t, errors.Is(g.AddVertex("A"), digraph.ErrDuplicateVertex))
	require.NoError(t, g.AddVertex("B"))
	require.Equal(t, []string{"A", "B"}, g.Vertices())
}

// TestGraphAgainstUniverse covers vertex-set agreement and reordering.
func TestGraphAgainstUniverse(t *testing.T) {
	t.Parallel()

	universe := []string{"A", "B", "C"}

	// Graph built in a different vertex order than the universe.
	g := digraph.New()
	require.NoError(t, g.AddEdge("C", "A", 0.5))
	require.NoError(t, g.AddEdge("C", "B", 0.5))
	require.NoError(t, g.AddEdge("A", "A", 1.0))
	// B is already registered via the C->B edge.
	require.True(t, errors.Is(g.AddVertex("B"), digraph.ErrDuplicateVertex))

	canon, err := validate.Graph(g, universe)
	require.NoError(t, err)
	// Canonical vertex order follows the universe, not insertion.
	require.Equal(t, universe, canon.Vertices())
	// Edges survive canonicalization.
	w, err := canon.Weight("C", "A")
	require.NoError(t, err)
	require.Equal(t, 0.5, w)
	require.Equal(t, 3, canon.EdgeCount())

	// Cardinality disagreement.
	small := digraph.New()
	require.NoError(t, small.AddEdge("A", "B", 1))
	_, err = validate.Graph(small, universe)
	require.True(t, errors.Is(err, validate.ErrShapeMismatch))

	// Right count, wrong labels.
	wrong := digraph.New()
	require.NoError(t, wrong.AddVertex("A"))
	require.NoError(t, wrong.AddVertex("B"))
	require.NoError(t, wrong.AddVertex("X"))
	_, err = validate.Graph(wrong, universe)
	require.True(t, errors.Is(err, validate.ErrMembershipViolation))
}
