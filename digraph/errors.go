// SPDX-License-Identifier: MIT

package digraph

import "errors"

// Sentinel errors for directed-graph operations.
var (
	// ErrBlankVertexID indicates a vertex label that is empty or whitespace-only.
	ErrBlankVertexID = errors.New("digraph: vertex label is blank")

	// ErrDuplicateVertex indicates an attempt to register an already-known label.
	ErrDuplicateVertex = errors.New("digraph: duplicate vertex label")

	// ErrVertexNotFound indicates an operation referenced an unknown vertex.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was added while loops are disabled.
	ErrLoopNotAllowed = errors.New("digraph: self-loop not allowed")

	// ErrEdgeConflict indicates the same (from, to) edge was supplied twice
	// with conflicting weights, leaving no single interpretation.
	ErrEdgeConflict = errors.New("digraph: conflicting parallel edge")

	// ErrBadWeight indicates an edge weight that is negative, NaN or ±Inf.
	ErrBadWeight = errors.New("digraph: invalid edge weight")
)
