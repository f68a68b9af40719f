// SPDX-License-Identifier: MIT

// Package digraph - Graph type, options, constructor and accessors.
package digraph

import (
	"math"
	"strings"
	"sync"
)

// weightTol is the tolerance used when comparing weights of repeated edges;
// two submissions of the same edge agree iff |w1 - w2| ≤ weightTol.
const weightTol = 1e-12

// Option configures a Graph before first use.
type Option func(*Graph)

// WithoutLoops forbids self-loop edges. The default permits them, since a
// Markov chain routinely has non-zero self-transition probability.
func WithoutLoops() Option {
	return func(g *Graph) { g.allowLoops = false }
}

// Graph is an in-memory directed graph with weighted edges.
//
// order preserves vertex insertion sequence; index maps label → position in
// order; succ[from][to] holds the single weight of the (from,to) edge.
// mu guards all three.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	order []string
	index map[string]int
	succ  map[string]map[string]float64
}

// New creates an empty Graph. Loops are allowed unless WithoutLoops is given.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{
		allowLoops: true,
		index:      make(map[string]int),
		succ:       make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddVertex registers a new vertex label.
// Errors: ErrBlankVertexID, ErrDuplicateVertex. Complexity: O(1).
func (g *Graph) AddVertex(label string) error {
	if strings.TrimSpace(label) == "" {
		return ErrBlankVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.index[label]; ok {
		return ErrDuplicateVertex
	}
	g.addVertexLocked(label)
	return nil
}

// addVertexLocked appends a known-fresh label; callers hold g.mu.
func (g *Graph) addVertexLocked(label string) {
	g.index[label] = len(g.order)
	g.order = append(g.order, label)
	g.succ[label] = make(map[string]float64)
}

// AddEdge inserts the directed edge from→to with the given weight,
// registering unseen endpoints on the fly (labels must still be non-blank).
// Re-adding an existing edge with the same weight is a no-op; a differing
// weight is rejected as a conflict rather than overwritten.
//
// Errors: ErrBlankVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrEdgeConflict.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return ErrBlankVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	// Register endpoints lazily, preserving first-seen order.
	if _, ok := g.index[from]; !ok {
		g.addVertexLocked(from)
	}
	if _, ok := g.index[to]; !ok {
		g.addVertexLocked(to)
	}
	if prev, ok := g.succ[from][to]; ok {
		if math.Abs(prev-weight) > weightTol {
			return ErrEdgeConflict
		}
		return nil // identical re-submission
	}
	g.succ[from][to] = weight
	return nil
}

// VertexCount returns the number of registered vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

// EdgeCount returns the number of directed edges. Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, targets := range g.succ {
		n += len(targets)
	}
	return n
}

// HasVertex reports whether the label is registered. Complexity: O(1).
func (g *Graph) HasVertex(label string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[label]
	return ok
}

// Vertices returns all labels in insertion order (fresh slice).
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Weight returns the weight of the (from, to) edge.
// Errors: ErrVertexNotFound (unknown endpoint or absent edge).
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	targets, ok := g.succ[from]
	if !ok {
		return 0, ErrVertexNotFound
	}
	w, ok := targets[to]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return w, nil
}

// Successors returns the targets of the vertex's outgoing edges, ordered by
// the targets' insertion positions (deterministic, no map-iteration order).
// Errors: ErrVertexNotFound. Complexity: O(V).
func (g *Graph) Successors(label string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	targets, ok := g.succ[label]
	if !ok {
		return nil, ErrVertexNotFound
	}
	// Walk the global insertion order and keep the actual successors; this
	// is O(V) but keeps results stable without sorting.
	out := make([]string, 0, len(targets))
	for _, v := range g.order {
		if _, hit := targets[v]; hit {
			out = append(out, v)
		}
	}
	return out, nil
}
