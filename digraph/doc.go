// SPDX-License-Identifier: MIT

// Package digraph implements the canonical directed-graph representation
// the validation layer commits to after accepting caller-supplied graph
// input, and the representation chain conversions produce and consume.
//
// Key properties:
//   - Vertices are non-blank string labels registered exactly once;
//     insertion order is preserved so a graph built from an ordered state
//     universe keeps that ordering through canonicalization.
//   - Edges are directed and carry a float64 probability weight. Adding
//     the same (from, to) pair twice with a different weight is a
//     conflict, not an overwrite: there is exactly one interpretation of
//     every edge or the graph is rejected.
//   - All accessors iterate in deterministic (insertion) order; no map
//     iteration leaks into public results.
//   - Mutating methods are guarded by an internal RWMutex, so a Graph may
//     be shared across goroutines once built.
//
// Failure modes are the package sentinels in errors.go, matched with
// errors.Is; no method panics on user input.
package digraph
