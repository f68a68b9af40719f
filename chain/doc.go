// SPDX-License-Identifier: MIT

// Package chain defines the canonical Markov-chain objects the rest of
// the library operates on: StateUniverse, the ordered unique set of
// state names whose positions are the canonical integer identities, and
// MarkovChain, a universe bound to a row-stochastic transition matrix.
//
// Construction funnels through package validate, so a *MarkovChain that
// exists is valid by construction: consumers (simulation, statistics,
// rendering) re-validate nothing and operate directly on the canonical
// fields. Accessors return defensive copies; a chain is immutable after
// New and safe to share across goroutines.
package chain
