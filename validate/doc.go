// SPDX-License-Identifier: MIT

// Package validate is the parameter validation and normalization layer of
// the library: it accepts heterogeneous, loosely-typed caller input and
// either commits to a single canonical representation or rejects the
// input with a structured *Error.
//
// The package is organized leaf-first:
//
//   - Primitive validators (Boolean, Integer, Float, Enumerator, DPI,
//     Boundary) coerce scalars against explicit bounds and allowed sets.
//   - Structured validators (Dictionary, Interval, Hyperparameter) check
//     compound inputs built from primitives.
//   - Domain validators (State, States, Distribution, Graph, Chain,
//     TransitionFunction) enforce cross-field Markov-chain invariants:
//     state-index bijections, row-stochastic matrices, graph/universe
//     agreement, probe-checked transition callbacks.
//
// Contracts:
//   - Every validator is a pure function of its arguments: no shared
//     state, no caching, safely re-entrant and parallelizable. The single
//     exception is the probe step of TransitionFunction, which invokes
//     the caller-supplied callback (treated as an opaque, possibly
//     panicking black box, recovered and reported as a validation
//     failure).
//   - No silent clamping or defaulting: invalid input is surfaced,
//     always, through the one caller-visible error shape (*Error) which
//     wraps exactly one taxonomy sentinel (errors.go) so callers match
//     with errors.Is and implement a single error-handling path.
//   - A validator returns either a fully canonical value or a failure,
//     never a partial result. Where the accepted input is genuinely
//     polymorphic (boundary conditions, distribution count-vs-sequence,
//     transition-function modes) the canonical result is a tagged union
//     the consumer must branch on via its Kind/Mode accessor.
//
// State references are resolved against a state universe: an ordered
// sequence of unique state names whose positions are the canonical
// integer identities. Validators borrow the universe read-only; it is
// owned by the chain object (see package chain).
package validate
