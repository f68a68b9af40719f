// Package dtmc is a discrete-time Markov chain toolkit whose core is a
// strict parameter validation and normalization layer: heterogeneous,
// loosely-typed caller input goes in, one canonical representation (or
// one structured error) comes out.
//
// Everything is organized under five subpackages:
//
//	validate/  — primitive, structured and domain validators plus the
//	             single structured error shape every failure funnels into
//	chain/     — StateUniverse and MarkovChain, the canonical objects
//	             consumers (simulation, statistics, rendering) operate on
//	digraph/   — the canonical directed-graph representation with
//	             deterministic ordering and conflict-free edges
//	mat/       — dense row-major float64 matrices and the stochastic
//	             structure checks (row sums, non-negativity, shape)
//	chainfile/ — JSON/YAML chain definition loading, funneled through
//	             the same validators as direct API input
//
// Guarantees across the module:
//
//   - Validators are pure functions: no shared state, no caching, safe
//     to call concurrently; a failed validation is final for that call.
//   - No silent correction: invalid input is rejected with a
//     *validate.Error wrapping exactly one taxonomy sentinel, so one
//     errors.Is switch handles every failure mode.
//   - Canonical values stay canonical: a chain, graph or distribution
//     that was accepted once satisfies its invariants for its lifetime.
//
//	go get github.com/katalvlaran/dtmc
package dtmc
