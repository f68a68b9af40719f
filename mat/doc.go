// SPDX-License-Identifier: MIT

// Package mat provides the dense float64 matrix used as the canonical
// storage for transition probabilities, together with the structural
// validators the rest of the library delegates to.
//
// Design:
//   - Dense is a row-major flat buffer with the explicit index formula
//     i*cols + j; At/Set return errors instead of panicking.
//   - All validators are pure, deterministic and allocate nothing; they
//     return package sentinel errors so call sites can wrap uniformly
//     and tests can match with errors.Is.
//   - Numeric policy is explicit: Set rejects NaN/±Inf, and the
//     row-stochastic check uses the exported RowSumTol tolerance.
//
// Typical flow:
//
//	m, err := mat.FromRows([][]float64{{0.7, 0.3}, {0.4, 0.6}})
//	if err != nil { ... }
//	if err := mat.ValidateRowStochastic(m, mat.RowSumTol); err != nil { ... }
package mat
