// SPDX-License-Identifier: MIT

// Package mat - canonical structural validators.
//
// Purpose:
//   - Provide a single source of truth for shape/nil/stochasticity checks.
//   - Keep callers minimal by delegating guard logic here.
//   - Return plain sentinel errors wrapped with a validator tag so call
//     sites can match via errors.Is.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape →
//     Values) for deterministic first-failure reporting.
package mat

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}
	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	return nil
}

// ValidateNonNegative checks every entry is ≥ 0.
// Assumes m passed ValidateNotNil. The scan runs in fixed row-major order
// and stops at the first violation.
// Errors: ErrNegativeEntry. Complexity: O(r*c).
func ValidateNonNegative(m *Dense) error {
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = m.data[i*m.c+j]
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative: (%d,%d)", i, j), ErrNegativeEntry)
			}
		}
	}
	return nil
}

// ValidateRowStochastic verifies m is a row-stochastic matrix:
// non-nil, square, element-wise non-negative, and every row sums to 1
// within the absolute tolerance tol (|sum - 1| ≤ tol).
//
// A NaN/negative/infinite tol is rejected via ErrNaNInf / normalized to
// its absolute value, mirroring the numeric policy of Set.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNegativeEntry, ErrRowSum,
// ErrNaNInf (bad tol). Complexity: O(n²) for an n×n matrix.
func ValidateRowStochastic(m *Dense, tol float64) error {
	// Stage 1: structure.
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	// Stage 2: tolerance sanity.
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateRowStochastic", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}
	// Stage 3: values; fixed row-major order, fail fast on first violation.
	var i, j int
	var v, sum float64
	for i = 0; i < m.r; i++ {
		sum = 0
		for j = 0; j < m.c; j++ {
			v = m.data[i*m.c+j]
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateRowStochastic: (%d,%d)", i, j), ErrNegativeEntry)
			}
			sum += v
		}
		if math.Abs(sum-1) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateRowStochastic: row %d sums to %g", i, sum), ErrRowSum)
		}
	}
	return nil
}

// ValidateProbabilityVector verifies x is a probability vector of length n:
// correct length, all entries ≥ 0 and finite, |sum - 1| ≤ tol.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNegativeEntry, ErrNaNInf,
// ErrRowSum. Complexity: O(n).
func ValidateProbabilityVector(x []float64, n int, tol float64) error {
	if err := ValidateVecLen(x, n); err != nil {
		return validatorErrorf("ValidateProbabilityVector", err)
	}
	if tol < 0 {
		tol = -tol
	}
	var sum float64
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateProbabilityVector: [%d]", i), ErrNaNInf)
		}
		if v < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateProbabilityVector: [%d]", i), ErrNegativeEntry)
		}
		sum += v
	}
	if math.Abs(sum-1) > tol {
		return validatorErrorf(fmt.Sprintf("ValidateProbabilityVector: sums to %g", sum), ErrRowSum)
	}
	return nil
}
