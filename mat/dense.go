// SPDX-License-Identifier: MIT

// Package mat - Dense storage (row-major) & safe accessors.
package mat

import (
	"fmt"
	"math"
	"strings"
)

// Numeric policy constants - single source of truth, no magic numbers inline.
const (
	// RowSumTol is the absolute tolerance for |sum(row) - 1| in stochastic
	// matrix checks. Probability vectors produced elsewhere in the library
	// are validated against the same constant.
	RowSumTol = 1e-8

	// DefaultEpsilon is the generic non-negative tolerance used by
	// structural checks that compare floats for equality.
	DefaultEpsilon = 1e-9
)

// method tags used in error wrappers; kept as constants for grep-ability.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps a sentinel with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // row and column counts, both > 0
	data []float64 // contiguous row-major storage, len == r*c
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions when rows or cols is non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the flat buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense matrix from a slice of rows, copying the input.
// Every row must have the same positive length and contain only finite
// values; the source slices are never retained.
//
// Errors: ErrInvalidDimensions (empty input), ErrDimensionMismatch (ragged
// rows), ErrNaNInf (non-finite entry).
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has length %d, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}
	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or reports a bounds error.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	return m.data[idx], nil
}

// Set stores v at (row, col). Non-finite values are rejected so a Dense
// can never hold NaN/±Inf once constructed through the public surface.
// Errors: ErrOutOfRange, ErrNaNInf. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of the i-th row. The returned slice is owned by the
// caller; mutating it does not affect the matrix.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxAt, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// ToRows materializes the matrix as a fresh [][]float64 (defensive copy).
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}
	return out
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)
	return &Dense{r: m.r, c: m.c, data: buf}
}

// String renders the matrix one bracketed row per line; intended for
// diagnostics, not serialization.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
