// SPDX-License-Identifier: MIT
// Package mat_test contains unit tests for Dense storage and accessors.
package mat_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtmc/mat"
)

// TestNewDense covers shape validation and zero initialization.
func TestNewDense(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, c    int
		wantErr error
	}{
		{"1x1", 1, 1, nil},
		{"3x2", 3, 2, nil},
		{"zero rows", 0, 2, mat.ErrInvalidDimensions},
		{"zero cols", 2, 0, mat.ErrInvalidDimensions},
		{"negative", -1, 3, mat.ErrInvalidDimensions},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := mat.NewDense(tc.r, tc.c)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.r, m.Rows())
			require.Equal(t, tc.c, m.Cols())
			v, err := m.At(0, 0)
			require.NoError(t, err)
			require.Zero(t, v)
		})
	}
}

// TestFromRows covers copying semantics, ragged input and non-finite entries.
func TestFromRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"valid 2x2", [][]float64{{0.7, 0.3}, {0.4, 0.6}}, nil},
		{"empty", nil, mat.ErrInvalidDimensions},
		{"empty row", [][]float64{{}}, mat.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 0}, {1}}, mat.ErrDimensionMismatch},
		{"NaN entry", [][]float64{{math.NaN(), 1}}, mat.ErrNaNInf},
		{"Inf entry", [][]float64{{math.Inf(1), 0}}, mat.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := mat.FromRows(tc.rows)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.ToRows())
		})
	}
}

// TestFromRowsCopies ensures the source slices are not retained.
func TestFromRowsCopies(t *testing.T) {
	t.Parallel()

	src := [][]float64{{0.5, 0.5}}
	m, err := mat.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 99 // mutate the source after construction
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)
}

// TestDenseAtSet covers bounds checks and the NaN/Inf policy on Set.
func TestDenseAtSet(t *testing.T) {
	t.Parallel()

	m, err := mat.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 0.25))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0.25, v)

	_, err = m.At(2, 0)
	require.True(t, errors.Is(err, mat.ErrOutOfRange))
	_, err = m.At(0, -1)
	require.True(t, errors.Is(err, mat.ErrOutOfRange))

	require.True(t, errors.Is(m.Set(0, 2, 1), mat.ErrOutOfRange))
	require.True(t, errors.Is(m.Set(0, 0, math.NaN()), mat.ErrNaNInf))
	require.True(t, errors.Is(m.Set(0, 0, math.Inf(-1)), mat.ErrNaNInf))
}

// TestDenseRowClone covers defensive copying of Row and Clone.
func TestDenseRowClone(t *testing.T) {
	t.Parallel()

	m, err := mat.FromRows([][]float64{{0.1, 0.9}, {1, 0}})
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.9}, row)

	row[0] = 42 // caller-owned, must not leak back
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.1, v)

	_, err = m.Row(5)
	require.True(t, errors.Is(err, mat.ErrOutOfRange))

	cl := m.Clone()
	require.NoError(t, cl.Set(1, 1, 0.5))
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, v) // original untouched
}
