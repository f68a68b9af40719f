// SPDX-License-Identifier: MIT
// Package validate_test contains unit tests for the structured validators.
package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtmc/validate"
)

// TestDictionary covers emptiness, arity uniformity, scalar keys and
// cross-type uniqueness.
func TestDictionary(t *testing.T) {
	t.Parallel()

	key := func(cs ...any) validate.DictKey { return validate.DictKey(cs) }

	tests := []struct {
		name    string
		entries []validate.DictEntry
		want    error
	}{
		{
			"scalar keys",
			[]validate.DictEntry{
				{Key: key("A"), Value: 0.3},
				{Key: key("B"), Value: 0.7},
			},
			nil,
		},
		{
			"tuple keys",
			[]validate.DictEntry{
				{Key: key("A", "B"), Value: 0.5},
				{Key: key("B", "A"), Value: 0.5},
			},
			nil,
		},
		{"empty", nil, validate.ErrShapeMismatch},
		{
			"zero-arity key",
			[]validate.DictEntry{{Key: key(), Value: 1.0}},
			validate.ErrShapeMismatch,
		},
		{
			"mixed arity",
			[]validate.DictEntry{
				{Key: key("A"), Value: 1.0},
				{Key: key("A", "B"), Value: 2.0},
			},
			validate.ErrShapeMismatch,
		},
		{
			"duplicate key",
			[]validate.DictEntry{
				{Key: key("A", "B"), Value: 1.0},
				{Key: key("A", "B"), Value: 2.0},
			},
			validate.ErrDuplicateKey,
		},
		{
			"non-scalar component",
			[]validate.DictEntry{{Key: key([]int{1}), Value: 1.0}},
			validate.ErrTypeMismatch,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := validate.Dictionary(tc.entries)
			if tc.want != nil {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.entries, got) // returned unchanged
		})
	}
}

// TestDictionaryTypedKeys ensures "1" (string) and 1 (int) are distinct keys.
func TestDictionaryTypedKeys(t *testing.T) {
	t.Parallel()

	entries := []validate.DictEntry{
		{Key: validate.DictKey{"1"}, Value: 0.5},
		{Key: validate.DictKey{1}, Value: 0.5},
	}
	_, err := validate.Dictionary(entries)
	require.NoError(t, err)
}

// TestInterval covers accepted shapes, arity and strict ordering.
func TestInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      any
		lo, hi float64
		want   error
	}{
		{"float pair", []float64{0, 1}, 0, 1, nil},
		{"int pair", []int{-5, 5}, -5, 5, nil},
		{"array pair", [2]float64{0.25, 0.75}, 0.25, 0.75, nil},
		{"mixed any pair", []any{0, 2.5}, 0, 2.5, nil},
		{"reversed", []float64{1, 0}, 0, 0, validate.ErrStructuralViolation},
		{"degenerate", []float64{1, 1}, 0, 0, validate.ErrStructuralViolation},
		{"arity 3", []float64{0, 1, 2}, 0, 0, validate.ErrShapeMismatch},
		{"arity 1", []float64{0}, 0, 0, validate.ErrShapeMismatch},
		{"not a pair", "0..1", 0, 0, validate.ErrTypeMismatch},
		{"non-numeric element", []any{"a", 1}, 0, 0, validate.ErrTypeMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			lo, hi, err := validate.Interval(tc.v)
			if tc.want != nil {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.lo, lo)
			require.Equal(t, tc.hi, hi)
		})
	}
}

// TestHyperparameter covers sizing, element policy and the all-zero rule.
func TestHyperparameter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		size int
		out  []float64
		want error
	}{
		{"valid", []float64{1, 2, 3}, 3, []float64{1, 2, 3}, nil},
		{"int vector", []int{1, 0, 2}, 3, []float64{1, 0, 2}, nil},
		{"single positive", []float64{0, 0, 0.5}, 3, []float64{0, 0, 0.5}, nil},
		{"all zero", []float64{0, 0, 0}, 3, nil, validate.ErrStructuralViolation},
		{"size mismatch", []float64{1, 2}, 3, nil, validate.ErrShapeMismatch},
		{"negative element", []float64{1, -1, 1}, 3, nil, validate.ErrRangeViolation},
		{"non-numeric element", []any{1, "x", 1}, 3, nil, validate.ErrTypeMismatch},
		{"not a vector", 7, 3, nil, validate.ErrTypeMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := validate.Hyperparameter(tc.v, tc.size)
			if tc.want != nil {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

// TestHyperparameterCopies ensures the canonical vector is caller-independent.
func TestHyperparameterCopies(t *testing.T) {
	t.Parallel()

	src := []float64{1, 1}
	got, err := validate.Hyperparameter(src, 2)
	require.NoError(t, err)

	src[0] = 99
	require.Equal(t, []float64{1, 1}, got)
}
