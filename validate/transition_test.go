// SPDX-License-Identifier: MIT
// Package validate_test contains unit tests for transition-function probing.
package validate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtmc/validate"
)

var probeUniverse = []string{"A", "B", "C"}

// TestTransitionFunctionPair covers the time-homogeneous callback shape.
func TestTransitionFunctionPair(t *testing.T) {
	t.Parallel()

	tr, err := validate.TransitionFunction(func(from, to int) float64 {
		return 0.3
	}, probeUniverse)
	require.NoError(t, err)
	require.Equal(t, validate.TransitionPair, tr.Mode())
	require.Equal(t, 0.3, tr.Eval(0, 0, 1))
	require.Equal(t, 0.3, tr.Eval(7, 2, 2)) // t ignored in pair mode
}

// TestTransitionFunctionTime covers the time-inhomogeneous shape.
func TestTransitionFunctionTime(t *testing.T) {
	t.Parallel()

	tr, err := validate.TransitionFunction(func(tt, from, to int) float64 {
		if tt == 0 {
			return 0.5
		}
		return 0.25
	}, probeUniverse)
	require.NoError(t, err)
	require.Equal(t, validate.TransitionTime, tr.Mode())
	require.Equal(t, 0.5, tr.Eval(0, 0, 1))
	require.Equal(t, 0.25, tr.Eval(3, 0, 1))
}

// TestTransitionFunctionFailures covers nil callbacks, unsupported
// signatures and misbehaving probes.
func TestTransitionFunctionFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    any
		want error
	}{
		{"nil", nil, validate.ErrTypeMismatch},
		{"not a function", 42, validate.ErrTypeMismatch},
		{"wrong signature", func(a string) float64 { return 0 }, validate.ErrTypeMismatch},
		{"wrong return", func(from, to int) int { return 0 }, validate.ErrTypeMismatch},
		{
			"out of range high",
			func(from, to int) float64 { return 1.5 },
			validate.ErrRangeViolation,
		},
		{
			"out of range low",
			func(from, to int) float64 { return -0.1 },
			validate.ErrRangeViolation,
		},
		{
			"NaN result",
			func(from, to int) float64 { return math.NaN() },
			validate.ErrStructuralViolation,
		},
		{
			"panicking callback",
			func(from, to int) float64 { panic("boom") },
			validate.ErrStructuralViolation,
		},
		{
			"time mode out of range",
			func(tt, from, to int) float64 { return float64(tt) + 0.5 },
			validate.ErrRangeViolation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := validate.TransitionFunction(tc.f, probeUniverse)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want),
				"expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestTransitionFunctionProbesAllPairs ensures the probe actually visits
// distinct state pairs rather than one fixed input.
func TestTransitionFunctionProbesAllPairs(t *testing.T) {
	t.Parallel()

	seen := make(map[[2]int]struct{})
	_, err := validate.TransitionFunction(func(from, to int) float64 {
		seen[[2]int{from, to}] = struct{}{}
		return 0.5
	}, probeUniverse)
	require.NoError(t, err)

	// Corners of the 3-state universe must all have been probed.
	for _, pq := range [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		require.Contains(t, seen, pq)
	}
}

// TestTransitionFunctionSingleState covers the smallest universe.
func TestTransitionFunctionSingleState(t *testing.T) {
	t.Parallel()

	tr, err := validate.TransitionFunction(func(from, to int) float64 { return 1 }, []string{"only"})
	require.NoError(t, err)
	require.Equal(t, 1.0, tr.Eval(0, 0, 0))

	// An invalid universe fails before any probing happens.
	called := false
	_, err = validate.TransitionFunction(func(from, to int) float64 {
		called = true
		return 1
	}, nil)
	require.True(t, errors.Is(err, validate.ErrShapeMismatch))
	require.False(t, called)
}
