// SPDX-License-Identifier: MIT
// Package validate_test contains unit tests for the error reporter.
package validate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtmc/validate"
)

// TestErrorShape pins the structured fields exposed to callers.
func TestErrorShape(t *testing.T) {
	t.Parallel()

	_, err := validate.Integer("ten", validate.Closed(0), validate.Closed(10))
	require.Error(t, err)

	ve, ok := validate.AsError(err)
	require.True(t, ok)
	require.Equal(t, "Integer", ve.Validator)
	require.Equal(t, "ten", ve.Received)
	require.NotEmpty(t, ve.Contract)
	require.True(t, errors.Is(ve, validate.ErrTypeMismatch))
}

// TestWrapAttachesParam covers parameter-name attachment at the call
// boundary, including the innermost-name-wins rule.
func TestWrapAttachesParam(t *testing.T) {
	t.Parallel()

	// nil passes through untouched.
	require.NoError(t, validate.Wrap("x", nil))

	// A bare *Error gains the parameter name.
	_, err := validate.Boolean(3)
	wrapped := validate.Wrap("plot_type", err)
	ve, ok := validate.AsError(wrapped)
	require.True(t, ok)
	require.Equal(t, "plot_type", ve.Param)
	require.Contains(t, wrapped.Error(), `"plot_type"`)

	// An already-attached name is preserved: the innermost is precise.
	rewrapped := validate.Wrap("outer", wrapped)
	ve, ok = validate.AsError(rewrapped)
	require.True(t, ok)
	require.Equal(t, "plot_type", ve.Param)

	// Foreign errors are adopted into the single error shape.
	adopted := validate.Wrap("p", errors.New("backing store exploded"))
	ve, ok = validate.AsError(adopted)
	require.True(t, ok)
	require.Equal(t, "p", ve.Param)
	require.Contains(t, adopted.Error(), "backing store exploded")
}

// TestErrorMessageComposition covers the one-line rendering: validator,
// parameter, contract, received value and sentinel all present.
func TestErrorMessageComposition(t *testing.T) {
	t.Parallel()

	_, err := validate.Enumerator("Heatmap", []string{"heatmap", "projection"})
	msg := validate.Wrap("plot_type", err).Error()

	require.Contains(t, msg, "Enumerator")
	require.Contains(t, msg, "plot_type")
	require.Contains(t, msg, "heatmap")
	require.Contains(t, msg, "Heatmap")
	require.Contains(t, msg, "membership violation")
}

// TestSnapshotTruncation ensures pathological inputs cannot blow up the
// received-value rendering.
func TestSnapshotTruncation(t *testing.T) {
	t.Parallel()

	huge := strings.Repeat("x", 10_000)
	_, err := validate.Boolean(huge)
	ve, ok := validate.AsError(err)
	require.True(t, ok)
	require.LessOrEqual(t, len(ve.Received), 160)
	require.True(t, strings.HasSuffix(ve.Received, "..."))
}

// TestAsErrorMisses covers the negative paths of AsError.
func TestAsErrorMisses(t *testing.T) {
	t.Parallel()

	_, ok := validate.AsError(nil)
	require.False(t, ok)

	_, ok = validate.AsError(errors.New("plain"))
	require.False(t, ok)
}
