// SPDX-License-Identifier: MIT

// Package validate - probability distribution validation.
package validate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dtmc/mat"
)

// DistributionKind discriminates the two canonical forms a distribution
// argument can take; consumers must branch on it.
type DistributionKind int

const (
	// DistributionCount marks the "generate N steps" form: the caller
	// supplied a plain non-negative integer instead of explicit vectors.
	DistributionCount DistributionKind = iota
	// DistributionSequence marks one or more explicit probability vectors.
	DistributionSequence
)

// DistributionSpec is the tagged-union canonical result of Distribution.
// Exactly one accessor is meaningful; Kind tells which.
type DistributionSpec struct {
	kind  DistributionKind
	count int
	seq   [][]float64
}

// Kind reports which form the caller supplied.
func (d DistributionSpec) Kind() DistributionKind { return d.kind }

// Count returns the step count; valid only when Kind() == DistributionCount.
func (d DistributionSpec) Count() int { return d.count }

// Sequence returns the validated vectors; valid only when
// Kind() == DistributionSequence. The slice is the canonical copy held
// by the DistributionSpec; callers must not mutate it.
func (d DistributionSpec) Sequence() [][]float64 { return d.seq }

// MatchInitial enforces the agreement rule between an explicit sequence
// and a separately supplied initial status: when both exist, the first
// vector of the sequence must equal initial exactly, element-wise. A
// mismatch is an error, never a silent preference of one over the other.
// Count-form specs and a nil initial always pass.
//
// Errors: ErrStructuralViolation. Complexity: O(size).
func (d DistributionSpec) MatchInitial(initial []float64) error {
	if d.kind != DistributionSequence || initial == nil || len(d.seq) == 0 {
		return nil
	}
	first := d.seq[0]
	if len(first) != len(initial) {
		return newError("Distribution.MatchInitial",
			fmt.Sprintf("initial status of length %d", len(first)), initial, ErrStructuralViolation)
	}
	for i := range first {
		if first[i] != initial[i] {
			return newError("Distribution.MatchInitial",
				fmt.Sprintf("first sequence element equal to initial status (differs at [%d])", i),
				initial, ErrStructuralViolation)
		}
	}
	return nil
}

// translateVector maps the mat sentinel of a failed probability-vector
// check onto the validate taxonomy, preserving position context.
func translateVector(pos string, v []float64, err error) error {
	switch {
	case errors.Is(err, mat.ErrNilMatrix), errors.Is(err, mat.ErrDimensionMismatch):
		return newError("Distribution", fmt.Sprintf("probability vector of expected length at %s", pos), v, ErrShapeMismatch)
	case errors.Is(err, mat.ErrNaNInf):
		return newError("Distribution", fmt.Sprintf("finite probabilities at %s", pos), v, ErrTypeMismatch)
	case errors.Is(err, mat.ErrNegativeEntry):
		return newError("Distribution", fmt.Sprintf("non-negative probabilities at %s", pos), v, ErrRangeViolation)
	default: // mat.ErrRowSum
		return newError("Distribution", fmt.Sprintf("probabilities summing to 1 at %s", pos), v, ErrStructuralViolation)
	}
}

// Distribution validates a distribution argument of size states and
// canonicalizes it into a DistributionSpec. Three input forms are
// accepted:
//
//   - a plain non-negative integer: "generate N steps" (count form);
//   - a single probability vector ([]float64) of length size: entries
//     ≥ 0, summing to 1 within mat.RowSumTol - canonicalized as a
//     one-element sequence;
//   - a sequence of such vectors ([][]float64): a walk of distributions
//     over time, each vector validated independently.
//
// The returned spec owns fresh copies; caller slices are never retained.
//
// Errors: ErrTypeMismatch, ErrRangeViolation (negative count or negative
// probability), ErrShapeMismatch (vector length), ErrStructuralViolation
// (sum off by more than the tolerance). Complexity: O(k·size) for k
// vectors.
func Distribution(v any, size int) (DistributionSpec, error) {
	// Count form: a plain non-negative integer.
	if isIntKind(v) {
		n, _ := asInt(v)
		if n < 0 {
			return DistributionSpec{}, newError("Distribution", "non-negative step count", v, ErrRangeViolation)
		}
		return DistributionSpec{kind: DistributionCount, count: int(n)}, nil
	}

	// Explicit form: one vector or a sequence of vectors.
	var rows [][]float64
	switch x := v.(type) {
	case []float64:
		rows = [][]float64{x}
	case [][]float64:
		rows = x
	default:
		return DistributionSpec{}, newError("Distribution", "step count, probability vector or sequence of vectors", v, ErrTypeMismatch)
	}
	if len(rows) == 0 {
		return DistributionSpec{}, newError("Distribution", "at least one probability vector", v, ErrShapeMismatch)
	}

	seq := make([][]float64, len(rows))
	for i, row := range rows {
		if err := mat.ValidateProbabilityVector(row, size, mat.RowSumTol); err != nil {
			return DistributionSpec{}, translateVector(fmt.Sprintf("[%d]", i), row, err)
		}
		cp := make([]float64, size)
		copy(cp, row)
		seq[i] = cp
	}
	return DistributionSpec{kind: DistributionSequence, seq: seq}, nil
}
