// SPDX-License-Identifier: MIT

// Package validate - transition-function acceptance and probing.
package validate

import (
	"fmt"
	"math"
)

// TransitionMode discriminates the two callback shapes a transition
// function may take; consumers must branch on it.
type TransitionMode int

const (
	// TransitionPair marks a time-homogeneous callback f(from, to).
	TransitionPair TransitionMode = iota
	// TransitionTime marks a time-inhomogeneous callback f(t, from, to).
	TransitionTime
)

// Transition is the canonical result of TransitionFunction: the accepted
// callback normalized behind one evaluation surface. Eval always takes
// (t, from, to); a pair-mode callback simply ignores t.
type Transition struct {
	mode  TransitionMode
	pair  func(from, to int) float64
	timed func(t, from, to int) float64
}

// Mode reports which callback shape was accepted.
func (tr *Transition) Mode() TransitionMode { return tr.mode }

// Eval evaluates the transition probability at step t from state `from`
// to state `to`. For pair-mode functions t is ignored.
func (tr *Transition) Eval(t, from, to int) float64 {
	if tr.mode == TransitionPair {
		return tr.pair(from, to)
	}
	return tr.timed(t, from, to)
}

// probeSteps are the time points probed for time-inhomogeneous callbacks.
var probeSteps = [...]int{0, 1}

// probePairs returns a small deterministic sample of valid state pairs
// for a universe of n states: the corners plus the main diagonal start.
func probePairs(n int) [][2]int {
	last := n - 1
	pairs := [][2]int{{0, 0}, {0, last}, {last, 0}, {last, last}}
	if n > 2 {
		mid := n / 2
		pairs = append(pairs, [2]int{mid, mid})
	}
	return pairs
}

// safeEval invokes the callback and recovers a panic into an error, so a
// misbehaving callback surfaces through the uniform validation channel
// instead of crashing the caller.
func safeEval(f func() float64) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("callback panicked: %v", r)
		}
	}()
	return f(), nil
}

// TransitionFunction validates a caller-supplied transition callback
// against a state universe. Two shapes are accepted and normalized into
// a *Transition:
//
//	func(from, to int) float64        - time-homogeneous (pair mode)
//	func(t, from, to int) float64     - time-inhomogeneous (time mode)
//
// The callback is probed, best-effort, over a deterministic sample of
// valid state pairs (and time steps for time mode); every probe must
// return a finite value in [0, 1]. Probing runs with the same call
// convention as production use and assumes nothing about purity; a
// panicking probe is recovered and reported as a validation failure, so
// callers see one uniform error channel. There is no timeout: a hanging
// callback hangs the probe, exactly as it would hang the simulation.
//
// Errors: ErrTypeMismatch (nil or unsupported signature),
// ErrStructuralViolation (panic or non-finite probe result),
// ErrRangeViolation (probe result outside [0, 1]).
// Complexity: O(1) probes - at most 10 callback invocations.
func TransitionFunction(f any, universe []string) (*Transition, error) {
	if f == nil {
		return nil, newError("TransitionFunction", "transition callback", nil, ErrTypeMismatch)
	}
	if err := Universe(universe); err != nil {
		return nil, err
	}
	n := len(universe)

	tr := &Transition{}
	switch fn := f.(type) {
	case func(from, to int) float64:
		tr.mode = TransitionPair
		tr.pair = fn
	case func(t, from, to int) float64:
		tr.mode = TransitionTime
		tr.timed = fn
	default:
		return nil, newError("TransitionFunction",
			"func(from, to int) float64 or func(t, from, to int) float64", f, ErrTypeMismatch)
	}

	// Probe the callback over the sample; fail on the first violation.
	check := func(v float64, err error, at string) error {
		if err != nil {
			return newError("TransitionFunction", fmt.Sprintf("well-behaved callback at %s", at), err.Error(), ErrStructuralViolation)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newError("TransitionFunction", fmt.Sprintf("finite probability at %s", at), v, ErrStructuralViolation)
		}
		if v < 0 || v > 1 {
			return newError("TransitionFunction", fmt.Sprintf("probability in [0, 1] at %s", at), v, ErrRangeViolation)
		}
		return nil
	}
	for _, pq := range probePairs(n) {
		from, to := pq[0], pq[1]
		if tr.mode == TransitionPair {
			v, err := safeEval(func() float64 { return tr.pair(from, to) })
			if cerr := check(v, err, fmt.Sprintf("(%d,%d)", from, to)); cerr != nil {
				return nil, cerr
			}
			continue
		}
		for _, t := range probeSteps {
			v, err := safeEval(func() float64 { return tr.timed(t, from, to) })
			if cerr := check(v, err, fmt.Sprintf("(t=%d,%d,%d)", t, from, to)); cerr != nil {
				return nil, cerr
			}
		}
	}
	return tr, nil
}
