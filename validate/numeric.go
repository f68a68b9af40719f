// SPDX-License-Identifier: MIT

// Package validate - numeric coercion helpers and bound checks shared by
// the primitive validators. All helpers are pure and allocation-free.
package validate

import (
	"fmt"
	"math"
)

// Bound is one side of a numeric constraint: the limit value plus an
// open/closed flag. The zero value is a closed bound at 0.
type Bound struct {
	Value float64
	// Open marks the bound exclusive: the limit itself is rejected.
	Open bool
}

// Closed returns an inclusive bound at x (value ≤/≥ x accepted).
func Closed(x float64) *Bound { return &Bound{Value: x} }

// Open returns an exclusive bound at x (value must be strictly beyond x).
func Open(x float64) *Bound { return &Bound{Value: x, Open: true} }

// describe renders a bound pair as a contract fragment, e.g. "in [0, 1]",
// "in (0, +inf)", ">= 5".
func describeBounds(lower, upper *Bound) string {
	switch {
	case lower != nil && upper != nil:
		lo, hi := "[", "]"
		if lower.Open {
			lo = "("
		}
		if upper.Open {
			hi = ")"
		}
		return fmt.Sprintf("in %s%g, %g%s", lo, lower.Value, upper.Value, hi)
	case lower != nil:
		op := ">="
		if lower.Open {
			op = ">"
		}
		return fmt.Sprintf("%s %g", op, lower.Value)
	case upper != nil:
		op := "<="
		if upper.Open {
			op = "<"
		}
		return fmt.Sprintf("%s %g", op, upper.Value)
	default:
		return "any finite value"
	}
}

// checkBounds verifies lower ≤/< x ≤/< upper per each bound's Open flag.
// The returned error names the violated side; nil bounds are unbounded.
func checkBounds(validator string, x float64, lower, upper *Bound, received any) error {
	if lower != nil {
		if x < lower.Value || (lower.Open && x == lower.Value) {
			return newError(validator, fmt.Sprintf("value %s", describeBounds(lower, upper)), received, ErrRangeViolation)
		}
	}
	if upper != nil {
		if x > upper.Value || (upper.Open && x == upper.Value) {
			return newError(validator, fmt.Sprintf("value %s", describeBounds(lower, upper)), received, ErrRangeViolation)
		}
	}
	return nil
}

// asFloat coerces any Go numeric kind to float64. The bool result reports
// whether v was numeric at all; NaN/±Inf are reported as non-coercible so
// every downstream validator shares one finiteness policy.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case float32:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// asInt coerces v to int64. Integer kinds convert directly; float kinds
// are accepted only when their value is integral (5.0 yes, 5.5 no) and
// representable in int64. Everything else is rejected.
func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float32, float64:
		f, ok := asFloat(v)
		if !ok || math.Trunc(f) != f || f < math.MinInt64 || f > math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

// isIntKind reports whether v is one of Go's integer kinds (floats with
// integral values do not count; used where a true integer is required).
func isIntKind(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
