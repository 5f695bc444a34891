// Package testutil provides reusable assertion helpers for series and
// signal tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertRelativeError verifies that actual is within a relative
// tolerance of expected, falling back to an absolute check when the
// expected value is zero.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertNoNaNOrInf verifies that no elements of the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertEvenSamples verifies that samples ys taken over a grid symmetric
// about zero satisfy f(-x) = f(x).
func AssertEvenSamples(t *testing.T, ys []float64, tolerance float64) bool {
	t.Helper()
	n := len(ys)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, ys[i], ys[j], tolerance,
			"not even at mirrored pair %d/%d: %f != %f", i, j, ys[i], ys[j]) {
			return false
		}
	}
	return true
}

// AssertOddSamples verifies that samples ys taken over a grid symmetric
// about zero satisfy f(-x) = -f(x).
func AssertOddSamples(t *testing.T, ys []float64, tolerance float64) bool {
	t.Helper()
	n := len(ys)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, ys[i], -ys[j], tolerance,
			"not odd at mirrored pair %d/%d: %f != %f", i, j, ys[i], -ys[j]) {
			return false
		}
	}
	return true
}

// AssertDecayingMagnitude verifies that coefficient magnitudes trend
// downward: every element is no larger than ratio times the running
// peak of its predecessors. Zero entries (pruned harmonics) are skipped.
func AssertDecayingMagnitude(t *testing.T, coeffs []float64, ratio float64) bool {
	t.Helper()
	peak := 0.0
	for i, c := range coeffs {
		a := math.Abs(c)
		if a == 0 {
			continue
		}
		if peak > 0 && a > ratio*peak {
			return assert.Fail(t, "magnitude not decaying",
				"|coeffs[%d]|=%e exceeds %f * running peak %e", i, a, ratio, peak)
		}
		if a > peak {
			peak = a
		}
	}
	return true
}
