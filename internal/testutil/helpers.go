// Package testutil provides reusable test helper functions for envelope
// curve tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance suits exact closed-form comparisons.
	DefaultTolerance = 1e-10

	// InterpTolerance suits values reconstructed through marching linear
	// interpolation (Bezier, Catmull-Rom).
	InterpTolerance = 1e-2
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
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

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertEndpoints verifies the segment endpoint contract under the
// exclusive sampling convention: the first sample equals yStart within
// startTol, and the last sample lands within endTol of yEnd (the buffer
// only approaches the target, so endTol should scale with span/n).
func AssertEndpoints(t *testing.T, s []float64, yStart, yEnd, startTol, endTol float64) bool {
	t.Helper()
	if !assert.InDelta(t, yStart, s[0], startTol, "first sample") {
		return false
	}
	return assert.InDelta(t, yEnd, s[len(s)-1], endTol, "last sample")
}

// AssertPeakMatches verifies that peak equals the maximum absolute sample.
func AssertPeakMatches(t *testing.T, s []float64, peak float64) bool {
	t.Helper()
	want := 0.0
	for _, v := range s {
		if a := math.Abs(v); a > want {
			want = a
		}
	}
	return assert.InDelta(t, want, peak, DefaultTolerance, "peak")
}
