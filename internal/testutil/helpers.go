// Package testutil provides reusable test helper functions for tone generator tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-matrix-tones/internal/simdops"
)

// Float32Tolerance covers values that went through a float32 WAV file.
const Float32Tolerance = 1e-6

// PeakAbs returns the largest absolute value in s.
func PeakAbs[F simdops.Float](s []F) float64 {
	var peak float64
	for _, v := range s {
		peak = max(peak, math.Abs(float64(v)))
	}
	return peak
}

// AssertSilent verifies that every element is exactly zero.
func AssertSilent[F simdops.Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v != 0 {
			return assert.Fail(t, "found non-zero sample",
				"s[%d]=%g, want exactly 0", i, float64(v))
		}
	}
	return true
}

// AssertNotSilent verifies that at least one element is non-zero.
func AssertNotSilent[F simdops.Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for _, v := range s {
		if v != 0 {
			return true
		}
	}
	return assert.Fail(t, "all samples are zero", msgAndArgs...)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F simdops.Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(float64(v)) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(float64(v), 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange[F simdops.Float](t *testing.T, s []F, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if float64(v) < minVal || float64(v) > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, float64(v), minVal, maxVal)
		}
	}
	return true
}

// AssertComplexInDelta verifies that |expected-actual| is within tolerance.
// Phase comparisons break down near zero magnitude; this does not.
func AssertComplexInDelta(t *testing.T, expected, actual complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if cmplx.Abs(expected-actual) <= tolerance {
		return true
	}
	return assert.Fail(t, "complex values differ",
		"expected %v, actual %v (|diff| %e > %e)", expected, actual, cmplx.Abs(expected-actual), tolerance)
}
