package testutil

import (
	"fmt"
	"math"
	"testing"
)

// worst returns the index and size of the largest |a[i]-b[i]| and how many
// pairs exceed eps. a and b must have the same length.
func worst(a, b []float64, eps float64) (idx int, diff float64, over int) {
	idx = -1

	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > eps {
			over++
		}

		if idx < 0 || d > diff {
			idx, diff = i, d
		}
	}

	return idx, diff, over
}

// MaxAbsDiff returns max |a[i]-b[i]|, or an error for slices of different
// length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	_, diff, _ := worst(a, b, 0)

	return diff, nil
}

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair is within eps. The failure names the worst sample.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	if i, diff, over := worst(got, want, eps); over > 0 {
		t.Fatalf("%d of %d samples off by more than %g; worst at %d: got %v, want %v (diff %g)",
			over, len(got), eps, i, got[i], want[i], diff)
	}
}

// RequireFinite fails t on the first NaN or Inf in data.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	if i := indexFunc(data, func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }); i >= 0 {
		t.Fatalf("index %d: non-finite value %v", i, data[i])
	}
}

// RequireSilent fails t on the first sample that is not exactly zero.
func RequireSilent(t *testing.T, data []float64) {
	t.Helper()

	if i := indexFunc(data, func(v float64) bool { return v != 0 }); i >= 0 {
		t.Fatalf("index %d: got %v, want exact silence", i, data[i])
	}
}

func indexFunc(data []float64, f func(float64) bool) int {
	for i, v := range data {
		if f(v) {
			return i
		}
	}

	return -1
}
