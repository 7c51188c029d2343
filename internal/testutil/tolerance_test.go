package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{0.5, -1.0, 2.0}
	b := []float64{0.5, -1.25, 2.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.25) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.25", d)
	}
}

func TestMaxAbsDiff_LengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiff_Identical(t *testing.T) {
	a := []float64{1, 2, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestRequireSliceNearlyEqual_Passes(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1.0, 2.0}, []float64{1.0 + 1e-12, 2.0}, 1e-9)
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3}, 0)
}

func TestRequireFinite_Passes(t *testing.T) {
	RequireFinite(t, []float64{0, -1.5, math.MaxFloat64})
	RequireFinite(t, nil)
}
