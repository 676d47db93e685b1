package testutil

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	x := Linspace(0, 1, 11)
	if len(x) != 11 {
		t.Fatalf("len = %d, want 11", len(x))
	}
	if x[0] != 0 || x[10] != 1 {
		t.Fatalf("endpoints = %v, %v, want 0, 1", x[0], x[10])
	}
	if math.Abs(x[5]-0.5) > 1e-15 {
		t.Fatalf("x[5] = %v, want 0.5", x[5])
	}
	if Linspace(0, 1, 0) != nil {
		t.Fatal("expected nil for n=0")
	}
	if got := Linspace(3, 7, 1); len(got) != 1 || got[0] != 3 {
		t.Fatalf("Linspace(3, 7, 1) = %v, want [3]", got)
	}
}

func TestReferenceInterp(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 10, 0}
	got := ReferenceInterp([]float64{-1, 0, 0.5, 1, 1.25, 2, 3, math.NaN()}, xs, ys, -7)
	want := []float64{-7, 0, 5, 10, 7.5, 0, -7, -7}
	RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestReferenceInterpEmptyGrid(t *testing.T) {
	got := ReferenceInterp([]float64{0, 1}, nil, nil, 3)
	RequireSliceEqual(t, got, []float64{3, 3})
}
