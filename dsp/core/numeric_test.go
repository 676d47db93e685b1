package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFrac(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{x: 0, want: 0},
		{x: 0.25, want: 0.25},
		{x: 3, want: 0},
		{x: 2.5, want: 0.5},
		{x: -0.25, want: 0.75},
		{x: -2, want: 0},
		{x: -1e-18, want: 0},
	}
	for _, tt := range tests {
		got := Frac(tt.x)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Frac(%v) = %v, want %v", tt.x, got, tt.want)
		}
		if got < 0 || got >= 1 {
			t.Fatalf("Frac(%v) = %v outside [0,1)", tt.x, got)
		}
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted(nil) || !IsSorted([]float64{1}) || !IsSorted([]float64{0, 0, 1}) {
		t.Fatal("expected sorted inputs to be reported sorted")
	}
	if IsSorted([]float64{0, 2, 1}) {
		t.Fatal("expected unsorted input to be reported")
	}
}
