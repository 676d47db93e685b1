package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavexform/dsp/core"
	"github.com/cwbudde/algo-wavexform/internal/testutil"
)

func TestNewGridErrors(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
		want   error
	}{
		{name: "length", xs: []float64{0, 1}, ys: []float64{0}, want: core.ErrLengthMismatch},
		{name: "empty", want: ErrEmptyGrid},
		{name: "unsorted", xs: []float64{0, 2, 1}, ys: []float64{0, 0, 0}, want: ErrUnsortedGrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.xs, tt.ys); !errors.Is(err, tt.want) {
				t.Fatalf("NewGrid() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGridAt(t *testing.T) {
	g, err := NewGrid([]float64{0, 0.1, 0.2, 0.3}, []float64{10, 11, 12, 13})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	tests := []struct {
		name string
		q    float64
		want float64
	}{
		{name: "lower boundary", q: 0, want: 10},
		{name: "upper boundary", q: 0.3, want: 13},
		{name: "exact knot", q: 0.2, want: 12},
		{name: "midpoint", q: 0.05, want: 10.5},
		{name: "below", q: -0.01, want: -1},
		{name: "above", q: 0.31, want: -1},
		{name: "nan", q: math.NaN(), want: -1},
		{name: "inf", q: math.Inf(1), want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.At(tt.q, -1, ModeLinear)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("At(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestGridSingleSample(t *testing.T) {
	g, err := NewGrid([]float64{2}, []float64{7})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	if got := g.At(2, 0, ModeLinear); got != 7 {
		t.Fatalf("At(2) = %v, want 7", got)
	}
	if got := g.At(2.5, 0, ModeHermite); got != 0 {
		t.Fatalf("At(2.5) = %v, want fill", got)
	}
	lo, hi := g.Domain()
	if lo != 2 || hi != 2 || g.Len() != 1 {
		t.Fatalf("Domain() = [%v, %v], Len() = %d", lo, hi, g.Len())
	}
}

func TestGridResampleMatchesReference(t *testing.T) {
	xs := testutil.Linspace(0, 1, 21)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(2 * math.Pi * 3 * x)
	}
	g, err := NewGrid(xs, ys)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}

	queries := testutil.Linspace(-0.2, 1.2, 57)
	got := g.Resample(nil, queries, 0.5, ModeLinear)
	want := testutil.ReferenceInterp(queries, xs, ys, 0.5)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestGridResampleReusesBuffer(t *testing.T) {
	g, err := NewGrid([]float64{0, 1}, []float64{0, 2})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	buf := make([]float64, 0, 8)
	out := g.Resample(buf, []float64{0.25, 0.5}, 0, ModeLinear)
	if &out[0] != &buf[:1][0] {
		t.Fatal("expected Resample to reuse dst capacity")
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0.5, 1}, 1e-15)
}

func TestGridHermiteExactOnRamp(t *testing.T) {
	xs := testutil.Linspace(0, 1, 11)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x - 1
	}
	g, err := NewGrid(xs, ys)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	// Interior segments have both neighbours available.
	for _, q := range []float64{0.15, 0.33, 0.5, 0.71, 0.85} {
		got := g.At(q, 0, ModeHermite)
		if want := 3*q - 1; math.Abs(got-want) > 1e-12 {
			t.Fatalf("At(%v) = %v, want %v", q, got, want)
		}
	}
}

func BenchmarkGridResample(b *testing.B) {
	xs := testutil.Linspace(0, 1, 4096)
	ys := make([]float64, len(xs))
	g, _ := NewGrid(xs, ys)
	queries := testutil.Linspace(-0.1, 1.1, 4096)
	dst := make([]float64, len(queries))
	b.ResetTimer()
	for range b.N {
		dst = g.Resample(dst, queries, 0, ModeLinear)
	}
}
