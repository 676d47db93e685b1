package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavexform/dsp/core"
	"github.com/cwbudde/algo-wavexform/internal/testutil"
)

func TestSineLengthAndRange(t *testing.T) {
	s, err := Sine(5, 0, 2, 2, 200, 0)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s.T) != 400 || len(s.Y) != 400 {
		t.Fatalf("len = %d/%d, want 400", len(s.T), len(s.Y))
	}
	testutil.RequireBounded(t, s.Y, 2, 1e-9)
	testutil.RequireFinite(t, s.Y)
}

func TestSineValues(t *testing.T) {
	// fs = 4*freq samples the quarter-period points 0, 1, 0, -1.
	s, err := Sine(250, 0, 0.005, 1, 1000, 0)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, s.Y, []float64{0, 1, 0, -1, 0}, sineTolerance)
}

func TestSinePhase(t *testing.T) {
	s, err := Sine(1, 0, 1, 3, 8, math.Pi/2)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if math.Abs(s.Y[0]-3) > sineTolerance {
		t.Fatalf("y[0] = %v, want 3 (cosine start)", s.Y[0])
	}
}

func TestSineDegenerateFrequencies(t *testing.T) {
	zero, err := Sine(0, 0, 1, 2, 10, math.Pi/2)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	for i, v := range zero.Y {
		if math.Abs(v-2) > sineTolerance {
			t.Fatalf("y[%d] = %v, want constant 2", i, v)
		}
	}

	pos, err := Sine(3, 0, 1, 1, 50, 0)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	neg, err := Sine(-3, 0, 1, 1, 50, 0)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	for i := range pos.Y {
		if math.Abs(pos.Y[i]+neg.Y[i]) > sineTolerance {
			t.Fatalf("index %d: negative frequency must flip the waveform", i)
		}
	}
}

func TestGeneratorErrors(t *testing.T) {
	if _, err := Sine(5, 0, 1, 1, 0, 0); !errors.Is(err, core.ErrInvalidSampleRate) {
		t.Fatalf("Sine() error = %v, want ErrInvalidSampleRate", err)
	}
	if _, err := Triangle(5, 1, 0, 1, 10); !errors.Is(err, core.ErrInvalidTimeRange) {
		t.Fatalf("Triangle() error = %v, want ErrInvalidTimeRange", err)
	}
}

func TestTriangleLengthAndRange(t *testing.T) {
	s, err := Triangle(5, 0, 2, 1, 200)
	if err != nil {
		t.Fatalf("Triangle() error = %v", err)
	}
	if len(s.T) != 400 || len(s.Y) != 400 {
		t.Fatalf("len = %d/%d, want 400", len(s.T), len(s.Y))
	}
	testutil.RequireBounded(t, s.Y, 1, 1e-9)
}

func TestTriangleVertices(t *testing.T) {
	const amp = 2.5
	// freq*t hits integers at even samples and half-integers at odd samples.
	s, err := Triangle(5, 0, 1, amp, 10)
	if err != nil {
		t.Fatalf("Triangle() error = %v", err)
	}
	for i, v := range s.Y {
		want := amp
		if i%2 == 1 {
			want = -amp
		}
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("y[%d] at t=%v = %v, want %v", i, s.T[i], v, want)
		}
	}
}

func TestTriangleNegativeTime(t *testing.T) {
	s, err := Triangle(1, -1, 1, 1, 8)
	if err != nil {
		t.Fatalf("Triangle() error = %v", err)
	}
	// Samples at t and t+1 share the same fractional phase.
	for i := 0; i+8 < len(s.Y); i++ {
		if math.Abs(s.Y[i]-s.Y[i+8]) > 1e-12 {
			t.Fatalf("index %d: period mismatch %v vs %v", i, s.Y[i], s.Y[i+8])
		}
	}
	// t = -0.25 has frac 0.75: 2*|0.5|-1 = 0.
	if math.Abs(s.Y[6]) > 1e-12 {
		t.Fatalf("y at t=%v = %v, want 0", s.T[6], s.Y[6])
	}
}

func TestTriangleLinearSegments(t *testing.T) {
	s, err := Triangle(1, 0, 1, 1, 8)
	if err != nil {
		t.Fatalf("Triangle() error = %v", err)
	}
	want := []float64{1, 0.5, 0, -0.5, -1, -0.5, 0, 0.5}
	testutil.RequireSliceNearlyEqual(t, s.Y, want, 1e-12)
}

func TestGenerator(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(100))
	if g.Config().SampleRate != 100 {
		t.Fatalf("SampleRate = %v, want 100", g.Config().SampleRate)
	}
	s, err := g.Sine(5, 0, 1, 1, 0)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	direct, err := Sine(5, 0, 1, 1, 100, 0)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	testutil.RequireSliceEqual(t, s.Y, direct.Y)

	tri, err := g.Triangle(5, 0, 1, 1)
	if err != nil {
		t.Fatalf("Triangle() error = %v", err)
	}
	if tri.Len() != 100 {
		t.Fatalf("len = %d, want 100", tri.Len())
	}

	tb, err := g.Timebase(0, 0.5)
	if err != nil {
		t.Fatalf("Timebase() error = %v", err)
	}
	if len(tb) != 50 {
		t.Fatalf("len = %d, want 50", len(tb))
	}
}

func TestGeneratorInvalidRate(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(-1))
	if _, err := g.Sine(5, 0, 1, 1, 0); !errors.Is(err, core.ErrInvalidSampleRate) {
		t.Fatalf("Sine() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}

	silent, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	testutil.RequireSliceEqual(t, silent, []float64{0, 0})

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative target")
	}
}

func BenchmarkTriangle(b *testing.B) {
	for range b.N {
		_, _ = Triangle(440, 0, 1, 1, 48000)
	}
}
