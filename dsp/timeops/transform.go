package timeops

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavexform/dsp/core"
	"github.com/cwbudde/algo-wavexform/dsp/interp"
	"github.com/cwbudde/algo-wavexform/dsp/signal"
)

// Shift delays a signal by tau seconds without resampling.
//
// It returns a new time slice t[i]+tau and y itself: the amplitudes are the
// caller's slice, not a copy.
func Shift(t, y []float64, tau float64) ([]float64, []float64, error) {
	if err := signal.CheckLengths(t, y); err != nil {
		return nil, nil, err
	}
	ts := make([]float64, len(t))
	for i, v := range t {
		ts[i] = v + tau
	}
	return ts, y, nil
}

// Scale resamples the signal at a*t[i] on its own time grid.
//
// a > 1 compresses the waveform in time, 0 < a < 1 stretches it, and a < 0
// mirrors it. The returned time slice is a copy of t.
func Scale(t, y []float64, a float64, opts ...Option) ([]float64, []float64, error) {
	return resample(t, y, a, 0, applyOptions(opts))
}

// ShiftAndScale resamples the signal at a*t[i] - tau on its own time grid,
// i.e. it implements x(t) -> x(a*t - tau). Scaling applies to the time
// variable before the shift is subtracted.
func ShiftAndScale(t, y []float64, tau, a float64, opts ...Option) ([]float64, []float64, error) {
	return resample(t, y, a, tau, applyOptions(opts))
}

func resample(t, y []float64, a, tau float64, cfg config) ([]float64, []float64, error) {
	if err := checkScale(a); err != nil {
		return nil, nil, err
	}
	if err := signal.CheckLengths(t, y); err != nil {
		return nil, nil, err
	}
	if len(t) == 0 {
		return []float64{}, []float64{}, nil
	}

	g, err := interp.NewGrid(t, y)
	if err != nil {
		return nil, nil, err
	}

	queries := make([]float64, len(t))
	vecmath.ScaleBlock(queries, t, a)
	if tau != 0 {
		for i := range queries {
			queries[i] -= tau
		}
	}

	// The resampled amplitudes overwrite the query buffer in place.
	out := g.Resample(queries[:0], queries, cfg.fill, cfg.mode)
	return append([]float64(nil), t...), out, nil
}

func checkScale(a float64) error {
	if a == 0 || math.IsNaN(a) {
		return fmt.Errorf("%w: a must be nonzero: %v", core.ErrInvalidScaleFactor, a)
	}
	return nil
}
