package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavexform/dsp/core"
)

// Sine generates amp * sin(2*pi*freq*t + phase) on Timebase(t0, t1, fs).
// Zero or negative frequencies are valid and yield a constant or
// time-reversed waveform.
func Sine(freq, t0, t1, amp, fs, phase float64) (Series, error) {
	t, err := Timebase(t0, t1, fs)
	if err != nil {
		return Series{}, err
	}
	y := make([]float64, len(t))
	w := 2 * math.Pi * freq
	for i, ti := range t {
		y[i] = sin(w*ti + phase)
	}
	vecmath.ScaleBlockInPlace(y, amp)
	return Series{T: t, Y: y}, nil
}

// Triangle generates a symmetric triangle wave of peak amp on Timebase(t0, t1, fs).
//
// The shape is 2*|2*frac-1|-1 with frac = (freq*t) mod 1 in [0, 1):
// +amp where freq*t is an integer, -amp half a period later, linear in between.
func Triangle(freq, t0, t1, amp, fs float64) (Series, error) {
	t, err := Timebase(t0, t1, fs)
	if err != nil {
		return Series{}, err
	}
	y := make([]float64, len(t))
	for i, ti := range t {
		frac := core.Frac(freq * ti)
		y[i] = 2*math.Abs(2*frac-1) - 1
	}
	vecmath.ScaleBlockInPlace(y, amp)
	return Series{T: t, Y: y}, nil
}

// Generator produces waveforms at a configured sample rate.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Timebase returns the generator's time grid over [t0, t1).
func (g *Generator) Timebase(t0, t1 float64) ([]float64, error) {
	return Timebase(t0, t1, g.cfg.SampleRate)
}

// Sine generates a sine wave at the generator's sample rate.
func (g *Generator) Sine(freq, t0, t1, amp, phase float64) (Series, error) {
	return Sine(freq, t0, t1, amp, g.cfg.SampleRate, phase)
}

// Triangle generates a triangle wave at the generator's sample rate.
func (g *Generator) Triangle(freq, t0, t1, amp float64) (Series, error) {
	return Triangle(freq, t0, t1, amp, g.cfg.SampleRate)
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, errors.New("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
