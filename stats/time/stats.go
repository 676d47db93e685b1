// Package time computes time-domain statistics of sampled signals.
package time

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavexform/dsp/signal"
)

// Stats holds time-domain statistics of a (t, y) pair.
//
//nolint:revive
type Stats struct {
	Length         int
	Start          float64 // t[0]
	End            float64 // t[n-1]
	Duration       float64 // End - Start
	Spacing        float64 // mean sample interval
	DC             float64 // mean
	DC_dB          float64
	RMS            float64
	RMS_dB         float64
	Max            float64
	MaxTime        float64
	Min            float64
	MinTime        float64
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	Range          float64 // max - min
	Range_dB       float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	Power          float64 // energy / length
	ZeroCrossings  int
	Variance       float64
	Skewness       float64
	Kurtosis       float64 // excess kurtosis
}

// ampTodB converts an amplitude to decibels: 20 * log10(|value|).
// Zero maps to -Inf.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}

// ratioTodB converts a linear ratio to decibels. Zero maps to -Inf.
func ratioTodB(value float64) float64 {
	if value == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(value)
}

func emptyStats() Stats {
	return Stats{
		DC_dB:          math.Inf(-1),
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		Range_dB:       math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate computes Stats for amplitudes y sampled at times t in a single
// pass. Empty input yields zero values with -Inf for the dB fields.
func Calculate(t, y []float64) (Stats, error) {
	var s StreamingStats
	if err := s.Update(t, y); err != nil {
		return Stats{}, err
	}
	return s.Result(), nil
}

// Of computes Stats for a series.
func Of(s signal.Series) (Stats, error) {
	return Calculate(s.T, s.Y)
}

// RMS returns the root-mean-square of the signal.
func RMS(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	return math.Sqrt(vecmath.DotProduct(y, y) / float64(len(y)))
}

// DC returns the mean (DC offset) of the signal.
func DC(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	return vecmath.Sum(y) / float64(len(y))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	return vecmath.MaxAbs(y)
}

// CrestFactor returns peak / RMS, or 0 for a silent signal.
func CrestFactor(y []float64) float64 {
	r := RMS(y)
	if r == 0 {
		return 0
	}
	return Peak(y) / r
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(y []float64) int {
	var count int
	for i := 1; i < len(y); i++ {
		if y[i-1]*y[i] < 0 {
			count++
		}
	}
	return count
}

// Moments returns the mean, population variance, skewness and excess kurtosis
// of the signal using Welford's online update.
func Moments(y []float64) (mean, variance, skewness, kurtosis float64) {
	var m moments
	for _, x := range y {
		m.push(x)
	}
	return m.result()
}

// moments accumulates central moments up to the fourth order.
type moments struct {
	n    int
	mean float64
	m2   float64
	m3   float64
	m4   float64
}

func (m *moments) push(x float64) {
	m.n++
	ni := float64(m.n)
	delta := x - m.mean
	deltaN := delta / ni
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * (ni - 1)

	// m4 before m3 before m2: each uses the previous lower moment.
	m.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m.m2 - 4*deltaN*m.m3
	m.m3 += term1*deltaN*(ni-2) - 3*deltaN*m.m2
	m.m2 += term1
	m.mean += deltaN
}

func (m *moments) result() (mean, variance, skewness, kurtosis float64) {
	if m.n == 0 {
		return 0, 0, 0, 0
	}
	nf := float64(m.n)
	variance = m.m2 / nf
	if variance > 0 {
		skewness = (m.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m.m4/nf)/(variance*variance) - 3
	}
	return m.mean, variance, skewness, kurtosis
}

// StreamingStats accumulates Stats over consecutive blocks of one signal.
// Feeding a signal in any number of blocks gives the same result as
// [Calculate] on the whole signal.
type StreamingStats struct {
	mom           moments
	sumSq         float64
	start, end    float64
	maxVal        float64
	maxTime       float64
	minVal        float64
	minTime       float64
	zeroCrossings int
	last          float64
}

// NewStreamingStats creates an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds the block (t, y). It returns core.ErrLengthMismatch, and
// accumulates nothing, when the lengths differ.
func (s *StreamingStats) Update(t, y []float64) error {
	if err := signal.CheckLengths(t, y); err != nil {
		return err
	}
	for i, x := range y {
		if s.mom.n == 0 {
			s.start = t[i]
			s.maxVal, s.maxTime = x, t[i]
			s.minVal, s.minTime = x, t[i]
		} else {
			if x > s.maxVal {
				s.maxVal, s.maxTime = x, t[i]
			}
			if x < s.minVal {
				s.minVal, s.minTime = x, t[i]
			}
			if s.last*x < 0 {
				s.zeroCrossings++
			}
		}
		s.mom.push(x)
		s.sumSq += x * x
		s.end = t[i]
		s.last = x
	}
	return nil
}

// Len returns the number of samples accumulated so far.
func (s *StreamingStats) Len() int {
	return s.mom.n
}

// Result computes the statistics of everything accumulated so far.
func (s *StreamingStats) Result() Stats {
	n := s.mom.n
	if n == 0 {
		return emptyStats()
	}

	nf := float64(n)
	mean, variance, skewness, kurtosis := s.mom.result()
	rms := math.Sqrt(s.sumSq / nf)
	peak := math.Max(math.Abs(s.maxVal), math.Abs(s.minVal))
	rangeVal := s.maxVal - s.minVal

	var crest, crestdB float64
	if rms > 0 {
		crest = peak / rms
		crestdB = ratioTodB(crest)
	}

	st := Stats{
		Length:         n,
		Start:          s.start,
		End:            s.end,
		Duration:       s.end - s.start,
		DC:             mean,
		DC_dB:          ampTodB(mean),
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Max:            s.maxVal,
		MaxTime:        s.maxTime,
		Min:            s.minVal,
		MinTime:        s.minTime,
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		Range:          rangeVal,
		Range_dB:       ampTodB(rangeVal),
		CrestFactor:    crest,
		CrestFactor_dB: crestdB,
		Energy:         s.sumSq,
		Power:          s.sumSq / nf,
		ZeroCrossings:  s.zeroCrossings,
		Variance:       variance,
		Skewness:       skewness,
		Kurtosis:       kurtosis,
	}
	if n > 1 {
		st.Spacing = st.Duration / float64(n-1)
	}
	return st
}

// Reset clears the accumulator for reuse.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
