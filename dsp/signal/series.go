package signal

import (
	"fmt"

	"github.com/cwbudde/algo-wavexform/dsp/core"
)

// Series is a sampled signal: Y[i] is the amplitude at time T[i].
// T is expected in ascending order; generators guarantee it.
type Series struct {
	T []float64
	Y []float64
}

// NewSeries pairs t and y without copying.
// It returns core.ErrLengthMismatch when the lengths differ.
func NewSeries(t, y []float64) (Series, error) {
	s := Series{T: t, Y: y}
	if err := s.Validate(); err != nil {
		return Series{}, err
	}
	return s, nil
}

// Validate reports core.ErrLengthMismatch when T and Y differ in length.
func (s Series) Validate() error {
	return CheckLengths(s.T, s.Y)
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.T)
}

// Duration returns the span between the first and last time sample.
func (s Series) Duration() float64 {
	if len(s.T) < 2 {
		return 0
	}
	return s.T[len(s.T)-1] - s.T[0]
}

// Clone returns a deep copy of s.
func (s Series) Clone() Series {
	return Series{
		T: append([]float64(nil), s.T...),
		Y: append([]float64(nil), s.Y...),
	}
}

// CheckLengths returns a wrapped core.ErrLengthMismatch when len(t) != len(y).
func CheckLengths(t, y []float64) error {
	if len(t) != len(y) {
		return fmt.Errorf("%w: len(t)=%d, len(y)=%d", core.ErrLengthMismatch, len(t), len(y))
	}
	return nil
}
