package signal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates an unsupported waveform name.
var ErrUnknownKind = errors.New("signal: unknown waveform kind")

// Kind selects a waveform.
type Kind int

const (
	// KindSine selects [Sine].
	KindSine Kind = iota
	// KindTriangle selects [Triangle].
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindSine:
		return "sine"
	case KindTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a case-insensitive name ("sine", "triangle") to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return KindSine, nil
	case "triangle", "tri":
		return KindTriangle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Params collects the generation-time signal parameters.
// Phase is in radians and only used by sine waves.
type Params struct {
	Freq       float64
	Amp        float64
	Phase      float64
	T0, T1     float64
	SampleRate float64
}

// Generate dispatches to the generator selected by kind.
func Generate(kind Kind, p Params) (Series, error) {
	switch kind {
	case KindSine:
		return Sine(p.Freq, p.T0, p.T1, p.Amp, p.SampleRate, p.Phase)
	case KindTriangle:
		return Triangle(p.Freq, p.T0, p.T1, p.Amp, p.SampleRate)
	default:
		return Series{}, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
