package interp

import (
	"fmt"
	"strings"
)

// Mode selects the interpolation kernel used between grid samples.
type Mode int

const (
	// ModeLinear interpolates between the two bracketing samples.
	ModeLinear Mode = iota
	// ModeHermite uses the cubic Hermite kernel over four neighbouring samples.
	// It assumes roughly uniform spacing; neighbours are clamped at the edges.
	ModeHermite
)

func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeHermite:
		return "hermite"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "linear" or "hermite" (case-insensitive) to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "":
		return ModeLinear, nil
	case "hermite", "cubic":
		return ModeHermite, nil
	default:
		return 0, fmt.Errorf("interp: unknown mode %q", name)
	}
}

// Linear2 interpolates from x0 (frac = 0) to x1 (frac = 1).
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
