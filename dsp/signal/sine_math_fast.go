//go:build fastmath

package signal

import (
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-wavexform/dsp/core"
)

// sineTolerance bounds |sin(x) - math.Sin(x)| for the 7-term polynomial.
const sineTolerance = 1e-9

// sin computes the sine kernel with the high-precision polynomial and clamps
// it to [-1, 1] so generated amplitudes never exceed amp.
func sin(x float64) float64 {
	return core.Clamp(approx.FastSinPrec(x, approx.PrecisionHigh), -1, 1)
}
