//go:build !fastmath

package signal

import "math"

// sineTolerance bounds |sin(x) - math.Sin(x)|.
const sineTolerance = 1e-12

// sin is the sine kernel used by the generators.
func sin(x float64) float64 {
	return math.Sin(x)
}
