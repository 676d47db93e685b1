package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavexform/dsp/core"
)

// MaxSamples bounds the length of a single timebase: 64Mi samples, or
// 512 MiB for the time slice and the same again for its amplitudes.
const MaxSamples = 1 << 26

// ErrTooManySamples indicates a timebase longer than MaxSamples.
var ErrTooManySamples = errors.New("signal: timebase exceeds sample limit")

// Timebase returns the uniform time grid tStart, tStart+dt, tStart+2dt, ...
// with dt = 1/fs, keeping every sample strictly below tEnd.
//
// Samples are computed as tStart + i*dt rather than by accumulating dt.
// The count is ceil((tEnd-tStart)*fs) in exact arithmetic, but near the
// boundary rounding can move it by one in either direction: the last sample
// is checked against tEnd directly and dropped or added accordingly.
func Timebase(tStart, tEnd, fs float64) ([]float64, error) {
	if !(fs > 0) || math.IsInf(fs, 1) {
		return nil, fmt.Errorf("%w: fs must be > 0: %f", core.ErrInvalidSampleRate, fs)
	}
	if !(tEnd > tStart) || math.IsInf(tStart, 0) || math.IsInf(tEnd, 0) {
		return nil, fmt.Errorf("%w: end %f must be after start %f", core.ErrInvalidTimeRange, tEnd, tStart)
	}

	dt := 1.0 / fs
	if math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: fs too small: %g", core.ErrInvalidSampleRate, fs)
	}
	// Below the float64 resolution of the range, consecutive samples collapse.
	if m := math.Max(math.Abs(tStart), math.Abs(tEnd)); m+dt == m {
		return nil, fmt.Errorf("%w: spacing %g below float64 resolution at %g", core.ErrInvalidTimeRange, dt, m)
	}
	count := math.Ceil((tEnd - tStart) * fs)
	if count > MaxSamples {
		return nil, fmt.Errorf("%w: %g samples, limit %d", ErrTooManySamples, count, MaxSamples)
	}
	n := int(count)
	for n > 1 && tStart+float64(n-1)*dt >= tEnd {
		n--
	}
	for tStart+float64(n)*dt < tEnd {
		n++
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = tStart + float64(i)*dt
		if i > 0 && out[i] <= out[i-1] {
			return nil, fmt.Errorf("%w: samples %d and %d coincide at %g", core.ErrInvalidTimeRange, i-1, i, out[i])
		}
	}
	return out, nil
}
