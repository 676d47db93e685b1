package testutil

// Linspace returns n evenly spaced samples over [start, stop], both ends included.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// ReferenceInterp evaluates the piecewise-linear interpolant of (xs, ys) at
// every query with a plain linear scan. Queries outside [xs[0], xs[n-1]]
// (and NaN queries) yield fill. It is deliberately naive so that tests can
// compare the optimized implementation against it.
func ReferenceInterp(queries, xs, ys []float64, fill float64) []float64 {
	out := make([]float64, len(queries))
	for i, q := range queries {
		out[i] = fill
		if len(xs) == 0 || !(q >= xs[0]) || !(q <= xs[len(xs)-1]) {
			continue
		}
		for k := range xs {
			if q == xs[k] {
				out[i] = ys[k]
				break
			}
			if k+1 < len(xs) && q > xs[k] && q < xs[k+1] {
				w := (q - xs[k]) / (xs[k+1] - xs[k])
				out[i] = ys[k] + w*(ys[k+1]-ys[k])
				break
			}
		}
	}
	return out
}
