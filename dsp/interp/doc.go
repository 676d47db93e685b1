// Package interp provides interpolation primitives for resampling sampled signals.
//
// Kernels:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//
// [Grid] evaluates a sampled function (xs, ys) with ascending xs at arbitrary
// query points. Queries outside [xs[0], xs[n-1]] return a caller-supplied fill
// value instead of extrapolating. The [Mode] enum selects the kernel.
package interp
