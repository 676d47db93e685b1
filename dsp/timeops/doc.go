// Package timeops applies affine time-domain transforms to sampled signals.
//
// Operators:
//
//   - [Shift]:         x(t) -> x(t - tau); relabels time, amplitudes untouched
//   - [Scale]:         x(t) -> x(a*t); resampled on the input grid
//   - [ShiftAndScale]: x(t) -> x(a*t - tau); resampled on the input grid
//
// Shift never interpolates, while Scale and ShiftAndScale always do. As a
// consequence ShiftAndScale is not the composition of Shift and Scale: it
// evaluates the input at a*t - tau on the original grid, whereas Shift moves
// the grid itself.
//
// Resampling uses piecewise-linear interpolation by default ([WithMode]
// selects another kernel). Query points outside [t[0], t[n-1]] take the fill
// value ([WithFill], default 0).
//
// All functions are pure and safe for concurrent use. [ApplyAll] fans an
// [Operator] out over many series.
package timeops
