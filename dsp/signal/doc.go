// Package signal synthesizes sampled periodic waveforms on a uniform time grid.
//
// Every generator returns a [Series]: an ordered pair of equal-length time and
// amplitude slices. Time samples start at t0 and advance by 1/fs while they
// stay strictly below t1 (half-open window). See [Timebase] for the boundary
// rules.
//
// Available waveforms:
//
//   - [Sine]:     amp * sin(2*pi*freq*t + phase)
//   - [Triangle]: symmetric unit-period triangle folded from the fractional phase
//
// Building with the fastmath tag swaps the sine kernel for the polynomial
// approximation from algo-approx.
package signal
