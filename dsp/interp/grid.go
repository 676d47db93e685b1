package interp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-wavexform/dsp/core"
)

var (
	// ErrEmptyGrid indicates a grid without samples.
	ErrEmptyGrid = errors.New("interp: empty grid")
	// ErrUnsortedGrid indicates grid abscissae that are not in ascending order.
	ErrUnsortedGrid = errors.New("interp: grid not sorted ascending")
)

// Grid is a sampled function ys = f(xs) with ascending xs.
// It holds references to the caller's slices and never modifies them.
type Grid struct {
	xs []float64
	ys []float64
}

// NewGrid validates xs and ys and wraps them without copying.
func NewGrid(xs, ys []float64) (*Grid, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(xs)=%d, len(ys)=%d", core.ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, ErrEmptyGrid
	}
	if !core.IsSorted(xs) {
		return nil, ErrUnsortedGrid
	}
	return &Grid{xs: xs, ys: ys}, nil
}

// Len returns the number of grid samples.
func (g *Grid) Len() int {
	return len(g.xs)
}

// Domain returns the closed interval [xs[0], xs[n-1]] covered by the grid.
func (g *Grid) Domain() (lo, hi float64) {
	return g.xs[0], g.xs[len(g.xs)-1]
}

// At evaluates the grid at q.
//
// Queries outside the domain, and NaN queries, return fill. The domain
// boundaries are inside. A query equal to a grid abscissa returns that
// sample exactly.
func (g *Grid) At(q, fill float64, mode Mode) float64 {
	n := len(g.xs)
	if !(q >= g.xs[0] && q <= g.xs[n-1]) {
		return fill
	}

	k := sort.SearchFloat64s(g.xs, q)
	if g.xs[k] == q {
		return g.ys[k]
	}

	// xs[k-1] < q < xs[k]
	x0, x1 := g.xs[k-1], g.xs[k]
	frac := (q - x0) / (x1 - x0)

	if mode == ModeHermite {
		ym1 := g.ys[max(k-2, 0)]
		y2 := g.ys[min(k+1, n-1)]
		return Hermite4(frac, ym1, g.ys[k-1], g.ys[k], y2)
	}
	return Linear2(frac, g.ys[k-1], g.ys[k])
}

// Resample evaluates the grid at every query and writes the results to dst,
// reusing its capacity when possible. It returns the filled slice.
func (g *Grid) Resample(dst, queries []float64, fill float64, mode Mode) []float64 {
	if cap(dst) >= len(queries) {
		dst = dst[:len(queries)]
	} else {
		dst = make([]float64, len(queries))
	}
	for i, q := range queries {
		dst[i] = g.At(q, fill, mode)
	}
	return dst
}
