package timeops

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-wavexform/dsp/signal"
)

// Operator transforms one series into a new one.
type Operator func(signal.Series) (signal.Series, error)

// ShiftBy returns an Operator applying [Shift].
func ShiftBy(tau float64) Operator {
	return func(s signal.Series) (signal.Series, error) {
		t, y, err := Shift(s.T, s.Y, tau)
		if err != nil {
			return signal.Series{}, err
		}
		return signal.Series{T: t, Y: y}, nil
	}
}

// ScaleBy returns an Operator applying [Scale].
func ScaleBy(a float64, opts ...Option) Operator {
	return func(s signal.Series) (signal.Series, error) {
		t, y, err := Scale(s.T, s.Y, a, opts...)
		if err != nil {
			return signal.Series{}, err
		}
		return signal.Series{T: t, Y: y}, nil
	}
}

// ShiftAndScaleBy returns an Operator applying [ShiftAndScale].
func ShiftAndScaleBy(tau, a float64, opts ...Option) Operator {
	return func(s signal.Series) (signal.Series, error) {
		t, y, err := ShiftAndScale(s.T, s.Y, tau, a, opts...)
		if err != nil {
			return signal.Series{}, err
		}
		return signal.Series{T: t, Y: y}, nil
	}
}

// Chain applies ops in order. An empty chain returns its input unchanged.
// The first failing operator aborts the chain.
func Chain(ops ...Operator) Operator {
	return func(s signal.Series) (signal.Series, error) {
		var err error
		for _, op := range ops {
			if s, err = op(s); err != nil {
				return signal.Series{}, err
			}
		}
		return s, nil
	}
}

// ApplyAll runs op on every input series concurrently and returns the
// results in input order.
//
// limit bounds the number of concurrent jobs; limit <= 0 means unbounded.
// The first error cancels the remaining jobs and is returned without partial
// results.
func ApplyAll(ctx context.Context, in []signal.Series, op Operator, limit int) ([]signal.Series, error) {
	out := make([]signal.Series, len(in))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, s := range in {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := op(s)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
