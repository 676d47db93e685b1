package timeops

import (
	"github.com/cwbudde/algo-wavexform/dsp/core"
	"github.com/cwbudde/algo-wavexform/dsp/interp"
)

type config struct {
	fill float64
	mode interp.Mode
}

// Option configures the resampling operators.
type Option func(*config)

// WithFill sets the amplitude used for queries outside the input time domain.
func WithFill(fill float64) Option {
	return func(cfg *config) {
		cfg.fill = fill
	}
}

// WithMode selects the interpolation kernel.
func WithMode(mode interp.Mode) Option {
	return func(cfg *config) {
		cfg.mode = mode
	}
}

// WithProcessorConfig takes the fill value from a shared processor config.
func WithProcessorConfig(pc core.ProcessorConfig) Option {
	return func(cfg *config) {
		cfg.fill = pc.FillValue
	}
}

func applyOptions(opts []Option) config {
	cfg := config{fill: 0, mode: interp.ModeLinear}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
