package core

// ProcessorConfig defines settings shared by generators and resampling operators.
type ProcessorConfig struct {
	SampleRate float64
	FillValue  float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used by the demo workflow:
// 200 Hz sampling and a zero fill value.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 200,
		FillValue:  0,
	}
}

// WithSampleRate sets the sampling rate in Hz.
// Invalid rates are kept so that generation reports ErrInvalidSampleRate
// instead of silently falling back to the default.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.SampleRate = sampleRate
	}
}

// WithFillValue sets the amplitude used outside the interpolation domain.
func WithFillValue(fill float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.FillValue = fill
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports ErrInvalidSampleRate for a non-positive or NaN rate.
func (c ProcessorConfig) Validate() error {
	if !(c.SampleRate > 0) {
		return ErrInvalidSampleRate
	}
	return nil
}
