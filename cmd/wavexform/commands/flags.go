package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wavexform/dsp/interp"
	"github.com/cwbudde/algo-wavexform/dsp/signal"
	"github.com/cwbudde/algo-wavexform/dsp/timeops"
)

func addSignalFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("freq", defaultFreq, "Frequency in Hz")
	cmd.Flags().Float64("amp", defaultAmp, "Peak amplitude")
	cmd.Flags().Float64("phase", 0, "Phase offset in radians (sine only)")
	cmd.Flags().Float64("fs", defaultFS, "Sampling rate in Hz")
	cmd.Flags().Float64("t0", defaultT0, "Start time in seconds")
	cmd.Flags().Float64("t1", defaultT1, "End time in seconds (exclusive)")
}

func addTransformFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("tau", defaultTau, "Time shift in seconds (positive delays)")
	cmd.Flags().Float64("scale", defaultScale, "Time scale factor (>1 compresses, <1 stretches)")
	cmd.Flags().Float64("fill", defaultFill, "Amplitude outside the interpolation domain")
	cmd.Flags().String("mode", interp.ModeLinear.String(), "Interpolation mode: linear or hermite")
}

func signalParams(cmd *cobra.Command) signal.Params {
	f := cmd.Flags()
	freq, _ := f.GetFloat64("freq")
	amp, _ := f.GetFloat64("amp")
	phase, _ := f.GetFloat64("phase")
	fs, _ := f.GetFloat64("fs")
	t0, _ := f.GetFloat64("t0")
	t1, _ := f.GetFloat64("t1")
	return signal.Params{Freq: freq, Amp: amp, Phase: phase, T0: t0, T1: t1, SampleRate: fs}
}

// transformParams holds the per-call transform settings.
type transformParams struct {
	tau   float64
	scale float64
	opts  []timeops.Option
}

func readTransformParams(cmd *cobra.Command) (transformParams, error) {
	f := cmd.Flags()
	tau, _ := f.GetFloat64("tau")
	scale, _ := f.GetFloat64("scale")
	fill, _ := f.GetFloat64("fill")
	modeName, _ := f.GetString("mode")
	mode, err := interp.ParseMode(modeName)
	if err != nil {
		return transformParams{}, err
	}
	return transformParams{
		tau:   tau,
		scale: scale,
		opts:  []timeops.Option{timeops.WithFill(fill), timeops.WithMode(mode)},
	}, nil
}

func kindArg(args []string) (signal.Kind, error) {
	if len(args) == 0 {
		return signal.KindSine, nil
	}
	return signal.ParseKind(args[0])
}

// operator resolves an --op name to a transform.
func (p transformParams) operator(name string) (timeops.Operator, error) {
	switch name {
	case "shift":
		return timeops.ShiftBy(p.tau), nil
	case "scale":
		return timeops.ScaleBy(p.scale, p.opts...), nil
	case "combined", "shift-scale":
		return timeops.ShiftAndScaleBy(p.tau, p.scale, p.opts...), nil
	default:
		return nil, fmt.Errorf("unknown operation %q (want shift, scale or combined)", name)
	}
}
