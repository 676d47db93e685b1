package commands

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wavexform/dsp/signal"
	timestats "github.com/cwbudde/algo-wavexform/stats/time"
)

func genCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "gen [sine|triangle]",
		Short:     "Generate a waveform and print its samples",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"sine", "triangle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args)
			if err != nil {
				return err
			}
			p := signalParams(cmd)
			a.log.Debug("generate", "kind", kind, "freq", p.Freq, "amp", p.Amp, "fs", p.SampleRate, "t0", p.T0, "t1", p.T1)

			s, err := signal.Generate(kind, p)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("normalize") {
				peak, _ := cmd.Flags().GetFloat64("normalize")
				y, err := signal.Normalize(s.Y, peak)
				if err != nil {
					return err
				}
				s.Y = y
				a.log.Debug("normalized", "peak", peak)
			}

			out := cmd.OutOrStdout()
			if summary, _ := cmd.Flags().GetBool("summary"); summary {
				st, err := timestats.Of(s)
				if err != nil {
					return err
				}
				return writeSummary(out, kind.String(), st)
			}
			format, _ := cmd.Flags().GetString("format")
			limit, _ := cmd.Flags().GetInt("limit")
			return writeSamples(out, s, format, limit)
		},
	}
	addSignalFlags(cmd)
	cmd.Flags().Int("limit", 0, "Print at most this many samples (0 prints all)")
	cmd.Flags().Float64("normalize", 0, "Rescale the waveform to this peak amplitude")
	cmd.Flags().Bool("summary", false, "Print time-domain statistics instead of samples")
	cmd.Flags().String("format", formatTable, "Output format: table or csv")
	return cmd
}
