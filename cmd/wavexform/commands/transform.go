package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wavexform/dsp/signal"
	"github.com/cwbudde/algo-wavexform/internal/plot"
)

func transformCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [sine|triangle]",
		Short: "Apply a shift, scale or combined time transform",
		Long: `Generate a waveform and apply one time-domain transform to it.

  shift     y(t - tau), exact: only the time axis moves
  scale     y(a*t), resampled onto the original grid
  combined  y(a*t - tau), resampled onto the original grid`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"sine", "triangle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args)
			if err != nil {
				return err
			}
			tp, err := readTransformParams(cmd)
			if err != nil {
				return err
			}
			opName, _ := cmd.Flags().GetString("op")
			op, err := tp.operator(opName)
			if err != nil {
				return err
			}

			src, err := signal.Generate(kind, signalParams(cmd))
			if err != nil {
				return err
			}
			out, err := op(src)
			if err != nil {
				return fmt.Errorf("%s %s: %w", opName, kind, err)
			}
			a.log.Debug("transform", "kind", kind, "op", opName, "tau", tp.tau, "scale", tp.scale, "samples", out.Len())

			if path, _ := cmd.Flags().GetString("plot"); path != "" {
				if !filepath.IsAbs(path) {
					path = filepath.Join(a.outDir, path)
				}
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
				fig := plot.DefaultFigure(fmt.Sprintf("%s: %s", kind, opName))
				if err := plot.Render(path, fig,
					plot.SeriesLine("Original", src, plot.StyleSolid),
					plot.SeriesLine(opLabel(opName, tp), out, plot.StyleDashed),
				); err != nil {
					return err
				}
				a.status(cmd, "Saved plot to: %s", path)
			}

			format, _ := cmd.Flags().GetString("format")
			limit, _ := cmd.Flags().GetInt("limit")
			return writeSamples(cmd.OutOrStdout(), out, format, limit)
		},
	}
	addSignalFlags(cmd)
	addTransformFlags(cmd)
	cmd.Flags().String("op", "combined", "Transform: shift, scale or combined")
	cmd.Flags().String("plot", "", "Render original and transformed signal to this image file (.png, .svg, .pdf)")
	cmd.Flags().Int("limit", 10, "Print at most this many samples (0 prints all)")
	cmd.Flags().String("format", formatTable, "Output format: table or csv")
	return cmd
}

func opLabel(op string, tp transformParams) string {
	switch op {
	case "shift":
		return fmt.Sprintf("Shifted (τ=%gs)", tp.tau)
	case "scale":
		return fmt.Sprintf("Scaled (a=%g)", tp.scale)
	default:
		return fmt.Sprintf("Combined (a=%g, τ=%g)", tp.scale, tp.tau)
	}
}
