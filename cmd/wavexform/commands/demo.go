package commands

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-wavexform/dsp/signal"
	"github.com/cwbudde/algo-wavexform/dsp/timeops"
	"github.com/cwbudde/algo-wavexform/internal/plot"
)

// demoSet holds one waveform and its three transformed versions.
type demoSet struct {
	name     string
	orig     signal.Series
	shifted  signal.Series
	scaled   signal.Series
	combined signal.Series
}

func demoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate both waveforms, transform them and render comparison plots",
		Long: `Generate a sine and a triangle wave, apply the time shift, time scale and
combined transforms to each, and save four comparison plots:

  sine_shift_scale.png  sine_combined.png
  triangle_shift_scale.png  triangle_combined.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tp, err := readTransformParams(cmd)
			if err != nil {
				return err
			}
			p := signalParams(cmd)
			ext, _ := cmd.Flags().GetString("ext")
			noPlots, _ := cmd.Flags().GetBool("no-plots")

			sets, err := runDemo(cmd.Context(), p, tp)
			if err != nil {
				return err
			}
			if !noPlots {
				if err := os.MkdirAll(a.outDir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
				paths, err := renderDemo(cmd.Context(), a.outDir, ext, tp, sets)
				if err != nil {
					return err
				}
				for _, path := range paths {
					a.status(cmd, "Saved plot to: %s", path)
				}
			}

			out := cmd.OutOrStdout()
			for _, s := range sets {
				printHead(out, s.name, s.orig.Y, 10)
			}
			return nil
		},
	}
	addSignalFlags(cmd)
	addTransformFlags(cmd)
	cmd.Flags().String("ext", "png", "Image format of the rendered plots: png, svg or pdf")
	cmd.Flags().Bool("no-plots", false, "Skip rendering and only print the sample preview")
	return cmd
}

// runDemo generates both waveforms concurrently and applies each transform
// to the pair.
func runDemo(ctx context.Context, p signal.Params, tp transformParams) ([]demoSet, error) {
	kinds := []signal.Kind{signal.KindSine, signal.KindTriangle}
	origs := make([]signal.Series, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := signal.Generate(kind, p)
			if err != nil {
				return fmt.Errorf("generate %s: %w", kind, err)
			}
			origs[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ops := []timeops.Operator{
		timeops.ShiftBy(tp.tau),
		timeops.ScaleBy(tp.scale, tp.opts...),
		timeops.ShiftAndScaleBy(tp.tau, tp.scale, tp.opts...),
	}
	results := make([][]signal.Series, len(ops))
	for i, op := range ops {
		res, err := timeops.ApplyAll(ctx, origs, op, 0)
		if err != nil {
			return nil, err
		}
		results[i] = res
	}

	sets := make([]demoSet, len(kinds))
	for i, kind := range kinds {
		sets[i] = demoSet{
			name:     kind.String(),
			orig:     origs[i],
			shifted:  results[0][i],
			scaled:   results[1][i],
			combined: results[2][i],
		}
	}
	return sets, nil
}

// renderDemo writes two figures per set in parallel and returns their paths
// in a stable order.
func renderDemo(ctx context.Context, dir, ext string, tp transformParams, sets []demoSet) ([]string, error) {
	ext = strings.TrimPrefix(ext, ".")
	paths := make([]string, 0, 2*len(sets))
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range sets {
		title := waveTitle(s.name)
		orig := plot.SeriesLine("Original", s.orig, plot.StyleSolid)
		orig.Width = 1.8

		shiftScale := filepath.Join(dir, fmt.Sprintf("%s_shift_scale.%s", s.name, ext))
		combined := filepath.Join(dir, fmt.Sprintf("%s_combined.%s", s.name, ext))
		paths = append(paths, shiftScale, combined)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return plot.Render(shiftScale, plot.DefaultFigure(title+": Original vs Shifted vs Scaled"),
				orig,
				plot.SeriesLine(opLabel("shift", tp), s.shifted, plot.StyleDashed),
				plot.SeriesLine(opLabel("scale", tp), s.scaled, plot.StyleDotted),
			)
		})
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return plot.Render(combined, plot.DefaultFigure(title+": Original vs Combined (Shift + Scale)"),
				orig,
				plot.SeriesLine(opLabel("combined", tp), s.combined, plot.StyleDashed),
			)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func waveTitle(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Wave"
}

// printHead prints the first n amplitudes rounded to six decimals.
func printHead(w io.Writer, name string, y []float64, n int) {
	if n > len(y) {
		n = len(y)
	}
	parts := make([]string, n)
	for i, v := range y[:n] {
		r := math.Round(v*1e6) / 1e6
		if r == 0 {
			r = 0 // drop negative zero
		}
		parts[i] = formatFloat(r)
	}
	fmt.Fprintf(w, "First %d samples of %s: [%s]\n", n, name, strings.Join(parts, " "))
}
