// Package plot renders time series to image files.
//
// It is a sink: it consumes (t, y) pairs plus display metadata and writes one
// figure per call. The output format follows the file extension
// (.png, .svg, .pdf, .eps, .jpg, .tif).
package plot

import (
	"errors"
	"fmt"

	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-wavexform/dsp/signal"
)

// ErrNoLines indicates a figure without any line to draw.
var ErrNoLines = errors.New("plot: no lines to render")

// Style selects the stroke pattern of a line.
type Style int

const (
	// StyleSolid draws a continuous stroke.
	StyleSolid Style = iota
	// StyleDashed draws 6pt dashes separated by 3pt gaps.
	StyleDashed
	// StyleDotted draws short 1.5pt strokes separated by 2.5pt gaps.
	StyleDotted
)

// Line is one labelled trace.
type Line struct {
	Label string
	T     []float64
	Y     []float64
	Style Style
	Width vg.Length // zero selects 1.5pt
}

// SeriesLine builds a Line from a series.
func SeriesLine(label string, s signal.Series, style Style) Line {
	return Line{Label: label, T: s.T, Y: s.Y, Style: style}
}

// Figure holds figure-level metadata.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultFigure returns a 10x5.5 inch time/amplitude figure.
func DefaultFigure(title string) Figure {
	return Figure{
		Title:  title,
		XLabel: "Time [s]",
		YLabel: "Amplitude",
		Width:  10 * vg.Inch,
		Height: 5.5 * vg.Inch,
	}
}

// Build assembles the plot without writing it.
func Build(fig Figure, lines ...Line) (*gonumplot.Plot, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	p := gonumplot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(grid)

	for i, l := range lines {
		if err := signal.CheckLengths(l.T, l.Y); err != nil {
			return nil, fmt.Errorf("plot: line %q: %w", l.Label, err)
		}
		xys := make(plotter.XYs, len(l.T))
		for k := range l.T {
			xys[k].X = l.T[k]
			xys[k].Y = l.Y[k]
		}
		pl, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("plot: line %q: %w", l.Label, err)
		}
		pl.LineStyle.Color = plotutil.Color(i)
		pl.LineStyle.Width = vg.Points(1.5)
		if l.Width > 0 {
			pl.LineStyle.Width = l.Width
		}
		pl.LineStyle.Dashes = dashes(l.Style)
		p.Add(pl)
		if l.Label != "" {
			p.Legend.Add(l.Label, pl)
		}
	}
	p.Legend.Top = true
	return p, nil
}

// Render draws lines into a figure and saves it to path.
func Render(path string, fig Figure, lines ...Line) error {
	p, err := Build(fig, lines...)
	if err != nil {
		return err
	}
	w, h := fig.Width, fig.Height
	if w <= 0 || h <= 0 {
		def := DefaultFigure("")
		w, h = def.Width, def.Height
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}
	return nil
}

func dashes(s Style) []vg.Length {
	switch s {
	case StyleDashed:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case StyleDotted:
		return []vg.Length{vg.Points(1.5), vg.Points(2.5)}
	default:
		return nil
	}
}
