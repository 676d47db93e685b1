package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavexform/dsp/signal"
	timestats "github.com/cwbudde/algo-wavexform/stats/time"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
)

// writeSamples prints up to limit (t, y) rows; limit <= 0 prints all.
func writeSamples(w io.Writer, s signal.Series, format string, limit int) error {
	n := s.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	switch format {
	case formatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"t", "y"}); err != nil {
			return err
		}
		for i := range n {
			if err := cw.Write([]string{formatFloat(s.T[i]), formatFloat(s.Y[i])}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case formatTable, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "t\ty\t")
		for i := range n {
			fmt.Fprintf(tw, "%.6f\t%.6f\t\n", s.T[i], s.Y[i])
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (want table or csv)", format)
	}
}

func writeSummary(w io.Writer, name string, st timestats.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "signal\t%s\n", name)
	fmt.Fprintf(tw, "samples\t%d\n", st.Length)
	fmt.Fprintf(tw, "span\t[%.6f, %.6f] s\n", st.Start, st.End)
	fmt.Fprintf(tw, "spacing\t%.6f s\n", st.Spacing)
	fmt.Fprintf(tw, "dc\t%.6f\t%.2f dB\n", st.DC, st.DC_dB)
	fmt.Fprintf(tw, "rms\t%.6f\t%.2f dB\n", st.RMS, st.RMS_dB)
	fmt.Fprintf(tw, "max\t%.6f @ %.6f s\n", st.Max, st.MaxTime)
	fmt.Fprintf(tw, "min\t%.6f @ %.6f s\n", st.Min, st.MinTime)
	fmt.Fprintf(tw, "peak\t%.6f\t%.2f dB\n", st.Peak, st.Peak_dB)
	fmt.Fprintf(tw, "crest\t%.4f\t%.2f dB\n", st.CrestFactor, st.CrestFactor_dB)
	fmt.Fprintf(tw, "energy\t%.6f\n", st.Energy)
	fmt.Fprintf(tw, "variance\t%.6f\n", st.Variance)
	fmt.Fprintf(tw, "skewness\t%.6f\n", st.Skewness)
	fmt.Fprintf(tw, "kurtosis\t%.6f\n", st.Kurtosis)
	fmt.Fprintf(tw, "zero crossings\t%d\n", st.ZeroCrossings)
	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
