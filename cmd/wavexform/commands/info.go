package commands

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Report the SIMD features used for block arithmetic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cpu.DetectFeatures()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "arch\t%s\n", f.Architecture)
			fmt.Fprintf(tw, "go\t%s\n", runtime.Version())
			fmt.Fprintf(tw, "sse2\t%t\n", f.HasSSE2)
			fmt.Fprintf(tw, "avx\t%t\n", f.HasAVX)
			fmt.Fprintf(tw, "avx2\t%t\n", f.HasAVX2)
			fmt.Fprintf(tw, "avx512\t%t\n", f.HasAVX512)
			fmt.Fprintf(tw, "neon\t%t\n", f.HasNEON)
			fmt.Fprintf(tw, "generic\t%t\n", f.ForceGeneric)
			return tw.Flush()
		},
	}
}
