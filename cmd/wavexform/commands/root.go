package commands

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	envFile string
	verbose bool
	outDir  string
	log     *slog.Logger
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "wavexform",
		Short: "Generate waveforms and apply time shift and scale transforms",
		Long: `wavexform synthesizes sine and triangle waveforms on a uniform time grid
and applies affine time-domain transforms to them: an exact time shift,
an interpolative time scale, and the combined remap x(a*t - tau).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return applyEnvDefaults(cmd, a.envFile, a.log)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", defaultEnvFile, "Path to a .env file with WAVEXFORM_* defaults")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.outDir, "out-dir", "o", ".", "Directory for rendered plots")

	root.AddCommand(
		genCmd(a),
		transformCmd(a),
		demoCmd(a),
		infoCmd(),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) status(cmd *cobra.Command, format string, args ...any) {
	_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
