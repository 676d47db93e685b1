package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	envPrefix      = "WAVEXFORM_"
	defaultEnvFile = ".env"
)

// Built-in defaults of the demo workflow.
const (
	defaultFreq  = 5.0
	defaultAmp   = 1.0
	defaultFS    = 200.0
	defaultT0    = 0.0
	defaultT1    = 2.0
	defaultTau   = 0.30
	defaultScale = 1.5
	defaultFill  = 0.0
)

// envFlags maps flag names to the environment variables overriding their defaults.
var envFlags = map[string]string{
	"freq":    envPrefix + "FREQ",
	"amp":     envPrefix + "AMP",
	"phase":   envPrefix + "PHASE",
	"fs":      envPrefix + "FS",
	"t0":      envPrefix + "T0",
	"t1":      envPrefix + "T1",
	"tau":     envPrefix + "TAU",
	"scale":   envPrefix + "SCALE",
	"fill":    envPrefix + "FILL",
	"mode":    envPrefix + "MODE",
	"out-dir": envPrefix + "OUT_DIR",
}

// applyEnvDefaults sets every flag the user did not pass explicitly from the
// process environment, falling back to values read from envFile. A missing
// default .env file is not an error; a missing explicit one is.
func applyEnvDefaults(cmd *cobra.Command, envFile string, log *slog.Logger) error {
	fileEnv, err := readEnvFile(envFile, cmd.Flags().Changed("env-file"))
	if err != nil {
		return err
	}

	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := envFlags[f.Name]
		if !ok || f.Changed {
			return
		}
		val, ok := os.LookupEnv(key)
		if !ok || val == "" {
			val, ok = fileEnv[key]
		}
		if !ok || val == "" {
			return
		}
		if err := f.Value.Set(val); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, val, err))
			return
		}
		log.Debug("flag default from environment", "flag", f.Name, "env", key, "value", val)
	})
	return errors.Join(errs...)
}

func readEnvFile(path string, explicit bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return env, nil
}
