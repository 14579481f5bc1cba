package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Persistent flags, shared by both subcommands.
	flagConfig  string
	flagOut     string
	flagVerbose bool
	flagSeed    uint64

	// Logger, initialized before any subcommand runs.
	logger *zap.Logger
)

// rootCmd is the base command; the work happens in the subcommands.
var rootCmd = &cobra.Command{
	Use:   "fasta",
	Short: "Forward-backward splitting demos: clustering and sparse recovery",
	Long: `fasta drives the worked examples of the forward-backward splitting
solver end to end.

  maxnorm — cluster the synthetic two-moons dataset through the max-norm
            relaxation of max-cut; writes convergence and cluster plots.
  lasso   — recover a sparse spike train from noisy linear measurements;
            writes the convergence plot.

Every run executes the three solver modes (adaptive, accelerated, plain)
concurrently and reports their convergence side by side.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if flagVerbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"path to a YAML config; a missing file keeps the defaults")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", ".",
		"directory for generated plots")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"debug logging plus per-iteration solver output")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0,
		"RNG seed; 0 keeps the fixed default streams")

	rootCmd.AddCommand(maxnormCmd)
	rootCmd.AddCommand(lassoCmd)
}

// Execute runs the CLI; any error exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
