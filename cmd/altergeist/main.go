// Package main provides the entry point for the altergeist CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "0.1.0-dev"

	globalOntology string
	globalStrict   bool
	verbose        bool
	jsonOutput     bool

	logger = zap.NewNop()
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := newRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "altergeist",
		Short: "Counterfactual philosophers over an ontology of thinkers",
		Long: `altergeist loads an ontology of philosophers, computes the closure of its
class hierarchy, and derives counterfactual versions of a thinker moved to
another year, region or event. A derived persona can answer questions
through an OpenAI-compatible generation service.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()

			built, err := loggerConfig(verbose).Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&globalOntology, "ontology", "", "Ontology file (overrides ontology.path)")
	rootCmd.PersistentFlags().BoolVar(&globalStrict, "strict", false, "Reject statements with blank nodes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		newInitCmd(),
		newListCmd(),
		newShowCmd(),
		newPeriodsCmd(),
		newQueryCmd(),
		newRelatedCmd(),
		newFactsCmd(),
		newLookupCmd(),
		newTransformCmd(),
		newAskCmd(),
		newHistoryCmd(),
	)

	return rootCmd
}

// loggerConfig returns the production logger config at warn level, or
// debug level when verbose is set.
func loggerConfig(verbose bool) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg
}
