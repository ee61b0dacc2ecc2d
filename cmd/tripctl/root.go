package main

import (
	"context"
	"os"
	"time"

	"github.com/NomadCrew/tripboard/config"
	"github.com/NomadCrew/tripboard/internal/bootstrap"
	"github.com/NomadCrew/tripboard/logger"
	"github.com/spf13/cobra"
)

var flagTimeout time.Duration

var rootCmd = &cobra.Command{
	Use:          "tripctl",
	Short:        "Trip board CLI",
	Long:         "Filter, sort and summarize trips from the configured trip source.",
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	defer func() { _ = logger.Close() }()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "How long to wait for the trip source")
}

// withComponents loads configuration, builds the shared components and runs
// fn with a context bounded by --timeout.
func withComponents(cmd *cobra.Command, fn func(ctx context.Context, components *bootstrap.Components) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	components, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer components.Close()

	return fn(ctx, components)
}
