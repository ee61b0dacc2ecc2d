package main

import (
	"context"
	"fmt"

	"github.com/NomadCrew/tripboard/internal/bootstrap"
	"github.com/NomadCrew/tripboard/internal/cli"
	tripservice "github.com/NomadCrew/tripboard/models/trip/service"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics over every trip",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withComponents(cmd, func(ctx context.Context, components *bootstrap.Components) error {
			stats, err := tripservice.NewTripBoardService(components.Loader).Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderStats(*stats))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
