package main

import (
	"fmt"

	"github.com/NomadCrew/tripboard/internal/cli"
	"github.com/NomadCrew/tripboard/models/trip/pipeline"
	"github.com/NomadCrew/tripboard/models/trip/source"
	"github.com/NomadCrew/tripboard/types"
	"github.com/spf13/cobra"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Show the bundled sample trips",
	Long:  "Render the sample trips shipped with tripboard. Needs no trip source.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		samples, err := source.BundledSamples()
		if err != nil {
			return err
		}
		board := pipeline.Board(samples, types.DefaultTripFilters())

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, cli.RenderTitle("Sample Trips"))
		fmt.Fprint(out, cli.RenderBoard(board))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}
