package main

import (
	"context"
	"fmt"

	"github.com/NomadCrew/tripboard/internal/bootstrap"
	"github.com/NomadCrew/tripboard/internal/cli"
	tripservice "github.com/NomadCrew/tripboard/models/trip/service"
	"github.com/NomadCrew/tripboard/services"
	"github.com/NomadCrew/tripboard/types"
	"github.com/spf13/cobra"
)

var (
	flagSearch    string
	flagStatus    string
	flagSort      string
	flagDateFrom  string
	flagDateTo    string
	flagBudgetMin string
	flagBudgetMax string
	flagView      string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the filtered trip list and stats",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func init() {
	boardCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Case-insensitive match on title or any city")
	boardCmd.Flags().StringVar(&flagStatus, "status", "", "planned, active, completed or all")
	boardCmd.Flags().StringVar(&flagSort, "sort", "", "Sort key (departure-desc, budget-asc, name-asc, ...)")
	boardCmd.Flags().StringVar(&flagDateFrom, "from", "", "Earliest start date (YYYY-MM-DD)")
	boardCmd.Flags().StringVar(&flagDateTo, "to", "", "Latest end date (YYYY-MM-DD)")
	boardCmd.Flags().StringVar(&flagBudgetMin, "min", "", "Minimum total budget")
	boardCmd.Flags().StringVar(&flagBudgetMax, "max", "", "Maximum total budget")
	boardCmd.Flags().StringVar(&flagView, "view", "", "Saved view whose preferences fill unset flags")
	rootCmd.AddCommand(boardCmd)
}

// boardFilters collects the selection given on the command line.
func boardFilters() types.TripFilters {
	return types.TripFilters{
		Search:    flagSearch,
		Status:    flagStatus,
		SortBy:    types.SortKey(flagSort),
		DateFrom:  flagDateFrom,
		DateTo:    flagDateTo,
		BudgetMin: flagBudgetMin,
		BudgetMax: flagBudgetMax,
	}
}

func runBoard(cmd *cobra.Command, _ []string) error {
	return withComponents(cmd, func(ctx context.Context, components *bootstrap.Components) error {
		filters := boardFilters()
		if flagView != "" {
			prefs := services.NewPreferenceService(components.Preferences)
			saved, found, err := prefs.Get(ctx, flagView)
			if err != nil {
				return err
			}
			if found {
				filters = services.Merge(saved, filters)
			}
		}
		filters = filters.WithDefaults(types.DefaultTripFilters())
		if err := services.ValidateFilters(filters); err != nil {
			return err
		}

		board, err := tripservice.NewTripBoardService(components.Loader).Board(ctx, filters)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, cli.RenderTitle("Trip Board"))
		fmt.Fprint(out, cli.RenderBoard(*board))
		return nil
	})
}
