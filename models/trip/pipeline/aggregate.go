package pipeline

import (
	"github.com/NomadCrew/tripboard/types"
	"github.com/shopspring/decimal"
)

// Aggregate summarizes the full collection. Callers pass the unfiltered
// trips so the stats panel does not move with the filters.
func Aggregate(trips []types.TripRecord) types.TripStats {
	stats := types.TripStats{
		TotalTrips:  len(trips),
		TotalBudget: decimal.Zero,
	}
	cities := make(map[string]struct{})

	for _, t := range trips {
		if t.Status == types.TripStatusActive {
			stats.ActiveTrips++
		}
		stats.TotalBudget = stats.TotalBudget.Add(t.TotalBudget)
		for _, city := range t.Cities {
			cities[city] = struct{}{}
		}
	}

	stats.CitiesVisited = len(cities)
	return stats
}
