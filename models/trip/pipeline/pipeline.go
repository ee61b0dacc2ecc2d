package pipeline

import "github.com/NomadCrew/tripboard/types"

// Apply runs filter then sort for one selection.
func Apply(trips []types.TripRecord, f types.TripFilters) []types.TripRecord {
	return Sort(Filter(trips, ParseCriteria(f)), f.SortBy)
}

// Board renders the list and the stats panel. Stats always cover the whole
// collection.
func Board(trips []types.TripRecord, f types.TripFilters) types.TripBoard {
	visible := Apply(trips, f)
	cards := make([]types.TripCard, 0, len(visible))
	for _, t := range visible {
		cards = append(cards, types.NewTripCard(t))
	}
	return types.TripBoard{
		Trips:         cards,
		MatchingTrips: len(visible),
		Stats:         Aggregate(trips),
		Filters:       f,
	}
}
