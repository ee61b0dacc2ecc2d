package pipeline

import (
	"slices"

	"github.com/NomadCrew/tripboard/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CollationLanguage drives the name-asc / name-desc ordering.
var CollationLanguage = language.English

// Sort returns a stably sorted copy of trips. An unknown key returns the
// copy in input order.
func Sort(trips []types.TripRecord, key types.SortKey) []types.TripRecord {
	out := slices.Clone(trips)
	if out == nil {
		out = []types.TripRecord{}
	}

	cmp := comparator(key)
	if cmp == nil {
		return out
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func comparator(key types.SortKey) func(a, b types.TripRecord) int {
	switch key {
	case types.SortDepartureDesc:
		return func(a, b types.TripRecord) int { return b.StartDate.Compare(a.StartDate) }
	case types.SortDepartureAsc:
		return func(a, b types.TripRecord) int { return a.StartDate.Compare(b.StartDate) }
	case types.SortCreatedDesc:
		return func(a, b types.TripRecord) int { return b.CreatedDate.Compare(a.CreatedDate) }
	case types.SortCreatedAsc:
		return func(a, b types.TripRecord) int { return a.CreatedDate.Compare(b.CreatedDate) }
	case types.SortBudgetDesc:
		return func(a, b types.TripRecord) int { return b.TotalBudget.Cmp(a.TotalBudget) }
	case types.SortBudgetAsc:
		return func(a, b types.TripRecord) int { return a.TotalBudget.Cmp(b.TotalBudget) }
	case types.SortNameAsc:
		// Collators keep scratch buffers, so each sort gets its own.
		col := collate.New(CollationLanguage)
		return func(a, b types.TripRecord) int { return col.CompareString(a.Title, b.Title) }
	case types.SortNameDesc:
		col := collate.New(CollationLanguage)
		return func(a, b types.TripRecord) int { return col.CompareString(b.Title, a.Title) }
	default:
		return nil
	}
}
