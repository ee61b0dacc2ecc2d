package pipeline

import (
	"strings"

	"github.com/NomadCrew/tripboard/types"
)

// Filter returns the records matching every active criterion, in input
// order. The input slice is not modified.
func Filter(trips []types.TripRecord, c Criteria) []types.TripRecord {
	out := make([]types.TripRecord, 0, len(trips))
	for _, t := range trips {
		if Matches(t, c) {
			out = append(out, t)
		}
	}
	return out
}

// Matches is the conjunction of the individual predicates.
func Matches(t types.TripRecord, c Criteria) bool {
	return matchesSearch(t, c) &&
		matchesStatus(t, c) &&
		matchesDateFrom(t, c) &&
		matchesDateTo(t, c) &&
		matchesBudgetMin(t, c) &&
		matchesBudgetMax(t, c)
}

func matchesSearch(t types.TripRecord, c Criteria) bool {
	if c.Search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), c.Search) {
		return true
	}
	for _, city := range t.Cities {
		if strings.Contains(strings.ToLower(city), c.Search) {
			return true
		}
	}
	return false
}

func matchesStatus(t types.TripRecord, c Criteria) bool {
	return c.Status == "" || string(t.Status) == c.Status
}

func matchesDateFrom(t types.TripRecord, c Criteria) bool {
	return c.DateFrom == nil || !t.StartDate.Before(*c.DateFrom)
}

func matchesDateTo(t types.TripRecord, c Criteria) bool {
	return c.DateTo == nil || !t.EndDate.After(*c.DateTo)
}

func matchesBudgetMin(t types.TripRecord, c Criteria) bool {
	return !c.BudgetMin.Valid || t.TotalBudget.GreaterThanOrEqual(c.BudgetMin.Decimal)
}

func matchesBudgetMax(t types.TripRecord, c Criteria) bool {
	return !c.BudgetMax.Valid || t.TotalBudget.LessThanOrEqual(c.BudgetMax.Decimal)
}
