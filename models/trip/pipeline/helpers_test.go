package pipeline

import (
	"time"

	"github.com/NomadCrew/tripboard/types"
	"github.com/shopspring/decimal"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type tripOpt func(*types.TripRecord)

func trip(id, title string, opts ...tripOpt) types.TripRecord {
	t := types.TripRecord{
		ID:           id,
		Title:        title,
		Cities:       []string{title},
		StartDate:    day("2026-01-01"),
		EndDate:      day("2026-01-02"),
		DurationDays: 1,
		TotalBudget:  decimal.Zero,
		Spent:        decimal.Zero,
		Status:       types.TripStatusPlanned,
		Origin:       types.TripOriginSample,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func withCities(cities ...string) tripOpt {
	return func(t *types.TripRecord) { t.Cities = cities }
}

func withStatus(s types.TripStatus) tripOpt {
	return func(t *types.TripRecord) { t.Status = s }
}

func withBudget(amount int64) tripOpt {
	return func(t *types.TripRecord) { t.TotalBudget = decimal.NewFromInt(amount) }
}

func withDates(start, end string) tripOpt {
	return func(t *types.TripRecord) {
		t.StartDate = day(start)
		t.EndDate = day(end)
	}
}

func withCreated(created string) tripOpt {
	return func(t *types.TripRecord) { t.CreatedDate = day(created) }
}

func ids(trips []types.TripRecord) []string {
	out := make([]string, 0, len(trips))
	for _, t := range trips {
		out = append(out, t.ID)
	}
	return out
}
