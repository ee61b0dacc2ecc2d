// Package source turns trip backend records and bundled sample trips into
// one normalized collection.
package source

import (
	"math"
	"strings"
	"time"

	"github.com/NomadCrew/tripboard/types"
	"github.com/shopspring/decimal"
)

const (
	// UnknownDestination is used when a remote trip has neither stops nor a
	// cached destination.
	UnknownDestination = "Unknown destination"
	// UntitledTrip is used when a remote trip has neither a title nor a destination.
	UntitledTrip = "Untitled trip"

	millisPerDay = 86400000
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	// timestamptz as postgres renders it in text
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999-07:00",
}

// ParseDate accepts plain calendar dates and full timestamps. The second
// return is false for empty or unparseable input.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// DurationDays is max(1, ceil((end-start) / 1 day)), with the difference
// taken in whole milliseconds.
func DurationDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 1
	}
	ms := end.Sub(start).Milliseconds()
	days := int(math.Ceil(float64(ms) / millisPerDay))
	if days < 1 {
		return 1
	}
	return days
}

// NormalizeStatus lower-cases the backend status, defaulting to planned.
func NormalizeStatus(raw *string) types.TripStatus {
	if raw == nil || *raw == "" {
		return types.TripStatusPlanned
	}
	return types.TripStatus(strings.ToLower(*raw))
}

// NormalizeRemote maps one backend record onto the board's record shape.
//
//	duration   max(1, ceil((end_date - start_date) / 1 day))
//	cities     stops[].city.name, else [destination_cache], else [UnknownDestination]
//	spent      total_spent, else 0
//	budget     budget_limit, else 0
//	status     lower(status), else "planned"
//	title      title, else the destination, else UntitledTrip
func NormalizeRemote(rt types.RemoteTrip) types.TripRecord {
	destination := ""
	if rt.DestinationCache != nil {
		destination = strings.TrimSpace(*rt.DestinationCache)
	}

	var cities []string
	for _, stop := range rt.Stops {
		if stop.City == nil || stop.City.Name == "" {
			continue
		}
		cities = append(cities, stop.City.Name)
	}
	if len(cities) == 0 {
		if destination != "" {
			cities = []string{destination}
		} else {
			cities = []string{UnknownDestination}
		}
	}

	title := strings.TrimSpace(rt.Title)
	if title == "" {
		title = destination
	}
	if title == "" {
		title = UntitledTrip
	}

	var start, end, created time.Time
	if rt.StartDate != nil {
		start, _ = ParseDate(*rt.StartDate)
	}
	if rt.EndDate != nil {
		end, _ = ParseDate(*rt.EndDate)
	}
	if rt.CreatedAt != nil {
		created, _ = ParseDate(*rt.CreatedAt)
	}

	budget := decimal.Zero
	if rt.BudgetLimit.Valid {
		budget = rt.BudgetLimit.Decimal
	}
	spent := decimal.Zero
	if rt.TotalSpent.Valid {
		spent = rt.TotalSpent.Decimal
	}

	cover := ""
	if rt.CoverImageURL != nil {
		cover = *rt.CoverImageURL
	}

	return types.TripRecord{
		ID:            rt.ID.String(),
		Title:         title,
		Cities:        cities,
		StartDate:     start,
		EndDate:       end,
		DurationDays:  DurationDays(start, end),
		TotalBudget:   budget,
		Spent:         spent,
		Status:        NormalizeStatus(rt.Status),
		CreatedDate:   created,
		CoverImageURL: cover,
		Origin:        types.TripOriginRemote,
	}
}

// NormalizeRemoteAll keeps the backend order.
func NormalizeRemoteAll(remote []types.RemoteTrip) []types.TripRecord {
	out := make([]types.TripRecord, 0, len(remote))
	for _, rt := range remote {
		out = append(out, NormalizeRemote(rt))
	}
	return out
}

// Merge puts remote records ahead of the samples.
func Merge(remote, samples []types.TripRecord) []types.TripRecord {
	out := make([]types.TripRecord, 0, len(remote)+len(samples))
	out = append(out, remote...)
	out = append(out, samples...)
	return out
}
