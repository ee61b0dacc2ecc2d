package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type TripStatus string

const (
	TripStatusPlanned   TripStatus = "planned"   // Default when the backend sends nothing
	TripStatusActive    TripStatus = "active"    // Trip is currently ongoing
	TripStatusCompleted TripStatus = "completed" // Trip has finished
)

// String provides a string representation of the status
func (ts TripStatus) String() string {
	return string(ts)
}

// IsValid checks if the status is one of the known trip statuses.
// Records may still carry other values straight from the backend.
func (ts TripStatus) IsValid() bool {
	switch ts {
	case TripStatusPlanned, TripStatusActive, TripStatusCompleted:
		return true
	default:
		return false
	}
}

// TripOrigin tells where a record came from. It only feeds Key().
type TripOrigin string

const (
	TripOriginRemote TripOrigin = "remote"
	TripOriginSample TripOrigin = "sample"
)

// TripRecord is the normalized trip the board works on.
type TripRecord struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Cities               []string        `json:"cities"`
	StartDate            time.Time       `json:"startDate"`
	EndDate              time.Time       `json:"endDate"`
	DurationDays         int             `json:"duration"`
	TotalBudget          decimal.Decimal `json:"totalBudget"`
	Spent                decimal.Decimal `json:"spent"`
	Status               TripStatus      `json:"status"`
	CompletionPercentage int             `json:"completionPercentage"`
	CreatedDate          time.Time       `json:"createdDate"`
	CoverImageURL        string          `json:"coverImageUrl,omitempty"`
	Origin               TripOrigin      `json:"origin"`
}

// Key is unique across a merged collection even when a remote and a sample
// record share an ID.
func (t TripRecord) Key() string {
	return string(t.Origin) + "-" + t.ID
}

// BudgetPercentage returns spent as a whole percentage of the total budget.
// Over-budget trips report more than 100. A zero budget reports 0.
func (t TripRecord) BudgetPercentage() int {
	if t.TotalBudget.IsZero() {
		return 0
	}
	return int(t.Spent.Div(t.TotalBudget).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// OverBudget reports whether more was spent than budgeted.
func (t TripRecord) OverBudget() bool {
	return t.Spent.GreaterThan(t.TotalBudget)
}

// TripStats summarizes a full (unfiltered) collection.
type TripStats struct {
	TotalTrips    int             `json:"totalTrips"`
	ActiveTrips   int             `json:"activeTrips"`
	TotalBudget   decimal.Decimal `json:"totalBudget"`
	CitiesVisited int             `json:"citiesVisited"`
}

// TripCard is a record as rendered on the board, with derived values attached.
type TripCard struct {
	TripRecord
	Key              string `json:"key"`
	BudgetPercentage int    `json:"budgetPercentage"`
	OverBudget       bool   `json:"overBudget"`
}

// NewTripCard wraps a record with its derived display values.
func NewTripCard(t TripRecord) TripCard {
	return TripCard{
		TripRecord:       t,
		Key:              t.Key(),
		BudgetPercentage: t.BudgetPercentage(),
		OverBudget:       t.OverBudget(),
	}
}

// TripBoard is one rendering of the trips view.
type TripBoard struct {
	Trips           []TripCard  `json:"trips"`
	MatchingTrips   int         `json:"matchingTrips"`
	Stats           TripStats   `json:"stats"`
	Filters         TripFilters `json:"filters"`
	RemoteAvailable bool        `json:"remoteAvailable"`
}
