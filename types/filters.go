package types

// SortKey selects one of the board comparators.
type SortKey string

const (
	SortDepartureDesc SortKey = "departure-desc"
	SortDepartureAsc  SortKey = "departure-asc"
	SortCreatedDesc   SortKey = "created-desc"
	SortCreatedAsc    SortKey = "created-asc"
	SortBudgetDesc    SortKey = "budget-desc"
	SortBudgetAsc     SortKey = "budget-asc"
	SortNameAsc       SortKey = "name-asc"
	SortNameDesc      SortKey = "name-desc"
)

// SortKeys lists every supported key in display order.
var SortKeys = []SortKey{
	SortDepartureDesc,
	SortDepartureAsc,
	SortCreatedDesc,
	SortCreatedAsc,
	SortBudgetDesc,
	SortBudgetAsc,
	SortNameAsc,
	SortNameDesc,
}

// IsValid checks if the key is a supported comparator.
func (k SortKey) IsValid() bool {
	for _, known := range SortKeys {
		if k == known {
			return true
		}
	}
	return false
}

// StatusAll disables the status filter.
const StatusAll = "all"

// TripFilters is the filter/sort selection as the caller sends it. Every
// field is optional and kept as raw text; parsing is lenient (see
// pipeline.ParseCriteria).
type TripFilters struct {
	Search    string  `json:"search" form:"search"`
	Status    string  `json:"status" form:"status"`
	SortBy    SortKey `json:"sortBy" form:"sortBy"`
	DateFrom  string  `json:"dateFrom" form:"dateFrom"`
	DateTo    string  `json:"dateTo" form:"dateTo"`
	BudgetMin string  `json:"budgetMin" form:"budgetMin"`
	BudgetMax string  `json:"budgetMax" form:"budgetMax"`
}

// DefaultTripFilters is the selection a fresh board starts with.
func DefaultTripFilters() TripFilters {
	return TripFilters{
		Status: StatusAll,
		SortBy: SortDepartureDesc,
	}
}

// WithDefaults fills fields left empty from the given fallback.
func (f TripFilters) WithDefaults(fallback TripFilters) TripFilters {
	if f.Search == "" {
		f.Search = fallback.Search
	}
	if f.Status == "" {
		f.Status = fallback.Status
	}
	if f.SortBy == "" {
		f.SortBy = fallback.SortBy
	}
	if f.DateFrom == "" {
		f.DateFrom = fallback.DateFrom
	}
	if f.DateTo == "" {
		f.DateTo = fallback.DateTo
	}
	if f.BudgetMin == "" {
		f.BudgetMin = fallback.BudgetMin
	}
	if f.BudgetMax == "" {
		f.BudgetMax = fallback.BudgetMax
	}
	return f
}
