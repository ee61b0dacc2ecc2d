// Package pipeline holds the trip board's derived-data stages: filter, sort
// and aggregate. Every function here is pure and total.
package pipeline

import (
	"strings"
	"time"

	"github.com/NomadCrew/tripboard/models/trip/source"
	"github.com/NomadCrew/tripboard/types"
	"github.com/shopspring/decimal"
)

// Criteria is a parsed TripFilters. Zero-valued fields are inactive.
type Criteria struct {
	Search    string // lower-cased
	Status    string // empty matches every status
	DateFrom  *time.Time
	DateTo    *time.Time
	BudgetMin decimal.NullDecimal
	BudgetMax decimal.NullDecimal
}

// ParseCriteria never fails: dates and amounts that do not parse leave the
// corresponding bound inactive.
func ParseCriteria(f types.TripFilters) Criteria {
	c := Criteria{
		Search: strings.ToLower(f.Search),
	}
	if f.Status != types.StatusAll {
		c.Status = f.Status
	}
	if d, ok := source.ParseDate(f.DateFrom); ok {
		c.DateFrom = &d
	}
	if d, ok := source.ParseDate(f.DateTo); ok {
		c.DateTo = &d
	}
	c.BudgetMin = parseBound(f.BudgetMin)
	c.BudgetMax = parseBound(f.BudgetMax)
	return c
}

func parseBound(raw string) decimal.NullDecimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// IsEmpty reports whether no predicate is active.
func (c Criteria) IsEmpty() bool {
	return c.Search == "" && c.Status == "" &&
		c.DateFrom == nil && c.DateTo == nil &&
		!c.BudgetMin.Valid && !c.BudgetMax.Valid
}
