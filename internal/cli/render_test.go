package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/NomadCrew/tripboard/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCards() []types.TripCard {
	over := types.TripRecord{
		ID:           "1",
		Title:        "Alpha",
		Cities:       []string{"Lisbon", "Porto"},
		StartDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		DurationDays: 10,
		TotalBudget:  decimal.NewFromInt(1000),
		Spent:        decimal.NewFromInt(1250),
		Status:       types.TripStatusActive,
		Origin:       types.TripOriginRemote,
	}
	under := types.TripRecord{
		ID:           "sample-2",
		Title:        "Beta",
		Cities:       []string{"Kyoto"},
		DurationDays: 1,
		TotalBudget:  decimal.NewFromInt(500),
		Spent:        decimal.NewFromInt(100),
		Status:       types.TripStatusPlanned,
		Origin:       types.TripOriginSample,
	}
	return []types.TripCard{types.NewTripCard(over), types.NewTripCard(under)}
}

func TestBoardRows(t *testing.T) {
	rows := BoardRows(testCards())
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"Alpha",
		"Lisbon, Porto",
		"Jun 1, 2024 - Jun 10, 2024",
		"10 days",
		"active",
		"1,000",
		"1,250",
		"125%",
		"0%",
	}, rows[0])
	assert.Equal(t, "? - ?", rows[1][2])
	assert.Equal(t, "20%", rows[1][colUsed])
}

func TestRenderTrips(t *testing.T) {
	out := RenderTrips(testCards())

	for _, want := range []string{"Trip", "Cities", "Alpha", "Beta", "Kyoto", "125%"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Alpha"), strings.Index(out, "Beta"))
}

func TestRenderTrips_Empty(t *testing.T) {
	assert.Contains(t, RenderTrips(nil), "No trips match")
}

func TestRenderBoard(t *testing.T) {
	board := types.TripBoard{
		Trips:         testCards(),
		MatchingTrips: 2,
		Stats: types.TripStats{
			TotalTrips:    5,
			ActiveTrips:   1,
			TotalBudget:   decimal.NewFromInt(4200),
			CitiesVisited: 7,
		},
	}

	out := RenderBoard(board)
	assert.Contains(t, out, "Total trips")
	assert.Contains(t, out, "4,200")
	assert.Contains(t, out, "Showing 2 of 5 trips")
	assert.Contains(t, out, "samples only")

	board.RemoteAvailable = true
	assert.NotContains(t, RenderBoard(board), "samples only")
}
