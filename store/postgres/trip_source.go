// Package postgres reads remote trips straight from the trip backend's
// database when the HTTP API is not used.
package postgres

import (
	"context"
	"fmt"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/types"
	"github.com/jackc/pgx/v5"
)

// Querier is the part of pgxpool.Pool the trip source uses. pgxmock pools
// satisfy it too.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

const listTripsQuery = `
	SELECT
		t.id::text,
		t.title,
		t.destination,
		t.start_date::text,
		t.end_date::text,
		t.budget_limit::text,
		t.total_spent::text,
		t.status,
		t.created_at::text,
		t.cover_image_url,
		COALESCE(
			array_agg(s.city_name ORDER BY s.position) FILTER (WHERE s.city_name IS NOT NULL),
			'{}'
		) AS cities
	FROM trips t
	LEFT JOIN trip_stops s ON s.trip_id = t.id
	GROUP BY t.id
	ORDER BY t.created_at DESC`

// TripSource lists trips in the same shape the trip API returns them, so the
// source adapter normalizes both the same way.
type TripSource struct {
	db Querier
}

func NewTripSource(db Querier) *TripSource {
	return &TripSource{db: db}
}

func (s *TripSource) ListTrips(ctx context.Context) ([]types.RemoteTrip, error) {
	rows, err := s.db.Query(ctx, listTripsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []types.RemoteTrip
	for rows.Next() {
		var (
			id     string
			trip   types.RemoteTrip
			cities []string
		)
		if err := rows.Scan(
			&id,
			&trip.Title,
			&trip.DestinationCache,
			&trip.StartDate,
			&trip.EndDate,
			&trip.BudgetLimit,
			&trip.TotalSpent,
			&trip.Status,
			&trip.CreatedAt,
			&trip.CoverImageURL,
			&cities,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trip.ID = types.RemoteID(id)
		for _, city := range cities {
			trip.Stops = append(trip.Stops, types.RemoteStop{City: &types.RemoteCity{Name: city}})
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip rows: %w", err)
	}

	logger.GetLogger().Debugw("Listed trips from database", "count", len(trips))
	return trips, nil
}

func (s *TripSource) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
