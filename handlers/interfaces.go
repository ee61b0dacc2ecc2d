package handlers

import (
	"context"

	"github.com/NomadCrew/tripboard/types"
)

// BoardServiceInterface is the trip board as the handlers use it.
type BoardServiceInterface interface {
	Board(ctx context.Context, filters types.TripFilters) (*types.TripBoard, error)
	Stats(ctx context.Context) (*types.TripStats, error)
}

// PreferenceServiceInterface stores saved view selections.
type PreferenceServiceInterface interface {
	Get(ctx context.Context, viewID string) (types.TripFilters, bool, error)
	Save(ctx context.Context, viewID string, filters types.TripFilters) error
	Delete(ctx context.Context, viewID string) error
	Reset(ctx context.Context) error
}

// HealthServiceInterface reports component health.
type HealthServiceInterface interface {
	CheckHealth(ctx context.Context) types.HealthCheck
}
