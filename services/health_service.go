package services

import (
	"context"
	"time"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TripSourcePinger is the remote trip source as the health check sees it.
type TripSourcePinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	tripSource  TripSourcePinger
	redisClient redis.UniversalClient
	version     string
	startTime   time.Time
	log         *zap.SugaredLogger
}

// NewHealthService creates a health service. tripSource and redisClient may
// be nil when the deployment runs without them.
func NewHealthService(tripSource TripSourcePinger, redisClient redis.UniversalClient, version string) *HealthService {
	return &HealthService{
		tripSource:  tripSource,
		redisClient: redisClient,
		version:     version,
		startTime:   time.Now(),
		log:         logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	// The board keeps working on sample trips, so a missing trip source only
	// degrades the service.
	sourceStatus := h.checkTripSource(ctx)
	components["trip_source"] = sourceStatus
	if sourceStatus.Status != types.HealthStatusUp {
		overallStatus = types.HealthStatusDegraded
	}

	if h.redisClient != nil {
		redisStatus := h.checkRedis(ctx)
		components["redis"] = redisStatus
		if redisStatus.Status == types.HealthStatusDown {
			overallStatus = types.HealthStatusDown
		}
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkTripSource(ctx context.Context) types.HealthComponent {
	if h.tripSource == nil {
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "No remote trip source configured, serving sample trips",
		}
	}

	if err := h.tripSource.Ping(ctx); err != nil {
		h.log.Warnw("Trip source health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "Trip source unreachable, serving sample trips",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Errorw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Redis connection failed",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}
