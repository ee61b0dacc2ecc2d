// Package bootstrap assembles the trip source, loader and key-value store
// shared by the HTTP server and tripctl.
package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/NomadCrew/tripboard/config"
	"github.com/NomadCrew/tripboard/db"
	"github.com/NomadCrew/tripboard/internal/kvstore"
	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/models/trip/source"
	"github.com/NomadCrew/tripboard/pkg/tripapi"
	"github.com/NomadCrew/tripboard/store/postgres"
	"github.com/NomadCrew/tripboard/types"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// RemoteTripSource is a remote collaborator that can also report its health.
type RemoteTripSource interface {
	ListTrips(ctx context.Context) ([]types.RemoteTrip, error)
	Ping(ctx context.Context) error
}

// Components are the long-lived collaborators built from configuration.
type Components struct {
	Remote      RemoteTripSource
	Loader      *source.Loader
	Redis       redis.UniversalClient // nil when Redis is disabled
	Preferences kvstore.Store

	dbClient *db.DatabaseClient
}

// New builds every component for cfg. The postgres source connects (and
// optionally migrates) before returning.
func New(ctx context.Context, cfg *config.Config) (*Components, error) {
	log := logger.GetLogger()

	samples, err := source.BundledSamples()
	if err != nil {
		return nil, fmt.Errorf("failed to load sample trips: %w", err)
	}

	c := &Components{}
	remote, err := c.newRemote(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Remote = remote
	c.Loader = source.NewLoader(remote, samples)

	if cfg.Redis.Enabled {
		client := NewRedisClient(cfg.Redis)
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			c.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.Redis = client
		c.Preferences = kvstore.NewRedisStore(client, cfg.Preferences.KeyPrefix)
		log.Infow("Using Redis for view preferences", "address", cfg.Redis.Address)
	} else {
		c.Preferences = kvstore.NewMemoryStore()
		log.Info("Redis disabled, view preferences are kept in memory")
	}

	return c, nil
}

func (c *Components) newRemote(ctx context.Context, cfg *config.Config) (RemoteTripSource, error) {
	log := logger.GetLogger()

	switch cfg.TripSource.Mode {
	case config.SourceModePostgres:
		poolConfig, err := db.PoolConfig(cfg.Database)
		if err != nil {
			return nil, err
		}
		client := db.NewDatabaseClient(poolConfig)
		if err := client.Connect(ctx); err != nil {
			return nil, err
		}
		c.dbClient = client

		if cfg.Database.RunMigrations {
			if err := db.RunMigrations(cfg.Database.URL()); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		log.Infow("Reading trips from PostgreSQL", "database", cfg.Database.Name)
		return postgres.NewTripSource(client.GetPool()), nil
	default:
		timeout := time.Duration(cfg.TripAPI.TimeoutSeconds) * time.Second
		log.Infow("Reading trips from trip API", "baseURL", cfg.TripAPI.BaseURL)
		return tripapi.NewClient(cfg.TripAPI.BaseURL, cfg.TripAPI.Token, timeout), nil
	}
}

// NewRedisClient creates a client for the configured Redis. TLS is enabled
// when UseTLS is set.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	options := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.UseTLS {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	return redis.NewClient(options)
}

// Close releases the database pool and Redis connection.
func (c *Components) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.GetLogger().Warnw("Failed to close redis client", "error", err)
		}
		c.Redis = nil
	}
	if c.dbClient != nil {
		c.dbClient.Close()
		c.dbClient = nil
	}
}
