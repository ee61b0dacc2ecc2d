// Package db opens the PostgreSQL pool used by the postgres trip source and
// applies its schema migrations.
package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NomadCrew/tripboard/config"
	"github.com/NomadCrew/tripboard/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseClient owns the connection pool for the life of the process.
type DatabaseClient struct {
	pool       *pgxpool.Pool
	config     *pgxpool.Config
	mu         sync.RWMutex
	maxRetries int
	retryDelay time.Duration
}

// PoolConfig builds a pgxpool configuration from the database settings.
func PoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConnections > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConnections)
	}
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	return poolConfig, nil
}

func NewDatabaseClient(poolConfig *pgxpool.Config) *DatabaseClient {
	return &DatabaseClient{
		config:     poolConfig,
		maxRetries: 5,
		retryDelay: time.Second,
	}
}

// Connect creates the pool and pings it, retrying with a linear backoff
// while the database comes up.
func (dc *DatabaseClient) Connect(ctx context.Context) error {
	log := logger.GetLogger()

	var lastErr error
	for attempt := 1; attempt <= dc.maxRetries; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, dc.config)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				dc.mu.Lock()
				dc.pool = pool
				dc.mu.Unlock()
				log.Infow("Connected to database",
					"host", dc.config.ConnConfig.Host,
					"database", dc.config.ConnConfig.Database,
					"attempt", attempt)
				return nil
			}
			pool.Close()
		}
		lastErr = err
		log.Warnw("Database connection attempt failed", "attempt", attempt, "maxRetries", dc.maxRetries, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * dc.retryDelay):
		}
	}
	return fmt.Errorf("failed to connect to database after %d attempts: %w", dc.maxRetries, lastErr)
}

// GetPool returns the pool, or nil before Connect succeeds.
func (dc *DatabaseClient) GetPool() *pgxpool.Pool {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	return dc.pool
}

func (dc *DatabaseClient) Close() {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	if dc.pool != nil {
		dc.pool.Close()
		dc.pool = nil
	}
}
