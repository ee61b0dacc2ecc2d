package db

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/NomadCrew/tripboard/config"
	"github.com/NomadCrew/tripboard/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:           "db.internal",
		Port:           5433,
		User:           "trips",
		Password:       "p@ss word",
		Name:           "tripboard",
		SSLMode:        "disable",
		MaxConnections: 7,
	}
}

func TestPoolConfig(t *testing.T) {
	poolConfig, err := PoolConfig(testDatabaseConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(7), poolConfig.MaxConns)
	assert.Equal(t, "db.internal", poolConfig.ConnConfig.Host)
	assert.Equal(t, uint16(5433), poolConfig.ConnConfig.Port)
	assert.Equal(t, "p@ss word", poolConfig.ConnConfig.Password)
	assert.Equal(t, "tripboard", poolConfig.ConnConfig.Database)
}

func TestNewDatabaseClient(t *testing.T) {
	poolConfig, err := PoolConfig(testDatabaseConfig())
	require.NoError(t, err)

	client := NewDatabaseClient(poolConfig)
	assert.Nil(t, client.GetPool())
	assert.Equal(t, 5, client.maxRetries)
	assert.Equal(t, time.Second, client.retryDelay)
	assert.NotPanics(t, client.Close)
}

func TestConnect_GivesUpWhenContextEnds(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 1
	poolConfig, err := PoolConfig(cfg)
	require.NoError(t, err)

	client := NewDatabaseClient(poolConfig)
	client.retryDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	assert.Error(t, client.Connect(ctx))
	assert.Nil(t, client.GetPool())
}

func TestConvertToPgx5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db", convertToPgx5URL("postgres://u:p@h:5432/db"))
	assert.Equal(t, "pgx5://u:p@h:5432/db", convertToPgx5URL("postgresql://u:p@h:5432/db"))
	assert.Equal(t, "pgx5://u:p@h:5432/db", convertToPgx5URL("pgx5://u:p@h:5432/db"))
}

func TestMigrationsAreEmbeddedInPairs(t *testing.T) {
	ups, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationFiles, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Equal(t, len(ups), len(downs))
}
