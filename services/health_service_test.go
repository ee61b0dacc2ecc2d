package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/types"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.IsTest = true
}

type MockTripSourcePinger struct {
	mock.Mock
}

func (m *MockTripSourcePinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestNewHealthService(t *testing.T) {
	service := NewHealthService(nil, nil, "1.0.0")

	assert.NotNil(t, service)
	assert.Equal(t, "1.0.0", service.version)
	assert.NotNil(t, service.log)
	assert.True(t, time.Since(service.startTime) < time.Second)
}

func TestCheckHealth_AllUp(t *testing.T) {
	source := new(MockTripSourcePinger)
	source.On("Ping", mock.Anything).Return(nil)
	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectPing().SetVal("PONG")

	health := NewHealthService(source, redisClient, "1.2.3").CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusUp, health.Status)
	assert.Equal(t, types.HealthStatusUp, health.Components["trip_source"].Status)
	assert.Equal(t, types.HealthStatusUp, health.Components["redis"].Status)
	assert.Equal(t, "1.2.3", health.Version)
	assert.NotEmpty(t, health.Timestamp)
	assert.NotEmpty(t, health.Uptime)
	assert.NoError(t, redisMock.ExpectationsWereMet())
	source.AssertExpectations(t)
}

func TestCheckHealth_TripSourceDownDegrades(t *testing.T) {
	source := new(MockTripSourcePinger)
	source.On("Ping", mock.Anything).Return(errors.New("connection refused"))

	health := NewHealthService(source, nil, "dev").CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusDegraded, health.Status)
	assert.Equal(t, types.HealthStatusDegraded, health.Components["trip_source"].Status)
	_, hasRedis := health.Components["redis"]
	assert.False(t, hasRedis)
}

func TestCheckHealth_NoTripSource(t *testing.T) {
	health := NewHealthService(nil, nil, "dev").CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusDegraded, health.Status)
	assert.Contains(t, health.Components["trip_source"].Details, "sample trips")
}

func TestCheckHealth_RedisDown(t *testing.T) {
	source := new(MockTripSourcePinger)
	source.On("Ping", mock.Anything).Return(nil)
	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectPing().SetErr(errors.New("dial tcp: refused"))

	health := NewHealthService(source, redisClient, "dev").CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusDown, health.Status)
	assert.Equal(t, types.HealthStatusDown, health.Components["redis"].Status)
	assert.Equal(t, "Redis connection failed", health.Components["redis"].Details)
}
