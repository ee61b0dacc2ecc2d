package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitService_UnderLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewRateLimitService(client)

	mock.ExpectTxPipeline()
	mock.ExpectIncr("tripboard:rate_limit:10.0.0.1").SetVal(3)
	mock.ExpectExpireNX("tripboard:rate_limit:10.0.0.1", time.Minute).SetVal(false)
	mock.ExpectTxPipelineExec()

	allowed, retryAfter, err := svc.CheckLimit(context.Background(), "10.0.0.1", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitService_OverLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewRateLimitService(client)

	mock.ExpectTxPipeline()
	mock.ExpectIncr("tripboard:rate_limit:10.0.0.1").SetVal(6)
	mock.ExpectExpireNX("tripboard:rate_limit:10.0.0.1", time.Minute).SetVal(false)
	mock.ExpectTxPipelineExec()
	mock.ExpectTTL("tripboard:rate_limit:10.0.0.1").SetVal(42 * time.Second)

	allowed, retryAfter, err := svc.CheckLimit(context.Background(), "10.0.0.1", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 42*time.Second, retryAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitService_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewRateLimitService(client)

	mock.ExpectTxPipeline()
	mock.ExpectIncr("tripboard:rate_limit:10.0.0.1").SetErr(errors.New("connection reset"))

	allowed, _, err := svc.CheckLimit(context.Background(), "10.0.0.1", 5, time.Minute)
	assert.Error(t, err)
	assert.False(t, allowed)
}
