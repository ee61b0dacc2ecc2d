package handlers

import (
	"context"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/middleware"
	"github.com/NomadCrew/tripboard/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

// MockBoardService is the canonical board service mock for handler tests.
type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) Board(ctx context.Context, filters types.TripFilters) (*types.TripBoard, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TripBoard), args.Error(1)
}

func (m *MockBoardService) Stats(ctx context.Context) (*types.TripStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TripStats), args.Error(1)
}

type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) Get(ctx context.Context, viewID string) (types.TripFilters, bool, error) {
	args := m.Called(ctx, viewID)
	return args.Get(0).(types.TripFilters), args.Bool(1), args.Error(2)
}

func (m *MockPreferenceService) Save(ctx context.Context, viewID string, filters types.TripFilters) error {
	return m.Called(ctx, viewID, filters).Error(0)
}

func (m *MockPreferenceService) Delete(ctx context.Context, viewID string) error {
	return m.Called(ctx, viewID).Error(0)
}

func (m *MockPreferenceService) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	return m.Called(ctx).Get(0).(types.HealthCheck)
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	return router
}
