package service

import (
	"context"
	"testing"
	"time"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/models/trip/source"
	"github.com/NomadCrew/tripboard/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

type MockTripLoader struct {
	mock.Mock
}

func (m *MockTripLoader) Load(ctx context.Context) source.LoadResult {
	args := m.Called(ctx)
	return args.Get(0).(source.LoadResult)
}

func (m *MockTripLoader) Samples() []types.TripRecord {
	args := m.Called()
	return args.Get(0).([]types.TripRecord)
}

func record(id, title string, origin types.TripOrigin, status types.TripStatus, budget int64) types.TripRecord {
	return types.TripRecord{
		ID:          id,
		Title:       title,
		Cities:      []string{title},
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		TotalBudget: decimal.NewFromInt(budget),
		Status:      status,
		Origin:      origin,
	}
}

var (
	sampleTrips = []types.TripRecord{
		record("1", "Goa", types.TripOriginSample, types.TripStatusActive, 45000),
	}
	remoteTrips = []types.TripRecord{
		record("1", "Leh", types.TripOriginRemote, types.TripStatusPlanned, 90000),
		record("1", "Goa", types.TripOriginSample, types.TripStatusActive, 45000),
	}
)

func gatedLoader(release <-chan struct{}) *MockTripLoader {
	loader := new(MockTripLoader)
	loader.On("Samples").Return(sampleTrips)
	loader.On("Load", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(source.LoadResult{Trips: remoteTrips, RemoteCount: 1, RemoteAvailable: true})
	return loader
}

func TestBoardSession_ServesSamplesUntilLoaded(t *testing.T) {
	release := make(chan struct{})
	svc := NewTripBoardService(gatedLoader(release))

	sess := svc.Open(context.Background())
	defer sess.Close()

	assert.NotEmpty(t, sess.ID)
	assert.False(t, sess.Loaded())
	before := sess.View(types.DefaultTripFilters())
	assert.Equal(t, 1, before.MatchingTrips)
	assert.False(t, before.RemoteAvailable)

	close(release)
	require.NoError(t, sess.Wait(context.Background()))

	assert.True(t, sess.Loaded())
	after := sess.View(types.DefaultTripFilters())
	assert.Equal(t, 2, after.MatchingTrips)
	assert.True(t, after.RemoteAvailable)
	assert.Equal(t, "remote-1", after.Trips[0].Key)
	assert.Equal(t, "sample-1", after.Trips[1].Key)
}

func TestBoardSession_DiscardsLoadAfterClose(t *testing.T) {
	release := make(chan struct{})
	svc := NewTripBoardService(gatedLoader(release))

	sess := svc.Open(context.Background())
	sess.Close()
	close(release)
	require.NoError(t, sess.Wait(context.Background()))

	assert.False(t, sess.Loaded())
	assert.Len(t, sess.Trips(), 1)
	assert.Equal(t, types.TripOriginSample, sess.Trips()[0].Origin)
}

func TestBoardSession_CloseIsIdempotent(t *testing.T) {
	release := make(chan struct{})
	close(release)
	sess := NewTripBoardService(gatedLoader(release)).Open(context.Background())

	assert.NotPanics(t, func() {
		sess.Close()
		sess.Close()
	})
}

func TestBoardSession_WaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	sess := NewTripBoardService(gatedLoader(release)).Open(context.Background())
	defer sess.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, sess.Wait(ctx), context.DeadlineExceeded)
}

func TestBoardSession_StatsCoverWholeCollection(t *testing.T) {
	release := make(chan struct{})
	close(release)
	sess := NewTripBoardService(gatedLoader(release)).Open(context.Background())
	defer sess.Close()
	require.NoError(t, sess.Wait(context.Background()))

	board := sess.View(types.TripFilters{Status: "active"})
	assert.Equal(t, 1, board.MatchingTrips)
	assert.Equal(t, 2, board.Stats.TotalTrips)
	assert.True(t, board.Stats.TotalBudget.Equal(decimal.NewFromInt(135000)))
	stats := sess.Stats()
	assert.Equal(t, board.Stats.TotalTrips, stats.TotalTrips)
	assert.True(t, board.Stats.TotalBudget.Equal(stats.TotalBudget))
}

func TestTripBoardService_Board(t *testing.T) {
	release := make(chan struct{})
	close(release)
	loader := gatedLoader(release)
	svc := NewTripBoardService(loader)

	board, err := svc.Board(context.Background(), types.TripFilters{SortBy: types.SortBudgetAsc})
	require.NoError(t, err)
	require.Len(t, board.Trips, 2)
	assert.Equal(t, "Goa", board.Trips[0].Title)
	assert.Equal(t, "Leh", board.Trips[1].Title)
	assert.True(t, board.RemoteAvailable)
	loader.AssertExpectations(t)
}

func TestTripBoardService_BoardTimesOut(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	svc := NewTripBoardService(gatedLoader(release))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	board, err := svc.Board(ctx, types.DefaultTripFilters())
	assert.Nil(t, board)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTripBoardService_Stats(t *testing.T) {
	release := make(chan struct{})
	close(release)
	svc := NewTripBoardService(gatedLoader(release))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalTrips)
	assert.Equal(t, 1, stats.ActiveTrips)
	assert.Equal(t, 2, stats.CitiesVisited)
}
