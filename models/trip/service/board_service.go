package service

import (
	"context"
	"sync"

	apperrors "github.com/NomadCrew/tripboard/errors"
	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/models/trip/pipeline"
	"github.com/NomadCrew/tripboard/models/trip/source"
	"github.com/NomadCrew/tripboard/types"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	openSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tripboard_board_sessions_open",
		Help: "Board sessions that have been opened and not yet closed",
	})
	discardedLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripboard_board_loads_discarded_total",
		Help: "Trip loads that finished after their board session was closed",
	})
)

// TripLoader is what a board session needs from the source adapter.
type TripLoader interface {
	Load(ctx context.Context) source.LoadResult
	Samples() []types.TripRecord
}

// TripBoardService opens board sessions over the trip collection.
type TripBoardService struct {
	loader TripLoader
	log    *zap.SugaredLogger
}

func NewTripBoardService(loader TripLoader) *TripBoardService {
	return &TripBoardService{
		loader: loader,
		log:    logger.GetLogger(),
	}
}

// Open starts a session. The session serves the sample trips straight away
// and swaps in the merged collection once the load completes.
func (s *TripBoardService) Open(ctx context.Context) *BoardSession {
	loadCtx, cancel := context.WithCancel(ctx)
	sess := &BoardSession{
		ID:     uuid.NewString(),
		trips:  s.loader.Samples(),
		done:   make(chan struct{}),
		cancel: cancel,
		log:    s.log,
	}
	openSessions.Inc()
	go sess.load(loadCtx, s.loader)
	return sess
}

// Board opens a session, waits for the load and renders one view of it.
func (s *TripBoardService) Board(ctx context.Context, filters types.TripFilters) (*types.TripBoard, error) {
	sess := s.Open(ctx)
	defer sess.Close()

	if err := sess.Wait(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.UnavailableError, "Trip collection did not load in time")
	}
	board := sess.View(filters)
	return &board, nil
}

// Stats returns the aggregate over the full collection.
func (s *TripBoardService) Stats(ctx context.Context) (*types.TripStats, error) {
	sess := s.Open(ctx)
	defer sess.Close()

	if err := sess.Wait(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.UnavailableError, "Trip collection did not load in time")
	}
	stats := sess.Stats()
	return &stats, nil
}

// BoardSession holds one trip collection for as long as a board is open.
// Loads that finish after Close are dropped.
type BoardSession struct {
	ID string

	mu              sync.RWMutex
	trips           []types.TripRecord
	remoteAvailable bool
	loaded          bool
	closed          bool

	done   chan struct{}
	cancel context.CancelFunc
	log    *zap.SugaredLogger
}

func (b *BoardSession) load(ctx context.Context, loader TripLoader) {
	defer close(b.done)

	result := loader.Load(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		discardedLoads.Inc()
		b.log.Debugw("Discarding trip load for closed session", "sessionID", b.ID)
		return
	}
	b.trips = result.Trips
	b.remoteAvailable = result.RemoteAvailable
	b.loaded = true
}

// Wait blocks until the load has finished or ctx is done.
func (b *BoardSession) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Loaded reports whether the merged collection has replaced the samples.
func (b *BoardSession) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

// Trips returns the collection the session currently holds.
func (b *BoardSession) Trips() []types.TripRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return source.Merge(nil, b.trips)
}

// View filters and sorts the held collection. Stats cover all of it.
func (b *BoardSession) View(filters types.TripFilters) types.TripBoard {
	b.mu.RLock()
	trips, remote := b.trips, b.remoteAvailable
	b.mu.RUnlock()

	board := pipeline.Board(trips, filters)
	board.RemoteAvailable = remote
	return board
}

func (b *BoardSession) Stats() types.TripStats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return pipeline.Aggregate(b.trips)
}

// Close ends the session and cancels an outstanding load. Safe to call more
// than once.
func (b *BoardSession) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	b.cancel()
	openSessions.Dec()
}
