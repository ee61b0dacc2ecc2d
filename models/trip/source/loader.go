package source

import (
	"context"
	"time"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	remoteFetchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tripboard_remote_fetch_duration_seconds",
		Help:    "Time taken to fetch trips from the remote trip source",
		Buckets: prometheus.DefBuckets,
	})
	remoteFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripboard_remote_fetch_failures_total",
		Help: "Remote trip fetches that failed and fell back to sample trips",
	})
	tripsLoaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripboard_trips_loaded_total",
		Help: "Trip records produced by the source adapter, by origin",
	}, []string{"origin"})
)

// RemoteSource is the trip backend as the loader sees it. Both the HTTP
// client and the postgres store satisfy it.
type RemoteSource interface {
	ListTrips(ctx context.Context) ([]types.RemoteTrip, error)
}

// LoadResult is one load of the trip collection.
type LoadResult struct {
	Trips           []types.TripRecord
	RemoteCount     int
	RemoteAvailable bool
}

// Loader produces the merged collection. It holds no cache: every Load asks
// the remote source again.
type Loader struct {
	remote  RemoteSource
	samples []types.TripRecord
	log     *zap.SugaredLogger
}

// NewLoader creates a loader. remote may be nil, in which case only samples
// are returned.
func NewLoader(remote RemoteSource, samples []types.TripRecord) *Loader {
	return &Loader{
		remote:  remote,
		samples: samples,
		log:     logger.GetLogger(),
	}
}

// Samples returns a copy of the bundled sample records.
func (l *Loader) Samples() []types.TripRecord {
	return Merge(nil, l.samples)
}

// Load fetches remote trips and merges them ahead of the samples. A remote
// failure is logged and counted, never returned: the result then holds the
// samples only.
func (l *Loader) Load(ctx context.Context) LoadResult {
	if l.remote == nil {
		l.observe(0)
		return LoadResult{Trips: l.Samples()}
	}

	start := time.Now()
	remote, err := l.remote.ListTrips(ctx)
	remoteFetchLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		remoteFetchFailures.Inc()
		l.log.Warnw("Remote trip fetch failed, using sample trips only", "error", err)
		l.observe(0)
		return LoadResult{Trips: l.Samples()}
	}

	normalized := NormalizeRemoteAll(remote)
	l.observe(len(normalized))
	l.log.Debugw("Loaded trip collection", "remote", len(normalized), "samples", len(l.samples))
	return LoadResult{
		Trips:           Merge(normalized, l.samples),
		RemoteCount:     len(normalized),
		RemoteAvailable: true,
	}
}

func (l *Loader) observe(remote int) {
	tripsLoaded.WithLabelValues(string(types.TripOriginRemote)).Add(float64(remote))
	tripsLoaded.WithLabelValues(string(types.TripOriginSample)).Add(float64(len(l.samples)))
}
