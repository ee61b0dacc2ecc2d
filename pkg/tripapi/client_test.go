package tripapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

const tripsPayload = `[
  {
    "id": 42,
    "title": "Rajasthan Loop",
    "destination_cache": "Jaipur",
    "stops": [{"city": {"name": "Jaipur"}}, {"city": {"name": "Udaipur"}}],
    "start_date": "2026-03-01",
    "end_date": "2026-03-08",
    "budget_limit": "45000.50",
    "total_spent": 12000,
    "status": "ACTIVE",
    "created_at": "2026-01-15T10:00:00Z",
    "cover_image_url": "https://img.example.com/jaipur.jpg"
  },
  {
    "id": "b7c1",
    "title": "Weekend",
    "budget_limit": null
  }
]`

func TestClient_ListTrips(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/trips/", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tripsPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api/", "secret-token", time.Second)
	trips, err := client.ListTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 2)

	first := trips[0]
	assert.Equal(t, "42", first.ID.String())
	assert.Equal(t, "Rajasthan Loop", first.Title)
	require.NotNil(t, first.DestinationCache)
	assert.Equal(t, "Jaipur", *first.DestinationCache)
	require.Len(t, first.Stops, 2)
	assert.Equal(t, "Udaipur", first.Stops[1].City.Name)
	assert.True(t, first.BudgetLimit.Valid)
	assert.Equal(t, "45000.5", first.BudgetLimit.Decimal.String())
	assert.True(t, first.TotalSpent.Valid)
	assert.Equal(t, "12000", first.TotalSpent.Decimal.String())
	require.NotNil(t, first.Status)
	assert.Equal(t, "ACTIVE", *first.Status)

	second := trips[1]
	assert.Equal(t, "b7c1", second.ID.String())
	assert.False(t, second.BudgetLimit.Valid)
	assert.False(t, second.TotalSpent.Valid)
	assert.Nil(t, second.StartDate)
	assert.Empty(t, second.Stops)
}

func TestClient_ListTrips_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	trips, err := client.ListTrips(context.Background())
	assert.Error(t, err)
	assert.Nil(t, trips)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_ListTrips_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"detail": "not a list"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	_, err := client.ListTrips(context.Background())
	assert.ErrorContains(t, err, "failed to decode response")
}

func TestClient_ListTrips_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, "", time.Second)
	_, err := client.ListTrips(context.Background())
	assert.ErrorContains(t, err, "failed to execute request")
}

func TestClient_Ping(t *testing.T) {
	status := http.StatusUnauthorized
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	assert.NoError(t, client.Ping(context.Background()))

	status = http.StatusServiceUnavailable
	assert.Error(t, client.Ping(context.Background()))
}
