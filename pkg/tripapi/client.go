// Package tripapi is the HTTP client for the trip backend's GET /trips/ endpoint.
package tripapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/types"
)

// ClientInterface defines the trip backend operations tripboard needs.
type ClientInterface interface {
	ListTrips(ctx context.Context) ([]types.RemoteTrip, error)
	Ping(ctx context.Context) error
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a client for the backend rooted at baseURL
// (e.g. https://api.example.com/api). token is sent as a bearer token when set.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListTrips fetches every trip visible to the configured token.
func (c *Client) ListTrips(ctx context.Context) ([]types.RemoteTrip, error) {
	log := logger.GetLogger()
	endpoint := c.baseURL + "/trips/"

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	log.Debugw("Trip API response received", "statusCode", resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		log.Warnw("Trip API returned non-OK status", "statusCode", resp.StatusCode)
		return nil, fmt.Errorf("trip API returned status: %d", resp.StatusCode)
	}

	var trips []types.RemoteTrip
	if err := json.NewDecoder(resp.Body).Decode(&trips); err != nil {
		log.Errorw("Failed to decode trip API response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	log.Debugw("Trip API response decoded", "tripsReturned", len(trips))
	return trips, nil
}

// Ping checks that the backend answers at all. Any status below 500 counts.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.get(ctx, c.baseURL+"/trips/")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("trip API returned status: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.GetLogger().Errorw("Failed to create trip API request", "error", err)
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().Errorw("Failed to execute trip API request", "url", endpoint, "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	return resp, nil
}
