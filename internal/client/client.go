// Package client is a Go client for the leaderboard API served by cmd/server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vestberry/aoc-leaderboard/internal/logic"
	"github.com/vestberry/aoc-leaderboard/internal/models"
)

// Client is the leaderboard API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetCached returns the raw cached envelope from GET /api.
func (c *Client) GetCached(ctx context.Context, fresh bool) (*models.APIResponse, error) {
	path := "/api"
	if fresh {
		path += "?fresh"
	}

	var resp models.APIResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("client.GetCached: %w", err)
	}
	return &resp, nil
}

// GetLeaderboard fetches the cached envelope and normalizes it. It returns
// logic.ErrNoData when the server has nothing cached yet.
func (c *Client) GetLeaderboard(ctx context.Context, fresh bool) (*models.Leaderboard, error) {
	resp, err := c.GetCached(ctx, fresh)
	if err != nil {
		return nil, err
	}

	board, err := logic.DecodeEnvelope(&models.Envelope{FetchedAt: resp.FetchedAt, Data: resp.Data})
	if err != nil {
		return nil, fmt.Errorf("client.GetLeaderboard: %w", err)
	}
	return board, nil
}

// GetView fetches the server-side ranked projection for day (0 = by score).
func (c *Client) GetView(ctx context.Context, day int, fresh bool) (*models.LeaderboardView, error) {
	params := url.Values{}
	if day > 0 {
		params.Set("day", strconv.Itoa(day))
	}
	if fresh {
		params.Set("fresh", "")
	}

	path := "/api/leaderboard"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var view models.LeaderboardView
	if err := c.get(ctx, path, &view); err != nil {
		return nil, fmt.Errorf("client.GetView: %w", err)
	}
	return &view, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
