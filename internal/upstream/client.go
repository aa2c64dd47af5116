// Package upstream talks to the scoring API that owns the leaderboard.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vestberry/aoc-leaderboard/internal/models"
)

// UserAgent is sent with every upstream request.
const UserAgent = "AoC Leaderboard"

// maxBodySize caps how much of an upstream response is read (8MB)
const maxBodySize = 8 << 20

// Result is a fetched and validated leaderboard body.
type Result struct {
	Body        []byte
	Leaderboard *models.RawLeaderboard
}

// Client fetches the private leaderboard with a session cookie.
type Client struct {
	url        string
	session    string
	httpClient *http.Client
}

// New creates a new upstream client. A zero timeout means no timeout.
func New(url, session string, timeout time.Duration) *Client {
	return &Client{
		url:     url,
		session: session,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether both the URL and the session token are set.
func (c *Client) Configured() bool {
	return c.url != "" && c.session != ""
}

// Fetch issues a single GET to the leaderboard URL. It returns (nil, nil)
// when the upstream answered with an empty JSON value.
func (c *Client) Fetch(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{Op: "build request", Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Cookie", "session="+c.session)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &FetchError{Op: "read body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Op: "request", Err: &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), 200),
		}}
	}

	if models.IsEmptyJSON(body) {
		return nil, nil
	}

	raw, err := models.DecodeRawLeaderboard(body)
	if err != nil {
		return nil, &FetchError{Op: "decode", Err: err}
	}

	return &Result{Body: body, Leaderboard: raw}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// String is used in log lines; it never includes the session.
func (c *Client) String() string {
	return fmt.Sprintf("upstream(%s)", c.url)
}
