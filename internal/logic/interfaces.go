package logic

import (
	"context"

	"github.com/vestberry/aoc-leaderboard/internal/models"
	"github.com/vestberry/aoc-leaderboard/internal/upstream"
)

// Upstream defines the interface for the scoring API client
type Upstream interface {
	Configured() bool
	Fetch(ctx context.Context) (*upstream.Result, error)
}

// LeaderboardService defines the interface used by the HTTP handlers
type LeaderboardService interface {
	Fetch(ctx context.Context, fresh bool) (*FetchResult, error)
	View(ctx context.Context, fresh bool, day int) (*models.LeaderboardView, error)
}
