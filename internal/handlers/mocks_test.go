package handlers

import (
	"context"

	"github.com/vestberry/aoc-leaderboard/internal/logic"
	"github.com/vestberry/aoc-leaderboard/internal/models"
)

// MockLeaderboardService
type MockLeaderboardService struct {
	FetchFunc func(ctx context.Context, fresh bool) (*logic.FetchResult, error)
	ViewFunc  func(ctx context.Context, fresh bool, day int) (*models.LeaderboardView, error)
}

func (m *MockLeaderboardService) Fetch(ctx context.Context, fresh bool) (*logic.FetchResult, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, fresh)
	}
	return &logic.FetchResult{}, nil
}

func (m *MockLeaderboardService) View(ctx context.Context, fresh bool, day int) (*models.LeaderboardView, error) {
	if m.ViewFunc != nil {
		return m.ViewFunc(ctx, fresh, day)
	}
	return &models.LeaderboardView{SortDay: day}, nil
}

// MockPinger
type MockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
