package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/vestberry/aoc-leaderboard/internal/logic"
)

// Pinger is the store health check used by the readiness probe
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Store          Pinger
	Logger         *zap.Logger
	AllowedOrigins []string

	// Services
	Leaderboard logic.LeaderboardService
}

type Handler struct {
	store          Pinger
	logger         *zap.SugaredLogger
	allowedOrigins []string
	leaderboard    logic.LeaderboardService
}

func New(cfg Config) *Handler {
	return &Handler{
		store:          cfg.Store,
		logger:         cfg.Logger.Sugar(),
		allowedOrigins: cfg.AllowedOrigins,
		leaderboard:    cfg.Leaderboard,
	}
}
