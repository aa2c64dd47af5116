package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vestberry/aoc-leaderboard/internal/config"
	"github.com/vestberry/aoc-leaderboard/internal/handlers"
	"github.com/vestberry/aoc-leaderboard/internal/logger"
	"github.com/vestberry/aoc-leaderboard/internal/logic"
	"github.com/vestberry/aoc-leaderboard/internal/store"
	"github.com/vestberry/aoc-leaderboard/internal/upstream"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if err := run(cfg, zl); err != nil {
		zl.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := store.Open(ctx, cfg.CacheURL(), zl)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer kv.Close()

	client := upstream.New(cfg.LeaderboardURL, cfg.LeaderboardSession, cfg.HTTPTimeout)
	if !client.Configured() {
		zl.Warn("LEADERBOARD_URL or LEADERBOARD_SESSION not set, requests will fail until configured")
	}

	fetcher := logic.NewFetcherService(logic.FetcherConfig{
		Store:    kv,
		Upstream: client,
		Timeout:  cfg.RefreshTimeout(),
		Logger:   zl,
	})

	h := handlers.New(handlers.Config{
		Store:          kv,
		Logger:         zl,
		AllowedOrigins: cfg.AllowedOrigins,
		Leaderboard:    fetcher,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zl.Info("HTTP server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.Duration("refresh_timeout", cfg.RefreshTimeout()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		zl.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	zl.Info("Server shut down gracefully")
	return nil
}
