package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/vestberry/aoc-leaderboard/internal/models"
	"github.com/vestberry/aoc-leaderboard/internal/store"
)

// ErrMissingConfig is returned before any I/O when the upstream URL or the
// session token is not configured.
var ErrMissingConfig = errors.New("missing configuration variables")

// Prometheus metrics
var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aoclb_cache_hits_total",
		Help: "Total number of requests served from the cached envelope",
	})

	refreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aoclb_refreshes_total",
		Help: "Total number of upstream refresh attempts by outcome",
	}, []string{"outcome"})

	upstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aoclb_upstream_fetch_duration_seconds",
		Help:    "Duration of upstream leaderboard requests",
		Buckets: prometheus.DefBuckets,
	})

	storeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aoclb_store_errors_total",
		Help: "Total number of failed store operations",
	}, []string{"op"})
)

// FetchResult is the envelope a request should be answered with.
type FetchResult struct {
	Envelope *models.Envelope
	// Refreshed is true when Envelope was produced by an upstream call
	// during this invocation.
	Refreshed bool
	// RefreshID identifies the upstream attempt in logs; empty on cache hits.
	RefreshID string
}

// FetcherConfig configures the cache-aside fetcher
type FetcherConfig struct {
	Store    store.Store
	Upstream Upstream
	Timeout  time.Duration
	Logger   *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// FetcherService decides per request whether the cached envelope is served
// or the upstream API is called and the cache overwritten.
type FetcherService struct {
	store    store.Store
	upstream Upstream
	timeout  time.Duration
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewFetcherService(cfg FetcherConfig) *FetcherService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &FetcherService{
		store:    cfg.Store,
		upstream: cfg.Upstream,
		timeout:  cfg.Timeout,
		logger:   cfg.Logger.Sugar(),
		now:      cfg.Now,
	}
}

// Fetch returns the cached envelope or a freshly fetched one. It performs at
// most one upstream call and at most one store write. The returned envelope
// is nil when nothing is cached and the upstream answered with an empty body.
func (s *FetcherService) Fetch(ctx context.Context, fresh bool) (*FetchResult, error) {
	if !s.upstream.Configured() {
		return nil, ErrMissingConfig
	}

	cached, err := s.load(ctx)
	if err != nil {
		storeErrors.WithLabelValues("get").Inc()
		return nil, err
	}

	reason := s.refreshReason(cached, fresh, s.now())
	if reason == "" {
		s.logger.Debugw("Using cached data", "fetchedAt", cached.FetchedAt)
		cacheHits.Inc()
		return &FetchResult{Envelope: cached}, nil
	}

	refreshID := uuid.New().String()
	s.logger.Infow("Requesting fresh data", "upstream", s.upstream, "reason", reason, "refresh_id", refreshID)

	// A started refresh runs to completion even if the caller goes away.
	refreshCtx := context.WithoutCancel(ctx)

	start := time.Now()
	res, err := s.upstream.Fetch(refreshCtx)
	upstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		refreshes.WithLabelValues("error").Inc()
		s.logger.Errorw("Upstream fetch failed", "refresh_id", refreshID, "error", err)
		return nil, err
	}

	if res == nil {
		refreshes.WithLabelValues("empty").Inc()
		s.logger.Warnw("Upstream returned empty body, keeping cached data", "refresh_id", refreshID)
		return &FetchResult{Envelope: cached, RefreshID: refreshID}, nil
	}

	env := &models.Envelope{
		FetchedAt: s.now().UnixMilli(),
		Data:      json.RawMessage(res.Body),
	}
	if err := s.save(refreshCtx, env); err != nil {
		refreshes.WithLabelValues("error").Inc()
		storeErrors.WithLabelValues("set").Inc()
		return nil, err
	}

	refreshes.WithLabelValues("ok").Inc()
	s.logger.Infow("Cached fresh data", "refresh_id", refreshID, "fetchedAt", env.FetchedAt, "members", len(res.Leaderboard.Members))

	return &FetchResult{Envelope: env, Refreshed: true, RefreshID: refreshID}, nil
}

// refreshReason returns why a refresh is needed, or "" when the cached
// envelope may be served.
func (s *FetcherService) refreshReason(cached *models.Envelope, fresh bool, now time.Time) string {
	if !cached.HasData() {
		return "empty cache"
	}
	if fresh {
		return "forced"
	}
	age, ok := cached.Age(now)
	if !ok {
		return "no fetch time"
	}
	if age > s.timeout {
		return "stale"
	}
	return ""
}

func (s *FetcherService) load(ctx context.Context) (*models.Envelope, error) {
	raw, err := s.store.Get(ctx, models.EnvelopeKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var env models.Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		s.logger.Warnw("Discarding unreadable cache entry", "error", err)
		return nil, nil
	}
	return &env, nil
}

func (s *FetcherService) save(ctx context.Context, env *models.Envelope) error {
	data, err := env.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}
	if err := s.store.Set(ctx, models.EnvelopeKey, string(data)); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// View fetches like Fetch and projects the normalized leaderboard ranked for
// day (0 = default ordering).
func (s *FetcherService) View(ctx context.Context, fresh bool, day int) (*models.LeaderboardView, error) {
	res, err := s.Fetch(ctx, fresh)
	if err != nil {
		return nil, err
	}

	board, err := DecodeEnvelope(res.Envelope)
	if err != nil {
		return nil, err
	}

	return Project(board, day, s.now()), nil
}
