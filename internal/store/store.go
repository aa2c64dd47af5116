// Package store provides the key-value backends used to persist the cached
// leaderboard envelope. The backend is picked from the connection URL scheme.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("store: key not found")

// Store is a string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

const connectTimeout = 10 * time.Second

// Open connects to the store described by rawURL.
//
//	redis://, rediss://         Redis (go-redis)
//	postgres://, postgresql://  PostgreSQL table kv_store (pgx)
//	memory://                   process-local map
func Open(ctx context.Context, rawURL string, logger *zap.Logger) (Store, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	log := logger.Sugar()

	switch u.Scheme {
	case "redis", "rediss":
		opts, err := redis.ParseURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Infow("Connected to store", "backend", "redis", "addr", opts.Addr)
		return NewRedisStore(client), nil

	case "postgres", "postgresql":
		pool, err := pgxpool.New(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres pool: %w", err)
		}
		s := NewPostgresStore(pool)
		if err := s.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		log.Infow("Connected to store", "backend", "postgres", "host", u.Host)
		return s, nil

	case "memory":
		log.Warnw("Using in-memory store, cache is lost on restart", "backend", "memory")
		return NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("unsupported store scheme %q", u.Scheme)
}
