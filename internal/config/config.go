package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Upstream scoring API. Both are checked per request, not at startup.
	LeaderboardURL     string        `env:"LEADERBOARD_URL"`
	LeaderboardSession string        `env:"LEADERBOARD_SESSION"`
	TimeoutSeconds     int           `env:"LEADERBOARD_TIMEOUT" envDefault:"900"`
	HTTPTimeout        time.Duration `env:"LEADERBOARD_HTTP_TIMEOUT" envDefault:"0s"`

	// Store
	StoreURL string `env:"STORE_URL"`
	RedisURL string `env:"REDIS_URL"`
}

// Load loads configuration from environment variables.
// It returns an error if the store connection string is missing.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom is Load with an explicit environment instead of the process one.
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	origins := cfg.AllowedOrigins[:0]
	for _, o := range cfg.AllowedOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.AllowedOrigins = origins

	// Critical configuration - fail if missing
	storeURL := cfg.CacheURL()
	if storeURL == "" {
		return nil, fmt.Errorf("missing required environment variable: STORE_URL or REDIS_URL")
	}
	if _, err := url.Parse(storeURL); err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}

	return cfg, nil
}

// CacheURL returns the store connection string, preferring STORE_URL.
func (c *Config) CacheURL() string {
	if c.StoreURL != "" {
		return c.StoreURL
	}
	return c.RedisURL
}

// RefreshTimeout is the maximum age of a cached envelope before it is stale.
// Zero or negative makes every request refresh.
func (c *Config) RefreshTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
