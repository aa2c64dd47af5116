// Command seeder writes a leaderboard snapshot into the store so the API can
// be run locally without a session token.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vestberry/aoc-leaderboard/internal/config"
	"github.com/vestberry/aoc-leaderboard/internal/models"
	"github.com/vestberry/aoc-leaderboard/internal/store"
)

func main() {
	file := flag.String("file", "leaderboard.json", "upstream leaderboard JSON to seed")
	age := flag.Duration("age", 0, "pretend the snapshot was fetched this long ago")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	body, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	// Reject payloads the API would refuse to cache.
	raw, err := models.DecodeRawLeaderboard(body)
	if err != nil {
		log.Fatalf("Snapshot rejected: %v", err)
	}

	env := models.Envelope{
		FetchedAt: time.Now().Add(-*age).UnixMilli(),
		Data:      json.RawMessage(body),
	}
	payload, err := env.Encode()
	if err != nil {
		log.Fatalf("Failed to marshal envelope: %v", err)
	}

	ctx := context.Background()
	kv, err := store.Open(ctx, cfg.CacheURL(), zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer kv.Close()

	if err := kv.Set(ctx, models.EnvelopeKey, string(payload)); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seeded %d members for event %s (fetchedAt=%d)", len(raw.Members), raw.Event, env.FetchedAt)
}
