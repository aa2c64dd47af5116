package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vestberry/aoc-leaderboard/internal/logic"
	"github.com/vestberry/aoc-leaderboard/internal/models"
	"github.com/vestberry/aoc-leaderboard/internal/store"
)

func main() {
	storeURL := os.Getenv("STORE_URL")
	if storeURL == "" {
		storeURL = os.Getenv("REDIS_URL")
	}
	if storeURL == "" {
		storeURL = "redis://localhost:6379/0"
	}

	ctx := context.Background()
	kv, err := store.Open(ctx, storeURL, zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer kv.Close()

	raw, err := kv.Get(ctx, models.EnvelopeKey)
	if err != nil {
		log.Fatalf("Failed to read %q: %v", models.EnvelopeKey, err)
	}

	var env models.Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Fatalf("Cache entry is not an envelope: %v", err)
	}

	now := time.Now()
	if age, ok := env.Age(now); ok {
		fmt.Printf("fetchedAt: %s (%s ago)\n", time.UnixMilli(env.FetchedAt).Format(time.RFC3339), age.Round(time.Second))
	} else {
		fmt.Println("fetchedAt: missing")
	}
	fmt.Printf("payload:   %d bytes\n", len(env.Data))

	board, err := logic.DecodeEnvelope(&env)
	if err != nil {
		log.Fatalf("Payload rejected: %v", err)
	}

	view := logic.Project(board, 0, now)
	fmt.Printf("event:     %s (%d members, %d days)\n", view.Event, len(view.Rows), len(view.Days))
	for _, row := range view.Rows {
		fmt.Printf("%4d) %-24s %5d  %2d*\n", row.Rank, row.Member.Name, row.Member.LocalScore, row.Member.Stars)
	}
}
