package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestberry/aoc-leaderboard/internal/client"
	"github.com/vestberry/aoc-leaderboard/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	timeout := flag.Int("timeout", 900, "server freshness timeout in seconds, drives the refresh countdown")
	flag.Parse()

	apiURL := os.Getenv("AOCLB_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	c := client.New(apiURL)
	app := tui.New(c, time.Duration(*timeout)*time.Second)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
