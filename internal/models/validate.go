package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// DecodeRawLeaderboard parses and validates an upstream leaderboard body.
// Every present day must carry star-1 stats.
func DecodeRawLeaderboard(data []byte) (*RawLeaderboard, error) {
	var raw RawLeaderboard
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	if err := getValidator().Struct(&raw); err != nil {
		return nil, fmt.Errorf("invalid leaderboard: %w", err)
	}
	return &raw, nil
}

// IsEmptyJSON reports whether body is a value the refresh path ignores:
// nothing at all, null, false, 0, "", {} or [].
func IsEmptyJSON(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return true
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return false
	}
	switch compact.String() {
	case "null", "false", "0", `""`, "{}", "[]":
		return true
	}
	return false
}
