package logic

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/vestberry/aoc-leaderboard/internal/models"
)

// ErrNoData is returned when an envelope carries no leaderboard payload.
var ErrNoData = errors.New("no leaderboard data cached")

// Normalize converts the upstream document into the display model. Unix
// seconds become millisecond instants; optional fields stay nil.
func Normalize(raw *models.RawLeaderboard, fetchedAt int64) *models.Leaderboard {
	board := &models.Leaderboard{
		Event:     raw.Event,
		OwnerID:   raw.OwnerID,
		FetchedAt: fetchedAt,
		Members:   make([]models.Member, 0, len(raw.Members)),
	}

	for _, rm := range raw.Members {
		if rm == nil {
			continue
		}
		board.Members = append(board.Members, normalizeMember(rm))
	}

	// Map iteration order is random; fix one so equal keys rank reproducibly.
	sort.Slice(board.Members, func(i, j int) bool {
		return board.Members[i].ID < board.Members[j].ID
	})

	return board
}

func normalizeMember(rm *models.RawMember) models.Member {
	m := models.Member{
		ID:                 rm.ID,
		Name:               rm.Name,
		GlobalScore:        rm.GlobalScore,
		LocalScore:         rm.LocalScore,
		Stars:              rm.Stars,
		CompletionDayLevel: make(map[int]models.DayStats, len(rm.CompletionDayLevel)),
	}

	if ts, ok := rm.LastStar(); ok {
		t := fromUnix(ts)
		m.LastStarTS = &t
	}

	for key, day := range rm.CompletionDayLevel {
		n, err := strconv.Atoi(key)
		if err != nil || day == nil || day.Star1 == nil {
			continue
		}

		stats := models.DayStats{Star1: normalizeStar(day.Star1)}
		if day.Star2 != nil {
			s2 := normalizeStar(day.Star2)
			stats.Star2 = &s2
		}
		m.CompletionDayLevel[n] = stats
	}

	return m
}

func normalizeStar(s *models.RawStarStats) models.StarStats {
	return models.StarStats{
		StarIndex: s.StarIndex,
		GetStarTS: fromUnix(s.GetStarTS),
	}
}

func fromUnix(sec int64) time.Time {
	return time.UnixMilli(sec * 1000)
}

// DecodeEnvelope validates and normalizes the payload of a cached envelope.
func DecodeEnvelope(env *models.Envelope) (*models.Leaderboard, error) {
	if !env.HasData() {
		return nil, ErrNoData
	}

	raw, err := models.DecodeRawLeaderboard(env.Data)
	if err != nil {
		return nil, err
	}

	return Normalize(raw, env.FetchedAt), nil
}
