package models

import "time"

// Leaderboard is the normalized, display-ready form of RawLeaderboard.
type Leaderboard struct {
	Event     string   `json:"event"`
	OwnerID   int      `json:"ownerId"`
	FetchedAt int64    `json:"fetchedAt"`
	Members   []Member `json:"members"`
}

type Member struct {
	ID                 int              `json:"id"`
	Name               string           `json:"name"`
	GlobalScore        int              `json:"globalScore"`
	LocalScore         int              `json:"localScore"`
	Stars              int              `json:"stars"`
	LastStarTS         *time.Time       `json:"lastStarTs,omitempty"`
	CompletionDayLevel map[int]DayStats `json:"completionDayLevel"`
}

// DayStats always carries star 1; star 2 is nil until the day is finished.
type DayStats struct {
	Star1 StarStats  `json:"1"`
	Star2 *StarStats `json:"2,omitempty"`
}

type StarStats struct {
	StarIndex int64     `json:"starIndex"`
	GetStarTS time.Time `json:"getStarTs"`
}

// Day returns the member's stats for day, if any.
func (m *Member) Day(day int) (DayStats, bool) {
	s, ok := m.CompletionDayLevel[day]
	return s, ok
}

// LeaderboardView is a ranked projection of a Leaderboard for one sort mode.
type LeaderboardView struct {
	Event     string        `json:"event"`
	OwnerID   int           `json:"ownerId"`
	FetchedAt int64         `json:"fetchedAt"`
	SortDay   int           `json:"sortDay"` // 0 = default local-score ordering
	Days      []int         `json:"days"`
	Firsts    map[int]int64 `json:"firsts"` // epoch millis, days without finishers omitted
	Rows      []RankedRow   `json:"rows"`
}

type RankedRow struct {
	Rank   int          `json:"rank"`
	Member Member       `json:"member"`
	Cells  map[int]Cell `json:"cells"`
}

// Cell is one member/day intersection of the table.
type Cell struct {
	Star1 *time.Time `json:"star1,omitempty"`
	Star2 *time.Time `json:"star2,omitempty"`
	First bool       `json:"first"`
}
