package models

// RawLeaderboard is the private leaderboard document as served by the
// upstream scoring API.
type RawLeaderboard struct {
	Event   string                `json:"event" validate:"required"`
	OwnerID int                   `json:"owner_id"`
	NumDays int                   `json:"num_days,omitempty"`
	Day1TS  int64                 `json:"day1_ts,omitempty"`
	Members map[string]*RawMember `json:"members" validate:"required,dive,required"`
}

// RawMember is one participant keyed by id in RawLeaderboard.Members.
type RawMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	GlobalScore int    `json:"global_score"`
	LocalScore  int    `json:"local_score"`
	Stars       int    `json:"stars" validate:"gte=0"`
	LastStarTS  *int64 `json:"last_star_ts,omitempty"`
	// Older payloads and the first client both used this spelling.
	LastStartTS        *int64                  `json:"last_start_ts,omitempty"`
	CompletionDayLevel map[string]*RawDayStats `json:"completion_day_level" validate:"dive,keys,number,endkeys,required"`
}

// RawDayStats holds the per-star completion records of one day.
type RawDayStats struct {
	Star1 *RawStarStats `json:"1" validate:"required"`
	Star2 *RawStarStats `json:"2,omitempty"`
}

type RawStarStats struct {
	StarIndex int64 `json:"star_index"`
	GetStarTS int64 `json:"get_star_ts"`
}

// LastStar returns the last-star timestamp in unix seconds, if any.
func (m *RawMember) LastStar() (int64, bool) {
	switch {
	case m.LastStarTS != nil:
		return *m.LastStarTS, true
	case m.LastStartTS != nil:
		return *m.LastStartTS, true
	}
	return 0, false
}
