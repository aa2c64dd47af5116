package logic

import (
	"sort"
	"time"

	"github.com/vestberry/aoc-leaderboard/internal/models"
)

// Rank orders members for display. With day == 0 members are sorted by local
// score, highest first. With a day selected, members are sorted by their
// star-2 time for that day, then star-1 time, missing times last, and finally
// by local score. Both orderings are stable.
func Rank(members []models.Member, day int) []models.Member {
	ranked := make([]models.Member, len(members))
	copy(ranked, members)

	if day <= 0 {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].LocalScore > ranked[j].LocalScore
		})
		return ranked
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]
		for _, star := range []int{2, 1} {
			at, aok := starTime(a, day, star)
			bt, bok := starTime(b, day, star)
			if c := compareInstants(at, aok, bt, bok); c != 0 {
				return c < 0
			}
		}
		return a.LocalScore > b.LocalScore
	})
	return ranked
}

// starTime returns the member's completion time of star on day.
func starTime(m *models.Member, day, star int) (time.Time, bool) {
	stats, ok := m.Day(day)
	if !ok {
		return time.Time{}, false
	}
	if star == 1 {
		return stats.Star1.GetStarTS, true
	}
	if stats.Star2 == nil {
		return time.Time{}, false
	}
	return stats.Star2.GetStarTS, true
}

// compareInstants orders present instants ascending and absent ones after
// all present ones.
func compareInstants(a time.Time, aok bool, b time.Time, bok bool) int {
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	return a.Compare(b)
}

// VisibleDays returns 1..now.Day(). The column range follows the calendar
// day of month, not the contest length.
func VisibleDays(now time.Time) []int {
	days := make([]int, now.Day())
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// FirstFinishers returns, per day, the earliest star-2 completion among all
// members. Days nobody finished are absent.
func FirstFinishers(members []models.Member, days []int) map[int]time.Time {
	firsts := make(map[int]time.Time, len(days))
	for _, day := range days {
		for i := range members {
			stats, ok := members[i].Day(day)
			if !ok || stats.Star2 == nil {
				continue
			}
			ts := stats.Star2.GetStarTS
			if cur, seen := firsts[day]; !seen || ts.Before(cur) {
				firsts[day] = ts
			}
		}
	}
	return firsts
}

// IsFirst reports whether stats hold the first star-2 completion of day.
func IsFirst(stats models.DayStats, firsts map[int]time.Time, day int) bool {
	if stats.Star2 == nil {
		return false
	}
	first, ok := firsts[day]
	return ok && stats.Star2.GetStarTS.Equal(first)
}

// Project ranks the board for day and lays out the visible table.
func Project(board *models.Leaderboard, day int, now time.Time) *models.LeaderboardView {
	days := VisibleDays(now)
	ranked := Rank(board.Members, day)
	firsts := FirstFinishers(ranked, days)

	view := &models.LeaderboardView{
		Event:     board.Event,
		OwnerID:   board.OwnerID,
		FetchedAt: board.FetchedAt,
		SortDay:   day,
		Days:      days,
		Firsts:    make(map[int]int64, len(firsts)),
		Rows:      make([]models.RankedRow, 0, len(ranked)),
	}
	for d, ts := range firsts {
		view.Firsts[d] = ts.UnixMilli()
	}

	for i, m := range ranked {
		row := models.RankedRow{
			Rank:   i + 1,
			Member: m,
			Cells:  make(map[int]models.Cell),
		}
		for _, d := range days {
			stats, ok := m.Day(d)
			if !ok {
				continue
			}
			s1 := stats.Star1.GetStarTS
			cell := models.Cell{Star1: &s1, First: IsFirst(stats, firsts, d)}
			if stats.Star2 != nil {
				s2 := stats.Star2.GetStarTS
				cell.Star2 = &s2
			}
			row.Cells[d] = cell
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}
