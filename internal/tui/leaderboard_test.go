package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestberry/aoc-leaderboard/internal/models"
)

type fakeFetcher struct {
	board *models.Leaderboard
	err   error
	fresh []bool
}

func (f *fakeFetcher) GetLeaderboard(ctx context.Context, fresh bool) (*models.Leaderboard, error) {
	f.fresh = append(f.fresh, fresh)
	return f.board, f.err
}

var testNow = time.Date(2023, 12, 3, 12, 0, 0, 0, time.UTC)

func at(day, h, m, s int) time.Time {
	return time.Date(2023, 12, day, h, m, s, 0, time.UTC)
}

func testMember(id int, name string, score int, days map[int][2]time.Time) models.Member {
	mem := models.Member{ID: id, Name: name, LocalScore: score, CompletionDayLevel: map[int]models.DayStats{}}
	for d, ts := range days {
		stats := models.DayStats{Star1: models.StarStats{GetStarTS: ts[0]}}
		if !ts[1].IsZero() {
			stats.Star2 = &models.StarStats{GetStarTS: ts[1]}
		}
		mem.CompletionDayLevel[d] = stats
	}
	return mem
}

func testBoard(fetchedAt time.Time) *models.Leaderboard {
	return &models.Leaderboard{
		Event:     "2023",
		FetchedAt: fetchedAt.UnixMilli(),
		Members: []models.Member{
			testMember(1, "Ada", 40, map[int][2]time.Time{
				1: {at(1, 5, 10, 0), at(1, 5, 20, 0)},
				3: {at(3, 6, 0, 1), {}},
			}),
			testMember(2, "Grace", 30, map[int][2]time.Time{
				1: {at(1, 5, 5, 0), at(1, 5, 30, 0)},
				3: {at(3, 6, 5, 0), at(3, 6, 15, 42)},
			}),
		},
	}
}

// newTestModel returns a model whose clock is controlled through *now.
func newTestModel(f *fakeFetcher) (Model, *time.Time) {
	now := testNow
	m := New(f, 15*time.Minute)
	m.now = func() time.Time { return now }
	m.loc = time.UTC
	return m, &now
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func rowNames(m Model) []string {
	var names []string
	for _, r := range m.view.Rows {
		names = append(names, r.Member.Name)
	}
	return names
}

func TestLoadRendersTable(t *testing.T) {
	m, _ := newTestModel(&fakeFetcher{})
	m, _ = update(t, m, loadedMsg{board: testBoard(testNow.Add(-5 * time.Minute))})

	view := m.View()
	for _, want := range []string{"AoC 2023", "Ada", "Grace", "day 3", "* 06:00:01", "* --:--:--", "* 06:15:42"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view, got:\n%s", want, view)
		}
	}
	if got := rowNames(m); got[0] != "Ada" || got[1] != "Grace" {
		t.Errorf("default order = %v, want by local score", got)
	}
	if m.selectedDay() != 3 {
		t.Errorf("selected day = %d, want the latest visible day", m.selectedDay())
	}
}

func TestDetailLineShowsFullTimestamps(t *testing.T) {
	m, _ := newTestModel(&fakeFetcher{})
	m, _ = update(t, m, loadedMsg{board: testBoard(testNow)})
	m, _ = update(t, m, key("down"))

	view := m.View()
	if !strings.Contains(view, "3.12.2023 06:15:42") {
		t.Errorf("expected Grace's full star 2 time in detail line, got:\n%s", view)
	}
	if !strings.Contains(view, "first") {
		t.Errorf("Grace is the only day 3 finisher and should be marked first:\n%s", view)
	}
}

func TestSortToggle(t *testing.T) {
	m, _ := newTestModel(&fakeFetcher{})
	m, _ = update(t, m, loadedMsg{board: testBoard(testNow)})

	m, _ = update(t, m, key("enter"))
	if m.sortDay != 3 {
		t.Fatalf("sortDay = %d, want 3", m.sortDay)
	}
	if got := rowNames(m); got[0] != "Grace" {
		t.Errorf("day 3 order = %v, want Grace first (only star 2)", got)
	}

	m, _ = update(t, m, key("enter"))
	if m.sortDay != 0 {
		t.Errorf("selecting the sorted day again should reset, sortDay = %d", m.sortDay)
	}
	if got := rowNames(m); got[0] != "Ada" {
		t.Errorf("default order = %v, want Ada first", got)
	}

	// Day 1: Ada finished star 2 first.
	m, _ = update(t, m, key("left"))
	m, _ = update(t, m, key("left"))
	m, _ = update(t, m, key("enter"))
	if m.sortDay != 1 {
		t.Fatalf("sortDay = %d, want 1", m.sortDay)
	}
	if got := rowNames(m); got[0] != "Ada" {
		t.Errorf("day 1 order = %v, want Ada first", got)
	}
}

func TestCountdown(t *testing.T) {
	m, now := newTestModel(&fakeFetcher{})

	m, cmd := update(t, m, loadedMsg{board: testBoard(testNow.Add(-5 * time.Minute))})
	if cmd == nil {
		t.Fatal("expected countdown tick after load")
	}
	if m.remaining != 10*time.Minute {
		t.Errorf("remaining = %v, want 10m", m.remaining)
	}
	if !strings.Contains(m.View(), "next refresh in 10:00") {
		t.Errorf("expected countdown label, got:\n%s", m.View())
	}

	*now = now.Add(time.Minute)
	m, cmd = update(t, m, tickMsg{gen: m.tickGen})
	if cmd == nil || m.remaining != 9*time.Minute {
		t.Errorf("tick: cmd=%v remaining=%v, want re-armed at 9m", cmd != nil, m.remaining)
	}

	*now = now.Add(20 * time.Minute)
	m, cmd = update(t, m, tickMsg{gen: m.tickGen})
	if cmd != nil {
		t.Error("tick must not re-arm once the countdown reaches zero")
	}
	if m.remaining != 0 || m.ticking {
		t.Errorf("remaining = %v ticking = %v, want stopped", m.remaining, m.ticking)
	}
	if !strings.Contains(m.View(), "refresh due") {
		t.Errorf("expected 'refresh due', got:\n%s", m.View())
	}
}

func TestCountdownStaleTickDropped(t *testing.T) {
	m, _ := newTestModel(&fakeFetcher{})
	m, _ = update(t, m, loadedMsg{board: testBoard(testNow)})
	oldGen := m.tickGen

	m, _ = update(t, m, loadedMsg{board: testBoard(testNow)})
	if m.tickGen == oldGen {
		t.Fatal("reload should start a new tick generation")
	}

	_, cmd := update(t, m, tickMsg{gen: oldGen})
	if cmd != nil {
		t.Error("tick from a replaced chain must be dropped")
	}
}

func TestExpiredBoardDoesNotTick(t *testing.T) {
	m, _ := newTestModel(&fakeFetcher{})
	_, cmd := update(t, m, loadedMsg{board: testBoard(testNow.Add(-time.Hour))})
	if cmd != nil {
		t.Error("no countdown should run for an already stale board")
	}
}

func TestLoadErrorKeepsTable(t *testing.T) {
	m, _ := newTestModel(&fakeFetcher{})
	m, _ = update(t, m, loadedMsg{board: testBoard(testNow)})
	m, _ = update(t, m, loadedMsg{err: errors.New("HTTP 500: Missing configuration variables")})

	view := m.View()
	if !strings.Contains(view, "error: HTTP 500: Missing configuration variables") {
		t.Errorf("expected inline error, got:\n%s", view)
	}
	if !strings.Contains(view, "Grace") {
		t.Errorf("last table should stay visible after an error:\n%s", view)
	}

	m, _ = update(t, m, loadedMsg{board: testBoard(testNow)})
	if strings.Contains(m.View(), "error:") {
		t.Error("successful reload should clear the error")
	}
}

func TestReloadKeys(t *testing.T) {
	f := &fakeFetcher{board: testBoard(testNow)}
	m, _ := newTestModel(f)

	tests := []struct {
		key       string
		wantFresh bool
	}{
		{"r", false},
		{"R", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f.fresh = nil
			next, cmd := update(t, m, key(tt.key))
			if cmd == nil {
				t.Fatal("expected load command")
			}
			if !next.loading {
				t.Error("expected loading state")
			}
			msg, ok := cmd().(loadedMsg)
			if !ok || msg.board == nil {
				t.Fatalf("cmd() = %#v, want loadedMsg with board", msg)
			}
			if len(f.fresh) != 1 || f.fresh[0] != tt.wantFresh {
				t.Errorf("fresh = %v, want [%v]", f.fresh, tt.wantFresh)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(&fakeFetcher{})
	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestLoadingView(t *testing.T) {
	m, _ := newTestModel(&fakeFetcher{})
	if !strings.Contains(m.View(), "loading...") {
		t.Errorf("expected loading state before first load, got:\n%s", m.View())
	}
}
