// Package tui is a terminal viewer for the cached private leaderboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestberry/aoc-leaderboard/internal/logic"
	"github.com/vestberry/aoc-leaderboard/internal/models"
)

const (
	nameWidth     = 18
	expandedWidth = len("* 15:04:05 * 15:04:05")
)

// Fetcher loads the normalized leaderboard from the API.
type Fetcher interface {
	GetLeaderboard(ctx context.Context, fresh bool) (*models.Leaderboard, error)
}

// -- messages --

type loadedMsg struct {
	board *models.Leaderboard
	err   error
}

// tickMsg drives the refresh countdown. gen ties it to one loaded board so
// ticks from a replaced chain are dropped.
type tickMsg struct {
	gen int
	at  time.Time
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

// -- model --

// Model is the root Bubbletea model.
type Model struct {
	client  Fetcher
	timeout time.Duration
	now     func() time.Time
	loc     *time.Location

	board   *models.Leaderboard
	view    *models.LeaderboardView
	sortDay int // 0 = by local score
	dayIdx  int // selected column in view.Days
	row     int
	err     string
	loading bool

	tickGen   int
	ticking   bool
	remaining time.Duration

	width  int
	height int
}

// New creates the viewer. timeout is the server's freshness window and only
// feeds the countdown label.
func New(c Fetcher, timeout time.Duration) Model {
	return Model{
		client:  c,
		timeout: timeout,
		now:     time.Now,
		loc:     time.Local,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load(false)
}

func (m Model) load(fresh bool) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		board, err := c.GetLeaderboard(context.Background(), fresh)
		return loadedMsg{board: board, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		first := m.view == nil
		m.board = msg.board
		m.project()
		if first && m.view != nil {
			m.dayIdx = len(m.view.Days) - 1
		}

		// A new board replaces any running countdown.
		m.tickGen++
		m.remaining = m.timeLeft()
		m.ticking = m.remaining > 0
		if !m.ticking {
			return m, nil
		}
		return m, tickCmd(m.tickGen)

	case tickMsg:
		if msg.gen != m.tickGen || !m.ticking {
			return m, nil
		}
		m.remaining = m.timeLeft()
		if m.remaining <= 0 {
			m.remaining = 0
			m.ticking = false
			return m, nil
		}
		return m, tickCmd(m.tickGen)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "h", "left":
		if m.dayIdx > 0 {
			m.dayIdx--
		}
	case "l", "right":
		if m.view != nil && m.dayIdx < len(m.view.Days)-1 {
			m.dayIdx++
		}
	case "k", "up":
		if m.row > 0 {
			m.row--
		}
	case "j", "down":
		if m.view != nil && m.row < len(m.view.Rows)-1 {
			m.row++
		}
	case "enter", " ":
		// Sorting by the already sorted day switches back to score order.
		if day := m.selectedDay(); day > 0 {
			if m.sortDay == day {
				m.sortDay = 0
			} else {
				m.sortDay = day
			}
			m.project()
		}
	case "esc", "0":
		m.sortDay = 0
		m.project()
	case "r":
		m.loading = true
		return m, m.load(false)
	case "R":
		m.loading = true
		return m, m.load(true)
	}
	return m, nil
}

func (m *Model) project() {
	if m.board == nil {
		return
	}
	m.view = logic.Project(m.board, m.sortDay, m.now())
	if m.dayIdx >= len(m.view.Days) {
		m.dayIdx = len(m.view.Days) - 1
	}
	if m.dayIdx < 0 {
		m.dayIdx = 0
	}
	if m.row >= len(m.view.Rows) {
		m.row = 0
	}
}

// timeLeft is how long until the server considers the board stale.
func (m Model) timeLeft() time.Duration {
	if m.board == nil || m.board.FetchedAt == 0 {
		return 0
	}
	return time.UnixMilli(m.board.FetchedAt).Add(m.timeout).Sub(m.now())
}

func (m Model) selectedDay() int {
	if m.view == nil || len(m.view.Days) == 0 {
		return 0
	}
	return m.view.Days[m.dayIdx]
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView() + "\n\n")

	if m.err != "" {
		b.WriteString(" " + errorStyle.Render("error: "+m.err) + "\n")
	}

	if m.view == nil {
		if m.loading {
			b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		}
		b.WriteString("\n " + m.helpKeys() + "\n")
		return b.String()
	}
	if len(m.view.Rows) == 0 {
		b.WriteString(" " + dimStyle.Render("no members yet") + "\n")
		b.WriteString("\n " + m.helpKeys() + "\n")
		return b.String()
	}

	b.WriteString(m.columnsView() + "\n")
	for i, row := range m.view.Rows {
		b.WriteString(m.rowView(i, row) + "\n")
	}

	b.WriteString("\n " + m.detailView() + "\n")
	b.WriteString("\n " + m.helpKeys() + "\n")
	return b.String()
}

func (m Model) headerView() string {
	title := "AoC private leaderboard"
	if m.view != nil && m.view.Event != "" {
		title = "AoC " + m.view.Event + " private leaderboard"
	}

	status := ""
	switch {
	case m.loading:
		status = "loading..."
	case m.board == nil:
	case m.remaining > 0:
		status = "next refresh in " + countdown(m.remaining)
	default:
		status = "refresh due"
	}
	if m.sortDay > 0 {
		status = fmt.Sprintf("sorted by day %d · %s", m.sortDay, status)
	}

	return " " + titleStyle.Render(title) + "  " + dimStyle.Render(status)
}

func (m Model) columnsView() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf(" %4s %s %5s", "#", padRight("name", nameWidth), "score")))

	selected := m.selectedDay()
	for _, d := range m.view.Days {
		label := fmt.Sprintf("%3d", d)
		if d == selected {
			label = " " + padRight(fmt.Sprintf("day %d", d), expandedWidth)
		}

		switch {
		case d == m.sortDay:
			b.WriteString(sortedStyle.Render(label))
		case d == selected:
			b.WriteString(selectedStyle.Render(label))
		default:
			b.WriteString(dimStyle.Render(label))
		}
	}
	return b.String()
}

func (m Model) rowView(i int, row models.RankedRow) string {
	name := row.Member.Name
	if name == "" {
		name = fmt.Sprintf("(anonymous user #%d)", row.Member.ID)
	}
	name = padRight(truncStr(name, nameWidth), nameWidth)

	nameStyled := normalStyle.Render(name)
	if i == m.row {
		nameStyled = selectedStyle.Render(name)
	}

	var b strings.Builder
	b.WriteString(" " + dimStyle.Render(padLeft(fmt.Sprintf("%d)", row.Rank), 4)))
	b.WriteString(" " + nameStyled)
	b.WriteString(" " + normalStyle.Render(fmt.Sprintf("%5d", row.Member.LocalScore)))

	selected := m.selectedDay()
	for _, d := range m.view.Days {
		cell, ok := row.Cells[d]
		b.WriteString(m.cellView(cell, ok, d == selected))
	}
	return b.String()
}

// cellView renders one member/day cell. The selected day shows both star
// times; every other day collapses to a single star.
func (m Model) cellView(cell models.Cell, ok, expanded bool) string {
	if !ok {
		if expanded {
			return " " + dimStyle.Render(padRight("*", expandedWidth))
		}
		return "  " + dimStyle.Render("*")
	}

	star2 := goldStyle
	switch {
	case cell.Star2 == nil:
		star2 = dimStyle
	case cell.First:
		star2 = firstStyle
	}

	if !expanded {
		if cell.Star2 == nil {
			return "  " + silverStyle.Render("*")
		}
		return "  " + star2.Render("*")
	}
	return " " + silverStyle.Render(clock(cell.Star1, m.loc)) + " " + star2.Render(clock(cell.Star2, m.loc))
}

func (m Model) detailView() string {
	if m.row >= len(m.view.Rows) {
		return ""
	}
	row := m.view.Rows[m.row]
	day := m.selectedDay()

	name := row.Member.Name
	if name == "" {
		name = fmt.Sprintf("(anonymous user #%d)", row.Member.ID)
	}
	parts := []string{selectedStyle.Render(name), fmt.Sprintf("day %d", day)}

	cell, ok := row.Cells[day]
	if !ok {
		parts = append(parts, dimStyle.Render("no stars"))
	} else {
		parts = append(parts,
			"star 1 "+silverStyle.Render(fullTime(cell.Star1, m.loc)),
			"star 2 "+goldStyle.Render(fullTime(cell.Star2, m.loc)),
		)
		if cell.First {
			parts = append(parts, firstStyle.Render("first"))
		}
	}
	return strings.Join(parts, dimStyle.Render(" · "))
}

func (m Model) helpKeys() string {
	return helpEntry("←/→", "day") + "  " + helpEntry("↑/↓", "member") + "  " + helpEntry("enter", "sort by day") + "  " + helpEntry("r", "reload") + "  " + helpEntry("R", "force refresh") + "  " + helpEntry("q", "quit")
}
