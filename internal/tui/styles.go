package tui

import "github.com/charmbracelet/lipgloss"

var (
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#505868"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c4d0"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e4e4ec")).Bold(true)
	sortedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#34d474")).Underline(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#b45555"))

	// Star colors follow the AoC calendar: silver for one star, gold for both
	silverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9999cc"))
	goldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffff66"))
	firstStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffff66")).Bold(true)

	// Help bar
	helpKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0"))
	helpLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#505868"))
)

func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
