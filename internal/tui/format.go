package tui

import (
	"fmt"
	"strings"
	"time"
)

const (
	clockLayout = "15:04:05"
	fullLayout  = "2.01.2006 15:04:05"

	missingClock = "--:--:--"
)

// clock renders a star time as "* HH:MM:SS", or "* --:--:--" when absent.
func clock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "* " + missingClock
	}
	return "* " + t.In(loc).Format(clockLayout)
}

func fullTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format(fullLayout)
}

// countdown renders d as MM:SS, or H:MM:SS above an hour.
func countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
