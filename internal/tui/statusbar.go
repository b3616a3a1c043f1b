package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(runCount, failedCount, width int, searching, loading bool) string {
	left := fmt.Sprintf(" %d runs", runCount)
	if failedCount > 0 {
		left += " · " + itemFailStyle.Render(fmt.Sprintf("%d failed", failedCount))
	}
	if loading {
		left += " (loading...)"
	}

	right := " / search  r reload  ? help  q quit "
	if searching {
		right = " esc cancel  enter search "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
