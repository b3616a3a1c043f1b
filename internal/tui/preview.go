package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prosegate/internal/history"
)

func renderPreview(run *history.Run, width, height, scroll int) string {
	if run == nil {
		return center("Select a run", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(run.Label)
	origin := previewOriginStyle.Render(
		fmt.Sprintf("%s · %s", run.Origin, run.EvaluatedAt.Format("Jan 2, 2006 15:04")),
	)

	body := run.Report
	if body == "" {
		body = "(No report recorded)"
	}
	report := previewBodyStyle.Width(contentWidth).Render(body)

	content := lipgloss.JoinVertical(lipgloss.Left, title, origin, report)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}
