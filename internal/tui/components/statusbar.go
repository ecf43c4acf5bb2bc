package components

import (
	"strings"

	"github.com/theirongolddev/periodtrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind picks the color of a status message.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusInfo
)

// RenderStatusBar renders the bottom bar: key hints on the left and the
// latest status message on the right.
func RenderStatusBar(width int, hints, status string, kind StatusKind) string {
	t := theme.Active

	statusColor := t.TextMuted
	switch kind {
	case StatusSuccess:
		statusColor = t.Success
	case StatusWarning:
		statusColor = t.Warning
	case StatusInfo:
		statusColor = t.Accent
	}

	left := " " + hints
	right := ""
	if status != "" {
		right = lipgloss.NewStyle().Foreground(statusColor).Render(status) + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Render(left + strings.Repeat(" ", padding) + right)
}
