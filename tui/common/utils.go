package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateLines wraps text to width and keeps at most maxLines lines,
// appending an ellipsis when anything was cut.
func TruncateLines(text string, width, maxLines int) string {
	if width < 12 {
		width = 12
	}
	if maxLines < 1 {
		maxLines = 1
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= maxLines {
		return wrapped
	}
	return strings.Join(lines[:maxLines], "\n") + "..."
}

// VisibleWidth returns the display width of s with ANSI styling stripped.
func VisibleWidth(s string) int {
	return lipgloss.Width(ansi.Strip(s))
}

// PlainText strips ANSI styling; used by tests asserting on rendered views.
func PlainText(s string) string {
	return ansi.Strip(s)
}
