package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the activity pane padded to the full surface so the
// palette overlay splices cleanly on top of it.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return "starting…"
	}

	header := titleStyle.Render("palette demo") + "  " + hintStyle.Render("ctrl+k commands · q quit")

	rows := m.height - 2
	if rows < 1 {
		rows = 1
	}
	start := len(m.activity) - rows
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, padLine(header, m.width))
	lines = append(lines, padLine("", m.width))
	for _, entry := range m.activity[start:] {
		lines = append(lines, padLine(activityStyle.Render("• "+entry), m.width))
	}
	for len(lines) < m.height {
		lines = append(lines, padLine("", m.width))
	}

	return m.pal.Overlay(strings.Join(lines, "\n"))
}

func padLine(line string, width int) string {
	w := lipgloss.Width(line)
	if w >= width {
		return line
	}
	return line + strings.Repeat(" ", width-w)
}
