package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Modal chrome overhead: 2 columns border + 2 columns padding, and 2
// lines of border. Title, input and footer occupy one content line each.
const (
	modalChromeWidth = 4
	minModalWidth    = 28
)

// View renders the dialog on its own. It is mainly useful for tests and
// custom compositors; hosts normally call Overlay to splice the dialog
// over their rendered view.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	lines, _, _ := m.renderModal()
	return strings.Join(lines, "\n")
}

// Overlay splices the rendered dialog over the host's view, centered,
// with ANSI-aware truncation so the host view shows through around it.
// When the palette is hidden the host view passes through untouched.
func (m *Model) Overlay(hostView string) string {
	if !m.visible {
		return hostView
	}
	lines, anchorX, anchorY := m.renderModal()
	return SpliceOverlay(hostView, lines, anchorX, anchorY)
}

// renderModal builds the dialog lines and the centered anchor, and
// records the geometry used by mouse hit-testing.
func (m *Model) renderModal() ([]string, int, int) {
	modalWidth := m.modalWidthFor(m.width)
	innerWidth := modalWidth - modalChromeWidth

	var content []string
	content = append(content, m.renderTitleLine(innerWidth))
	content = append(content, m.renderInputLine(innerWidth))

	window, shown := m.visibleWindow()
	if shown == 0 {
		content = append(content, pad(m.styles.Empty.Render("no matching commands"), innerWidth))
	} else {
		for i, row := range window {
			content = append(content, m.renderRow(m.offset+i, row, innerWidth))
		}
	}

	if scroll := m.renderScrollLine(shown); scroll != "" {
		content = append(content, pad(scroll, innerWidth))
	}
	content = append(content, m.renderFooterLine(innerWidth))

	rendered := m.styles.Modal.Render(strings.Join(content, "\n"))
	lines := strings.Split(rendered, "\n")

	anchorX := (m.width - modalWidth) / 2
	anchorY := (m.height - len(lines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}

	m.modalX = anchorX
	m.modalY = anchorY
	m.modalWidth = modalWidth
	m.modalHeight = len(lines)
	m.rowsTop = anchorY + 3 // top border, title line, input line
	m.rowCount = shown

	return lines, anchorX, anchorY
}

// visibleWindow returns the slice of filtered entries inside the scroll
// window. Update-loop only.
func (m *Model) visibleWindow() ([]Entry, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.filtered)
	if n == 0 {
		return nil, 0
	}
	end := m.offset + m.opts.MaxVisible
	if end > n {
		end = n
	}
	window := make([]Entry, 0, end-m.offset)
	for _, idx := range m.filtered[m.offset:end] {
		window = append(window, m.commands[idx])
	}
	return window, len(window)
}

func (m *Model) renderTitleLine(innerWidth int) string {
	m.mu.RLock()
	matched := len(m.filtered)
	total := len(m.commands)
	m.mu.RUnlock()

	line := m.styles.Title.Render(m.opts.Title)
	line += "  " + m.styles.Counter.Render(fmt.Sprintf("%d/%d", matched, total))
	if m.populating > 0 {
		line += " " + m.spinner.View()
	}
	return pad(line, innerWidth)
}

func (m *Model) renderInputLine(innerWidth int) string {
	m.query.Width = innerWidth - 4
	if m.query.Width < 1 {
		m.query.Width = 1
	}
	return pad(m.query.View(), innerWidth)
}

// renderRow draws one result row: selection cursor, highlighted title
// and dimmed subtitle, truncated to the inner width.
func (m *Model) renderRow(index int, entry Entry, innerWidth int) string {
	selected := index == m.selectedIndex

	cursor := "  "
	if selected {
		cursor = m.styles.Cursor.Render("▸ ")
	}

	line := cursor + m.renderEntryTitle(entry, selected)
	if subtitle := entry.displaySubtitle(); subtitle != "" {
		line += " " + m.styles.Subtitle.Render(subtitle)
	}
	return pad(line, innerWidth)
}

// renderEntryTitle styles the entry's display title, marking the query's
// highlight spans. Display overrides show verbatim: spans are computed
// against the search title and would not line up.
func (m *Model) renderEntryTitle(entry Entry, selected bool) string {
	base := m.styles.Item
	mark := m.styles.Match
	if selected {
		base = m.styles.SelectedItem
		mark = m.styles.SelectedMatch
	}

	if !m.opts.Highlight || entry.DisplayTitle != "" {
		return base.Render(entry.displayTitle())
	}

	spans := HighlightSpans(entry.Title, m.query.Value())
	if len(spans) == 0 {
		return base.Render(entry.Title)
	}

	runes := []rune(entry.Title)
	var b strings.Builder
	last := 0
	for _, span := range spans {
		if span.Start > last {
			b.WriteString(base.Render(string(runes[last:span.Start])))
		}
		b.WriteString(mark.Render(string(runes[span.Start:span.End])))
		last = span.End
	}
	if last < len(runes) {
		b.WriteString(base.Render(string(runes[last:])))
	}
	return b.String()
}

// renderScrollLine reports entries hidden above and below the window.
func (m *Model) renderScrollLine(shown int) string {
	m.mu.RLock()
	total := len(m.filtered)
	m.mu.RUnlock()

	above := m.offset
	below := total - m.offset - shown
	if above <= 0 && below <= 0 {
		return ""
	}

	var parts []string
	if above > 0 {
		parts = append(parts, fmt.Sprintf("↑ %d more", above))
	}
	if below > 0 {
		parts = append(parts, fmt.Sprintf("↓ %d more", below))
	}
	return m.styles.Scroll.Render(strings.Join(parts, " · "))
}

func (m *Model) renderFooterLine(innerWidth int) string {
	help := "↑↓ move · ↵ run · esc dismiss"
	for _, binding := range m.opts.Bindings {
		if binding.Help != "" {
			help += " · " + binding.Key + " " + binding.Help
		}
	}
	return pad(m.styles.Footer.Render(help), innerWidth)
}

// modalWidthFor resolves the Width option against the host surface:
// percentages scale with the surface, literals are column counts, both
// clamped to sane bounds.
func (m *Model) modalWidthFor(screenWidth int) int {
	value, percent, ok := parseWidth(m.opts.Width)

	width := 0
	if ok {
		if percent {
			width = screenWidth * value / 100
		} else {
			width = value
		}
	}
	if width < minModalWidth {
		width = minModalWidth
	}
	if max := screenWidth - 2; width > max {
		width = max
	}
	if width < modalChromeWidth+1 {
		width = modalChromeWidth + 1
	}
	return width
}

// pad truncates or right-pads a styled line to exactly width cells.
func pad(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w > width:
		return ansi.Truncate(line, width, "…")
	case w < width:
		return line + strings.Repeat(" ", width-w)
	default:
		return line
	}
}
