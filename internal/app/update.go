package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termstack/palette/internal/sources"
	"github.com/termstack/palette/pkg/palette"
)

// Update routes messages: the palette sees everything it cares about,
// the pane reacts to what remains.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.pal.Update(msg)

	case palette.PopulatedMsg:
		cmd := m.pal.Update(msg)
		if msg.Err != nil {
			m.note("population failed: " + msg.Err.Error())
		} else {
			m.note(fmt.Sprintf("%d commands loaded (%s)", len(msg.Entries), msg.Trigger))
		}
		return m, cmd

	case palette.ExecutedMsg:
		return m.handleExecuted(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.pal.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.summon) {
		return m, m.pal.Toggle(m, "")
	}

	if m.pal.Visible() {
		return m, m.pal.Update(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.note("key: " + msg.String())
		return m, nil
	}
}

// handleExecuted reacts to a finished palette action: failures land in
// the activity pane, builtin entries drive the host through their Meta
// tag.
func (m *Model) handleExecuted(msg palette.ExecutedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.note("command failed: " + msg.Err.Error())
		return m, nil
	}

	switch msg.Entry.Meta[sources.BuiltinKey] {
	case sources.BuiltinQuit:
		m.quitting = true
		return m, tea.Quit
	case sources.BuiltinRefresh:
		m.note("refreshing commands")
		return m, m.pal.Refresh()
	case sources.BuiltinHelp:
		m.note("↑/↓ move · enter run · esc dismiss · ctrl+k reopen")
		return m, nil
	}

	m.note("ran: " + msg.Entry.Title)
	return m, nil
}
