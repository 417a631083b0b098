package palette

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	palerrors "github.com/termstack/palette/pkg/errors"
)

// Update processes a message and returns a command for the host to
// dispatch. Hosts forward every message here; while the palette is
// visible it consumes key and mouse input, so the host must gate its own
// handlers on Visible.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	case PopulatedMsg:
		return m.handlePopulated(msg)

	case spinner.TickMsg:
		if m.populating == 0 {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if !m.visible {
			return nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.visible {
			return nil
		}
		return m.handleMouse(msg)
	}

	return nil
}

// handlePopulated installs a population result. Failures keep the
// previous command list; overlapping passes resolve by arrival order.
func (m *Model) handlePopulated(msg PopulatedMsg) tea.Cmd {
	if msg.Palette != m.id || m.destroyed {
		return nil
	}

	if m.populating > 0 {
		m.populating--
	}

	if msg.Err != nil {
		err := palerrors.NewPopulationError(m.id, msg.Trigger, msg.Err)
		m.log.Error(err, "population failed, keeping previous commands")
		return nil
	}

	m.SetCommands(msg.Entries)
	m.log.WithFields(map[string]any{
		"trigger": msg.Trigger,
		"entries": len(msg.Entries),
	}).Debug("population finished")
	return nil
}

// handleKey runs custom bindings first, then the default bindings, and
// finally routes the key into the query input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	pressed := msg.String()
	for _, binding := range m.opts.Bindings {
		if pressed == binding.Key {
			return m.runBinding(binding)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.Hide()
		return nil

	case key.Matches(msg, m.keys.Accept):
		return m.executeSelected()

	case key.Matches(msg, m.keys.Up):
		m.MoveSelection(-1)
		return nil

	case key.Matches(msg, m.keys.Down):
		m.MoveSelection(1)
		return nil

	case key.Matches(msg, m.keys.PageUp):
		m.SetSelectedIndex(m.SelectedIndex() - m.opts.MaxVisible)
		return nil

	case key.Matches(msg, m.keys.PageDown):
		m.SetSelectedIndex(m.SelectedIndex() + m.opts.MaxVisible)
		return nil
	}

	previous := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if value := m.query.Value(); value != previous {
		m.mu.Lock()
		m.queryText = value
		m.refilterLocked()
		m.mu.Unlock()
	}
	return cmd
}

// runBinding invokes a custom binding handler with panic recovery.
func (m *Model) runBinding(binding Binding) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			err := palerrors.NewBindingError(m.id, binding.Key, fmt.Errorf("handler panicked: %v", r))
			m.log.Error(err, "custom binding failed")
			cmd = nil
		}
	}()
	return binding.Handler(m)
}

// executeSelected hides the overlay and runs the selected entry's action
// asynchronously. The result comes back as an ExecutedMsg for the host.
func (m *Model) executeSelected() tea.Cmd {
	entry, ok := m.SelectedEntry()
	if !ok {
		return nil
	}

	m.Hide()
	host := m.host
	return func() tea.Msg {
		return ExecutedMsg{Palette: m.id, Entry: entry, Err: m.runAction(host, entry)}
	}
}

// handleMouse implements wheel scrolling, hover selection behind the
// mouse lock, row clicks and backdrop dismissal.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.trackHover(msg.X, msg.Y)
		return nil

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.MoveSelection(-1)
			return nil
		case tea.MouseButtonWheelDown:
			m.MoveSelection(1)
			return nil
		case tea.MouseButtonLeft:
			return m.handleClick(msg.X, msg.Y)
		}
	}

	return nil
}

// trackHover moves the selection under the pointer once the pointer has
// traveled MouseMoveThreshold cells (Manhattan distance) from where it
// was first seen after the palette opened.
func (m *Model) trackHover(x, y int) {
	if !m.hoverUnlocked {
		if !m.mouseSeen {
			m.mouseSeen = true
			m.mouseOriginX = x
			m.mouseOriginY = y
			return
		}
		travel := abs(x-m.mouseOriginX) + abs(y-m.mouseOriginY)
		if travel < m.opts.MouseMoveThreshold {
			return
		}
		m.hoverUnlocked = true
	}

	if row, ok := m.rowAt(x, y); ok {
		m.SetSelectedIndex(row)
	}
}

// handleClick executes the clicked row, or hides the palette when the
// click lands outside the dialog.
func (m *Model) handleClick(x, y int) tea.Cmd {
	if row, ok := m.rowAt(x, y); ok {
		m.SetSelectedIndex(row)
		return m.executeSelected()
	}
	if !m.insideModal(x, y) {
		m.Hide()
	}
	return nil
}

// rowAt maps screen coordinates to a filtered index using the geometry
// of the last render.
func (m *Model) rowAt(x, y int) (int, bool) {
	if x < m.modalX || x >= m.modalX+m.modalWidth {
		return 0, false
	}
	if y < m.rowsTop || y >= m.rowsTop+m.rowCount {
		return 0, false
	}

	row := m.offset + (y - m.rowsTop)
	m.mu.RLock()
	n := len(m.filtered)
	m.mu.RUnlock()
	if row < 0 || row >= n {
		return 0, false
	}
	return row, true
}

// insideModal reports whether screen coordinates fall within the dialog.
func (m *Model) insideModal(x, y int) bool {
	return x >= m.modalX && x < m.modalX+m.modalWidth &&
		y >= m.modalY && y < m.modalY+m.modalHeight
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
