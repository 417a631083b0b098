package palette

import (
	"context"
	"slices"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termstack/palette/internal/logging"
)

// Model is a single palette instance bound to one overlay surface. It is
// a bubbletea component: the host forwards messages to Update, splices
// the rendered dialog over its own view with Overlay, and reacts to
// PopulatedMsg/ExecutedMsg. All state transitions happen on the host's
// update loop; population and execution run as commands whose results
// come back as messages.
//
// Instances are independent: two palettes over the same host surface
// never share state.
type Model struct {
	id     string
	opts   Options
	styles Styles
	keys   keyMap
	log    *logging.Logger

	source Source
	host   Host

	ctx    context.Context
	cancel context.CancelFunc

	query   textinput.Model
	spinner spinner.Model

	// List state. Sources read it off the update loop through the
	// public accessors; every mutation happens on the loop under mu.
	mu            sync.RWMutex
	commands      []Entry
	filtered      []int // indices into commands
	selectedIndex int
	queryText     string

	// Lifecycle state, owned by the update loop.
	visible     bool
	initialized bool
	destroyed   bool
	shownOnce   bool
	populating  int
	offset      int

	// Host surface dimensions, from the last WindowSizeMsg.
	width  int
	height int

	// Hover selection stays locked until the pointer has traveled
	// MouseMoveThreshold cells after the palette opened, so a stray
	// cursor position cannot hijack keyboard-driven selection.
	hoverUnlocked bool
	mouseOriginX  int
	mouseOriginY  int
	mouseSeen     bool

	// Geometry of the last render, for mouse hit-testing.
	modalX      int
	modalY      int
	modalWidth  int
	modalHeight int
	rowsTop     int
	rowCount    int
}

// ID returns the palette's identifier.
func (m *Model) ID() string {
	return m.id
}

// Visible reports whether the overlay is currently displayed. While
// visible the host must route key input to Update instead of handling
// it itself.
func (m *Model) Visible() bool {
	return m.visible
}

// Host returns the surface the palette last opened over, nil before the
// first Show.
func (m *Model) Host() Host {
	return m.host
}

// Populating reports whether a population pass is in flight.
func (m *Model) Populating() bool {
	return m.populating > 0
}

// Init prepares the palette: it fires OnInit population when declared
// and invokes the AfterInit callback with the live instance. Hosts call
// it from their own Init and batch the returned command.
func (m *Model) Init() tea.Cmd {
	if m.destroyed {
		panic("palette: Init called on a destroyed palette")
	}
	m.initialized = true

	var cmds []tea.Cmd
	if m.opts.Populate.has(PopulateOnInit) {
		if cmd := m.populateCmd(TriggerInit); cmd != nil {
			cmds = append(cmds, cmd, m.spinner.Tick)
		}
	}
	if m.opts.AfterInit != nil {
		m.opts.AfterInit(m)
	}

	return tea.Batch(cmds...)
}

// Show opens the overlay over the given host surface with the query set
// to prefill (empty clears it). It refuses when the surface has not been
// sized yet and skips opening when the host's name is absent from a
// configured allow-list. The populate policy runs and the returned
// command must be dispatched by the host. Calling Show before Init or
// after Destroy is a programming error and panics.
func (m *Model) Show(host Host, prefill string) tea.Cmd {
	m.ensureUsable("Show")

	if m.width <= 0 || m.height <= 0 {
		m.log.Warn("show refused: host surface not sized yet")
		return nil
	}
	if m.opts.HostAllowList != nil && !slices.Contains(m.opts.HostAllowList, host.Name()) {
		m.log.WithFields(map[string]any{"host": host.Name()}).Debug("show skipped: host not in allow-list")
		return nil
	}

	m.host = host
	first := !m.shownOnce
	m.shownOnce = true
	m.visible = true
	m.resetMouseLock()

	m.setQueryValue(prefill)
	m.query.Focus()

	var cmds []tea.Cmd
	policy := m.opts.Populate
	if first && policy.has(PopulateOnFirstShow) {
		if cmd := m.populateCmd(TriggerFirstShow); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if policy.has(PopulateOnShow) {
		coalesced := first && policy.has(PopulateOnFirstShow) && m.opts.CoalesceFirstShow
		if !coalesced {
			if cmd := m.populateCmd(TriggerShow); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) > 0 {
		cmds = append(cmds, m.spinner.Tick)
	}
	cmds = append(cmds, textinput.Blink)

	return tea.Batch(cmds...)
}

// Hide closes the overlay, clears the hover marker and returns input to
// the host. Hiding a hidden palette is a no-op.
func (m *Model) Hide() {
	if !m.visible {
		return
	}
	m.visible = false
	m.query.Blur()
	m.resetMouseLock()
}

// Toggle shows the palette when hidden and hides it when visible.
func (m *Model) Toggle(host Host, prefill string) tea.Cmd {
	if m.visible {
		m.Hide()
		return nil
	}
	return m.Show(host, prefill)
}

// Refresh re-runs the entry source immediately, regardless of the
// populate policy. The returned command must be dispatched by the host.
func (m *Model) Refresh() tea.Cmd {
	m.ensureUsable("Refresh")
	cmd := m.populateCmd(TriggerManual)
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, m.spinner.Tick)
}

// Destroy detaches the palette: in-flight populations are cancelled,
// bindings and sources dropped, the command list cleared. The instance
// must not be reused afterwards; a subsequent Show panics.
func (m *Model) Destroy() {
	m.cancel()
	m.visible = false
	m.destroyed = true
	m.source = nil
	m.host = nil
	m.opts.Bindings = nil
	m.opts.AfterInit = nil
	m.query.Blur()

	m.mu.Lock()
	m.commands = nil
	m.filtered = nil
	m.selectedIndex = 0
	m.mu.Unlock()
}

// ensureUsable panics when the palette is used out of lifecycle order.
// Integration bugs of this kind must fail loudly instead of degrading.
func (m *Model) ensureUsable(op string) {
	if m.destroyed {
		panic("palette: " + op + " called on a destroyed palette")
	}
	if !m.initialized {
		panic("palette: " + op + " called before Init")
	}
}

// populateCmd starts a population pass and returns the command carrying
// its result. Nil when the palette has no source.
func (m *Model) populateCmd(trigger string) tea.Cmd {
	if m.source == nil {
		return nil
	}

	m.populating++
	src := m.source
	ctx := m.ctx
	id := m.id

	return func() tea.Msg {
		entries, err := invokeSource(ctx, src, m)
		return PopulatedMsg{Palette: id, Trigger: trigger, Entries: entries, Err: err}
	}
}

// resetMouseLock restarts hover-selection gating for the next showing.
func (m *Model) resetMouseLock() {
	m.hoverUnlocked = false
	m.mouseSeen = false
	m.mouseOriginX = 0
	m.mouseOriginY = 0
}
