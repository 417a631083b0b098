// Package app hosts the demo surface for the palette: a scrolling
// activity pane that summons the command palette with ctrl+k and logs
// what the palette does.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termstack/palette/internal/logging"
	"github.com/termstack/palette/pkg/palette"
)

const hostName = "demo"

// maxActivity bounds the activity backlog kept in memory.
const maxActivity = 200

// Model is the demo host. It implements palette.Host and owns the
// palette instance overlaid on its view.
type Model struct {
	pal *palette.Model
	log *logging.Logger

	width  int
	height int

	activity []string
	summon   key.Binding
	quitting bool
}

// New wires a palette over the demo surface. The options' Logger and
// AfterInit are owned by the app: the summon hotkey only becomes active
// once the palette reports in through AfterInit.
func New(src palette.Source, log *logging.Logger, opts palette.Options) (*Model, error) {
	m := &Model{
		log:      log.WithComponent("app"),
		activity: []string{"waiting for the palette to initialize"},
	}

	opts.Logger = log
	opts.AfterInit = func(p *palette.Model) {
		m.summon = key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "commands"),
		)
		m.note(fmt.Sprintf("palette %q ready, press ctrl+k", p.ID()))
	}

	pal, err := palette.New("main", src, opts)
	if err != nil {
		return nil, err
	}
	m.pal = pal

	return m, nil
}

// Name identifies the host surface to the palette.
func (m *Model) Name() string {
	return hostName
}

// Palette exposes the underlying palette instance.
func (m *Model) Palette() *palette.Model {
	return m.pal
}

// Init starts the palette lifecycle.
func (m *Model) Init() tea.Cmd {
	return m.pal.Init()
}

// note appends one activity line, trimming the backlog.
func (m *Model) note(line string) {
	m.activity = append(m.activity, line)
	if len(m.activity) > maxActivity {
		m.activity = m.activity[len(m.activity)-maxActivity:]
	}
}
