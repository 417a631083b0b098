package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/termstack/palette/internal/sources"
	"github.com/termstack/palette/pkg/palette"
)

func demoSource(entries ...palette.Entry) palette.Source {
	return func(ctx context.Context, _ *palette.Model) ([]palette.Entry, error) {
		return entries, nil
	}
}

func drainCmds(cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	pending := []tea.Cmd{cmd}
	for len(pending) > 0 {
		next := pending[0]
		pending = pending[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			pending = append(pending, batch...)
			continue
		}
		if msg != nil {
			out = append(out, msg)
		}
	}
	return out
}

func newTestApp(t *testing.T, src palette.Source) *Model {
	t.Helper()

	m, err := New(src, nil, palette.Options{})
	require.NoError(t, err)
	_ = m.Init()

	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mm.(*Model)
}

// summon opens the palette with ctrl+k and feeds the population results
// back through Update, like the bubbletea runtime would.
func summon(t *testing.T, m *Model) {
	t.Helper()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.True(t, m.pal.Visible())

	for _, msg := range drainCmds(cmd) {
		if pop, ok := msg.(palette.PopulatedMsg); ok {
			_, _ = m.Update(pop)
		}
	}
}

func activityLog(m *Model) string {
	return strings.Join(m.activity, "\n")
}

func TestSummonOpensAndPopulates(t *testing.T) {
	t.Parallel()

	m := newTestApp(t, demoSource(palette.Entry{Title: "Touch File"}))
	summon(t, m)

	require.True(t, m.pal.Visible())
	require.Len(t, m.pal.Commands(), 1)
	require.Contains(t, activityLog(m), "1 commands loaded")
}

func TestSummonTogglesClosed(t *testing.T) {
	t.Parallel()

	m := newTestApp(t, demoSource())
	summon(t, m)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.False(t, m.pal.Visible())
}

func TestHotkeyInactiveBeforeInit(t *testing.T) {
	t.Parallel()

	m, err := New(demoSource(), nil, palette.Options{})
	require.NoError(t, err)

	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = mm.(*Model)

	// Without Init the summon binding is not registered, so the key is
	// treated as plain input instead of reaching the palette.
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.False(t, m.pal.Visible())
	require.Contains(t, activityLog(m), "key: ctrl+k")
}

func TestQuitBuiltinQuitsHost(t *testing.T) {
	t.Parallel()

	m := newTestApp(t, demoSource())

	_, cmd := m.Update(palette.ExecutedMsg{
		Palette: "main",
		Entry:   palette.Entry{Title: "Quit", Meta: map[string]any{sources.BuiltinKey: sources.BuiltinQuit}},
	})

	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Equal(t, "", m.View())
}

func TestRefreshBuiltinRepopulates(t *testing.T) {
	t.Parallel()

	m := newTestApp(t, demoSource(palette.Entry{Title: "One"}))

	_, cmd := m.Update(palette.ExecutedMsg{
		Palette: "main",
		Entry:   palette.Entry{Title: "Refresh", Meta: map[string]any{sources.BuiltinKey: sources.BuiltinRefresh}},
	})
	require.NotNil(t, cmd)

	var trigger string
	for _, msg := range drainCmds(cmd) {
		if pop, ok := msg.(palette.PopulatedMsg); ok {
			trigger = pop.Trigger
		}
	}
	require.Equal(t, palette.TriggerManual, trigger)
}

func TestExecutionFailureLands(t *testing.T) {
	t.Parallel()

	m := newTestApp(t, demoSource())

	_, _ = m.Update(palette.ExecutedMsg{
		Palette: "main",
		Entry:   palette.Entry{Title: "Broken"},
		Err:     errors.New("exit status 3"),
	})

	require.Contains(t, activityLog(m), "command failed: exit status 3")
}

func TestExecutionSuccessLands(t *testing.T) {
	t.Parallel()

	m := newTestApp(t, demoSource())

	_, _ = m.Update(palette.ExecutedMsg{
		Palette: "main",
		Entry:   palette.Entry{Title: "Touch File"},
	})

	require.Contains(t, activityLog(m), "ran: Touch File")
}

func TestViewSplicesOverlay(t *testing.T) {
	t.Parallel()

	m := newTestApp(t, demoSource(palette.Entry{Title: "Touch File"}))

	view := m.View()
	require.Contains(t, view, "palette demo")
	require.NotContains(t, view, "╭", "no dialog before summoning")

	summon(t, m)
	view = m.View()
	require.Contains(t, view, "palette demo", "host shows through around the dialog")
	require.Contains(t, view, "╭")
	require.Contains(t, view, "Touch File")
}

func TestPlainKeysFeedActivityPane(t *testing.T) {
	t.Parallel()

	m := newTestApp(t, demoSource())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Contains(t, activityLog(m), "key: x")
}

func TestQuitKeyStopsHost(t *testing.T) {
	t.Parallel()

	m := newTestApp(t, demoSource())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
