package palette

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func viewLines(m *Model) []string {
	return strings.Split(m.View(), "\n")
}

func TestViewEmptyWhenHidden(t *testing.T) {
	t.Parallel()

	m := newEnginePalette(t, tabEntries(), Options{})
	require.Equal(t, "", m.View())

	host := "line one\nline two"
	require.Equal(t, host, m.Overlay(host))
}

func TestViewShowsTitleCounterAndRows(t *testing.T) {
	t.Parallel()

	m := newShownPalette(t, tabEntries(), Options{})
	view := plainView(m)

	require.Contains(t, view, "test")
	require.Contains(t, view, "3/3")
	require.Contains(t, view, "▸")
	require.Contains(t, view, "Open Tab")
	require.Contains(t, view, "Close Tab")
	require.Contains(t, view, "New Window")
	require.Contains(t, view, "esc dismiss")
}

func TestViewCounterTracksFilter(t *testing.T) {
	t.Parallel()

	m := newShownPalette(t, tabEntries(), Options{})
	typeRunes(m, "tab")
	require.Contains(t, plainView(m), "2/3")
}

func TestViewDefaultWidthIsPercentOfSurface(t *testing.T) {
	t.Parallel()

	m := newShownPalette(t, tabEntries(), Options{})
	for _, line := range viewLines(m) {
		require.Equal(t, 60, ansi.StringWidth(line))
	}
}

func TestViewLiteralWidthIsColumnCount(t *testing.T) {
	t.Parallel()

	m := newShownPalette(t, tabEntries(), Options{Width: "40"})
	for _, line := range viewLines(m) {
		require.Equal(t, 40, ansi.StringWidth(line))
	}
}

func TestViewWidthClampsToSurface(t *testing.T) {
	t.Parallel()

	m := newEnginePalette(t, tabEntries(), Options{Width: "100%"})
	_ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	_ = m.Show(stubHost{name: "demo"}, "")

	for _, line := range viewLines(m) {
		require.Equal(t, 48, ansi.StringWidth(line))
	}
}

func TestViewScrollWindow(t *testing.T) {
	t.Parallel()

	entries := make([]Entry, 0, 12)
	for _, title := range []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliett", "kilo", "lima",
	} {
		entries = append(entries, Entry{Title: title})
	}

	m := newShownPalette(t, entries, Options{MaxVisible: 5})

	view := plainView(m)
	require.Contains(t, view, "alpha")
	require.Contains(t, view, "echo")
	require.NotContains(t, view, "foxtrot")
	require.Contains(t, view, "↓ 7 more")
	require.NotContains(t, view, "↑ ", "nothing is hidden above yet")

	m.SetSelectedIndex(7)
	view = plainView(m)
	require.NotContains(t, view, "alpha")
	require.Contains(t, view, "delta")
	require.Contains(t, view, "hotel")
	require.Contains(t, view, "↑ 3 more · ↓ 4 more")
}

func TestViewEmptyStateMessage(t *testing.T) {
	t.Parallel()

	m := newShownPalette(t, tabEntries(), Options{})
	typeRunes(m, "zzz")
	require.Contains(t, plainView(m), "no matching commands")
}

func TestViewDisplayTitleShownVerbatim(t *testing.T) {
	t.Parallel()

	entries := []Entry{{Title: "deploy prod", DisplayTitle: "Deploy → PROD"}}
	m := newShownPalette(t, entries, Options{})
	typeRunes(m, "prod")

	view := plainView(m)
	require.Contains(t, view, "Deploy → PROD")
	require.NotContains(t, view, "deploy prod")
}

func TestViewFooterListsBindingHelp(t *testing.T) {
	t.Parallel()

	m := newShownPalette(t, tabEntries(), Options{
		Bindings: []Binding{
			{Key: "ctrl+d", Help: "delete", Handler: func(p *Model) tea.Cmd { return nil }},
			{Key: "ctrl+y", Handler: func(p *Model) tea.Cmd { return nil }},
		},
	})

	view := plainView(m)
	require.Contains(t, view, "ctrl+d delete")
	require.NotContains(t, view, "ctrl+y", "bindings without help text stay out of the footer")
}

func TestViewSpinnerWhilePopulating(t *testing.T) {
	t.Parallel()

	src := staticSource(Entry{Title: "late"})
	m, err := New("test", src, Options{Populate: PopulateOnShow})
	require.NoError(t, err)
	_ = m.Init()
	_ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	_ = m.Show(stubHost{name: "demo"}, "")

	require.True(t, m.Populating())
	frame := ansi.Strip(m.spinner.View())
	require.Contains(t, plainView(m), frame)
}

func TestViewRecordsHitTestGeometry(t *testing.T) {
	t.Parallel()

	m := newShownPalette(t, tabEntries(), Options{})
	lines := viewLines(m)

	require.Equal(t, (100-60)/2, m.modalX)
	require.Equal(t, (40-len(lines))/2, m.modalY)
	require.Equal(t, 60, m.modalWidth)
	require.Equal(t, len(lines), m.modalHeight)
	require.Equal(t, m.modalY+3, m.rowsTop)
	require.Equal(t, 3, m.rowCount)
}
