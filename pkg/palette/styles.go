package palette

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles is the palette's visual theme. DefaultStyles picks colors for
// the detected terminal background; hosts override via Options.Styles.
type Styles struct {
	// Modal draws the dialog border and padding.
	Modal lipgloss.Style

	// Title styles the title bar text.
	Title lipgloss.Style

	// Counter styles the "k/n" match counter next to the title.
	Counter lipgloss.Style

	// Prompt and QueryText style the input line.
	Prompt    lipgloss.Style
	QueryText lipgloss.Style

	// Item and SelectedItem style result row titles.
	Item         lipgloss.Style
	SelectedItem lipgloss.Style

	// Subtitle styles the secondary text of a row.
	Subtitle lipgloss.Style

	// Match and SelectedMatch style highlighted query spans within a
	// row title.
	Match         lipgloss.Style
	SelectedMatch lipgloss.Style

	// Cursor styles the selection marker at the start of a row.
	Cursor lipgloss.Style

	// Scroll styles the overflow indicator line.
	Scroll lipgloss.Style

	// Footer styles the key help line.
	Footer lipgloss.Style

	// Empty styles the "no matches" placeholder row.
	Empty lipgloss.Style

	// Spinner styles the population-pending spinner.
	Spinner lipgloss.Style
}

// DefaultStyles returns the built-in theme. Accent colors shift for
// light terminal backgrounds, detected through termenv.
func DefaultStyles() Styles {
	primary := lipgloss.Color("99")  // purple
	accent := lipgloss.Color("212")  // pink
	muted := lipgloss.Color("245")   // gray
	matchBg := lipgloss.Color("227") // yellow

	if !termenv.HasDarkBackground() {
		primary = lipgloss.Color("55")
		accent = lipgloss.Color("161")
		muted = lipgloss.Color("243")
		matchBg = lipgloss.Color("229")
	}

	return Styles{
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Counter: lipgloss.NewStyle().
			Foreground(muted),

		Prompt: lipgloss.NewStyle().
			Foreground(accent),

		QueryText: lipgloss.NewStyle(),

		Item: lipgloss.NewStyle(),

		SelectedItem: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Subtitle: lipgloss.NewStyle().
			Foreground(muted),

		Match: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(matchBg),

		SelectedMatch: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(matchBg),

		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Scroll: lipgloss.NewStyle().
			Foreground(muted),

		Footer: lipgloss.NewStyle().
			Foreground(muted),

		Empty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Spinner: lipgloss.NewStyle().
			Foreground(primary),
	}
}
