package palette

import "strings"

// Scoring bonuses. Bonuses are non-exclusive: every applicable bonus is
// summed into the entry's total, and entries with a total of zero are
// excluded from the filtered view.
const (
	scoreTitleEquals   = 100
	scoreTitlePrefix   = 75
	scoreTitleContains = 50
	scoreSubtitle      = 30
	scoreFuzzy         = 10
)

// scoreEntry computes the match score of an entry against a trimmed,
// non-empty query. All comparisons are case-insensitive. Only Title and
// Subtitle participate; display overrides are presentation-only.
func scoreEntry(entry Entry, query string, fuzzy bool) int {
	q := strings.ToLower(query)
	title := strings.ToLower(entry.Title)

	score := 0
	if title == q {
		score += scoreTitleEquals
	}
	if strings.HasPrefix(title, q) {
		score += scoreTitlePrefix
	}
	if strings.Contains(title, q) {
		score += scoreTitleContains
	}
	if entry.Subtitle != "" && strings.Contains(strings.ToLower(entry.Subtitle), q) {
		score += scoreSubtitle
	}
	if fuzzy && fuzzyMatch(q, title) {
		score += scoreFuzzy
	}

	return score
}
