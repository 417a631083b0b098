package palette

import "unicode"

// fuzzyMatch reports whether every rune of query appears in text in
// order, not necessarily contiguously. Both sides are compared
// case-insensitively with a two-cursor scan: the text cursor advances
// every step, the query cursor only on a match. An empty query always
// matches.
func fuzzyMatch(query, text string) bool {
	q := []rune(query)
	qi := 0

	for _, r := range text {
		if qi == len(q) {
			break
		}
		if unicode.ToLower(r) == unicode.ToLower(q[qi]) {
			qi++
		}
	}

	return qi == len(q)
}
