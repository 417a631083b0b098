package palette

import (
	"strings"
	"unicode"
)

// Span marks a highlighted run of text as half-open rune offsets
// [Start, End).
type Span struct {
	Start int
	End   int
}

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// HighlightSpans computes the highlighted regions of text for a query.
// A case-insensitive substring match wins and yields one contiguous
// span; otherwise a greedy left-to-right walk marks every rune that
// matches the next pending query rune. Returns nil when the query is
// blank or does not match at all. Pure and never fails.
func HighlightSpans(text, query string) []Span {
	query = strings.TrimSpace(query)
	if query == "" || text == "" {
		return nil
	}

	textRunes := []rune(text)
	queryRunes := []rune(query)

	if start := indexFold(textRunes, queryRunes); start >= 0 {
		return []Span{{Start: start, End: start + len(queryRunes)}}
	}

	return fuzzySpans(textRunes, queryRunes)
}

// Markup renders text with the query's highlighted spans wrapped in
// <mark> tags, escaping every piece independently so the result is safe
// for literal display. A blank query yields the escaped text unmarked.
// Stripping the mark tags from the result always reconstructs the
// escaped original.
func Markup(text, query string) string {
	spans := HighlightSpans(text, query)
	if len(spans) == 0 {
		return markupEscaper.Replace(text)
	}

	runes := []rune(text)
	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(markupEscaper.Replace(string(runes[last:span.Start])))
		b.WriteString("<mark>")
		b.WriteString(markupEscaper.Replace(string(runes[span.Start:span.End])))
		b.WriteString("</mark>")
		last = span.End
	}
	b.WriteString(markupEscaper.Replace(string(runes[last:])))

	return b.String()
}

// indexFold returns the rune offset of the first case-insensitive
// occurrence of needle in haystack, or -1.
func indexFold(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}

	for start := 0; start+len(needle) <= len(haystack); start++ {
		match := true
		for i, r := range needle {
			if unicode.ToLower(haystack[start+i]) != unicode.ToLower(r) {
				match = false
				break
			}
		}
		if match {
			return start
		}
	}

	return -1
}

// fuzzySpans walks text once, marking each rune that matches the next
// pending query rune. Adjacent marks merge into a single span. Returns
// nil unless the whole query is consumed.
func fuzzySpans(text, query []rune) []Span {
	var spans []Span
	qi := 0

	for ti, r := range text {
		if qi == len(query) {
			break
		}
		if unicode.ToLower(r) != unicode.ToLower(query[qi]) {
			continue
		}
		qi++
		if n := len(spans); n > 0 && spans[n-1].End == ti {
			spans[n-1].End = ti + 1
		} else {
			spans = append(spans, Span{Start: ti, End: ti + 1})
		}
	}

	if qi < len(query) {
		return nil
	}
	return spans
}
