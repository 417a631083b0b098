package palette

// Action is the behavior bound to an entry. It is invoked with the host
// surface the palette opened over and the entry itself. A non-nil error
// marks the execution as failed; it is reported through the palette's
// logger and the execution result message, never propagated.
type Action func(host Host, entry Entry) error

// Host is the surface a palette opens over. Implementations are supplied
// by the embedding application; the engine only uses the name to enforce
// an optional allow-list.
type Host interface {
	// Name identifies the host surface (e.g. "demo", "editor").
	Name() string
}

// Entry is a candidate action presented by the palette.
type Entry struct {
	// ID is an optional stable identifier. Entries with an empty ID are
	// anonymous: they cannot be targeted by id-based mutation and are
	// never deduplicated.
	ID string

	// Title is the primary display and search text. Required.
	Title string

	// Subtitle is optional secondary display and search text.
	Subtitle string

	// DisplayTitle, when non-empty, replaces Title in the UI. It is
	// excluded from filtering and ranking.
	DisplayTitle string

	// DisplaySubtitle, when non-empty, replaces Subtitle in the UI. It
	// is excluded from filtering and ranking.
	DisplaySubtitle string

	// Run is invoked when the entry is executed. A nil Run is a no-op
	// that logs a warning.
	Run Action

	// Meta is an opaque bag owned by the population source and its
	// custom bindings. The engine never inspects it.
	Meta map[string]any
}

// displayTitle returns the text shown for the entry's title row.
func (e Entry) displayTitle() string {
	if e.DisplayTitle != "" {
		return e.DisplayTitle
	}
	return e.Title
}

// displaySubtitle returns the text shown for the entry's subtitle.
func (e Entry) displaySubtitle() string {
	if e.DisplaySubtitle != "" {
		return e.DisplaySubtitle
	}
	return e.Subtitle
}

// normalizeEntries enforces id uniqueness over a command list: among
// entries sharing a non-empty ID the later one wins, keeping the first
// occurrence's position. Anonymous entries pass through untouched.
func normalizeEntries(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	seen := make(map[string]int, len(entries))

	for _, entry := range entries {
		if entry.ID == "" {
			out = append(out, entry)
			continue
		}
		if at, ok := seen[entry.ID]; ok {
			out[at] = entry
			continue
		}
		seen[entry.ID] = len(out)
		out = append(out, entry)
	}

	return out
}
