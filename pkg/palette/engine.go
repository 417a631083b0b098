package palette

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	palerrors "github.com/termstack/palette/pkg/errors"
)

// Accessors. Safe for concurrent use; sources call these off the update
// loop while the engine mutates state on it.

// Commands returns a copy of the full command list in its current order.
func (m *Model) Commands() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Entry(nil), m.commands...)
}

// Filtered returns a copy of the entries currently matching the query,
// in rank order. With a blank or below-minimum query it equals Commands.
func (m *Model) Filtered() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, len(m.filtered))
	for i, idx := range m.filtered {
		out[i] = m.commands[idx]
	}
	return out
}

// Query returns the live search text.
func (m *Model) Query() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.queryText
}

// SelectedIndex returns the selection cursor into the filtered view.
func (m *Model) SelectedIndex() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectedIndex
}

// SelectedEntry returns the entry under the selection cursor, false when
// the filtered view is empty.
func (m *Model) SelectedEntry() (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.filtered) == 0 {
		return Entry{}, false
	}
	return m.commands[m.filtered[m.selectedIndex]], true
}

// Mutation API. Every mutation triggers a full refilter.

// Add appends an entry, or, when its non-empty ID matches an existing
// entry, replaces that entry in place keeping its position.
func (m *Model) Add(entry Entry) {
	if m.destroyed {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.ID != "" {
		for i := range m.commands {
			if m.commands[i].ID == entry.ID {
				m.commands[i] = entry
				m.refilterLocked()
				return
			}
		}
	}
	m.commands = append(m.commands, entry)
	m.refilterLocked()
}

// Remove drops the first entry with the given id. An unknown or empty id
// is a silent no-op.
func (m *Model) Remove(id string) {
	if m.destroyed || id == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.commands {
		if m.commands[i].ID == id {
			m.commands = append(m.commands[:i], m.commands[i+1:]...)
			m.refilterLocked()
			return
		}
	}
}

// RemoveAt drops the entry at the given index into the command list. An
// out-of-range index is a silent no-op.
func (m *Model) RemoveAt(index int) {
	if m.destroyed {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.commands) {
		return
	}
	m.commands = append(m.commands[:index], m.commands[index+1:]...)
	m.refilterLocked()
}

// RemoveSelected drops the entry under the selection cursor, mapping the
// filtered position back to the command list. No-op when empty.
func (m *Model) RemoveSelected() {
	if m.destroyed {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.filtered) == 0 {
		return
	}
	index := m.filtered[m.selectedIndex]
	m.commands = append(m.commands[:index], m.commands[index+1:]...)
	m.refilterLocked()
}

// SetCommands replaces the whole command list. The configured SortFunc
// applies first (stable), then duplicate ids collapse (later wins, first
// position kept), then the view refilters.
func (m *Model) SetCommands(entries []Entry) {
	if m.destroyed {
		return
	}

	list := append([]Entry(nil), entries...)
	if m.opts.SortFunc != nil {
		sort.SliceStable(list, func(i, j int) bool {
			return m.opts.SortFunc(list[i], list[j])
		})
	}
	list = normalizeEntries(list)

	m.mu.Lock()
	m.commands = list
	m.refilterLocked()
	m.mu.Unlock()
}

// SetQuery replaces the live query and refilters. Calling it before Init
// or after Destroy is a programming error and panics.
func (m *Model) SetQuery(q string) {
	m.ensureUsable("SetQuery")
	m.setQueryValue(q)
}

// setQueryValue applies a query to the input component and the guarded
// cache, then refilters.
func (m *Model) setQueryValue(q string) {
	m.query.SetValue(q)
	m.query.CursorEnd()

	m.mu.Lock()
	m.queryText = q
	m.refilterLocked()
	m.mu.Unlock()
}

// Selection state machine.

// MoveSelection moves the cursor by delta within the filtered view,
// wrapping in both directions. No-op when the view is empty.
func (m *Model) MoveSelection(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.filtered)
	if n == 0 {
		return
	}
	m.selectedIndex = ((m.selectedIndex+delta)%n + n) % n
	m.scrollToSelectionLocked()
}

// SetSelectedIndex clamps i into the filtered bounds and scrolls the row
// into the visible window by the minimum amount.
func (m *Model) SetSelectedIndex(i int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.filtered) == 0 {
		m.selectedIndex = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.filtered) {
		i = len(m.filtered) - 1
	}
	m.selectedIndex = i
	m.scrollToSelectionLocked()
}

// Execution.

// Execute hides the palette first, then runs the entry's action against
// the host. Action panics are recovered and returned error values are
// wrapped; both are logged, neither propagates. An entry without an
// action logs a warning and is a no-op.
func (m *Model) Execute(host Host, entry Entry) error {
	m.Hide()
	return m.runAction(host, entry)
}

// runAction invokes the entry action with panic recovery. It reports
// failures through the palette logger and returns the wrapped error.
func (m *Model) runAction(host Host, entry Entry) (err error) {
	if entry.Run == nil {
		m.log.WithFields(map[string]any{"entry": entry.Title}).Warn("entry has no action")
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = palerrors.NewExecutionError(m.id, entry.Title, fmt.Errorf("action panicked: %v", r))
			m.log.Error(err, "command action panicked")
		}
	}()

	if runErr := entry.Run(host, entry); runErr != nil {
		err = palerrors.NewExecutionError(m.id, entry.Title, runErr)
		m.log.Error(err, "command action failed")
	}
	return err
}

// invokeSource runs a population source with panic recovery.
func invokeSource(ctx context.Context, src Source, m *Model) (entries []Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entries = nil
			err = fmt.Errorf("source panicked: %v", r)
		}
	}()
	return src(ctx, m)
}

// Filtering internals. Callers hold m.mu.

// refilterLocked rebuilds the filtered view from the live query. Blank
// or below-minimum queries pass the command list through verbatim;
// otherwise entries are scored, zero scores dropped, and survivors
// sorted by score descending with ties broken by case-sensitive title.
func (m *Model) refilterLocked() {
	q := strings.TrimSpace(m.queryText)

	if q == "" || utf8.RuneCountInString(q) < m.opts.MinQueryLength {
		m.filtered = make([]int, len(m.commands))
		for i := range m.commands {
			m.filtered[i] = i
		}
		m.clampSelectionLocked()
		m.scrollToSelectionLocked()
		return
	}

	type match struct {
		index int
		score int
	}
	matches := make([]match, 0, len(m.commands))
	for i, entry := range m.commands {
		if score := scoreEntry(entry, q, m.opts.Fuzzy); score > 0 {
			matches = append(matches, match{index: i, score: score})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].score != matches[b].score {
			return matches[a].score > matches[b].score
		}
		return m.commands[matches[a].index].Title < m.commands[matches[b].index].Title
	})

	m.filtered = make([]int, len(matches))
	for i, hit := range matches {
		m.filtered[i] = hit.index
	}

	m.clampSelectionLocked()
	m.scrollToSelectionLocked()
}

func (m *Model) clampSelectionLocked() {
	if len(m.filtered) == 0 {
		m.selectedIndex = 0
		return
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
	if m.selectedIndex >= len(m.filtered) {
		m.selectedIndex = len(m.filtered) - 1
	}
}

// scrollToSelectionLocked moves the visible window the minimum amount
// needed to contain the selected row.
func (m *Model) scrollToSelectionLocked() {
	if m.selectedIndex < m.offset {
		m.offset = m.selectedIndex
	}
	if m.selectedIndex >= m.offset+m.opts.MaxVisible {
		m.offset = m.selectedIndex - m.opts.MaxVisible + 1
	}
	if max := len(m.filtered) - m.opts.MaxVisible; m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// filteredEntry returns the entry at position i of the filtered view.
// Update-loop callers only.
func (m *Model) filteredEntry(i int) Entry {
	return m.commands[m.filtered[i]]
}
