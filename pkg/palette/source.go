package palette

import "context"

// Source produces the current list of candidate entries. Sources run off
// the update loop inside a command; they may read the palette through its
// concurrency-safe accessors (Commands, Filtered, Query, SelectedEntry)
// but must never mutate the command list directly. Population results
// flow back through the engine.
//
// A Source must tolerate being called multiple times. Returning an error
// (or panicking) keeps the previous command list in place.
type Source func(ctx context.Context, m *Model) ([]Entry, error)

// PopulateBehavior declares when the palette invokes its Source. Values
// combine as a bitset. The zero value defaults to PopulateOnFirstShow.
type PopulateBehavior uint8

const (
	// PopulateOnInit invokes the source once during Init, before the
	// palette is first displayed.
	PopulateOnInit PopulateBehavior = 1 << iota

	// PopulateOnFirstShow invokes the source exactly once, the first
	// time the palette becomes visible.
	PopulateOnFirstShow

	// PopulateOnShow invokes the source every time the palette becomes
	// visible. Combined with PopulateOnFirstShow the first show triggers
	// both calls unless Options.CoalesceFirstShow is set.
	PopulateOnShow
)

// Population triggers, carried on PopulatedMsg and population errors.
const (
	TriggerInit      = "init"
	TriggerFirstShow = "first-show"
	TriggerShow      = "show"
	TriggerManual    = "manual"
)

// has reports whether b includes the given trigger bit.
func (b PopulateBehavior) has(bit PopulateBehavior) bool {
	return b&bit != 0
}
