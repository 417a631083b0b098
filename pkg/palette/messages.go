package palette

// PopulatedMsg reports the outcome of a population pass. The palette
// consumes it on its update loop: a successful pass replaces the command
// list (overlapping passes resolve last-arrival-wins), a failed one is
// logged and leaves the previous list in place. Hosts may observe it.
type PopulatedMsg struct {
	// Palette is the id of the instance the result belongs to.
	Palette string

	// Trigger names the population cause: TriggerInit, TriggerFirstShow,
	// TriggerShow or TriggerManual.
	Trigger string

	// Entries is the new command list on success.
	Entries []Entry

	// Err is non-nil when the source failed or panicked.
	Err error
}

// ExecutedMsg reports the outcome of an executed entry action. By the
// time it arrives the palette has already hidden itself and logged any
// failure; hosts react to it (refresh state, quit, surface the error).
type ExecutedMsg struct {
	// Palette is the id of the instance that executed the entry.
	Palette string

	// Entry is the executed entry, Meta included.
	Entry Entry

	// Err is non-nil when the action returned an error or panicked.
	Err error
}
