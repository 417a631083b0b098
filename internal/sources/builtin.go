package sources

import (
	"context"

	"github.com/termstack/palette/pkg/palette"
)

// Meta key carried by builtin entries; hosts switch on the value in
// their ExecutedMsg handler.
const BuiltinKey = "builtin"

// Builtin values understood by the demo host.
const (
	BuiltinHelp    = "help"
	BuiltinRefresh = "refresh"
	BuiltinQuit    = "quit"
)

// Builtin serves host-level actions. The entries carry no behavior of
// their own: each tags itself through Meta and the host reacts to the
// execution message.
func Builtin() palette.Source {
	noop := func(host palette.Host, entry palette.Entry) error { return nil }

	return func(ctx context.Context, _ *palette.Model) ([]palette.Entry, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return []palette.Entry{
			{
				ID:       "builtin-help",
				Title:    "Help",
				Subtitle: "show the palette key bindings",
				Run:      noop,
				Meta:     map[string]any{BuiltinKey: BuiltinHelp},
			},
			{
				ID:       "builtin-refresh",
				Title:    "Refresh Commands",
				Subtitle: "re-run the entry sources",
				Run:      noop,
				Meta:     map[string]any{BuiltinKey: BuiltinRefresh},
			},
			{
				ID:       "builtin-quit",
				Title:    "Quit",
				Subtitle: "exit the host application",
				Run:      noop,
				Meta:     map[string]any{BuiltinKey: BuiltinQuit},
			},
		}, nil
	}
}
