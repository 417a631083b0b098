// Package palette implements a command palette for terminal applications:
// a modal overlay, summoned over a host surface, in which the user
// fuzzy-searches a dynamically populated list of actions and executes one
// with the keyboard or mouse.
//
// The engine owns the command list, the live query, the ranked and
// highlighted subset, and the selection cursor. Population sources,
// configuration loading and hotkey registration are collaborator
// responsibilities wired through the Source protocol, Options and the
// mutation API.
package palette

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/go-playground/validator/v10"

	palerrors "github.com/termstack/palette/pkg/errors"
)

// New builds a palette with the given id, entry source and options. The
// source may be nil for palettes fed exclusively through the mutation
// API. Invalid options, an empty id, or a present-but-empty host
// allow-list are fatal construction errors.
func New(id string, src Source, opts Options) (*Model, error) {
	if strings.TrimSpace(id) == "" {
		return nil, palerrors.NewConstructionError(id, "id", "palette id must not be empty", nil)
	}
	if opts.HostAllowList != nil && len(opts.HostAllowList) == 0 {
		return nil, palerrors.NewConstructionError(id, "host_allow_list", "allow-list must name at least one host when provided", nil)
	}
	for _, binding := range opts.Bindings {
		if binding.Key == "" || binding.Handler == nil {
			return nil, palerrors.NewConstructionError(id, "bindings", "custom bindings need a key and a handler", nil)
		}
	}
	if err := validatorInstance().Struct(opts); err != nil {
		return nil, palerrors.NewConstructionError(id, invalidField(err), "invalid option value", err)
	}

	opts = opts.withDefaults(id)

	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	input := textinput.New()
	input.Placeholder = opts.Placeholder
	input.Prompt = "> "
	input.CharLimit = 256
	input.PromptStyle = styles.Prompt
	input.TextStyle = styles.QueryText

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		id:      id,
		opts:    opts,
		styles:  styles,
		keys:    defaultKeyMap(),
		log:     opts.Logger.WithPalette(id),
		source:  src,
		ctx:     ctx,
		cancel:  cancel,
		query:   input,
		spinner: sp,
	}, nil
}

// invalidField names the first failing option for the construction error.
func invalidField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return "options"
}
