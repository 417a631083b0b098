package palette

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termstack/palette/internal/logging"
)

// Defaults applied by New when the corresponding option is zero.
const (
	defaultMaxVisible         = 10
	defaultWidth              = "60%"
	defaultMouseMoveThreshold = 5
)

// Binding is a custom key binding attached to the palette surface. When
// the palette is visible and the key matches, the handler runs before
// the default bindings and consumes the key. Handlers receive the live
// palette explicitly; there is no implicit execution context.
type Binding struct {
	// Key in bubbletea notation, e.g. "ctrl+r" or "tab".
	Key string

	// Help is an optional short description shown in the footer.
	Help string

	// Handler runs on the update loop and may return a command. A panic
	// inside the handler is recovered and logged; the palette stays
	// usable.
	Handler func(m *Model) tea.Cmd
}

// Options configures a palette at construction. The zero value is valid:
// unset fields fall back to the documented defaults.
type Options struct {
	// Placeholder is shown in the query input while it is empty.
	Placeholder string

	// Title is the modal's title bar text. Defaults to the palette id.
	Title string

	// MaxVisible is the number of result rows shown before scrolling.
	// Defaults to 10.
	MaxVisible int `validate:"gte=0"`

	// MinQueryLength is the minimum trimmed query length before
	// filtering kicks in; shorter queries show the full command list.
	MinQueryLength int `validate:"gte=0"`

	// Fuzzy enables the subsequence bonus during ranking.
	Fuzzy bool

	// Highlight enables match highlighting in rendered rows.
	Highlight bool

	// Width sizes the modal: a percentage of the host surface ("60%")
	// or a literal column count ("72"). Defaults to "60%".
	Width string `validate:"omitempty,sizing"`

	// HostAllowList restricts which host surfaces the palette opens
	// over. Nil means unrestricted; a non-nil empty list is a
	// construction error.
	HostAllowList []string

	// Populate declares when the source runs. The zero value defaults
	// to PopulateOnFirstShow.
	Populate PopulateBehavior

	// CoalesceFirstShow collapses the first show's OnFirstShow+OnShow
	// pair into a single source call.
	CoalesceFirstShow bool

	// SortFunc, when set, orders the command list stably on every
	// SetCommands before filtering.
	SortFunc func(a, b Entry) bool

	// Bindings are custom key bindings checked before the defaults.
	Bindings []Binding

	// AfterInit runs once at the end of Init with the live palette.
	// Hosts use it to register the summon hotkey for this instance.
	AfterInit func(m *Model)

	// MouseMoveThreshold is the Manhattan distance in cells the pointer
	// must travel after the palette opens before hover selection
	// activates. Defaults to 5.
	MouseMoveThreshold int `validate:"gte=0"`

	// Logger receives population, execution and binding failures. Nil
	// means silent.
	Logger *logging.Logger

	// Styles overrides the default theme.
	Styles *Styles
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	columnsPattern = regexp.MustCompile(`^[0-9]+$`)
	percentPattern = regexp.MustCompile(`^[0-9]+%$`)
)

// validatorInstance configures and returns the shared validator instance
// used for option validation.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("sizing", func(fl validator.FieldLevel) bool {
			_, _, ok := parseWidth(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// parseWidth interprets a sizing string as either a percentage of the
// host width ("60%", 1–100) or a literal column count ("72", ≥ 1).
func parseWidth(s string) (value int, percent bool, ok bool) {
	switch {
	case percentPattern.MatchString(s):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
		if err != nil || n < 1 || n > 100 {
			return 0, false, false
		}
		return n, true, true
	case columnsPattern.MatchString(s):
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return 0, false, false
		}
		return n, false, true
	default:
		return 0, false, false
	}
}

// withDefaults fills zero-valued options with their documented defaults.
func (o Options) withDefaults(id string) Options {
	if o.Title == "" {
		o.Title = id
	}
	if o.MaxVisible == 0 {
		o.MaxVisible = defaultMaxVisible
	}
	if o.Width == "" {
		o.Width = defaultWidth
	}
	if o.Populate == 0 {
		o.Populate = PopulateOnFirstShow
	}
	if o.MouseMoveThreshold == 0 {
		o.MouseMoveThreshold = defaultMouseMoveThreshold
	}
	return o
}
