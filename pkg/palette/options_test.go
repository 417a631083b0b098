package palette

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	palerrors "github.com/termstack/palette/pkg/errors"
)

func requireConstructionField(t *testing.T, err error, field string) {
	t.Helper()

	var cerr *palerrors.ConstructionError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, field, cerr.Field)
}

func TestNewRejectsEmptyID(t *testing.T) {
	t.Parallel()

	_, err := New("", nil, Options{})
	requireConstructionField(t, err, "id")

	_, err = New("   ", nil, Options{})
	requireConstructionField(t, err, "id")
}

func TestNewRejectsPresentButEmptyAllowList(t *testing.T) {
	t.Parallel()

	_, err := New("test", nil, Options{HostAllowList: []string{}})
	requireConstructionField(t, err, "host_allow_list")

	// Nil means unrestricted and is fine.
	_, err = New("test", nil, Options{})
	require.NoError(t, err)
}

func TestNewRejectsIncompleteBindings(t *testing.T) {
	t.Parallel()

	_, err := New("test", nil, Options{
		Bindings: []Binding{{Key: "ctrl+r"}},
	})
	requireConstructionField(t, err, "bindings")

	_, err = New("test", nil, Options{
		Bindings: []Binding{{Handler: func(m *Model) tea.Cmd { return nil }}},
	})
	requireConstructionField(t, err, "bindings")
}

func TestNewValidatesWidth(t *testing.T) {
	t.Parallel()

	bad := []string{"banana", "0", "0%", "101%", "60 %", "-5", "%"}
	for _, width := range bad {
		_, err := New("test", nil, Options{Width: width})
		require.Error(t, err, "width %q", width)
		requireConstructionField(t, err, "Width")
	}

	good := []string{"1", "72", "1%", "60%", "100%"}
	for _, width := range good {
		_, err := New("test", nil, Options{Width: width})
		require.NoError(t, err, "width %q", width)
	}
}

func TestNewRejectsNegativeCounts(t *testing.T) {
	t.Parallel()

	_, err := New("test", nil, Options{MaxVisible: -1})
	requireConstructionField(t, err, "MaxVisible")

	_, err = New("test", nil, Options{MinQueryLength: -1})
	requireConstructionField(t, err, "MinQueryLength")

	_, err = New("test", nil, Options{MouseMoveThreshold: -1})
	requireConstructionField(t, err, "MouseMoveThreshold")
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	m, err := New("test", nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, "test", m.opts.Title)
	assert.Equal(t, defaultMaxVisible, m.opts.MaxVisible)
	assert.Equal(t, defaultWidth, m.opts.Width)
	assert.Equal(t, PopulateOnFirstShow, m.opts.Populate)
	assert.Equal(t, defaultMouseMoveThreshold, m.opts.MouseMoveThreshold)
	assert.Equal(t, 0, m.opts.MinQueryLength)
}

func TestNewKeepsExplicitOptions(t *testing.T) {
	t.Parallel()

	m, err := New("test", nil, Options{
		Title:              "Commands",
		MaxVisible:         5,
		Width:              "72",
		Populate:           PopulateOnInit | PopulateOnShow,
		MouseMoveThreshold: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Commands", m.opts.Title)
	assert.Equal(t, 5, m.opts.MaxVisible)
	assert.Equal(t, "72", m.opts.Width)
	assert.Equal(t, PopulateOnInit|PopulateOnShow, m.opts.Populate)
	assert.Equal(t, 1, m.opts.MouseMoveThreshold)
}

func TestParseWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		value   int
		percent bool
		ok      bool
	}{
		{name: "percent", input: "60%", value: 60, percent: true, ok: true},
		{name: "full percent", input: "100%", value: 100, percent: true, ok: true},
		{name: "columns", input: "72", value: 72, percent: false, ok: true},
		{name: "single column", input: "1", value: 1, percent: false, ok: true},
		{name: "zero columns", input: "0", ok: false},
		{name: "zero percent", input: "0%", ok: false},
		{name: "overshoot percent", input: "101%", ok: false},
		{name: "words", input: "wide", ok: false},
		{name: "spaced", input: "60 %", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, percent, ok := parseWidth(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.value, value)
				assert.Equal(t, tt.percent, percent)
			}
		})
	}
}

func TestConstructionErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := New("demo", nil, Options{Width: "banana"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo")
	assert.Contains(t, err.Error(), "Width")

	// The raw validator error stays reachable through the chain.
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}
