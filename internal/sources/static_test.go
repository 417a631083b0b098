package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termstack/palette/internal/config"
	"github.com/termstack/palette/pkg/palette"
)

type testHost struct{}

func (testHost) Name() string { return "test-host" }

func boolPtr(b bool) *bool { return &b }

func entryByID(t *testing.T, entries []palette.Entry, id string) palette.Entry {
	t.Helper()

	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("entry %q not found", id)
	return palette.Entry{}
}

func testCommands() *config.Commands {
	return &config.Commands{
		Version: "1.0",
		Commands: []config.Command{
			{ID: "ok", Title: "Succeeds", Subtitle: "exits zero", Exec: []string{"sh", "-c", "exit 0"}},
			{ID: "fails", Title: "Fails", Exec: []string{"sh", "-c", "echo boom >&2; exit 3"}},
		},
	}
}

func TestStaticBuildsEntriesFromDefinitions(t *testing.T) {
	t.Parallel()

	src := Static(testCommands(), nil, nil)
	entries, err := src(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "ok", entries[0].ID)
	require.Equal(t, "Succeeds", entries[0].Title)
	require.Equal(t, "exits zero", entries[0].Subtitle)
	require.NotNil(t, entries[0].Run)
}

func TestStaticAppliesOverrides(t *testing.T) {
	t.Parallel()

	overrides := config.Overrides{
		"ok":    {Title: "Renamed"},
		"fails": {Enabled: boolPtr(false)},
	}

	entries, err := Static(testCommands(), overrides, nil)(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "ok", entries[0].ID)
	require.Equal(t, "Renamed", entries[0].Title)
}

func TestStaticNilDocumentYieldsNothing(t *testing.T) {
	t.Parallel()

	entries, err := Static(nil, nil, nil)(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestStaticActionRunsArgv(t *testing.T) {
	t.Parallel()

	entries, err := Static(testCommands(), nil, nil)(context.Background(), nil)
	require.NoError(t, err)

	ok := entryByID(t, entries, "ok")
	require.NoError(t, ok.Run(testHost{}, ok))
}

func TestStaticActionWrapsFailureOutput(t *testing.T) {
	t.Parallel()

	entries, err := Static(testCommands(), nil, nil)(context.Background(), nil)
	require.NoError(t, err)

	fails := entryByID(t, entries, "fails")
	err = fails.Run(testHost{}, fails)
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestStaticActionHonorsDirAndEnv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), []byte("x"), 0o644))

	cmds := &config.Commands{
		Version: "1.0",
		Commands: []config.Command{{
			ID:    "probed",
			Title: "Probed",
			Exec:  []string{"sh", "-c", `test -f marker && test "$PALETTE_PROBE" = yes`},
			Dir:   dir,
			Env:   map[string]string{"PALETTE_PROBE": "yes"},
		}},
	}

	entries, err := Static(cmds, nil, nil)(context.Background(), nil)
	require.NoError(t, err)

	probed := entryByID(t, entries, "probed")
	require.NoError(t, probed.Run(testHost{}, probed))
}

func TestStaticCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Static(testCommands(), nil, nil)(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
}
