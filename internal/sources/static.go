// Package sources provides reference population sources for the palette:
// declarative commands from configuration, git branch switching, and
// built-in host actions. Each is a plain palette.Source; Multi combines
// them.
package sources

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/termstack/palette/internal/config"
	"github.com/termstack/palette/internal/logging"
	"github.com/termstack/palette/pkg/palette"
)

// Static serves the declarative command definitions with user overrides
// applied: disabled entries are dropped and override titles replace the
// configured ones. Each entry's action runs the configured argv.
func Static(cmds *config.Commands, overrides config.Overrides, log *logging.Logger) palette.Source {
	log = log.WithComponent("sources.static")

	return func(ctx context.Context, _ *palette.Model) ([]palette.Entry, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cmds == nil {
			return nil, nil
		}

		entries := make([]palette.Entry, 0, len(cmds.Commands))
		for _, def := range cmds.Commands {
			if !overrides.Enabled(def.ID) {
				log.WithFields(map[string]any{"id": def.ID}).Debug("entry disabled by override")
				continue
			}

			entries = append(entries, palette.Entry{
				ID:       def.ID,
				Title:    overrides.TitleFor(def.ID, def.Title),
				Subtitle: def.Subtitle,
				Run:      runArgv(def, log),
			})
		}
		return entries, nil
	}
}

// runArgv builds the action for a configured command: run the argv with
// the inherited environment plus the configured extras, in the
// configured directory.
func runArgv(def config.Command, log *logging.Logger) palette.Action {
	return func(host palette.Host, entry palette.Entry) error {
		cmd := exec.Command(def.Exec[0], def.Exec[1:]...)
		cmd.Env = buildEnv(def.Env)
		if def.Dir != "" {
			cmd.Dir = def.Dir
		}

		output, err := cmd.CombinedOutput()
		if err != nil {
			if len(output) > 0 {
				return fmt.Errorf("%w: %s", err, string(output))
			}
			return err
		}

		log.WithFields(map[string]any{
			"id":   entry.ID,
			"host": host.Name(),
		}).Debug("command executed")
		return nil
	}
}

func buildEnv(custom map[string]string) []string {
	env := os.Environ()
	for k, v := range custom {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	return env
}
