package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/termstack/palette/internal/config"
	"github.com/termstack/palette/internal/logging"
	"github.com/termstack/palette/internal/sources"
	"github.com/termstack/palette/pkg/palette"
)

type rootFlags struct {
	verbose   bool
	config    string
	overrides string
	repo      string
	noFuzzy   bool
}

// level maps the verbose flag onto a logger level.
func (f *rootFlags) level() string {
	if f.verbose {
		return "debug"
	}
	return "info"
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Command palette demo and tooling",
		Long: `Palette embeds a fuzzy-searchable command overlay into terminal
applications. The demo subcommand runs a small host program wired to the
configured sources; sources prints what those sources resolve to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runDemo(flags, &demoOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "commands.yaml", "Path to the command definition file")
	cmd.PersistentFlags().StringVar(&flags.overrides, "overrides", "overrides.json", "Path to the entry override file")
	cmd.PersistentFlags().StringVar(&flags.repo, "repo", ".", "Repository the git branch source reads")
	cmd.PersistentFlags().BoolVar(&flags.noFuzzy, "no-fuzzy", false, "Match by substring instead of fuzzy subsequence")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newSourcesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// buildSource assembles the entry sources the CLI serves: declarative
// commands when the definition file exists, git branch switching for the
// configured repository, and the builtin actions.
func buildSource(flags *rootFlags, log *logging.Logger) (palette.Source, error) {
	var srcs []palette.Source

	if _, err := os.Stat(flags.config); err == nil {
		cmds, err := config.ParseCommands(flags.config)
		if err != nil {
			return nil, err
		}
		overrides, err := config.LoadOverrides(flags.overrides)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, sources.Static(cmds, overrides, log))
	} else {
		log.WithFields(map[string]any{"path": flags.config}).Debug("no command definition file, skipping static source")
	}

	srcs = append(srcs, sources.Git(flags.repo, log))
	srcs = append(srcs, sources.Builtin())

	return sources.Multi(log, srcs...), nil
}
