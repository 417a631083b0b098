package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termstack/palette/internal/app"
	"github.com/termstack/palette/internal/logging"
	"github.com/termstack/palette/pkg/palette"
)

type demoOptions struct {
	logFile string
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive palette demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (discarded otherwise)")

	return cmd
}

func runDemo(flags *rootFlags, opts *demoOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the demo needs an interactive terminal")
	}

	// The alternate screen belongs to the host program while the demo
	// runs, so logs go to a file or nowhere rather than to stderr.
	writer := io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	log, err := logging.New(logging.Options{Level: flags.level(), Writer: writer})
	if err != nil {
		return err
	}

	src, err := buildSource(flags, log)
	if err != nil {
		return err
	}

	host, err := app.New(src, log, palette.Options{
		Title:             "Commands",
		Placeholder:       "Type a command name",
		Fuzzy:             !flags.noFuzzy,
		Highlight:         true,
		Populate:          palette.PopulateOnFirstShow | palette.PopulateOnShow,
		CoalesceFirstShow: true,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(host, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo exited with an error: %w", err)
	}
	return nil
}
