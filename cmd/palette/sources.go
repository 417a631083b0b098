package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/termstack/palette/internal/logging"
	"github.com/termstack/palette/pkg/palette"
)

type sourcesOptions struct {
	jsonOutput bool
}

func newSourcesCmd(flags *rootFlags) *cobra.Command {
	opts := &sourcesOptions{}

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Print the entries the configured sources resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSources(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runSources(cmd *cobra.Command, flags *rootFlags, opts *sourcesOptions) error {
	log, err := logging.New(logging.Options{
		Level:         flags.level(),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	src, err := buildSource(flags, log)
	if err != nil {
		return err
	}

	entries, err := src(cmd.Context(), nil)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderSourcesJSON(cmd, entries)
	}
	return renderSourcesTable(cmd, entries)
}

type sourceEntryJSON struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

func renderSourcesJSON(cmd *cobra.Command, entries []palette.Entry) error {
	payload := make([]sourceEntryJSON, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, sourceEntryJSON{
			ID:       e.ID,
			Title:    e.Title,
			Subtitle: e.Subtitle,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderSourcesTable(cmd *cobra.Command, entries []palette.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries resolved.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSUBTITLE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Title, e.Subtitle)
	}
	return w.Flush()
}
