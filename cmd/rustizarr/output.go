package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/processor"
)

// progressEvery is how often library hydration progress is printed.
const progressEvery = 20

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// progress prints hydration progress to stderr every progressEvery items.
func progress(cmd *cobra.Command) plex.ProgressFunc {
	return func(done, total int) {
		if done%progressEvery == 0 || done == total {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %d/%d\n", done, total)
		}
	}
}

func processedMark(it *plex.Item) string {
	if it.HasLabel(processor.ProcessedLabel) {
		return "✅"
	}
	return "⏸️"
}

// renderItems renders a library listing as a table.
func renderItems(items []plex.Item) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"", "Key", "Title", "Year", "Score"})

	for i := range items {
		it := &items[i]
		year, score := "", ""
		if it.Year > 0 {
			year = strconv.Itoa(it.Year)
		}
		if r, ok := it.Rating(); ok {
			score = fmt.Sprintf("%.1f", r)
		}
		tw.AppendRow(table.Row{processedMark(it), it.RatingKey, it.Title, year, score})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

// unprocessed keeps the items without the processed label.
func unprocessed(items []plex.Item) []plex.Item {
	out := make([]plex.Item, 0, len(items))
	for _, it := range items {
		if !it.HasLabel(processor.ProcessedLabel) {
			out = append(out, it)
		}
	}
	return out
}

// printOutcome prints the result of a single-item command. A failed outcome
// is returned as an error so the process exits non-zero.
func printOutcome(cmd *cobra.Command, title string, o processor.Outcome) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s : '%s'\n", o, title)
	if o.Status == processor.StatusSkipped {
		fmt.Fprintln(cmd.OutOrStdout(), "use --force to process it again")
	}
	if o.Status == processor.StatusFailed {
		return fmt.Errorf("%s: %w", title, o.Err)
	}
	return nil
}
