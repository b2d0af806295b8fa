package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/rustizarr/internal/app"
	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/processor"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Process every movie of the library",
	Args:  cobra.NoArgs,
	RunE:  runScanCmd,
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process one movie, or the whole library one by one",
	Args:  cobra.NoArgs,
	RunE:  runProcessCmd,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show a movie's metadata and processing state",
	Args:  cobra.NoArgs,
	RunE:  runInfoCmd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the movies of the library",
	Args:  cobra.NoArgs,
	RunE:  runListCmd,
}

func init() {
	rootCmd.AddCommand(scanCmd, processCmd, infoCmd, listCmd)

	scanCmd.Flags().StringP("library", "l", "", "Library section id (default: LIBRARY_ID)")
	scanCmd.Flags().BoolP("force", "f", false, "Process items already labelled")
	scanCmd.Flags().IntP("parallel", "p", 1, fmt.Sprintf("Items processed concurrently (max %d)", processor.MaxParallel))

	processCmd.Flags().StringP("id", "i", "", "Plex rating key")
	processCmd.Flags().StringP("title", "t", "", "Find the movie by title")
	processCmd.Flags().StringP("library", "l", "", "Library section id used by --title and --all (default: LIBRARY_ID)")
	processCmd.Flags().BoolP("all", "a", false, "Process the whole library sequentially")
	processCmd.Flags().BoolP("force", "f", false, "Process the movie even if already labelled")
	processCmd.MarkFlagsMutuallyExclusive("id", "title", "all")

	infoCmd.Flags().StringP("id", "i", "", "Plex rating key")
	infoCmd.Flags().StringP("title", "t", "", "Find the movie by title")
	infoCmd.Flags().StringP("library", "l", "", "Library section id used by --title (default: LIBRARY_ID)")
	infoCmd.MarkFlagsMutuallyExclusive("id", "title")

	listCmd.Flags().StringP("library", "l", "", "Library section id (default: LIBRARY_ID)")
	listCmd.Flags().Bool("unprocessed", false, "Only items without the processed label")
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	library, _ := cmd.Flags().GetString("library")
	force, _ := cmd.Flags().GetBool("force")
	parallel, _ := cmd.Flags().GetInt("parallel")

	a, err := loadApp()
	if err != nil {
		return err
	}
	lib := orDefault(library, a.Config.Plex.LibraryID)
	n := processor.ClampParallel(parallel)
	fmt.Fprintf(cmd.OutOrStdout(), "🔍 scanning movie library %s (x%d)\n", lib, n)

	report, err := a.Processor.ScanMovies(cmd.Context(), lib, n, force)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report.String())
	return nil
}

func runProcessCmd(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")
	library, _ := cmd.Flags().GetString("library")
	all, _ := cmd.Flags().GetBool("all")
	force, _ := cmd.Flags().GetBool("force")

	if id == "" && title == "" && !all {
		return errors.New("one of --id, --title or --all is required")
	}
	a, err := loadApp()
	if err != nil {
		return err
	}
	lib := orDefault(library, a.Config.Plex.LibraryID)

	if all {
		report, err := a.Processor.ScanMovies(cmd.Context(), lib, 1, force)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.String())
		return nil
	}

	item, err := resolveItem(cmd, a, id, title, lib, plex.KindMovie)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "🎬 %s [%s]\n", item.Title, item.RatingKey)
	return printOutcome(cmd, item.Title, a.Processor.ProcessMovie(cmd.Context(), item, force))
}

func runInfoCmd(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")
	library, _ := cmd.Flags().GetString("library")

	if id == "" && title == "" {
		return errors.New("one of --id or --title is required")
	}
	a, err := loadApp()
	if err != nil {
		return err
	}
	item, err := resolveItem(cmd, a, id, title, orDefault(library, a.Config.Plex.LibraryID), plex.KindMovie)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(cmd, item)
	}
	printInfo(cmd, item)
	return nil
}

func runListCmd(cmd *cobra.Command, args []string) error {
	return listLibrary(cmd, plex.KindMovie)
}

// listLibrary prints the movies or shows of a library, hydrated with labels.
func listLibrary(cmd *cobra.Command, kind plex.Kind) error {
	library, _ := cmd.Flags().GetString("library")
	onlyUnprocessed, _ := cmd.Flags().GetBool("unprocessed")

	a, err := loadApp()
	if err != nil {
		return err
	}
	def := a.Config.Plex.LibraryID
	if kind == plex.KindShow {
		def = a.Config.Plex.ShowsLibraryID
	}

	items, err := a.Plex.ListWithLabels(cmd.Context(), orDefault(library, def), kind, progress(cmd))
	if err != nil {
		return err
	}
	if onlyUnprocessed {
		items = unprocessed(items)
	}

	if jsonOutput {
		return writeJSON(cmd, items)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "📋 %d %s(s)\n", len(items), kind)
	if len(items) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderItems(items))
	}
	return nil
}

// resolveItem fetches an item by rating key, or by fuzzy title within lib.
func resolveItem(cmd *cobra.Command, a *app.App, id, title, lib string, kind plex.Kind) (*plex.Item, error) {
	if id == "" {
		items, err := a.Plex.List(cmd.Context(), lib, kind)
		if err != nil {
			return nil, err
		}
		match, err := findByTitle(items, title)
		if err != nil {
			return nil, err
		}
		id = match.RatingKey
	}
	return a.Plex.Item(cmd.Context(), id)
}

func printInfo(cmd *cobra.Command, it *plex.Item) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Title:      %s\n", it.Title)
	fmt.Fprintf(out, "Rating key: %s\n", it.RatingKey)
	if it.Year > 0 {
		fmt.Fprintf(out, "Year:       %d\n", it.Year)
	}
	if r, ok := it.Rating(); ok {
		fmt.Fprintf(out, "Score:      %.1f/10\n", r)
	}
	if id := it.TMDBID(); id != "" {
		fmt.Fprintf(out, "TMDB id:    %s\n", id)
	}
	if added, ok := it.AddedTime(); ok {
		fmt.Fprintf(out, "Added:      %s\n", humanize.RelTime(added, time.Now(), "ago", "from now"))
	}
	if it.HasLabel(processor.ProcessedLabel) {
		fmt.Fprintln(out, "✅ processed")
	} else {
		fmt.Fprintln(out, "⏸️  not processed yet")
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
