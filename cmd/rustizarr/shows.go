package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/processor"
)

var scanShowsCmd = &cobra.Command{
	Use:   "scan-shows",
	Short: "Process every show of the shows library",
	Args:  cobra.NoArgs,
	RunE:  runScanShowsCmd,
}

var processShowCmd = &cobra.Command{
	Use:   "process-show",
	Short: "Process one show poster",
	Args:  cobra.NoArgs,
	RunE:  runProcessShowCmd,
}

var listShowsCmd = &cobra.Command{
	Use:   "list-shows",
	Short: "List the shows of the shows library",
	Args:  cobra.NoArgs,
	RunE:  runListShowsCmd,
}

var scanSeasonsCmd = &cobra.Command{
	Use:   "scan-seasons",
	Short: "Process every season of a show",
	Args:  cobra.NoArgs,
	RunE:  runScanSeasonsCmd,
}

var processSeasonCmd = &cobra.Command{
	Use:   "process-season",
	Short: "Process one season poster of a show",
	Args:  cobra.NoArgs,
	RunE:  runProcessSeasonCmd,
}

func init() {
	rootCmd.AddCommand(scanShowsCmd, processShowCmd, listShowsCmd, scanSeasonsCmd, processSeasonCmd)

	scanShowsCmd.Flags().StringP("library", "l", "", "Library section id (default: SHOWS_LIBRARY_ID)")
	scanShowsCmd.Flags().BoolP("force", "f", false, "Process items already labelled")
	scanShowsCmd.Flags().IntP("parallel", "p", 1, fmt.Sprintf("Items processed concurrently (max %d)", processor.MaxParallel))

	processShowCmd.Flags().StringP("id", "i", "", "Plex rating key of the show")
	processShowCmd.Flags().StringP("title", "t", "", "Find the show by title")
	processShowCmd.Flags().StringP("library", "l", "", "Library section id used by --title (default: SHOWS_LIBRARY_ID)")
	processShowCmd.Flags().BoolP("force", "f", false, "Process the show even if already labelled")
	processShowCmd.MarkFlagsMutuallyExclusive("id", "title")

	listShowsCmd.Flags().StringP("library", "l", "", "Library section id (default: SHOWS_LIBRARY_ID)")
	listShowsCmd.Flags().Bool("unprocessed", false, "Only items without the processed label")

	scanSeasonsCmd.Flags().StringP("show-id", "s", "", "Plex rating key of the show")
	scanSeasonsCmd.Flags().BoolP("force", "f", false, "Process seasons already labelled")
	scanSeasonsCmd.Flags().IntP("parallel", "p", 1, fmt.Sprintf("Seasons processed concurrently (max %d)", processor.MaxParallel))
	_ = scanSeasonsCmd.MarkFlagRequired("show-id")

	processSeasonCmd.Flags().StringP("show-id", "s", "", "Plex rating key of the show")
	processSeasonCmd.Flags().IntP("season-number", "n", 0, "Season number")
	processSeasonCmd.Flags().BoolP("force", "f", false, "Process the season even if already labelled")
	_ = processSeasonCmd.MarkFlagRequired("show-id")
	_ = processSeasonCmd.MarkFlagRequired("season-number")
}

func runScanShowsCmd(cmd *cobra.Command, args []string) error {
	library, _ := cmd.Flags().GetString("library")
	force, _ := cmd.Flags().GetBool("force")
	parallel, _ := cmd.Flags().GetInt("parallel")

	a, err := loadApp()
	if err != nil {
		return err
	}
	lib := orDefault(library, a.Config.Plex.ShowsLibraryID)
	n := processor.ClampParallel(parallel)
	fmt.Fprintf(cmd.OutOrStdout(), "📺 scanning show library %s (x%d)\n", lib, n)

	report, err := a.Processor.ScanShows(cmd.Context(), lib, n, force)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report.String())
	return nil
}

func runProcessShowCmd(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")
	library, _ := cmd.Flags().GetString("library")
	force, _ := cmd.Flags().GetBool("force")

	if id == "" && title == "" {
		return errors.New("one of --id or --title is required")
	}
	a, err := loadApp()
	if err != nil {
		return err
	}
	item, err := resolveItem(cmd, a, id, title, orDefault(library, a.Config.Plex.ShowsLibraryID), plex.KindShow)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "📺 %s [%s]\n", item.Title, item.RatingKey)
	return printOutcome(cmd, item.Title, a.Processor.ProcessShow(cmd.Context(), item, force))
}

func runListShowsCmd(cmd *cobra.Command, args []string) error {
	return listLibrary(cmd, plex.KindShow)
}

func runScanSeasonsCmd(cmd *cobra.Command, args []string) error {
	showID, _ := cmd.Flags().GetString("show-id")
	force, _ := cmd.Flags().GetBool("force")
	parallel, _ := cmd.Flags().GetInt("parallel")

	a, err := loadApp()
	if err != nil {
		return err
	}
	report, err := a.Processor.ScanSeasons(cmd.Context(), showID, processor.ClampParallel(parallel), force)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report.String())
	return nil
}

func runProcessSeasonCmd(cmd *cobra.Command, args []string) error {
	showID, _ := cmd.Flags().GetString("show-id")
	number, _ := cmd.Flags().GetInt("season-number")
	force, _ := cmd.Flags().GetBool("force")

	if number < 0 {
		return fmt.Errorf("invalid season number %d", number)
	}
	a, err := loadApp()
	if err != nil {
		return err
	}
	title := fmt.Sprintf("season %d of %s", number, showID)
	return printOutcome(cmd, title, a.Processor.ProcessSeason(cmd.Context(), showID, number, force))
}
