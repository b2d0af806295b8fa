package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/rustizarr/internal/app"
	"github.com/vmunix/rustizarr/internal/config"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "rustizarr",
	Short: "Overlay badges on Plex posters (movies, shows and seasons)",
	Long: `rustizarr - overlay badges on Plex posters

Scans Plex libraries and publishes posters carrying resolution, codec,
rating, freshness and show status overlays.

Run 'rustizarrd' to serve the web UI and receive Plex webhooks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command until it completes or is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("rustizarr {{.Version}}\n")
}

// loadApp reads .env and the configuration, then builds the application.
// Commands like init and --version never call it.
func loadApp() (*app.App, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	path, err := config.Resolve(strings.TrimSpace(configPath))
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	return app.New(cfg, logger), nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
