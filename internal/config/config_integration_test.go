package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFullWorkflow(t *testing.T) {
	clearEnv(t)
	tmp := t.TempDir()

	// 1. Write default config
	cfgPath := filepath.Join(tmp, "rustizarr", "config.toml")
	if err := WriteTemplate(cfgPath); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}

	// 2. Set required env vars (t.Setenv auto-restores on cleanup)
	t.Setenv("PLEX_TOKEN", "test-plex-token")
	t.Setenv("TMDB_KEY", "test-tmdb-key")

	// 3. Load with validation
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// 4. Verify env substitution worked
	if cfg.Plex.Token != "test-plex-token" {
		t.Errorf("expected plex token substituted, got %q", cfg.Plex.Token)
	}
	if cfg.Plex.URL != "http://localhost:32400" {
		t.Errorf("expected default plex url, got %q", cfg.Plex.URL)
	}

	// 5. Verify defaults applied
	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Processing.WebhookDelay != 10*time.Second {
		t.Errorf("expected webhook delay 10s, got %s", cfg.Processing.WebhookDelay)
	}
}
