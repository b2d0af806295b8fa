// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable the loader reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PLEX_URL", "PLEX_TOKEN", "TMDB_KEY", "LIBRARY_ID", "SHOWS_LIBRARY_ID",
		"OVERLAYS_PATH", "PORT", "LOG_LEVEL", "SCAN_PARALLEL", "WEBHOOK_DELAY",
		"SCAN_SCHEDULE", "PLEX_INSECURE_TLS",
	} {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PLEX_URL", "http://plex:32400/")
	t.Setenv("PLEX_TOKEN", "token")
	t.Setenv("TMDB_KEY", "key")
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Plex.URL != "http://plex:32400" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Plex.URL)
	}
	if cfg.Plex.LibraryID != "1" || cfg.Plex.ShowsLibraryID != "2" {
		t.Errorf("expected default libraries 1 and 2, got %s and %s", cfg.Plex.LibraryID, cfg.Plex.ShowsLibraryID)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Processing.Parallel != 1 {
		t.Errorf("expected parallel 1, got %d", cfg.Processing.Parallel)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLEX_URL", "http://plex:32400")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for missing variables")
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if len(cerr.Missing) != 2 || cerr.Missing[0] != "PLEX_TOKEN" || cerr.Missing[1] != "TMDB_KEY" {
		t.Errorf("expected [PLEX_TOKEN TMDB_KEY], got %v", cerr.Missing)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[server]
port = 8080

[plex]
url = "http://nas:32400"
token = "file-token"
library_id = "7"

[tmdb]
api_key = "file-key"

[processing]
parallel = 4
webhook_delay = "3s"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Plex.LibraryID != "7" {
		t.Errorf("expected library 7, got %s", cfg.Plex.LibraryID)
	}
	if cfg.Processing.Parallel != 4 {
		t.Errorf("expected parallel 4, got %d", cfg.Processing.Parallel)
	}
	if cfg.Processing.WebhookDelay != 3*time.Second {
		t.Errorf("expected delay 3s, got %s", cfg.Processing.WebhookDelay)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[plex]
url = "http://nas:32400"
token = "file-token"

[tmdb]
api_key = "file-key"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	t.Setenv("PLEX_TOKEN", "env-token")
	t.Setenv("PORT", "4000")
	t.Setenv("WEBHOOK_DELAY", "15")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Plex.Token != "env-token" {
		t.Errorf("expected env token, got %s", cfg.Plex.Token)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("expected port 4000, got %d", cfg.Server.Port)
	}
	if cfg.Processing.WebhookDelay != 15*time.Second {
		t.Errorf("expected 15s delay, got %s", cfg.Processing.WebhookDelay)
	}
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("PORT", "http")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "PORT") {
		t.Fatalf("expected PORT error, got %v", err)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	os.Unsetenv("MISSING_KEY")
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[overlays]
path = "${MISSING_KEY}"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	if !strings.Contains(err.Error(), "MISSING_KEY") {
		t.Errorf("expected MISSING_KEY in error, got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[server]
port = 99999
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("expected server.port in error, got %v", err)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	clearEnv(t)
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[server]
port = 99999
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 99999 {
		t.Errorf("expected port 99999, got %d", cfg.Server.Port)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	os.Unsetenv("OPTIONAL_VAR")
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[server]
host = "${OPTIONAL_VAR:-localhost}"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected host localhost, got %s", cfg.Server.Host)
	}
	if cfg.Addr() != "localhost:3000" {
		t.Errorf("expected addr localhost:3000, got %s", cfg.Addr())
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	tmp := t.TempDir()
	envPath := filepath.Join(tmp, ".env")
	os.WriteFile(envPath, []byte("TMDB_KEY=from-dotenv\nPLEX_TOKEN=from-dotenv\n"), 0644)

	// Already set variables win over the file.
	t.Setenv("PLEX_TOKEN", "from-env")
	os.Unsetenv("TMDB_KEY")

	if err := LoadDotEnv(envPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("TMDB_KEY"); got != "from-dotenv" {
		t.Errorf("expected TMDB_KEY from .env, got %q", got)
	}
	if got := os.Getenv("PLEX_TOKEN"); got != "from-env" {
		t.Errorf("expected PLEX_TOKEN kept, got %q", got)
	}
}

func TestLoadDotEnv_Missing(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
