package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every discovery location at empty directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("RUSTIZARR_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Contains(t, DefaultPath(), filepath.Join(".config", "rustizarr", "config.toml"))

	t.Setenv("XDG_CONFIG_HOME", "/srv/conf")
	assert.Equal(t, "/srv/conf/rustizarr/config.toml", DefaultPath())
}

func TestDiscover_EnvVariable(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "plex-posters.toml")
	writeFile(t, path, "[plex]\n")
	t.Setenv("RUSTIZARR_CONFIG", path)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvVariableMissingFile(t *testing.T) {
	isolate(t)
	t.Setenv("RUSTIZARR_CONFIG", "/nonexistent/rustizarr.toml")

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RUSTIZARR_CONFIG")
}

func TestDiscover_WorkingDirectoryFirst(t *testing.T) {
	isolate(t)
	writeFile(t, "config.toml", "[server]\n")
	writeFile(t, DefaultPath(), "[server]\n")

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "./config.toml", got)
}

func TestDiscover_UserConfigDir(t *testing.T) {
	isolate(t)
	writeFile(t, DefaultPath(), "[server]\n")

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, DefaultPath(), got)
}

func TestDiscover_NotFound(t *testing.T) {
	isolate(t)
	if _, err := os.Stat("/etc/rustizarr/config.toml"); err == nil {
		t.Skip("system config present")
	}

	_, err := Discover()
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "./config.toml")
}

func TestResolve(t *testing.T) {
	isolate(t)

	got, err := Resolve("/opt/rustizarr.toml")
	require.NoError(t, err)
	assert.Equal(t, "/opt/rustizarr.toml", got, "explicit path is not checked")

	got, err = Resolve("")
	require.NoError(t, err)
	assert.Empty(t, got, "no file means environment only")

	writeFile(t, "config.toml", "[server]\n")
	got, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "./config.toml", got)
}
