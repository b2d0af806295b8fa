// internal/config/write.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// ErrConfigExists is returned instead of replacing an existing config file.
var ErrConfigExists = errors.New("config file already exists")

const resolvedHeader = "# rustizarr settings resolved from the environment.\n" +
	"# Holds the Plex token and TMDB key in clear text.\n\n"

// WriteTemplate writes the example config, whose Plex and TMDB secrets are
// ${VAR} references resolved at load time.
func WriteTemplate(path string) error {
	f, err := createConfig(path)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f, defaultConfig)
	return closeConfig(f, err)
}

// WriteResolved writes the config as loaded, secrets included.
func (c *Config) WriteResolved(path string) error {
	f, err := createConfig(path)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, resolvedHeader); err != nil {
		return closeConfig(f, err)
	}
	return closeConfig(f, toml.NewEncoder(f).Encode(c))
}

// createConfig opens a new owner-only file, creating its directory.
func createConfig(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrConfigExists)
	}
	if err != nil {
		return nil, fmt.Errorf("creating config: %w", err)
	}
	return f, nil
}

func closeConfig(f *os.File, err error) error {
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("writing %s: %w", f.Name(), err)
	}
	return nil
}
