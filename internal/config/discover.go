// internal/config/discover.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "rustizarr", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. RUSTIZARR_CONFIG environment variable
//  2. ./config.toml (current directory)
//  3. $XDG_CONFIG_HOME/rustizarr/config.toml
//  4. /etc/rustizarr/config.toml
func Discover() (string, error) {
	// 1. Check RUSTIZARR_CONFIG env var
	if envPath := os.Getenv("RUSTIZARR_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("RUSTIZARR_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./config.toml",
		DefaultPath(),
		"/etc/rustizarr/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

// Resolve returns the explicit path if set, else the discovered one.
// The TOML file is optional: an empty path means environment only.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	path, err := Discover()
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return path, err
}
