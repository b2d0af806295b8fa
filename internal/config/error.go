// internal/config/error.go
package config

import (
	"fmt"
	"strings"
)

// requiredVars describes the settings Load refuses to run without.
var requiredVars = map[string]string{
	"PLEX_URL":   "Plex server URL, e.g. http://192.168.1.10:32400",
	"PLEX_TOKEN": "Plex authentication token",
	"TMDB_KEY":   "TMDB API key from themoviedb.org",
}

// ConfigError reports every missing or invalid setting found by Load.
type ConfigError struct {
	Path    string   // Config file path, empty when running from the environment only
	Missing []string // Unset variables, optionally "NAME: hint"
	Errors  []string // Validation errors
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "config %s:\n", e.Path)
	} else {
		b.WriteString("no config file found, reading settings from the environment only:\n")
	}

	if len(e.Missing) > 0 {
		b.WriteString("missing settings:\n")
		for _, name := range e.Missing {
			if desc, ok := requiredVars[name]; ok {
				fmt.Fprintf(&b, "  - %s (%s)\n", name, desc)
			} else {
				fmt.Fprintf(&b, "  - %s\n", name)
			}
		}
		if e.Path != "" {
			fmt.Fprintf(&b, "export them or define them in %s\n", e.Path)
		} else {
			b.WriteString("export them, add them to .env, or run 'rustizarr init' to create a config file\n")
		}
	}

	if len(e.Errors) > 0 {
		b.WriteString("invalid settings:\n")
		for _, err := range e.Errors {
			b.WriteString("  - " + err + "\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// HasErrors reports whether anything is missing or invalid.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
