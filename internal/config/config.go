// Package config handles configuration loading from the environment, an
// optional .env file and an optional TOML file with variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/subosito/gotenv"
)

// Config is the root configuration structure.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Plex       PlexConfig       `toml:"plex"`
	TMDB       TMDBConfig       `toml:"tmdb"`
	Overlays   OverlaysConfig   `toml:"overlays"`
	Processing ProcessingConfig `toml:"processing"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type PlexConfig struct {
	URL            string `toml:"url"`
	Token          string `toml:"token"`
	LibraryID      string `toml:"library_id"`
	ShowsLibraryID string `toml:"shows_library_id"`
	InsecureTLS    bool   `toml:"insecure_tls"`
}

type TMDBConfig struct {
	APIKey string `toml:"api_key"`
}

type OverlaysConfig struct {
	Path string `toml:"path"`
}

type ProcessingConfig struct {
	Parallel     int           `toml:"parallel"`
	WebhookDelay time.Duration `toml:"webhook_delay"`
	Schedule     string        `toml:"schedule"`
}

// Defaults.
const (
	DefaultPort           = 3000
	DefaultLibraryID      = "1"
	DefaultShowsLibraryID = "2"
	DefaultWebhookDelay   = 10 * time.Second
)

// LoadDotEnv exports the variables of a .env file that are not already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	err := gotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("reading %s: %w", path, err)
}

// Load builds the configuration from the TOML file at path (skipped when
// path is empty), then the environment, then defaults, and validates it.
// Returns *ConfigError if any variable is missing or validation fails.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	missing = append(missing, cfg.missingRequired()...)
	errs := cfg.Validate()
	if len(missing) > 0 || len(errs) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation builds the configuration without checking it.
// Unresolved variables are left in place.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	var cfg Config
	var missing []string

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading config: %w", err)
		}

		var content string
		content, missing = substituteEnvVars(string(data))

		if _, err := toml.Decode(content, &cfg); err != nil {
			return nil, nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, nil, err
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

// applyEnv overrides file values with the process environment.
func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString("PLEX_URL", &c.Plex.URL)
	setString("PLEX_TOKEN", &c.Plex.Token)
	setString("TMDB_KEY", &c.TMDB.APIKey)
	setString("LIBRARY_ID", &c.Plex.LibraryID)
	setString("SHOWS_LIBRARY_ID", &c.Plex.ShowsLibraryID)
	setString("OVERLAYS_PATH", &c.Overlays.Path)
	setString("LOG_LEVEL", &c.Server.LogLevel)
	setString("SCAN_SCHEDULE", &c.Processing.Schedule)

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: invalid number %q", v)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("SCAN_PARALLEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCAN_PARALLEL: invalid number %q", v)
		}
		c.Processing.Parallel = n
	}
	if v := os.Getenv("WEBHOOK_DELAY"); v != "" {
		d, err := parseDelay(v)
		if err != nil {
			return fmt.Errorf("WEBHOOK_DELAY: %w", err)
		}
		c.Processing.WebhookDelay = d
	}
	if v := os.Getenv("PLEX_INSECURE_TLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PLEX_INSECURE_TLS: invalid boolean %q", v)
		}
		c.Plex.InsecureTLS = b
	}
	return nil
}

// parseDelay accepts a Go duration ("10s") or a number of seconds ("10").
func parseDelay(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", v)
	}
	return d, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Plex.LibraryID == "" {
		c.Plex.LibraryID = DefaultLibraryID
	}
	if c.Plex.ShowsLibraryID == "" {
		c.Plex.ShowsLibraryID = DefaultShowsLibraryID
	}
	if c.Processing.Parallel == 0 {
		c.Processing.Parallel = 1
	}
	if c.Processing.WebhookDelay == 0 {
		c.Processing.WebhookDelay = DefaultWebhookDelay
	}
	c.Plex.URL = strings.TrimSuffix(c.Plex.URL, "/")
}

// missingRequired lists the environment variables of required settings
// that are still empty.
func (c *Config) missingRequired() []string {
	var missing []string
	if c.Plex.URL == "" {
		missing = append(missing, "PLEX_URL")
	}
	if c.Plex.Token == "" {
		missing = append(missing, "PLEX_TOKEN")
	}
	if c.TMDB.APIKey == "" {
		missing = append(missing, "TMDB_KEY")
	}
	return missing
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces variable references with environment values.
// Unresolved references are left unchanged and reported.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]

		value, ok := os.LookupEnv(name)
		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return result, missing
}
