// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Plex validation
	if c.Plex.URL != "" {
		u, err := url.Parse(c.Plex.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("plex.url: must be an http(s) URL, got %q", c.Plex.URL))
		}
	}

	// Processing validation
	if c.Processing.Parallel < 0 {
		errs = append(errs, fmt.Sprintf("processing.parallel: must be positive, got %d", c.Processing.Parallel))
	}
	if c.Processing.WebhookDelay < 0 {
		errs = append(errs, fmt.Sprintf("processing.webhook_delay: must not be negative, got %s", c.Processing.WebhookDelay))
	}
	if c.Processing.Schedule != "" {
		if _, err := cron.ParseStandard(c.Processing.Schedule); err != nil {
			errs = append(errs, fmt.Sprintf("processing.schedule: %v", err))
		}
	}

	return errs
}
