// Package config provides configuration structures and validation for the
// replayer. It handles environment-based configuration for logging, output
// routing and the optional metrics endpoint.
package config

import (
	"errors"
	"strings"
)

// Config holds the complete application configuration. The transaction
// input path is deliberately not here: it is the single positional
// command-line argument, validated by the driver.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Replay      ReplayConfig
	Metrics     MetricsConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ReplayConfig contains replay run configuration
type ReplayConfig struct {
	OutputPath string // Destination for account records; empty means stdout
	Strict     bool   // Abort the run on the first per-record warning
}

// MetricsConfig contains the optional Prometheus endpoint configuration
type MetricsConfig struct {
	Enabled bool
	Port    int // Port to serve /metrics on while the replay runs
}

// validate checks configuration values that can be statically wrong.
func (c *Config) validate() error {
	var validationErrors []string

	if c.Metrics.Enabled && c.Metrics.Port <= 0 {
		validationErrors = append(validationErrors, "METRICS_PORT must be greater than 0")
	}
	if c.Application.Name == "" {
		validationErrors = append(validationErrors, "APP_NAME is required")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
