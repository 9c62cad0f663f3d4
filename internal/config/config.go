// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"

	"github.com/okian/fittrack/internal/domain/model"
	"github.com/okian/fittrack/pkg/logger"
)

// Batch error policies.
const (
	OnErrorSkip  = "skip"
	OnErrorAbort = "abort"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// OnError decides what a failing package does to the batch: skip or abort.
	OnError string `koanf:"on_error"`

	// MetricsFile, when set, receives a Prometheus textfile after the batch.
	MetricsFile string `koanf:"metrics_file"`

	// Packages is the batch processed when no input file is given.
	// Empty means the demo batch.
	Packages []model.Package `koanf:"packages"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: logger.FormatText,
		OnError:   OnErrorSkip,
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.OnError {
	case OnErrorSkip, OnErrorAbort:
	default:
		return fmt.Errorf("%w: on_error must be %q or %q, got %q", ErrInvalidConfig, OnErrorSkip, OnErrorAbort, c.OnError)
	}
	switch c.LogFormat {
	case logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: log_format must be %q or %q, got %q", ErrInvalidConfig, logger.FormatText, logger.FormatJSON, c.LogFormat)
	}
	for i, p := range c.Packages {
		if p.Code == "" {
			return fmt.Errorf("%w: packages[%d] has no code", ErrInvalidConfig, i)
		}
	}
	return nil
}
