// ============================================================================
// datex - Calendar date utilities
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from
//              application configuration
// Author:      msto63
// Created:     2025-08-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/datex/foundation/core/log"
	"github.com/msto63/datex/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "text" or "json" (default: text)
	Format string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// FromConfig derives the logger configuration from the application config.
// Verbose forces the debug level unless trace is configured.
func FromConfig(cfg *config.Config, name string, verbose bool) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg != nil {
		lc.Level = cfg.General.LogLevel
		lc.Format = cfg.General.LogFormat
	}
	if verbose && parseLevel(lc.Level) > mdwlog.LevelDebug {
		lc.Level = "debug"
	}
	return lc
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewSimpleLogger creates a text logger at info level on stderr
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// parseLevel converts a string level to mdwlog.Level, defaulting to info
func parseLevel(level string) mdwlog.Level {
	l, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelInfo
	}
	return l
}
