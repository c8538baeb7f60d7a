// ============================================================================
// datex - Calendar date utilities
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      msto63
// Created:     2025-08-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all datex components
const (
	// Module version
	Module = "0.1.0"

	// Component versions
	Library = "0.1.0"
	CLI     = "0.1.0"
	Config  = "0.1.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/datex/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "library", "datex":
		return Library
	case "cli":
		return CLI
	case "config":
		return Config
	default:
		return Module
	}
}

// Info returns a one-line description of the build
func Info() string {
	return fmt.Sprintf("datex %s (commit %s, built %s, %s)", Module, Commit, BuildDate, runtime.Version())
}
