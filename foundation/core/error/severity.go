// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that the logger can pick
//              an appropriate level when an error is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-08-14 v0.2.0: Mapping updated for the date utility codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input that the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a programming or configuration error
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeInvalidArgument, CodeInvalidPattern,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeParseFailure:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
