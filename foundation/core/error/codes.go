// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the datex packages. Codes let
//              callers tell a contract violation (missing argument) apart from
//              a value that simply did not match a requested pattern.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-14 v0.2.0: Reduced to the codes used by the date utilities

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Argument and parsing
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeParseFailure    Code = "PARSE_FAILURE"
	CodeInvalidPattern  Code = "INVALID_PATTERN"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeInvalidArgument, CodeParseFailure, CodeInvalidPattern,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeInvalidPattern:
		return "contract"
	case CodeParseFailure:
		return "parsing"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status used by the CLI for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidArgument, CodeInvalidPattern:
		return 2
	case CodeParseFailure:
		return 3
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 4
	default:
		return 1
	}
}
