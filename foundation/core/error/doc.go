// Package error provides structured error handling for the datex packages.
//
// Package: error
// Title: Structured Errors
// Description: Errors carry a Code, a Severity, the failing operation and
//              key/value details. Codes distinguish contract violations
//              (INVALID_ARGUMENT) from values that did not match a requested
//              pattern (PARSE_FAILURE).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-14 v0.2.0: Codes for argument and parse failures
//
// Usage:
//
//	import mdwerror "github.com/msto63/datex/foundation/core/error"
//
//	err := mdwerror.New("date string is mandatory").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("ParseDate")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// programming error, fail fast
//	}
package error
