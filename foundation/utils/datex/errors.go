// File: errors.go
// Title: Error Helpers
// Description: Constructors and predicates for the error kinds returned by
//              the package.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package datex

import (
	mdwerror "github.com/msto63/datex/foundation/core/error"
)

func missingArgument(operation, name string) error {
	return mdwerror.New(name+" is required").
		WithCode(mdwerror.CodeInvalidArgument).
		WithOperation(operation).
		WithDetail("argument", name)
}

// IsInvalidArgument reports whether err was caused by an absent required
// input or an invalid pattern
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) ||
		mdwerror.HasCode(err, mdwerror.CodeInvalidPattern)
}

// IsParseFailure reports whether err means text did not match an exact pattern
func IsParseFailure(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeParseFailure)
}
