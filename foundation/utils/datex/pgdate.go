// File: pgdate.go
// Title: PostgreSQL Date Conversion
// Description: Converts between dates and pgtype.Date values used when
//              dates are stored in or read from PostgreSQL through pgx.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package datex

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ToPgDate converts date to a pgtype.Date; the zero time becomes NULL
func ToPgDate(date time.Time) pgtype.Date {
	if date.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: date, Valid: true}
}

// FromPgDate converts a pgtype.Date to a date. NULL and the infinity
// values become the zero time.
func FromPgDate(date pgtype.Date) time.Time {
	if !date.Valid || date.InfinityModifier != pgtype.Finite {
		return time.Time{}
	}
	return date.Time
}
