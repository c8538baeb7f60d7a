// File: compare.go
// Title: Date Comparison
// Description: Orders dates at date or time-stamp precision. A zero time
//              counts as absent: two absent values are equal and a present
//              value sorts before an absent one.
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
)

// CompareDates compares the calendar dates of a and b and returns -1, 0 or 1
func CompareDates(a, b time.Time) int {
	if c, done := compareAbsent(a, b); done {
		return c
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

// CompareTimestamps compares the instants a and b and returns -1, 0 or 1
func CompareTimestamps(a, b time.Time) int {
	if c, done := compareAbsent(a, b); done {
		return c
	}
	return a.Compare(b)
}

func compareAbsent(a, b time.Time) (int, bool) {
	switch {
	case a.IsZero() && b.IsZero():
		return 0, true
	case b.IsZero():
		return -1, true
	case a.IsZero():
		return 1, true
	}
	return 0, false
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// EqualDates reports whether a and b fall on the same calendar date
func EqualDates(a, b time.Time) bool {
	return CompareDates(a, b) == 0
}

// EqualTimestamps reports whether a and b are the same instant
func EqualTimestamps(a, b time.Time) bool {
	return CompareTimestamps(a, b) == 0
}

// Earliest returns a unless b has an earlier date. An absent value sorts
// last, so Earliest(x, absent) is x.
func Earliest(a, b time.Time) time.Time {
	if CompareDates(a, b) <= 0 {
		return a
	}
	return b
}

// Latest returns the value with the later date. If either value is absent
// the other one is returned.
func Latest(a, b time.Time) time.Time {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	if CompareDates(a, b) >= 0 {
		return a
	}
	return b
}

// IsBetweenExclusive reports whether test lies strictly between earlier
// and later; any absent value gives false
func IsBetweenExclusive(earlier, later, test time.Time) bool {
	if earlier.IsZero() || later.IsZero() || test.IsZero() {
		return false
	}
	return test.After(earlier) && test.Before(later)
}

// IsBetweenInclusive reports whether the date of test is neither before
// earlier nor after later. Absent values follow CompareDates: an absent
// later bound admits every test on or after earlier, and three absent
// values are in range.
func IsBetweenInclusive(earlier, later, test time.Time) bool {
	return CompareDates(test, earlier) != -1 && CompareDates(test, later) != 1
}
