// File: boundary.go
// Title: Month and Year Boundaries
// Description: Moves dates to the first or last day of their month or year
//              and checks whether a date is such a boundary.
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

// withDay keeps the time of day of date and replaces its calendar date
func withDay(date time.Time, year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// FirstDayOfMonth returns day 1 of the month of date
func FirstDayOfMonth(date time.Time) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return withDay(date, date.Year(), date.Month(), 1)
}

// LastDayOfMonth returns the last day of the month of date
func LastDayOfMonth(date time.Time) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return withDay(date, date.Year(), date.Month(), DaysIn(date.Year(), date.Month()))
}

// FirstDayOfNextMonth returns day 1 of the month after date
func FirstDayOfNextMonth(date time.Time) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return withDay(date, date.Year(), date.Month()+1, 1)
}

// FirstDayOfNextYear returns January 1 of the year after date
func FirstDayOfNextYear(date time.Time) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return withDay(date, date.Year()+1, time.January, 1)
}

// LastDayOfYear returns December 31 of the year of date
func LastDayOfYear(date time.Time) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return withDay(date, date.Year(), time.December, 31)
}

// FirstDayOfYear returns January 1 of the year of date at midnight. Unlike
// the other boundary functions it fails on an absent date.
func FirstDayOfYear(date time.Time) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, missingArgument("datex.FirstDayOfYear", "date")
	}
	return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location()), nil
}

// IsFirstDayOfMonth reports whether date is day 1 of its month
func IsFirstDayOfMonth(date time.Time) (bool, error) {
	if date.IsZero() {
		return false, missingArgument("datex.IsFirstDayOfMonth", "date")
	}
	return date.Day() == 1, nil
}

// IsFirstDayOfYear reports whether date is January 1
func IsFirstDayOfYear(date time.Time) (bool, error) {
	if date.IsZero() {
		return false, missingArgument("datex.IsFirstDayOfYear", "date")
	}
	return date.YearDay() == 1 && date.Month() == time.January, nil
}

// IsLastDayOfYear reports whether date is December 31
func IsLastDayOfYear(date time.Time) (bool, error) {
	if date.IsZero() {
		return false, missingArgument("datex.IsLastDayOfYear", "date")
	}
	return date.Day() == 31 && date.Month() == time.December, nil
}
