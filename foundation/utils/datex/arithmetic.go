// File: arithmetic.go
// Title: Calendar Arithmetic
// Description: Adds calendar units to dates, measures the distance between
//              dates and reads individual date fields.
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

// ===============================
// Adding Units
// ===============================

// AddDays adds n calendar days
func AddDays(date time.Time, n int) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, missingArgument("datex.AddDays", "date")
	}
	return date.AddDate(0, 0, n), nil
}

// AddOneDay adds a single calendar day
func AddOneDay(date time.Time) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, missingArgument("datex.AddOneDay", "date")
	}
	return date.AddDate(0, 0, 1), nil
}

// AddMonths adds n months. Overflowing days roll into the following month,
// so January 31 plus one month is in March.
func AddMonths(date time.Time, n int) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return date.AddDate(0, n, 0)
}

// AddYears adds n years. February 29 plus one year is March 1.
func AddYears(date time.Time, n int) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return date.AddDate(n, 0, 0)
}

// AddMinutes adds n minutes
func AddMinutes(date time.Time, n int) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return date.Add(time.Duration(n) * time.Minute)
}

// AddSeconds adds n seconds
func AddSeconds(date time.Time, n int) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return date.Add(time.Duration(n) * time.Second)
}

// AddMinutesAndSeconds adds minutes as minutes and then the same minutes
// value again as seconds. The seconds argument is not applied.
func AddMinutesAndSeconds(date time.Time, minutes, seconds int) time.Time {
	return AddSeconds(AddMinutes(date, minutes), minutes)
}

// ===============================
// Differences
// ===============================

// DiffInDays returns the whole days from a to b, counted on the calendar
// dates; negative when b is before a
func DiffInDays(a, b time.Time) (int, error) {
	if a.IsZero() || b.IsZero() {
		return 0, missingArgument("datex.DiffInDays", "date")
	}
	return int(civilDate(b).Sub(civilDate(a)) / (24 * time.Hour)), nil
}

// civilDate maps the calendar date of t to midnight UTC, so daylight
// saving transitions do not shorten a day
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DiffInMonths counts month boundaries between a and b regardless of
// their order; the day of month is ignored
func DiffInMonths(a, b time.Time) (int, error) {
	if a.IsZero() || b.IsZero() {
		return 0, missingArgument("datex.DiffInMonths", "date")
	}
	earlier, later := a, b
	if later.Before(earlier) {
		earlier, later = later, earlier
	}
	return (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month()), nil
}

// DiffInYears reads the absolute elapsed milliseconds between a and b as
// an instant after the Unix epoch in a's time zone and returns its year
// minus 1970. It approximates and does not count year boundaries; in zones
// west of UTC a difference below one day yields -1.
func DiffInYears(a, b time.Time) (int, error) {
	if a.IsZero() || b.IsZero() {
		return 0, missingArgument("datex.DiffInYears", "date")
	}
	ms := b.Sub(a).Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	return time.UnixMilli(ms).In(a.Location()).Year() - 1970, nil
}

// ===============================
// Field Access
// ===============================

// YearOf returns the year of date
func YearOf(date time.Time) int {
	return date.Year()
}

// MonthOf returns the month of date, 1 to 12
func MonthOf(date time.Time) int {
	return int(date.Month())
}

// DayOfMonth returns the day of month of date
func DayOfMonth(date time.Time) int {
	return date.Day()
}
