// Package datex recognises, parses, formats and computes with calendar dates
// entered in the day-first notations used in German-speaking business
// software.
//
// Package: datex
// Title: Calendar Date Utilities for Go
// Description: This package provides a fixed catalog of accepted date and
//              time-stamp notations, strict validation and parsing against
//              that catalog or an explicit pattern, formatting of single
//              dates and date ranges, calendar arithmetic, month and year
//              boundaries and an injectable clock for "today".
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation
//
// Package Overview:
//
// # Absent Values
//
// The zero time.Time stands for an absent date and the empty string for an
// absent text or pattern. Functions that require a value return an error
// with code INVALID_ARGUMENT when it is absent; functions that search the
// catalog report "not recognised" as false or as the zero time, never as an
// error.
//
// # Patterns
//
// Patterns use letters for fields and treat other characters as literals:
//
//	y  year        M  month (1-12)   d  day of month
//	H  hour (0-23) m  minute         s  second
//	'...' quoted literal, '' a single quote
//
// Parsing is strict. The whole text must match, fields must be within
// range and February 29 exists only in leap years. A field that is directly
// followed by another field reads exactly as many digits as it has letters;
// otherwise it reads one or more digits, so "1-1-2020" is valid for
// "dd-MM-yyyy". A "yy" year of two digits is placed within 80 years before
// and 20 years after today.
//
// # Catalog
//
// The catalog accepts dates shaped like 31.12.2020, 1-2-2020 or 31122020
// and time stamps that add " HH:mm". Date patterns are tried in the order
// dd-MM-yyyy, dd.MM.yyyy, ddMMyyyy and the first successful one wins.
//
// # Calendar and Clock
//
// A Calendar carries the catalog, a Clock, a time zone and an optional
// logger. The package-level functions use a default Calendar with the
// system clock and time.Local. Tests and reproducible runs pin the current
// date with a FixedClock:
//
//	cal := datex.New(
//		datex.WithClock(datex.NewFixedClock(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))),
//		datex.WithLocation(time.UTC),
//	)
//	today := cal.Today()
//
// # Usage Examples
//
//	ok, err := datex.IsDateValid("29.02.2020")          // true, nil
//	d, err := datex.ParseInFormat("2020-02-29", "yyyy-MM-dd")
//	s := datex.FormatDate(d, "")                         // "29.2.2020"
//	r, err := datex.FormatRange(from, to, "", "dd.MM.yyyy") // "01.01.2020 - 31.01.2020"
//	n, err := datex.DiffInDays(from, to)                 // 30
//	last := datex.LastDayOfMonth(d)                      // 29.02.2020
//
// Values convert to and from pgtype.Date for storage with pgx through
// ToPgDate and FromPgDate.
package datex
