// File: converter.go
// Title: Date Conversion
// Description: Formats dates and date ranges and parses text into dates,
//              either under an exact pattern or by searching the catalog.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package datex

import (
	"strconv"
	"strings"
	"time"

	"github.com/msto63/datex/foundation/core/log"
)

// FormatDate renders date with pattern. A zero date or an invalid pattern
// gives an empty string; an empty pattern means DefaultPattern.
func FormatDate(date time.Time, pattern string) string {
	if date.IsZero() {
		return ""
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	layout, err := CompileLayout(pattern)
	if err != nil {
		return ""
	}
	return layout.Format(date)
}

// FormatRange renders "<date1> <separator> <date2>". A zero date leaves its
// segment empty; a blank separator means DefaultSeparator. An invalid
// pattern yields an INVALID_PATTERN error.
func FormatRange(date1, date2 time.Time, separator, pattern string) (string, error) {
	if pattern == "" {
		return "", missingArgument("datex.FormatRange", "pattern")
	}
	layout, err := CompileLayout(pattern)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(separator) == "" {
		separator = DefaultSeparator
	}
	return formatAbsent(layout, date1) + " " + separator + " " + formatAbsent(layout, date2), nil
}

func formatAbsent(layout *Layout, date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return layout.Format(date)
}

// ParseInFormat parses text strictly under pattern and keeps any time
// fields the pattern captures
func (c *Calendar) ParseInFormat(text, pattern string) (time.Time, error) {
	const op = "datex.ParseInFormat"
	if text == "" {
		return time.Time{}, missingArgument(op, "text")
	}
	if pattern == "" {
		return time.Time{}, missingArgument(op, "pattern")
	}

	layout, err := CompileLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return layout.Parse(text, c.clock.Now(), c.location)
}

// ParseDate recognises text by the catalog's date shapes and parses it with
// the first matching date pattern. The result is at midnight; a zero time
// means the text was not recognised.
func (c *Calendar) ParseDate(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, missingArgument("datex.ParseDate", "text")
	}
	if !IsFormatRecognized(text, c.catalog.dateShapes) {
		c.debug("no date shape matched", log.Field("text", text))
		return time.Time{}, nil
	}
	parsed, ok := c.firstMatch(text, c.catalog.datePatterns)
	if !ok {
		return time.Time{}, nil
	}
	return c.dateOnly(parsed), nil
}

// RepairIncomplete replaces a zero day or month in dotted text by 1 and
// parses the result with ParseDate
func (c *Calendar) RepairIncomplete(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, missingArgument("datex.RepairIncomplete", "text")
	}

	parts := strings.Split(text, ".")
	for i := 0; i < len(parts) && i < 2; i++ {
		if n, err := strconv.Atoi(parts[i]); err == nil && n == 0 {
			parts[i] = "1"
		}
	}
	repaired := strings.Join(parts, ".")
	if repaired != text {
		c.debug("repaired incomplete date", log.Fields{"text": text, "repaired": repaired})
	}
	return c.ParseDate(repaired)
}

// ParseTimestamp parses text with the catalog's time-stamp patterns. A pure
// date is read as midnight. A zero time means the text was not recognised.
func (c *Calendar) ParseTimestamp(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, missingArgument("datex.ParseTimestamp", "text")
	}
	if IsFormatRecognized(text, c.catalog.dateShapes) {
		text += " " + defaultTime
	}
	if !IsFormatRecognized(text, c.catalog.stampShapes) {
		c.debug("no time-stamp shape matched", log.Field("text", text))
		return time.Time{}, nil
	}
	parsed, _ := c.firstMatch(text, c.catalog.stampPatterns)
	return parsed, nil
}

// ParseBasicISODate parses "yyyyMMdd" text and returns the zero time on
// any failure
func (c *Calendar) ParseBasicISODate(text string) time.Time {
	if text == "" {
		return time.Time{}
	}
	parsed, err := c.ParseInFormat(text, PatternCompactYMD)
	if err != nil {
		c.debug("basic ISO date rejected", log.Field("text", text))
		return time.Time{}
	}
	return parsed
}

// YearsDescending lists the years from to down to from
func YearsDescending(from, to int) []int {
	if from > to {
		return nil
	}
	years := make([]int, 0, to-from+1)
	for year := to; year >= from; year-- {
		years = append(years, year)
	}
	return years
}

// ParseInFormat uses the default Calendar
func ParseInFormat(text, pattern string) (time.Time, error) {
	return std.ParseInFormat(text, pattern)
}

// ParseDate uses the default Calendar
func ParseDate(text string) (time.Time, error) {
	return std.ParseDate(text)
}

// RepairIncomplete uses the default Calendar
func RepairIncomplete(text string) (time.Time, error) {
	return std.RepairIncomplete(text)
}

// ParseTimestamp uses the default Calendar
func ParseTimestamp(text string) (time.Time, error) {
	return std.ParseTimestamp(text)
}

// ParseBasicISODate uses the default Calendar
func ParseBasicISODate(text string) time.Time {
	return std.ParseBasicISODate(text)
}
