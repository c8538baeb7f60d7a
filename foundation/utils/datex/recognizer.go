// File: recognizer.go
// Title: Date Recognition
// Description: Checks whether text has a known date shape and whether it is
//              a valid calendar date under a specific or any catalog pattern.
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

	"github.com/msto63/datex/foundation/core/log"
)

// IsFormatRecognized reports whether text fully matches any of the shapes.
// Shapes are tried in order and the first match wins.
func IsFormatRecognized(text string, shapes []Shape) bool {
	for _, shape := range shapes {
		if shape.Match(text) {
			return true
		}
	}
	return false
}

// IsDateValidInFormat reports whether text parses strictly under pattern
func (c *Calendar) IsDateValidInFormat(text, pattern string) (bool, error) {
	const op = "datex.IsDateValidInFormat"
	if text == "" {
		return false, missingArgument(op, "text")
	}
	if pattern == "" {
		return false, missingArgument(op, "pattern")
	}

	layout, err := CompileLayout(pattern)
	if err != nil {
		return false, err
	}
	_, err = layout.Parse(text, c.clock.Now(), c.location)
	return err == nil, nil
}

// IsDateValid reports whether text has a date shape and parses under one
// of the catalog's date patterns
func (c *Calendar) IsDateValid(text string) (bool, error) {
	if text == "" {
		return false, missingArgument("datex.IsDateValid", "text")
	}
	if !IsFormatRecognized(text, c.catalog.dateShapes) {
		c.debug("no date shape matched", log.Field("text", text))
		return false, nil
	}
	_, ok := c.firstMatch(text, c.catalog.datePatterns)
	return ok, nil
}

// firstMatch returns the result of the first pattern that parses text
func (c *Calendar) firstMatch(text string, patterns []string) (time.Time, bool) {
	now := c.clock.Now()
	for _, pattern := range patterns {
		layout, err := CompileLayout(pattern)
		if err != nil {
			c.debug("catalog pattern rejected", log.Fields{"pattern": pattern, "reason": err.Error()})
			continue
		}
		parsed, err := layout.Parse(text, now, c.location)
		if err != nil {
			c.debug("pattern did not match", log.Fields{"text": text, "pattern": pattern})
			continue
		}
		c.debug("pattern matched", log.Fields{"text": text, "pattern": pattern})
		return parsed, true
	}
	return time.Time{}, false
}

// IsDateValidInFormat uses the default Calendar
func IsDateValidInFormat(text, pattern string) (bool, error) {
	return std.IsDateValidInFormat(text, pattern)
}

// IsDateValid uses the default Calendar
func IsDateValid(text string) (bool, error) {
	return std.IsDateValid(text)
}
