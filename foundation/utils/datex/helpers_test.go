// File: helpers_test.go
// Title: Shared Test Helpers
// Description: Fixed calendar and date constructors used across the
//              package tests.
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

// referenceNow is the pinned "now" of the test calendar
var referenceNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func testCalendar(opts ...Option) *Calendar {
	base := []Option{WithLocation(time.UTC), WithClock(NewFixedClock(referenceNow))}
	return New(append(base, opts...)...)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func stamp(year, month, day, hour, minute, second int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}
