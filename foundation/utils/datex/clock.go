// File: clock.go
// Title: Clock Abstraction
// Description: Source of the current instant for the calendar. The system
//              clock is the default; a fixed clock pins "today" for tests
//              and reproducible command runs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package datex

import "time"

// Clock provides the current instant
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	now time.Time
}

// NewFixedClock creates a clock pinned to now
func NewFixedClock(now time.Time) FixedClock {
	return FixedClock{now: now}
}

// Now returns the pinned instant
func (c FixedClock) Now() time.Time {
	return c.now
}
