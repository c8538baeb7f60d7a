// File: calendar.go
// Title: Calendar Context
// Description: The Calendar bundles the format catalog, the clock, the time
//              zone and an optional logger. Recognition and conversion run
//              against a Calendar; package-level functions use a default
//              Calendar built on the system clock and local time zone.
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

// Calendar is immutable after construction and safe for concurrent use
type Calendar struct {
	catalog  *Catalog
	clock    Clock
	location *time.Location
	logger   *log.Logger
}

// Option configures a Calendar
type Option func(*Calendar)

// WithClock sets the source of the current date
func WithClock(clock Clock) Option {
	return func(c *Calendar) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLocation sets the time zone of parsed and constructed dates
func WithLocation(location *time.Location) Option {
	return func(c *Calendar) {
		if location != nil {
			c.location = location
		}
	}
}

// WithLogger enables debug logging of catalog attempts
func WithLogger(logger *log.Logger) Option {
	return func(c *Calendar) {
		c.logger = logger
	}
}

// WithCatalog replaces the standard catalog
func WithCatalog(catalog *Catalog) Option {
	return func(c *Calendar) {
		if catalog != nil {
			c.catalog = catalog
		}
	}
}

// New creates a Calendar. Without options it uses the standard catalog,
// the system clock and the local time zone.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		catalog:  defaultCatalog,
		clock:    SystemClock{},
		location: time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var std = New()

// Default returns the Calendar behind the package-level functions
func Default() *Calendar {
	return std
}

// Catalog returns the catalog in use
func (c *Calendar) Catalog() *Catalog {
	return c.catalog
}

// Clock returns the clock in use
func (c *Calendar) Clock() Clock {
	return c.clock
}

// Location returns the time zone in use
func (c *Calendar) Location() *time.Location {
	return c.location
}

// Today returns the clock's current date at midnight
func (c *Calendar) Today() time.Time {
	return c.dateOnly(c.clock.Now())
}

// NewDate builds a date at midnight; month is 1-based and out-of-range
// fields are normalized by the calendar.
func (c *Calendar) NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, c.location)
}

func (c *Calendar) dateOnly(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

func (c *Calendar) debug(message string, fields log.Fields) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(message, fields)
}

// Today returns the current date of the default Calendar
func Today() time.Time {
	return std.Today()
}

// NewDate builds a date in the default Calendar
func NewDate(year, month, day int) time.Time {
	return std.NewDate(year, month, day)
}
