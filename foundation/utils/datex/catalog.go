// File: catalog.go
// Title: Date Format Catalog
// Description: Declares the fixed catalogs of textual shapes and parse
//              patterns used to recognise and convert user-entered dates,
//              together with the exported pattern identifiers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package datex

import (
	"regexp"
)

// Pattern identifiers accepted by the formatting and parsing functions
const (
	PatternCompactDMY   = "ddMMyyyy"
	PatternCompactYMD   = "yyyyMMdd"
	PatternDashedDMY    = "dd-MM-yyyy"
	PatternISODate      = "yyyy-MM-dd"
	PatternDottedDMY    = "dd.MM.yyyy"
	PatternGeneral      = "d.M.yyyy"
	PatternShortYMD     = "yyMMdd"
	PatternShortDMY     = "ddMMyy"
	PatternYear         = "yyyy"
	PatternDashedStamp  = "dd-MM-yyyy HH:mm"
	PatternDottedStamp  = "dd.MM.yyyy HH:mm"
	PatternGeneralStamp = "d.M.yyyy HH:mm"
	PatternCompactStamp = "ddMMyyyy HH:mm"

	// DefaultPattern is used when no output pattern is given
	DefaultPattern = PatternGeneral

	// DefaultSeparator is placed between the two dates of a range
	DefaultSeparator = "-"

	// defaultTime is appended to a pure date before time-stamp parsing
	defaultTime = "00:00"
)

// Shape is a textual pre-filter for candidate strings
type Shape struct {
	Name string
	expr *regexp.Regexp
}

// Match reports whether the whole text has the shape
func (s Shape) Match(text string) bool {
	return s.expr.MatchString(text)
}

// String returns the source expression of the shape
func (s Shape) String() string {
	return s.Name
}

func newShape(expr string) Shape {
	return Shape{Name: expr, expr: regexp.MustCompile(`^(?:` + expr + `)$`)}
}

// Catalog holds the ordered shape and pattern lists. It is never modified
// after construction.
type Catalog struct {
	dateShapes    []Shape
	datePatterns  []string
	stampShapes   []Shape
	stampPatterns []string
}

var dateShapeExprs = []string{
	`\d\d[-.]\d\d[-.]\d\d\d\d`,
	`\d[-.]\d\d[-.]\d\d\d\d`,
	`\d\d[-.]\d[-.]\d\d\d\d`,
	`\d[-.]\d[-.]\d\d\d\d`,
	`\d\d\d\d\d\d\d\d`,
}

const timeShapeExpr = `\d\d[:]\d\d`

// NewCatalog builds the standard catalog
func NewCatalog() *Catalog {
	c := &Catalog{
		datePatterns:  []string{PatternDashedDMY, PatternDottedDMY, PatternCompactDMY},
		stampPatterns: []string{PatternDashedStamp, PatternDottedStamp, PatternGeneralStamp, PatternCompactStamp},
	}
	for _, expr := range dateShapeExprs {
		c.dateShapes = append(c.dateShapes, newShape(expr))
		c.stampShapes = append(c.stampShapes, newShape(expr+" "+timeShapeExpr))
	}
	return c
}

var defaultCatalog = NewCatalog()

// DefaultCatalog returns the shared standard catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// DateShapes returns a copy of the date shapes in priority order
func (c *Catalog) DateShapes() []Shape {
	return append([]Shape(nil), c.dateShapes...)
}

// DatePatterns returns a copy of the date parse patterns in priority order
func (c *Catalog) DatePatterns() []string {
	return append([]string(nil), c.datePatterns...)
}

// TimestampShapes returns a copy of the time-stamp shapes in priority order
func (c *Catalog) TimestampShapes() []Shape {
	return append([]Shape(nil), c.stampShapes...)
}

// TimestampPatterns returns a copy of the time-stamp parse patterns in priority order
func (c *Catalog) TimestampPatterns() []string {
	return append([]string(nil), c.stampPatterns...)
}

// DateShapes returns the date shapes of the default catalog
func DateShapes() []Shape {
	return defaultCatalog.DateShapes()
}

// TimestampShapes returns the time-stamp shapes of the default catalog
func TimestampShapes() []Shape {
	return defaultCatalog.TimestampShapes()
}
