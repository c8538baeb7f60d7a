// File: layout.go
// Title: Date Pattern Layouts
// Description: Compiles letter-based date patterns such as "dd.MM.yyyy"
//              into layouts that format dates and parse text strictly.
//              Compiled layouts are cached by pattern.
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
	"sync"
	"time"

	mdwerror "github.com/msto63/datex/foundation/core/error"
)

type fieldKind int

const (
	kindLiteral fieldKind = iota
	kindYear
	kindMonth
	kindDay
	kindHour
	kindMinute
	kindSecond
)

// maxFieldDigits bounds a greedy numeric field
const maxFieldDigits = 9

var letterKinds = map[byte]fieldKind{
	'y': kindYear,
	'M': kindMonth,
	'd': kindDay,
	'H': kindHour,
	'm': kindMinute,
	's': kindSecond,
}

type token struct {
	kind  fieldKind
	width int
	text  string
}

// Layout is a compiled date pattern
type Layout struct {
	pattern string
	tokens  []token
}

// maxCachedLayouts bounds the layout cache; patterns beyond it are compiled
// on every call
const maxCachedLayouts = 256

// Layout cache for compiled patterns
var (
	layoutCache = make(map[string]*Layout)
	layoutMu    sync.RWMutex
)

// CompileLayout returns the compiled layout for pattern. Unsupported
// pattern letters and unterminated quotes yield an INVALID_PATTERN error.
func CompileLayout(pattern string) (*Layout, error) {
	layoutMu.RLock()
	if l, exists := layoutCache[pattern]; exists {
		layoutMu.RUnlock()
		return l, nil
	}
	layoutMu.RUnlock()

	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	l := &Layout{pattern: pattern, tokens: tokens}

	layoutMu.Lock()
	if len(layoutCache) < maxCachedLayouts {
		layoutCache[pattern] = l
	}
	layoutMu.Unlock()

	return l, nil
}

func invalidPattern(pattern, reason string) error {
	return mdwerror.New("invalid date pattern: "+reason).
		WithCode(mdwerror.CodeInvalidPattern).
		WithOperation("datex.CompileLayout").
		WithDetail("pattern", pattern)
}

func tokenize(pattern string) ([]token, error) {
	if pattern == "" {
		return nil, invalidPattern(pattern, "empty pattern")
	}

	var tokens []token
	addLiteral := func(text string) {
		if n := len(tokens); n > 0 && tokens[n-1].kind == kindLiteral {
			tokens[n-1].text += text
			return
		}
		tokens = append(tokens, token{kind: kindLiteral, text: text})
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				addLiteral("'")
				i += 2
				continue
			}
			var sb strings.Builder
			j := i + 1
			closed := false
			for j < len(pattern) {
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						sb.WriteByte('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				sb.WriteByte(pattern[j])
				j++
			}
			if !closed {
				return nil, invalidPattern(pattern, "unterminated quote")
			}
			if sb.Len() > 0 {
				addLiteral(sb.String())
			}
			i = j + 1
		case isASCIILetter(c):
			kind, ok := letterKinds[c]
			if !ok {
				return nil, invalidPattern(pattern, "unsupported letter "+strconv.Quote(string(c)))
			}
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			tokens = append(tokens, token{kind: kind, width: j - i})
			i = j
		default:
			addLiteral(string(c))
			i++
		}
	}
	return tokens, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Pattern returns the source pattern
func (l *Layout) Pattern() string {
	return l.pattern
}

// Format renders t using the layout. Each field is zero padded to its
// letter count; a two-letter year prints the last two digits.
func (l *Layout) Format(t time.Time) string {
	var sb strings.Builder
	for _, tok := range l.tokens {
		switch tok.kind {
		case kindLiteral:
			sb.WriteString(tok.text)
		case kindYear:
			year := t.Year()
			if tok.width == 2 {
				year = year % 100
			}
			writePadded(&sb, year, tok.width)
		case kindMonth:
			writePadded(&sb, int(t.Month()), tok.width)
		case kindDay:
			writePadded(&sb, t.Day(), tok.width)
		case kindHour:
			writePadded(&sb, t.Hour(), tok.width)
		case kindMinute:
			writePadded(&sb, t.Minute(), tok.width)
		case kindSecond:
			writePadded(&sb, t.Second(), tok.width)
		}
	}
	return sb.String()
}

func writePadded(sb *strings.Builder, value, width int) {
	digits := strconv.Itoa(value)
	for i := len(digits); i < width; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(digits)
}

// Parse reads text strictly: the whole text must be consumed and every
// field must be within range. A two-digit year for a "yy" field is placed
// within 80 years before and 20 years after ref. Fields missing from the
// layout default to 1970-01-01 00:00:00. January 1 of year 1, 00:00 UTC is
// rejected because it equals the zero time.
func (l *Layout) Parse(text string, ref time.Time, loc *time.Location) (time.Time, error) {
	year, month, day := 1970, 1, 1
	hour, minute, second := 0, 0, 0

	pos := 0
	for i, tok := range l.tokens {
		if tok.kind == kindLiteral {
			if !strings.HasPrefix(text[pos:], tok.text) {
				return time.Time{}, l.parseFailure(text, "literal "+strconv.Quote(tok.text)+" expected")
			}
			pos += len(tok.text)
			continue
		}

		abutting := i+1 < len(l.tokens) && l.tokens[i+1].kind != kindLiteral
		limit := maxFieldDigits
		if abutting {
			limit = tok.width
		}
		end := pos
		for end < len(text) && end-pos < limit && text[end] >= '0' && text[end] <= '9' {
			end++
		}
		count := end - pos
		if count == 0 || (abutting && count != tok.width) {
			return time.Time{}, l.parseFailure(text, "digits expected at position "+strconv.Itoa(pos))
		}
		value, err := strconv.Atoi(text[pos:end])
		if err != nil {
			return time.Time{}, l.parseFailure(text, err.Error())
		}
		pos = end

		switch tok.kind {
		case kindYear:
			if tok.width <= 2 && count == 2 {
				value = resolveTwoDigitYear(value, ref)
			}
			year = value
		case kindMonth:
			month = value
		case kindDay:
			day = value
		case kindHour:
			hour = value
		case kindMinute:
			minute = value
		case kindSecond:
			second = value
		}
	}

	if pos != len(text) {
		return time.Time{}, l.parseFailure(text, "unexpected trailing text")
	}

	switch {
	case year < 1:
		return time.Time{}, l.parseFailure(text, "year out of range")
	case month < 1 || month > 12:
		return time.Time{}, l.parseFailure(text, "month out of range")
	case day < 1 || day > DaysIn(year, time.Month(month)):
		return time.Time{}, l.parseFailure(text, "day out of range")
	case hour > 23:
		return time.Time{}, l.parseFailure(text, "hour out of range")
	case minute > 59:
		return time.Time{}, l.parseFailure(text, "minute out of range")
	case second > 59:
		return time.Time{}, l.parseFailure(text, "second out of range")
	}

	parsed := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	// the zero time stands for an absent date
	if parsed.IsZero() {
		return time.Time{}, l.parseFailure(text, "date collides with the absent value")
	}
	return parsed, nil
}

func (l *Layout) parseFailure(text, reason string) error {
	return mdwerror.New("text does not match pattern: "+reason).
		WithCode(mdwerror.CodeParseFailure).
		WithOperation("datex.Layout.Parse").
		WithDetail("pattern", l.pattern).
		WithDetail("text", text)
}

func resolveTwoDigitYear(value int, ref time.Time) int {
	start := ref.Year() - 80
	year := start - start%100 + value
	if year < start {
		year += 100
	}
	return year
}

// DaysIn returns the number of days of month in year
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
