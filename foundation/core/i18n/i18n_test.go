// File: i18n_test.go
// Title: Internationalization Module Tests
// Description: Tests for TOML/YAML loading, key lookup with fallback,
//              list values, templates and locale handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-08-14 v0.2.0: fs.FS based fixtures

package i18n

import (
	"testing"
	"testing/fstest"

	mdwerror "github.com/msto63/datex/foundation/core/error"
)

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"locales/de.toml": {Data: []byte(`
[info]
weekday = "Wochentag"
weekdays = ["Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"]
only_german = "nur deutsch"

[diff]
title = "{{.From}} bis {{.To}}"
`)},
		"locales/en.yaml": {Data: []byte(`
info:
  weekday: Weekday
  weekdays: [Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday]
diff:
  title: "{{.From}} to {{.To}}"
`)},
		"locales/README.md": {Data: []byte("not a locale")},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Options{DefaultLocale: "de", Files: testFiles(), Dir: "locales"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNew(t *testing.T) {
	t.Run("loads toml and yaml", func(t *testing.T) {
		m := newTestManager(t)
		locales := m.AvailableLocales()
		if len(locales) != 2 || locales[0] != "de" || locales[1] != "en" {
			t.Errorf("AvailableLocales() = %v, want [de en]", locales)
		}
		if m.CurrentLocale() != "de" || m.DefaultLocale() != "de" {
			t.Errorf("locale = %s/%s, want de/de", m.CurrentLocale(), m.DefaultLocale())
		}
	})

	t.Run("format restriction", func(t *testing.T) {
		m, err := New(Options{DefaultLocale: "de", Files: testFiles(), Dir: "locales", Format: FormatTOML})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if m.HasLocale("en") {
			t.Error("yaml locale loaded despite FormatTOML")
		}
	})

	tests := []struct {
		name    string
		options Options
		code    mdwerror.Code
	}{
		{"empty default locale", Options{Files: testFiles(), Dir: "locales"}, mdwerror.CodeInvalidArgument},
		{"no files", Options{DefaultLocale: "de"}, mdwerror.CodeInvalidArgument},
		{"missing directory", Options{DefaultLocale: "de", Files: testFiles(), Dir: "nowhere"}, mdwerror.CodeMissingConfig},
		{"missing default locale", Options{DefaultLocale: "fr", Files: testFiles(), Dir: "locales"}, mdwerror.CodeMissingConfig},
		{"broken file", Options{DefaultLocale: "de", Files: fstest.MapFS{"de.toml": {Data: []byte("[info")}}}, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.options)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error code = %s, want %s", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestManager_T(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name     string
		locale   string
		key      string
		data     map[string]interface{}
		expected string
	}{
		{"german", "de", "info.weekday", nil, "Wochentag"},
		{"english", "en", "info.weekday", nil, "Weekday"},
		{"fallback to default", "en", "info.only_german", nil, "nur deutsch"},
		{"template", "en", "diff.title", map[string]interface{}{"From": "a", "To": "b"}, "a to b"},
		{"template german", "de", "diff.title", map[string]interface{}{"From": "a", "To": "b"}, "a bis b"},
		{"missing key", "de", "info.nothing", nil, "[info.nothing]"},
		{"table is not a message", "de", "info", nil, "[info]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.SetLocale(tt.locale); err != nil {
				t.Fatalf("SetLocale(%q) error = %v", tt.locale, err)
			}
			if got := m.T(tt.key, tt.data); got != tt.expected {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestManager_TryT(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.TryT("missing.key"); !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("TryT(missing) error = %v, want INVALID_ARGUMENT", err)
	}
	got, err := m.TryT("info.weekday")
	if err != nil || got != "Wochentag" {
		t.Errorf("TryT(info.weekday) = %q, %v", got, err)
	}
}

func TestManager_Item(t *testing.T) {
	m := newTestManager(t)

	if got := m.Item("info.weekdays", 4); got != "Donnerstag" {
		t.Errorf("Item(4) = %q, want Donnerstag", got)
	}
	if err := m.SetLocale("en_US"); err != nil {
		t.Fatalf("SetLocale(en_US) error = %v", err)
	}
	if got := m.Item("info.weekdays", 0); got != "Sunday" {
		t.Errorf("Item(0) = %q, want Sunday", got)
	}
	if got := m.Item("info.weekdays", 7); got != "[info.weekdays.7]" {
		t.Errorf("Item(7) = %q", got)
	}
	if got := m.Item("info.weekday", 0); got != "[info.weekday.0]" {
		t.Errorf("Item on a string = %q", got)
	}
}

func TestManager_SetLocale(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetLocale("EN-gb"); err != nil {
		t.Errorf("SetLocale(EN-gb) error = %v", err)
	}
	if m.CurrentLocale() != "en" {
		t.Errorf("CurrentLocale() = %q, want en", m.CurrentLocale())
	}

	err := m.SetLocale("fr")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("SetLocale(fr) error = %v, want INVALID_ARGUMENT", err)
	}
	if m.CurrentLocale() != "en" {
		t.Error("failed SetLocale changed the current locale")
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"de", "de"},
		{"de_DE", "de-DE"},
		{"EN-us", "en-US"},
		{" en ", "en"},
		{"english", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeLocale(tt.input); got != tt.expected {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}

	language, country := SplitLocale("de_AT")
	if language != "de" || country != "AT" {
		t.Errorf("SplitLocale(de_AT) = %q, %q", language, country)
	}
}
