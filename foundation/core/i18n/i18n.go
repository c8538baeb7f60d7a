// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the Manager that loads translation files in TOML
//              or YAML from a file system and resolves dotted keys with
//              template interpolation and fallback to the default locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-14 v0.2.0: Load from fs.FS, list values for weekday and month names

package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/datex/foundation/core/error"
)

// Format represents the language file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML files
	FormatTOML

	// FormatYAML represents YAML files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// formatOf maps a file extension to a format
func formatOf(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return FormatAuto, false
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // e.g. "de"
	Files         fs.FS  // file system holding <locale>.toml or <locale>.yaml
	Dir           string // directory inside Files, "." if empty
	Format        Format // restricts the accepted files, FormatAuto accepts both
}

// TranslationData represents the structure of a translation file
type TranslationData map[string]interface{}

// Manager manages translations for an application
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	translations  map[string]TranslationData
	templates     map[string]*template.Template
}

// New loads every locale file from options.Files and returns a Manager set
// to the default locale
func New(options Options) (*Manager, error) {
	const op = "i18n.New"

	defaultLocale := NormalizeLocale(options.DefaultLocale)
	if defaultLocale == "" {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation(op)
	}
	if options.Files == nil {
		return nil, mdwerror.New("no translation files given").
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation(op)
	}
	if options.Dir == "" {
		options.Dir = "."
	}

	m := &Manager{
		defaultLocale: defaultLocale,
		currentLocale: defaultLocale,
		translations:  make(map[string]TranslationData),
		templates:     make(map[string]*template.Template),
	}

	if err := m.loadAll(options); err != nil {
		return nil, mdwerror.Wrap(err, "failed to load locales").WithOperation(op)
	}
	if _, ok := m.translations[defaultLocale]; !ok {
		return nil, mdwerror.New(fmt.Sprintf("default locale %q not found", defaultLocale)).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation(op).
			WithDetail("locale", defaultLocale)
	}
	return m, nil
}

// loadAll parses every supported file of the directory
func (m *Manager) loadAll(options Options) error {
	entries, err := fs.ReadDir(options.Files, options.Dir)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read locales directory").
			WithCode(mdwerror.CodeMissingConfig).
			WithDetail("directory", options.Dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		format, ok := formatOf(name)
		if !ok || (options.Format != FormatAuto && options.Format != format) {
			continue
		}
		locale := NormalizeLocale(strings.TrimSuffix(name, path.Ext(name)))
		if locale == "" {
			continue
		}

		content, err := fs.ReadFile(options.Files, path.Join(options.Dir, name))
		if err != nil {
			return mdwerror.Wrap(err, "failed to read locale file").
				WithCode(mdwerror.CodeConfigError).
				WithDetail("file", name)
		}
		data, err := parse(content, format)
		if err != nil {
			return mdwerror.Wrap(err, "failed to parse locale file").
				WithCode(mdwerror.CodeInvalidConfig).
				WithDetail("file", name)
		}
		m.translations[locale] = data
	}
	return nil
}

func parse(content []byte, format Format) (TranslationData, error) {
	data := make(TranslationData)
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &data)
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		err = fmt.Errorf("unsupported format %s", format)
	}
	return data, err
}

// T translates a key with optional template data. A missing key renders
// as "[key]".
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return "[" + key + "]"
	}
	return translation
}

// TryT translates a key and returns an error if translation fails
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	raw := m.lookup(key)
	m.mu.RUnlock()

	translation, ok := raw.(string)
	if !ok || translation == "" {
		return "", mdwerror.New("translation not found").
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("i18n.TryT").
			WithDetail("key", key)
	}

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.render(key, translation, data[0])
		if err != nil {
			return translation, mdwerror.Wrap(err, "template rendering failed").
				WithCode(mdwerror.CodeInternal).
				WithOperation("i18n.TryT")
		}
		return rendered, nil
	}
	return translation, nil
}

// Item returns element i of a list value such as weekday or month names,
// or "[key.i]" when the list or element is missing
func (m *Manager) Item(key string, i int) string {
	m.mu.RLock()
	raw := m.lookup(key)
	m.mu.RUnlock()

	if list, ok := raw.([]interface{}); ok && i >= 0 && i < len(list) {
		return fmt.Sprint(list[i])
	}
	return fmt.Sprintf("[%s.%d]", key, i)
}

// lookup resolves a dotted key in the current locale, then in the default
// locale. Callers hold mu.
func (m *Manager) lookup(key string) interface{} {
	if value := nestedValue(m.translations[m.currentLocale], key); value != nil {
		return value
	}
	if m.currentLocale != m.defaultLocale {
		return nestedValue(m.translations[m.defaultLocale], key)
	}
	return nil
}

// nestedValue retrieves a value using dot notation
func nestedValue(data map[string]interface{}, key string) interface{} {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			return value
		}

		switch next := value.(type) {
		case map[string]interface{}:
			current = next
		case TranslationData:
			current = next
		default:
			return nil
		}
	}
	return nil
}

func (m *Manager) render(key, text string, data map[string]interface{}) (string, error) {
	m.mu.Lock()
	tmpl, ok := m.templates[m.currentLocale+":"+key]
	if !ok {
		var err error
		tmpl, err = template.New(key).Parse(text)
		if err != nil {
			m.mu.Unlock()
			return text, err
		}
		m.templates[m.currentLocale+":"+key] = tmpl
	}
	m.mu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, err
	}
	return result.String(), nil
}

// SetLocale switches the current locale. "de-DE" falls back to "de" when
// only the language is available.
func (m *Manager) SetLocale(locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	resolved, ok := m.resolve(locale)
	if !ok {
		return mdwerror.New(fmt.Sprintf("locale %q not available", locale)).
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("i18n.SetLocale").
			WithDetail("available", strings.Join(m.locales(), ","))
	}
	m.currentLocale = resolved
	return nil
}

// HasLocale checks whether a locale or its language is loaded
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.resolve(locale)
	return ok
}

func (m *Manager) resolve(locale string) (string, bool) {
	normalized := NormalizeLocale(locale)
	if _, ok := m.translations[normalized]; ok {
		return normalized, true
	}
	language, _ := SplitLocale(normalized)
	if _, ok := m.translations[language]; ok {
		return language, true
	}
	return "", false
}

// CurrentLocale returns the active locale
func (m *Manager) CurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// DefaultLocale returns the fallback locale
func (m *Manager) DefaultLocale() string {
	return m.defaultLocale
}

// AvailableLocales returns the loaded locales in sorted order
func (m *Manager) AvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.locales()
}

func (m *Manager) locales() []string {
	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}
