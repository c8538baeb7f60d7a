// File: doc.go
// Title: Internationalization Package Documentation
// Description: Package i18n loads translation files and resolves message
//              keys for the active locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-14 v0.2.0: fs.FS based loading

/*
Package i18n provides message translation for the datex command line tool.

Translation files live in a file system (usually an embed.FS) and are named
after their locale: "de.toml", "en.yaml". Keys are dotted paths into the
nested tables:

	[info]
	weekday = "Wochentag"
	weekdays = ["Sonntag", "Montag", ...]

Lookup order is the current locale, then the default locale. Values may use
text/template syntax and are rendered with the data passed to T:

	m, err := i18n.New(i18n.Options{DefaultLocale: "de", Files: locales, Dir: "locales"})
	m.T("diff.title", map[string]interface{}{"From": "1.1.2020", "To": "31.1.2020"})
	m.Item("info.weekdays", int(date.Weekday()))

A missing key renders as "[key]" so gaps show up in the output instead of
failing the command.
*/
package i18n
