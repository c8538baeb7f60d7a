// File: locale.go
// Title: Locale Normalization
// Description: Normalizes locale identifiers such as "de_DE" or "EN-us" to
//              the "de-DE" form used as translation keys.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2025-08-14 v0.2.0: Kept normalization only

package i18n

import "strings"

// NormalizeLocale normalizes a locale string to "language" or
// "language-COUNTRY". Malformed input yields "".
func NormalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return ""
	}
	locale = strings.ReplaceAll(locale, "_", "-")

	parts := strings.Split(locale, "-")
	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}

	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}
	return language
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (language, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}

	language, country, _ = strings.Cut(normalized, "-")
	return language, country
}
