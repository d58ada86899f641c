// Package locales defines the locale list handled by the injection pipeline
// and the single derivation of the metadata string written to both platform
// stores. Locale identifiers are opaque, ordered strings: no deduplication,
// no case folding, and no tag validation happens here or anywhere downstream.
package locales

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLocale is the base locale assumed when the caller supplies none.
const DefaultLocale = "en"

// Normalize returns a non-empty ordered locale list. A nil or empty input
// defaults to the base locale; otherwise the input is copied verbatim,
// preserving order and duplicates.
func Normalize(list []string) []string {
	if len(list) == 0 {
		return []string{DefaultLocale}
	}
	return slices.Clone(list)
}

// MetadataValue returns the comma-joined rendering of the locale list.
// Both the iOS property list and the Android manifest meta-data are written
// from this one derivation so the two copies cannot diverge.
func MetadataValue(list []string) string {
	return strings.Join(list, ",")
}

// DisplayName returns a best-effort English name for a locale identifier
// (e.g. "fr-CA" -> "Canadian French"). Unparseable identifiers yield an
// empty string; they are never rejected.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}
