// Package ios mutates the artifacts of a generated iOS project so the app
// declares a specific set of supported locales: the project model gains
// known regions and a Localizable.strings variant group, per-locale .lproj
// catalogs are created on disk, and the Info.plist records the locale set.
package ios

import "errors"

// Sentinel errors for the ios package.
var (
	// ErrMalformedPlist indicates the property list has no dictionary to
	// write entries into.
	ErrMalformedPlist = errors.New("property list has no <dict> element")
)
