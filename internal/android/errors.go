// Package android mutates the artifacts of a generated Android project so
// the application declares a specific set of supported locales: the manifest
// gains a locale-config reference and metadata entry, the app build script
// gains a resourceConfigurations declaration, and a locales_config.xml
// resource file is written under res/xml.
package android

import "errors"

// Sentinel errors for the android package.
var (
	// ErrNoApplicationElement indicates the manifest has no <application> element.
	ErrNoApplicationElement = errors.New("manifest has no <application> element")

	// ErrNoDefaultConfig indicates the build script has no defaultConfig block.
	ErrNoDefaultConfig = errors.New("build script has no defaultConfig block")

	// ErrResourceConfigConflict indicates an existing, non-matching
	// resourceConfigurations declaration was found in the build script.
	ErrResourceConfigConflict = errors.New("conflicting resourceConfigurations declaration")

	// ErrUnsupportedGradleFormat indicates the build script is not in the
	// plain Groovy format this package can patch.
	ErrUnsupportedGradleFormat = errors.New("unsupported build script format")
)
