package defs

import "io/fs"

// Common file names and resource identifiers used across the project.
const (
	// AndroidManifestXML is the Android application manifest file.
	AndroidManifestXML = "AndroidManifest.xml"

	// AppBuildGradle is the Android application module build script.
	AppBuildGradle = "build.gradle"

	// AppBuildGradleKts is the Kotlin-DSL variant of the build script.
	AppBuildGradleKts = "build.gradle.kts"

	// LocalesConfigXML is the generated Android locale-config resource file.
	LocalesConfigXML = "locales_config.xml"

	// LocalesConfigRef is the manifest resource reference to LocalesConfigXML.
	LocalesConfigRef = "@xml/locales_config"

	// LocalizableStrings is the iOS localization catalog file name.
	LocalizableStrings = "Localizable.strings"

	// InfoPlist is the iOS application property list file.
	InfoPlist = "Info.plist"

	// ProjectModelYAML is the serialized iOS project model snapshot.
	ProjectModelYAML = "project.yaml"

	// OptionsYAML is the optional per-project localekit options file.
	OptionsYAML = ".localekit.yaml"

	// MetadataKey is the metadata entry name written to both platform stores.
	MetadataKey = "LOCALES_SUPPORTED"
)

// Directory names inside the generated native projects.
const (
	// AndroidDirName is the Android project directory under the project root.
	AndroidDirName = "android"

	// IOSDirName is the iOS project directory under the project root.
	IOSDirName = "ios"

	// IOSResourcesDir is the top-level resources directory in the iOS tree.
	IOSResourcesDir = "Resources"

	// LprojSuffix is the per-locale iOS resource directory suffix.
	LprojSuffix = ".lproj"
)

// Filesystem permissions for created directories and files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)
