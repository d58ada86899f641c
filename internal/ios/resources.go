package ios

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nativegen/localekit/internal/defs"
)

// PlaceholderStrings returns the placeholder localization catalog content
// for a locale. The file only needs to exist for the build toolchain to
// treat the locale as supported.
func PlaceholderStrings(locale string) []byte {
	return []byte(fmt.Sprintf("/* %s */\n", locale))
}

// WriteResources creates Resources/<locale>.lproj for each locale and writes
// the placeholder Localizable.strings inside it. Existing directories are
// left alone; the placeholder file is overwritten unconditionally.
// Returns the paths of the written files.
func WriteResources(iosRoot string, list []string) ([]string, error) {
	resourcesDir := filepath.Join(iosRoot, defs.IOSResourcesDir)
	if err := os.MkdirAll(resourcesDir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", resourcesDir, err)
	}

	var written []string
	for _, l := range list {
		lprojDir := filepath.Join(resourcesDir, l+defs.LprojSuffix)
		if err := os.MkdirAll(lprojDir, defs.DirPerm); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", lprojDir, err)
		}
		path := filepath.Join(lprojDir, defs.LocalizableStrings)
		if err := os.WriteFile(path, PlaceholderStrings(l), defs.FilePerm); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
