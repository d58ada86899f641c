// Package config reads the optional per-project localekit options file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nativegen/localekit/internal/defs"
)

// Options is the recognized option surface of the .localekit.yaml file.
// Command-line flags override values loaded from it.
type Options struct {
	// Locales is the ordered locale identifier list.
	Locales []string `yaml:"locales"`
}

// Load reads .localekit.yaml from the project root. A missing file yields
// empty options; a file that fails to parse is an error.
func Load(root string) (*Options, error) {
	path := filepath.Join(filepath.Clean(root), defs.OptionsYAML)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Options{}, nil
		}
		return nil, fmt.Errorf("read options: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &opts, nil
}
