package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing_file_yields_empty_options", func(t *testing.T) {
		opts, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if len(opts.Locales) != 0 {
			t.Errorf("Locales = %v, want empty", opts.Locales)
		}
	})

	t.Run("reads_locale_list_in_order", func(t *testing.T) {
		root := t.TempDir()
		content := "locales:\n  - en\n  - fr-CA\n  - es\n"
		if err := os.WriteFile(filepath.Join(root, ".localekit.yaml"), []byte(content), 0o644); err != nil {
			t.Fatalf("write error: %v", err)
		}
		opts, err := Load(root)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if !slices.Equal(opts.Locales, []string{"en", "fr-CA", "es"}) {
			t.Errorf("Locales = %v", opts.Locales)
		}
	})

	t.Run("invalid_yaml_is_an_error", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, ".localekit.yaml"), []byte("locales: [unclosed"), 0o644); err != nil {
			t.Fatalf("write error: %v", err)
		}
		if _, err := Load(root); err == nil {
			t.Fatal("expected parse error")
		}
	})
}
