package ios

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteResources(t *testing.T) {
	t.Run("creates_lproj_catalogs", func(t *testing.T) {
		root := t.TempDir()
		written, err := WriteResources(root, []string{"en", "fr-CA"})
		if err != nil {
			t.Fatalf("WriteResources error: %v", err)
		}
		if len(written) != 2 {
			t.Fatalf("written = %d files, want 2", len(written))
		}
		for _, locale := range []string{"en", "fr-CA"} {
			path := filepath.Join(root, "Resources", locale+".lproj", "Localizable.strings")
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("missing catalog for %s: %v", locale, err)
			}
			want := "/* " + locale + " */\n"
			if string(data) != want {
				t.Errorf("catalog content = %q, want %q", data, want)
			}
		}
	})

	t.Run("rerun_is_byte_identical", func(t *testing.T) {
		root := t.TempDir()
		if _, err := WriteResources(root, []string{"en", "es"}); err != nil {
			t.Fatalf("first run error: %v", err)
		}
		path := filepath.Join(root, "Resources", "es.lproj", "Localizable.strings")
		first, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read error: %v", err)
		}
		if _, err := WriteResources(root, []string{"en", "es"}); err != nil {
			t.Fatalf("second run error: %v", err)
		}
		second, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read error: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Error("second run produced different bytes")
		}
	})

	t.Run("existing_directories_are_kept", func(t *testing.T) {
		root := t.TempDir()
		lproj := filepath.Join(root, "Resources", "en.lproj")
		if err := os.MkdirAll(lproj, 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}
		other := filepath.Join(lproj, "InfoPlist.strings")
		if err := os.WriteFile(other, []byte(`"CFBundleName" = "Example";`), 0o644); err != nil {
			t.Fatalf("seed write error: %v", err)
		}
		if _, err := WriteResources(root, []string{"en"}); err != nil {
			t.Fatalf("WriteResources error: %v", err)
		}
		if _, err := os.Stat(other); err != nil {
			t.Errorf("unrelated file in existing lproj was lost: %v", err)
		}
	})
}
