package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

const testManifest = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android" package="com.example.app">
    <application android:name=".MainApplication" />
</manifest>
`

const testGradle = `android {
    defaultConfig {
        applicationId "com.example.app"
    }
}
`

// scaffold builds a minimal generated project tree.
func scaffold(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	appMain := filepath.Join(root, "android", "app", "src", "main")
	if err := os.MkdirAll(appMain, 0o755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(appMain, "AndroidManifest.xml"), []byte(testManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "android", "app", "build.gradle"), []byte(testGradle), 0o644); err != nil {
		t.Fatalf("write gradle: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "ios"), 0o755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	return root
}

// execute runs the root command with the given args and returns its output.
// Flag values stick to the command between runs, so they are reset first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	injectCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestInjectCommand(t *testing.T) {
	t.Run("injects_with_explicit_locales", func(t *testing.T) {
		root := scaffold(t)
		out, err := execute(t, "inject", "--project", root, "--locales", "en,fr", "--non-interactive")
		if err != nil {
			t.Fatalf("execute error: %v\noutput:\n%s", err, out)
		}
		gradle, _ := os.ReadFile(filepath.Join(root, "android", "app", "build.gradle"))
		if !bytes.Contains(gradle, []byte(`resourceConfigurations += ["en", "fr"]`)) {
			t.Errorf("gradle not patched:\n%s", gradle)
		}
		if !strings.Contains(out, "Locale support injected") {
			t.Errorf("missing success output:\n%s", out)
		}
	})

	t.Run("locales_from_options_file", func(t *testing.T) {
		root := scaffold(t)
		if err := os.WriteFile(filepath.Join(root, ".localekit.yaml"), []byte("locales: [de, it]\n"), 0o644); err != nil {
			t.Fatalf("write options: %v", err)
		}
		out, err := execute(t, "inject", "--project", root, "--non-interactive")
		if err != nil {
			t.Fatalf("execute error: %v\noutput:\n%s", err, out)
		}
		res, _ := os.ReadFile(filepath.Join(root, "android", "app", "src", "main", "res", "xml", "locales_config.xml"))
		if !bytes.Contains(res, []byte(`android:name="de"`)) || !bytes.Contains(res, []byte(`android:name="it"`)) {
			t.Errorf("options file locales not used:\n%s", res)
		}
	})

	t.Run("dry_run_reports_without_writing", func(t *testing.T) {
		root := scaffold(t)
		out, err := execute(t, "inject", "--project", root, "--locales", "en,fr", "--non-interactive", "--dry-run")
		if err != nil {
			t.Fatalf("execute error: %v\noutput:\n%s", err, out)
		}
		if !strings.Contains(out, "dry run") {
			t.Errorf("missing dry run notice:\n%s", out)
		}
		gradle, _ := os.ReadFile(filepath.Join(root, "android", "app", "build.gradle"))
		if bytes.Contains(gradle, []byte("resourceConfigurations")) {
			t.Error("dry run modified the build script")
		}
	})

	t.Run("conflict_renders_guidance", func(t *testing.T) {
		root := scaffold(t)
		conflicted := strings.Replace(testGradle,
			"applicationId", "resourceConfigurations += [\"de\"]\n        applicationId", 1)
		if err := os.WriteFile(filepath.Join(root, "android", "app", "build.gradle"), []byte(conflicted), 0o644); err != nil {
			t.Fatalf("write gradle: %v", err)
		}
		out, err := execute(t, "inject", "--project", root, "--locales", "en", "--non-interactive")
		if err == nil {
			t.Fatal("expected conflict error")
		}
		if !strings.Contains(out, "Clean and regenerate") {
			t.Errorf("missing guidance:\n%s", out)
		}
	})
}

func TestLocalesCommand(t *testing.T) {
	t.Run("prints_metadata_string", func(t *testing.T) {
		out, err := execute(t, "locales", "en", "fr-CA")
		if err != nil {
			t.Fatalf("execute error: %v", err)
		}
		if !strings.Contains(out, "en,fr-CA") {
			t.Errorf("missing metadata string:\n%s", out)
		}
	})

	t.Run("defaults_to_base_locale", func(t *testing.T) {
		out, err := execute(t, "locales")
		if err != nil {
			t.Fatalf("execute error: %v", err)
		}
		if !strings.Contains(out, "en") {
			t.Errorf("missing default locale:\n%s", out)
		}
	})
}
