package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nativegen/localekit/internal/android"
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

// scaffold builds a minimal generated project tree under a temp dir.
func scaffold(t *testing.T, withAndroid, withIOS bool) string {
	t.Helper()
	root := t.TempDir()
	if withAndroid {
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
	}
	if withIOS {
		if err := os.MkdirAll(filepath.Join(root, "ios"), 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}
	}
	return root
}

func TestLoad(t *testing.T) {
	t.Run("loads_both_platforms", func(t *testing.T) {
		root := scaffold(t, true, true)
		p, err := Load(root)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if p.Android == nil {
			t.Error("Android tree not loaded")
		}
		if p.IOS == nil {
			t.Error("IOS tree not loaded")
		}
		if p.Android.Gradle.Format != android.FormatGroovy {
			t.Errorf("gradle format = %v, want groovy", p.Android.Gradle.Format)
		}
	})

	t.Run("android_only", func(t *testing.T) {
		root := scaffold(t, true, false)
		p, err := Load(root)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if p.IOS != nil {
			t.Error("IOS tree should be nil without ios/ directory")
		}
	})

	t.Run("no_platform_directories", func(t *testing.T) {
		root := t.TempDir()
		if _, err := Load(root); !errors.Is(err, ErrNoNativeProject) {
			t.Fatalf("err = %v, want ErrNoNativeProject", err)
		}
	})

	t.Run("missing_manifest", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, "android", "app"), 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}
		if _, err := Load(root); !errors.Is(err, ErrMissingManifest) {
			t.Fatalf("err = %v, want ErrMissingManifest", err)
		}
	})

	t.Run("kotlin_build_script_is_loaded_as_kotlin", func(t *testing.T) {
		root := scaffold(t, true, false)
		gradle := filepath.Join(root, "android", "app", "build.gradle")
		if err := os.Rename(gradle, gradle+".kts"); err != nil {
			t.Fatalf("rename error: %v", err)
		}
		p, err := Load(root)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if p.Android.Gradle.Format != android.FormatKotlin {
			t.Errorf("gradle format = %v, want kotlin", p.Android.Gradle.Format)
		}
	})

	t.Run("missing_build_script", func(t *testing.T) {
		root := scaffold(t, true, false)
		if err := os.Remove(filepath.Join(root, "android", "app", "build.gradle")); err != nil {
			t.Fatalf("remove error: %v", err)
		}
		if _, err := Load(root); !errors.Is(err, ErrMissingGradle) {
			t.Fatalf("err = %v, want ErrMissingGradle", err)
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("round_trips_unchanged_documents", func(t *testing.T) {
		root := scaffold(t, true, true)
		p, err := Load(root)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		_ = p.IOS.InfoPlist.SetString("LOCALES_SUPPORTED", "en")

		written, err := p.Save()
		if err != nil {
			t.Fatalf("Save error: %v", err)
		}
		if len(written) != 4 {
			t.Errorf("written = %d paths, want 4 (%v)", len(written), written)
		}

		// A second load+save cycle must be byte stable.
		q, err := Load(root)
		if err != nil {
			t.Fatalf("reload error: %v", err)
		}
		_ = q.IOS.InfoPlist.SetString("LOCALES_SUPPORTED", "en")
		if _, err := q.Save(); err != nil {
			t.Fatalf("second save error: %v", err)
		}

		manifest1, _ := os.ReadFile(p.Android.ManifestPath)
		r, err := Load(root)
		if err != nil {
			t.Fatalf("third load error: %v", err)
		}
		if string(r.Android.Manifest.Marshal()) != string(manifest1) {
			t.Error("manifest serialization drifted across cycles")
		}
	})
}
