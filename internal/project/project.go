// Package project loads a generated native project tree into the shared
// aggregate the pipeline mutates, and writes the mutated documents back.
// The aggregate is owned by exactly one generation pass at a time; mutators
// receive it sequentially and never retain it.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nativegen/localekit/internal/android"
	"github.com/nativegen/localekit/internal/defs"
	"github.com/nativegen/localekit/internal/ios"
)

// Sentinel errors for the project package.
var (
	// ErrNoNativeProject indicates the root has neither an android/ nor an
	// ios/ directory.
	ErrNoNativeProject = errors.New("no generated native project found")

	// ErrMissingManifest indicates the android tree has no AndroidManifest.xml.
	ErrMissingManifest = errors.New("AndroidManifest.xml not found")

	// ErrMissingGradle indicates the android tree has no app build script.
	ErrMissingGradle = errors.New("app build script not found")
)

// Project is the shared configuration aggregate for one generation pass.
// A platform field is nil when that platform's directory is absent; the
// pipeline skips the corresponding steps.
type Project struct {
	Root    string
	Android *AndroidTree
	IOS     *IOSTree
}

// AndroidTree holds the parsed Android project documents.
type AndroidTree struct {
	Root         string
	ManifestPath string
	Manifest     *android.Manifest
	Gradle       *android.GradleScript
}

// IOSTree holds the parsed iOS project documents.
type IOSTree struct {
	Root      string
	ModelPath string
	Model     *ios.Project
	InfoPlist *ios.InfoPlist
}

// Load reads the generated native project trees under root. At least one
// platform directory must exist.
func Load(root string) (*Project, error) {
	root = filepath.Clean(root)
	p := &Project{Root: root}

	androidRoot := filepath.Join(root, defs.AndroidDirName)
	if dirExists(androidRoot) {
		tree, err := loadAndroid(androidRoot)
		if err != nil {
			return nil, err
		}
		p.Android = tree
	}

	iosRoot := filepath.Join(root, defs.IOSDirName)
	if dirExists(iosRoot) {
		tree, err := loadIOS(root, iosRoot)
		if err != nil {
			return nil, err
		}
		p.IOS = tree
	}

	if p.Android == nil && p.IOS == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoNativeProject, root)
	}
	return p, nil
}

// loadAndroid parses the manifest and build script of an android/ tree.
func loadAndroid(androidRoot string) (*AndroidTree, error) {
	manifestPath := filepath.Join(androidRoot, "app", "src", "main", defs.AndroidManifestXML)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrMissingManifest, manifestPath)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	manifest, err := android.ParseManifest(data)
	if err != nil {
		return nil, err
	}

	gradle, err := loadGradle(androidRoot)
	if err != nil {
		return nil, err
	}

	return &AndroidTree{
		Root:         androidRoot,
		ManifestPath: manifestPath,
		Manifest:     manifest,
		Gradle:       gradle,
	}, nil
}

// loadGradle reads the app build script, preferring the Groovy format and
// falling back to the Kotlin DSL so the mutator can report it as unsupported
// instead of the loader failing with a bare not-found.
func loadGradle(androidRoot string) (*android.GradleScript, error) {
	groovyPath := filepath.Join(androidRoot, "app", defs.AppBuildGradle)
	if data, err := os.ReadFile(groovyPath); err == nil {
		return &android.GradleScript{
			Path:     groovyPath,
			Format:   android.FormatGroovy,
			Contents: string(data),
		}, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read build script: %w", err)
	}

	ktsPath := filepath.Join(androidRoot, "app", defs.AppBuildGradleKts)
	if data, err := os.ReadFile(ktsPath); err == nil {
		return &android.GradleScript{
			Path:     ktsPath,
			Format:   android.FormatKotlin,
			Contents: string(data),
		}, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read build script: %w", err)
	}

	return nil, fmt.Errorf("%w under %s", ErrMissingGradle, filepath.Join(androidRoot, "app"))
}

// loadIOS reads the project model snapshot and Info.plist of an ios/ tree.
// Both are optional: a fresh tree starts with an empty model and plist.
func loadIOS(root, iosRoot string) (*IOSTree, error) {
	modelPath := filepath.Join(iosRoot, defs.ProjectModelYAML)
	model := &ios.Project{Name: filepath.Base(absOr(root))}
	if data, err := os.ReadFile(modelPath); err == nil {
		parsed, perr := ios.ParseProject(data)
		if perr != nil {
			return nil, perr
		}
		if parsed.Name == "" {
			parsed.Name = model.Name
		}
		model = parsed
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read project model: %w", err)
	}

	plistPath := filepath.Join(iosRoot, defs.InfoPlist)
	plist := &ios.InfoPlist{Path: plistPath}
	if data, err := os.ReadFile(plistPath); err == nil {
		plist.Contents = string(data)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read Info.plist: %w", err)
	}

	return &IOSTree{
		Root:      iosRoot,
		ModelPath: modelPath,
		Model:     model,
		InfoPlist: plist,
	}, nil
}

// Save serializes the mutated documents back to disk and returns the paths
// written. Serialization is deterministic, so saving an unchanged aggregate
// rewrites identical bytes.
func (p *Project) Save() ([]string, error) {
	var written []string

	if a := p.Android; a != nil {
		if err := os.WriteFile(a.ManifestPath, a.Manifest.Marshal(), defs.FilePerm); err != nil {
			return written, fmt.Errorf("write manifest: %w", err)
		}
		written = append(written, a.ManifestPath)

		if err := os.WriteFile(a.Gradle.Path, []byte(a.Gradle.Contents), defs.FilePerm); err != nil {
			return written, fmt.Errorf("write build script: %w", err)
		}
		written = append(written, a.Gradle.Path)
	}

	if i := p.IOS; i != nil {
		data, err := i.Model.Marshal()
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(i.ModelPath, data, defs.FilePerm); err != nil {
			return written, fmt.Errorf("write project model: %w", err)
		}
		written = append(written, i.ModelPath)

		if err := os.WriteFile(i.InfoPlist.Path, []byte(i.InfoPlist.Contents), defs.FilePerm); err != nil {
			return written, fmt.Errorf("write Info.plist: %w", err)
		}
		written = append(written, i.InfoPlist.Path)
	}

	return written, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func absOr(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
