// Package pipeline applies the locale-injection mutators to a loaded native
// project in a fixed sequence. Each mutator touches a disjoint facet of the
// shared aggregate; the only data they share is the locale list. Execution
// is synchronous and single-threaded, and a failure aborts the pass
// immediately with no rollback of earlier writes. Every mutator is
// idempotent, so re-running after the cause is fixed is safe.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nativegen/localekit/internal/android"
	"github.com/nativegen/localekit/internal/defs"
	"github.com/nativegen/localekit/internal/ios"
	"github.com/nativegen/localekit/internal/project"
	"github.com/nativegen/localekit/pkg/locales"
)

// Options configures one generation pass.
type Options struct {
	// Locales is the ordered locale list; empty means the base locale.
	Locales []string
	// DryRun applies the in-memory mutators but writes nothing to disk.
	DryRun bool
	// Logger receives step-level progress. Nil discards.
	Logger *slog.Logger
}

// Result summarizes a completed generation pass.
type Result struct {
	// Locales is the normalized locale list the pass ran with.
	Locales []string
	// Metadata is the derived locale metadata string written to both
	// platform stores.
	Metadata string
	// Steps lists the mutators that were applied, in order.
	Steps []string
	// Written lists the files written to disk. Empty on a dry run.
	Written []string
}

// platform marks which project tree a step needs; steps for an absent
// platform are skipped.
type platform int

const (
	platformIOS platform = iota
	platformAndroid
)

// step is one mutator in the fixed sequence.
type step struct {
	name     string
	platform platform
	apply    func(*project.Project, *Result) error
}

// Run applies all mutators to the project in the fixed sequence and, unless
// dry-running, saves the mutated documents back to disk.
func Run(ctx context.Context, proj *project.Project, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	list := locales.Normalize(opts.Locales)
	result := &Result{
		Locales:  list,
		Metadata: locales.MetadataValue(list),
	}

	logger.Info("injecting locales", "root", proj.Root, "locales", list, "dryRun", opts.DryRun)

	for _, s := range steps(list, result.Metadata, opts.DryRun) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.platform == platformAndroid && proj.Android == nil {
			logger.Debug("skipping step, no android project", "step", s.name)
			continue
		}
		if s.platform == platformIOS && proj.IOS == nil {
			logger.Debug("skipping step, no ios project", "step", s.name)
			continue
		}
		if err := s.apply(proj, result); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		result.Steps = append(result.Steps, s.name)
		logger.Debug("step applied", "step", s.name)
	}

	if !opts.DryRun {
		written, err := proj.Save()
		result.Written = append(result.Written, written...)
		if err != nil {
			return nil, fmt.Errorf("save project: %w", err)
		}
	}

	logger.Info("locales injected", "steps", len(result.Steps), "files", len(result.Written))
	return result, nil
}

// steps returns the mutator sequence. The order is fixed so re-runs and
// logs are deterministic; no step depends on another's output beyond the
// shared locale list.
func steps(list []string, metadata string, dryRun bool) []step {
	return []step{
		{
			name:     "ios metadata",
			platform: platformIOS,
			apply: func(p *project.Project, _ *Result) error {
				return p.IOS.InfoPlist.SetString(defs.MetadataKey, metadata)
			},
		},
		{
			name:     "android metadata",
			platform: platformAndroid,
			apply: func(p *project.Project, _ *Result) error {
				return p.Android.Manifest.SetMetadata(defs.MetadataKey, metadata)
			},
		},
		{
			name:     "ios project",
			platform: platformIOS,
			apply: func(p *project.Project, _ *Result) error {
				ios.RegisterLocales(p.IOS.Model, list)
				return nil
			},
		},
		{
			name:     "ios resources",
			platform: platformIOS,
			apply: func(p *project.Project, r *Result) error {
				if dryRun {
					return nil
				}
				written, err := ios.WriteResources(p.IOS.Root, list)
				r.Written = append(r.Written, written...)
				return err
			},
		},
		{
			name:     "android gradle",
			platform: platformAndroid,
			apply: func(p *project.Project, _ *Result) error {
				return p.Android.Gradle.InjectResourceConfigurations(list)
			},
		},
		{
			name:     "android manifest",
			platform: platformAndroid,
			apply: func(p *project.Project, _ *Result) error {
				return p.Android.Manifest.SetLocaleConfig(defs.LocalesConfigRef)
			},
		},
		{
			name:     "android resources",
			platform: platformAndroid,
			apply: func(p *project.Project, r *Result) error {
				if dryRun {
					return nil
				}
				path, err := android.WriteLocalesConfig(p.Android.Root, list)
				if err != nil {
					return err
				}
				r.Written = append(r.Written, path)
				return nil
			},
		},
	}
}
