// Package wizard provides the interactive locale selection form shown when
// the inject command runs on a terminal without an explicit locale list.
package wizard

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nativegen/localekit/pkg/locales"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// Result carries the selections made in the wizard.
type Result struct {
	Locales []string
}

// commonLocales are the choices offered in the multi-select, ordered by how
// often they appear in shipped apps.
var commonLocales = []string{
	"en", "es", "fr", "de", "it", "pt-BR", "ja", "ko",
	"zh-CN", "zh-TW", "ru", "ar", "hi", "nl", "pl", "tr",
}

// Run shows the locale selection form and returns the chosen list.
func Run() (*Result, error) {
	selected := []string{locales.DefaultLocale}
	extra := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Supported locales").
				Description("Select the locales the app should declare.").
				Options(localeOptions()...).
				Value(&selected),
			huh.NewInput().
				Title("Additional locales").
				Description("Comma-separated codes, e.g. fr-CA,sv. Leave empty to skip.").
				Value(&extra),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	return &Result{Locales: mergeSelections(selected, extra)}, nil
}

// localeOptions builds the multi-select options with best-effort display names.
func localeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(commonLocales))
	for _, code := range commonLocales {
		label := code
		if name := locales.DisplayName(code); name != "" {
			label = fmt.Sprintf("%s (%s)", code, name)
		}
		opts = append(opts, huh.NewOption(label, code))
	}
	return opts
}

// mergeSelections appends free-form codes to the multi-select choices,
// keeping selection order and skipping codes already chosen.
func mergeSelections(selected []string, extra string) []string {
	merged := slices.Clone(selected)
	for _, code := range strings.Split(extra, ",") {
		code = strings.TrimSpace(code)
		if code == "" || slices.Contains(merged, code) {
			continue
		}
		merged = append(merged, code)
	}
	return merged
}
