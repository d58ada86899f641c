package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nativegen/localekit/internal/android"
	"github.com/nativegen/localekit/internal/cli/wizard"
	"github.com/nativegen/localekit/internal/config"
	"github.com/nativegen/localekit/internal/pipeline"
	"github.com/nativegen/localekit/internal/project"
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Inject locale support into the generated native projects",
	Long: `Inject locale support into the generated native projects under the
project root.

The locale list is resolved in order of precedence:
  1. the --locales flag
  2. the locales entry of .localekit.yaml in the project root
  3. an interactive selection (only on a terminal)
  4. the base locale "en"

Examples:
  localekit inject --locales en,fr,es
  localekit inject --project ./my-app --dry-run
  localekit inject --non-interactive`,
	Args: cobra.NoArgs,
	RunE: runInject,
}

func init() {
	rootCmd.AddCommand(injectCmd)

	injectCmd.Flags().StringP("project", "p", ".", "Project root containing the generated android/ and ios/ trees")
	injectCmd.Flags().StringSliceP("locales", "l", nil, "Ordered locale identifiers (e.g. en,fr-CA,es)")
	injectCmd.Flags().Bool("dry-run", false, "Apply mutations in memory and report, but write nothing")
	injectCmd.Flags().Bool("non-interactive", false, "Never prompt; fall back to config file or the base locale")
	injectCmd.Flags().Bool("verbose", false, "Log each pipeline step")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// runInject resolves the locale list, loads the project, and runs the
// injection pipeline.
func runInject(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	root := getStringFlag(cmd, "project")
	dryRun := getBoolFlag(cmd, "dry-run")

	list, err := resolveLocales(cmd, root)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Injection cancelled.")
			return nil
		}
		return err
	}

	proj, err := project.Load(root)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	var logger *slog.Logger
	if getBoolFlag(cmd, "verbose") {
		logger = slog.New(slog.NewTextHandler(cmd.OutOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := pipeline.Run(ctx, proj, pipeline.Options{
		Locales: list,
		DryRun:  dryRun,
		Logger:  logger,
	})
	if err != nil {
		if errors.Is(err, android.ErrResourceConfigConflict) {
			_, _ = fmt.Fprintln(out, renderErrorCard("Conflicting resourceConfigurations declaration",
				"The app build script already restricts resource configurations",
				"to a different locale set. localekit does not merge build",
				"script state.",
				"",
				cliMuted.Render("Clean and regenerate the native project, then rerun:"),
				cliMuted.Render("  localekit inject")))
		}
		return fmt.Errorf("inject locales: %w", err)
	}

	pairs := []kvPair{
		{"Locales", strings.Join(result.Locales, ", ")},
		{"Metadata", result.Metadata},
		{"Steps", fmt.Sprintf("%d applied", len(result.Steps))},
	}
	if dryRun {
		pairs = append(pairs, kvPair{"Mode", "dry run, nothing written"})
	} else {
		pairs = append(pairs, kvPair{"Files", fmt.Sprintf("%d written", len(result.Written))})
	}

	title := "Locale support injected"
	if dryRun {
		title = "Locale support checked"
	}
	_, _ = fmt.Fprintln(out, renderSuccessCard(title, renderKeyValueLines(pairs)))
	return nil
}

// resolveLocales picks the locale list from flags, the options file, or the
// wizard, in that order. Returning nil defers to the pipeline's base-locale
// default.
func resolveLocales(cmd *cobra.Command, root string) ([]string, error) {
	if list, err := cmd.Flags().GetStringSlice("locales"); err == nil && len(list) > 0 {
		return list, nil
	}

	opts, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if len(opts.Locales) > 0 {
		return opts.Locales, nil
	}

	if !getBoolFlag(cmd, "non-interactive") && isatty.IsTerminal(os.Stdin.Fd()) {
		result, err := wizard.Run()
		if err != nil {
			return nil, err
		}
		return result.Locales, nil
	}

	return nil, nil
}
