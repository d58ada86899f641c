package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nativegen/localekit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "localekit",
	Short: "Inject multi-locale support into generated native mobile projects",
	Long: `localekit edits the generated iOS and Android project files of a
cross-platform app so that it declares a specific set of supported locales.

It patches the Android manifest, build script, and resource files, and the
iOS project model, Info.plist, and localization catalogs. All edits are
idempotent: re-running against an already-patched project changes nothing.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("localekit %s\n", version.GetVersion()))
}
