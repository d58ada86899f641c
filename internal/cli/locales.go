package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nativegen/localekit/pkg/locales"
)

var localesCmd = &cobra.Command{
	Use:   "locales [locale...]",
	Short: "Inspect a locale list",
	Long: `Inspect a locale list without touching any project files.

Prints the normalized list with best-effort display names and the metadata
string that would be written to Info.plist and the Android manifest.

Examples:
  localekit locales en fr-CA es
  localekit locales`,
	RunE: runLocales,
}

func init() {
	rootCmd.AddCommand(localesCmd)
}

func runLocales(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	list := locales.Normalize(args)

	var pairs []kvPair
	for _, code := range list {
		name := locales.DisplayName(code)
		if name == "" {
			name = cliMuted.Render("(unknown)")
		}
		pairs = append(pairs, kvPair{code, name})
	}

	_, _ = fmt.Fprintln(out, renderKeyValueLines(pairs))
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, cliPrimary.Render("Metadata: ")+locales.MetadataValue(list))
	return nil
}
