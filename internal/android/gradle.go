package android

import (
	"fmt"
	"regexp"
	"strings"
)

// GradleFormat identifies the dialect of an app build script.
type GradleFormat int

const (
	// FormatGroovy is the plain-text build.gradle format this package patches.
	FormatGroovy GradleFormat = iota
	// FormatKotlin is the declarative build.gradle.kts format, which is not
	// safe to patch textually.
	FormatKotlin
)

// defaultConfigOpener is the literal block opener the declaration is
// inserted under. Matching is intentionally literal, not structural.
const defaultConfigOpener = "defaultConfig {"

// reResourceConfigs matches any resourceConfigurations declaration,
// regardless of formatting.
var reResourceConfigs = regexp.MustCompile(`resourceConfigurations`)

// GradleScript is the app module build script held in memory between the
// load and save stages of a generation pass.
type GradleScript struct {
	Path     string
	Format   GradleFormat
	Contents string
}

// ResourceConfigDeclaration returns the exact declaration text for a locale
// list: locales double-quoted and comma-space separated.
func ResourceConfigDeclaration(list []string) string {
	quoted := make([]string, len(list))
	for i, l := range list {
		quoted[i] = `"` + l + `"`
	}
	return "resourceConfigurations += [" + strings.Join(quoted, ", ") + "]"
}

// InjectResourceConfigurations patches the build script to restrict packaged
// resources to the given locales.
//
// If the exact declaration already exists the script is left unchanged. Any
// other resourceConfigurations declaration is a conflict: the script is not
// modified and the caller is told to reset the generated project rather than
// have this tool guess at a merge. Otherwise the declaration is inserted as
// the first statement of the defaultConfig block.
func (g *GradleScript) InjectResourceConfigurations(list []string) error {
	if g.Format != FormatGroovy {
		return fmt.Errorf("%w: cannot add resourceConfigurations to %s", ErrUnsupportedGradleFormat, g.Path)
	}

	decl := ResourceConfigDeclaration(list)
	if strings.Contains(g.Contents, decl) {
		return nil
	}
	if reResourceConfigs.MatchString(g.Contents) {
		return fmt.Errorf("%w in %s: clean and regenerate the native project, or remove the existing declaration",
			ErrResourceConfigConflict, g.Path)
	}

	idx := strings.Index(g.Contents, defaultConfigOpener)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNoDefaultConfig, g.Path)
	}

	// Indent one level deeper than the defaultConfig line itself.
	lineStart := strings.LastIndex(g.Contents[:idx], "\n") + 1
	line := g.Contents[lineStart:idx]
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))] + "    "

	insertAt := idx + len(defaultConfigOpener)
	if nl := strings.Index(g.Contents[insertAt:], "\n"); nl >= 0 {
		insertAt += nl + 1
	} else {
		g.Contents += "\n"
		insertAt = len(g.Contents)
	}

	g.Contents = g.Contents[:insertAt] + indent + decl + "\n" + g.Contents[insertAt:]
	return nil
}
