package android

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nativegen/localekit/internal/defs"
)

// resXMLDir is the res/xml directory relative to the Android project root.
var resXMLDir = filepath.Join("app", "src", "main", "res", "xml")

// RenderLocalesConfig renders the locale-config XML resource document with
// one <locale> child per entry, in list order.
func RenderLocalesConfig(list []string) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	fmt.Fprintf(&b, "<locale-config xmlns:android=\"%s\">\n", ResNamespace)
	for _, l := range list {
		fmt.Fprintf(&b, "    <locale android:name=\"%s\" />\n", escapeAttr(l))
	}
	b.WriteString("</locale-config>\n")
	return []byte(b.String())
}

// WriteLocalesConfig ensures the res/xml directory exists and writes the
// locales_config.xml resource file, overwriting any previous content.
// Returns the path of the written file.
func WriteLocalesConfig(androidRoot string, list []string) (string, error) {
	dir := filepath.Join(androidRoot, resXMLDir)
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, defs.LocalesConfigXML)
	if err := os.WriteFile(path, RenderLocalesConfig(list), defs.FilePerm); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
