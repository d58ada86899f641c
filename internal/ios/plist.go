package ios

import (
	"fmt"
	"regexp"
	"strings"
)

// emptyPlist is the document written when no Info.plist exists yet.
const emptyPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
</dict>
</plist>
`

// InfoPlist is the application property list held in memory between the
// load and save stages of a generation pass. Entries are patched textually
// so unrelated content survives byte-for-byte.
type InfoPlist struct {
	Path     string
	Contents string
}

// SetString stores a string entry under the given key, replacing an existing
// entry in place or inserting a new one before the closing dict tag.
func (p *InfoPlist) SetString(key, value string) error {
	if strings.TrimSpace(p.Contents) == "" {
		p.Contents = emptyPlist
	}

	re := keyStringPattern(key)
	if loc := re.FindStringSubmatchIndex(p.Contents); loc != nil {
		// Splice the new value between the captured <string> tags.
		p.Contents = p.Contents[:loc[2]] + escapeText(value) + p.Contents[loc[3]:]
		return nil
	}

	idx := strings.LastIndex(p.Contents, "</dict>")
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrMalformedPlist, p.Path)
	}
	entry := fmt.Sprintf("\t<key>%s</key>\n\t<string>%s</string>\n", escapeText(key), escapeText(value))
	p.Contents = p.Contents[:idx] + entry + p.Contents[idx:]
	return nil
}

// GetString returns the string entry stored under the given key.
func (p *InfoPlist) GetString(key string) (string, bool) {
	loc := keyStringPattern(key).FindStringSubmatchIndex(p.Contents)
	if loc == nil {
		return "", false
	}
	return unescapeText(p.Contents[loc[2]:loc[3]]), true
}

// keyStringPattern matches a <key>/<string> pair, capturing the value.
func keyStringPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`<key>` + regexp.QuoteMeta(escapeText(key)) + `</key>\s*<string>([^<]*)</string>`)
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func unescapeText(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}
