package android

import (
	"fmt"
	"strings"
)

// Manifest is a parsed AndroidManifest.xml document.
type Manifest struct {
	Root *Element
}

// ParseManifest parses AndroidManifest.xml data into a document model.
func ParseManifest(data []byte) (*Manifest, error) {
	root, err := parseElements(data)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if root.Name != "manifest" {
		return nil, fmt.Errorf("manifest: unexpected root element <%s>", root.Name)
	}
	return &Manifest{Root: root}, nil
}

// Marshal renders the manifest back to XML. Serialization is deterministic:
// attribute and child order is preserved from the parse, so a re-run that
// changes nothing produces byte-identical output.
func (m *Manifest) Marshal() []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	marshalElement(&b, m.Root, 0)
	return []byte(b.String())
}

// Application returns the single top-level <application> element.
func (m *Manifest) Application() (*Element, bool) {
	return m.Root.Child("application")
}

// SetLocaleConfig points the <application> element at the locale-config
// resource via the android:localeConfig attribute.
func (m *Manifest) SetLocaleConfig(ref string) error {
	app, ok := m.Application()
	if !ok {
		return ErrNoApplicationElement
	}
	app.SetAttr("android:localeConfig", ref)
	return nil
}

// SetMetadata writes a <meta-data> entry under <application>. An existing
// entry with the same android:name has its value updated in place, so
// repeated runs never accumulate duplicates.
func (m *Manifest) SetMetadata(name, value string) error {
	app, ok := m.Application()
	if !ok {
		return ErrNoApplicationElement
	}
	for _, c := range app.Children {
		if c.Name != "meta-data" {
			continue
		}
		if n, _ := c.Attr("android:name"); n == name {
			c.SetAttr("android:value", value)
			return nil
		}
	}
	app.Children = append(app.Children, &Element{
		Name: "meta-data",
		Attrs: []Attr{
			{Name: "android:name", Value: name},
			{Name: "android:value", Value: value},
		},
	})
	return nil
}
