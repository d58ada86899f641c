package android

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ResNamespace is the Android resource XML namespace.
const ResNamespace = "http://schemas.android.com/apk/res/android"

// Attr is an XML attribute with its name as written in the source document
// (prefix included, e.g. "android:name").
type Attr struct {
	Name  string
	Value string
}

// Element is a node in a parsed Android XML document. Manifests carry no
// meaningful character data, so only attributes and child elements are kept.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr updates the named attribute in place, or appends it if absent.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Child returns the first child element with the given name.
func (e *Element) Child(name string) (*Element, bool) {
	for _, c := range e.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// parseElements decodes an XML document into an Element tree.
//
// Go's xml.Decoder resolves namespace prefixes to their URIs; attribute and
// element names are re-qualified from the xmlns declarations seen so far so
// the document can be written back with its original prefixes.
func parseElements(data []byte) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	prefixes := map[string]string{}

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			// Register xmlns declarations before qualifying sibling attrs.
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" {
					prefixes[a.Value] = a.Name.Local
				}
			}
			e := &Element{Name: qualifyName(prefixes, t.Name)}
			for _, a := range t.Attr {
				e.Attrs = append(e.Attrs, Attr{
					Name:  qualifyName(prefixes, a.Name),
					Value: a.Value,
				})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse xml: multiple root elements")
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			stack = append(stack, e)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse xml: no root element")
	}
	return root, nil
}

// qualifyName rebuilds the prefixed form of a decoded XML name.
func qualifyName(prefixes map[string]string, n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xmlns":
		return "xmlns:" + n.Local
	}
	if p, ok := prefixes[n.Space]; ok {
		return p + ":" + n.Local
	}
	return n.Local
}

// marshalElement renders an element tree with four-space indentation.
// Childless elements are self-closed.
func marshalElement(b *strings.Builder, e *Element, depth int) {
	indent := strings.Repeat("    ", depth)
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		fmt.Fprintf(b, ` %s="%s"`, a.Name, escapeAttr(a.Value))
	}
	if len(e.Children) == 0 {
		b.WriteString(" />\n")
		return
	}
	b.WriteString(">\n")
	for _, c := range e.Children {
		marshalElement(b, c, depth+1)
	}
	b.WriteString(indent)
	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteString(">\n")
}

// escapeAttr escapes an attribute value for XML output.
func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
