package ios

import (
	"fmt"
	"path"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/nativegen/localekit/internal/defs"
)

// Project is an in-memory model of the native iOS project: the known-regions
// list, logical file groups, and variant groups for localized resources.
// It stands in for the full Xcode project document, which the pipeline only
// ever touches through these few registration operations.
type Project struct {
	Name          string          `yaml:"name"`
	KnownRegions  []string        `yaml:"known_regions"`
	Groups        []*Group        `yaml:"groups,omitempty"`
	VariantGroups []*VariantGroup `yaml:"variant_groups,omitempty"`
}

// Group is a logical file group in the project model.
type Group struct {
	Name     string   `yaml:"name"`
	Children []string `yaml:"children,omitempty"`
}

// VariantGroup groups the per-locale variants of one logical resource file.
type VariantGroup struct {
	Name     string    `yaml:"name"`
	Variants []Variant `yaml:"variants,omitempty"`
}

// Variant is one locale-specific member of a variant group.
type Variant struct {
	Locale string `yaml:"locale"`
	Path   string `yaml:"path"`
}

// ParseProject decodes a serialized project model snapshot.
func ParseProject(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("project model: %w", err)
	}
	return &p, nil
}

// Marshal serializes the project model snapshot deterministically.
func (p *Project) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("project model: %w", err)
	}
	return data, nil
}

// AddKnownRegion declares a locale as a known region. Deduplication is owned
// here, not deferred to an external model: repeated registration is a no-op.
func (p *Project) AddKnownRegion(locale string) {
	if slices.Contains(p.KnownRegions, locale) {
		return
	}
	p.KnownRegions = append(p.KnownRegions, locale)
}

// EnsureGroup returns the named group, creating it if absent.
func (p *Project) EnsureGroup(name string) *Group {
	for _, g := range p.Groups {
		if g.Name == name {
			return g
		}
	}
	g := &Group{Name: name}
	p.Groups = append(p.Groups, g)
	return g
}

// EnsureVariantGroup returns the named variant group, creating it if absent.
func (p *Project) EnsureVariantGroup(name string) *VariantGroup {
	for _, vg := range p.VariantGroups {
		if vg.Name == name {
			return vg
		}
	}
	vg := &VariantGroup{Name: name}
	p.VariantGroups = append(p.VariantGroups, vg)
	return vg
}

// AddChild attaches a child reference to the group if not already present.
func (g *Group) AddChild(name string) {
	if slices.Contains(g.Children, name) {
		return
	}
	g.Children = append(g.Children, name)
}

// SetVariant attaches a locale-tagged member to the variant group, updating
// the existing member for that locale instead of duplicating it.
func (vg *VariantGroup) SetVariant(locale, filePath string) {
	for i, v := range vg.Variants {
		if v.Locale == locale {
			vg.Variants[i].Path = filePath
			return
		}
	}
	vg.Variants = append(vg.Variants, Variant{Locale: locale, Path: filePath})
}

// RegisterLocales declares each locale as a known region and wires one
// Localizable.strings variant group under the Resources group, with one
// member per locale. The variant group exists before members attach to it.
func RegisterLocales(p *Project, list []string) {
	for _, l := range list {
		p.AddKnownRegion(l)
	}

	resources := p.EnsureGroup(defs.IOSResourcesDir)
	vg := p.EnsureVariantGroup(defs.LocalizableStrings)
	resources.AddChild(vg.Name)

	for _, l := range list {
		vg.SetVariant(l, path.Join(defs.IOSResourcesDir, l+defs.LprojSuffix, defs.LocalizableStrings))
	}
}
