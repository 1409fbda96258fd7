package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/talentops/hireboard/pkg/domain/types"
)

// Palette holds the CSS classes applied to an element for one tag
type Palette struct {
	Bar   string `yaml:"bar" json:"bar"`
	Text  string `yaml:"text" json:"text"`
	Badge string `yaml:"badge" json:"badge"`
}

// Validate validates the palette
func (p *Palette) Validate() error {
	if p.Bar == "" {
		return goerr.New("palette bar class is required")
	}
	if p.Text == "" {
		return goerr.New("palette text class is required")
	}
	if p.Badge == "" {
		return goerr.New("palette badge class is required")
	}
	return nil
}

// Theme maps color and severity tags to presentation styles
type Theme struct {
	Colors     map[types.ColorTag]Palette    `yaml:"colors"`
	Severities map[types.SeverityTag]Palette `yaml:"severities"`
}

// DefaultTheme returns the built-in theme covering every known tag
func DefaultTheme() *Theme {
	return &Theme{
		Colors: map[types.ColorTag]Palette{
			types.ColorEmerald: {Bar: "bg-emerald-500", Text: "text-emerald-600", Badge: "bg-emerald-100 text-emerald-700"},
			types.ColorBlue:    {Bar: "bg-blue-500", Text: "text-blue-600", Badge: "bg-blue-100 text-blue-700"},
			types.ColorAmber:   {Bar: "bg-amber-500", Text: "text-amber-600", Badge: "bg-amber-100 text-amber-700"},
			types.ColorRose:    {Bar: "bg-rose-500", Text: "text-rose-600", Badge: "bg-rose-100 text-rose-700"},
			types.ColorPink:    {Bar: "bg-pink-500", Text: "text-pink-600", Badge: "bg-pink-100 text-pink-700"},
			types.ColorIndigo:  {Bar: "bg-indigo-500", Text: "text-indigo-600", Badge: "bg-indigo-100 text-indigo-700"},
		},
		Severities: map[types.SeverityTag]Palette{
			types.SeverityLow:    {Bar: "bg-green-500", Text: "text-green-600", Badge: "bg-green-100 text-green-700"},
			types.SeverityMedium: {Bar: "bg-yellow-500", Text: "text-yellow-600", Badge: "bg-yellow-100 text-yellow-700"},
			types.SeverityHigh:   {Bar: "bg-red-500", Text: "text-red-600", Badge: "bg-red-100 text-red-700"},
		},
	}
}

// Validate validates the theme entries
func (t *Theme) Validate() error {
	for tag, p := range t.Colors {
		if !tag.IsValid() {
			return goerr.Wrap(ErrInvalidColorTag, "unknown color tag in theme", goerr.V("tag", tag))
		}
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid color palette", goerr.V("tag", tag))
		}
	}
	for tag, p := range t.Severities {
		if !tag.IsValid() {
			return goerr.Wrap(ErrInvalidSeverityTag, "unknown severity tag in theme", goerr.V("tag", tag))
		}
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid severity palette", goerr.V("tag", tag))
		}
	}
	return nil
}

// Merge returns a new theme where entries of override replace those of t
func (t *Theme) Merge(override *Theme) *Theme {
	merged := &Theme{
		Colors:     make(map[types.ColorTag]Palette, len(t.Colors)),
		Severities: make(map[types.SeverityTag]Palette, len(t.Severities)),
	}
	for k, v := range t.Colors {
		merged.Colors[k] = v
	}
	for k, v := range t.Severities {
		merged.Severities[k] = v
	}
	if override == nil {
		return merged
	}
	for k, v := range override.Colors {
		merged.Colors[k] = v
	}
	for k, v := range override.Severities {
		merged.Severities[k] = v
	}
	return merged
}

// Covers checks that every tag used by the dashboard resolves to a palette
func (t *Theme) Covers(d *Dashboard) error {
	for _, tag := range d.ColorTags() {
		if _, ok := t.Colors[tag]; !ok {
			return goerr.New("theme has no palette for color tag", goerr.V("tag", tag))
		}
	}
	for _, c := range d.Countries {
		if _, ok := t.Severities[c.Severity]; !ok {
			return goerr.New("theme has no palette for severity tag", goerr.V("tag", c.Severity))
		}
	}
	return nil
}

// Color returns the palette for a color tag, or an empty palette if not configured
func (t *Theme) Color(tag types.ColorTag) Palette {
	return t.Colors[tag]
}

// Severity returns the palette for a severity tag, or an empty palette if not configured
func (t *Theme) Severity(tag types.SeverityTag) Palette {
	return t.Severities[tag]
}
