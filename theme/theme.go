// Package theme loads catalogues of control variants from YAML or TOML
// files.
//
// A catalogue starts from the built-in variants and overlays every variant
// the file declares. A declared variant may name a base variant whose values
// it inherits field by field.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	forms "github.com/grindlemire/go-forms"
)

// Format selects the catalogue file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FontSpec is the file form of a font.
type FontSpec struct {
	Family    string  `yaml:"family" toml:"family"`
	Size      float32 `yaml:"size" toml:"size"`
	Bold      bool    `yaml:"bold,omitempty" toml:"bold,omitempty"`
	Italic    bool    `yaml:"italic,omitempty" toml:"italic,omitempty"`
	Underline bool    `yaml:"underline,omitempty" toml:"underline,omitempty"`
}

// ShadeSpec derives a color by blending towards another one. Amount runs
// from 0 (unchanged) to 1 (the target color).
type ShadeSpec struct {
	Toward string  `yaml:"toward" toml:"toward"`
	Amount float64 `yaml:"amount" toml:"amount"`
}

// VariantSpec is the file form of a variant. Omitted fields come from Base,
// or from the zero variant when there is no base.
type VariantSpec struct {
	Name        string     `yaml:"name" toml:"name"`
	Base        string     `yaml:"base,omitempty" toml:"base,omitempty"`
	Size        []int      `yaml:"size,omitempty" toml:"size,omitempty"`
	Margin      []int      `yaml:"margin,omitempty" toml:"margin,omitempty"`
	Padding     []int      `yaml:"padding,omitempty" toml:"padding,omitempty"`
	MinimumSize []int      `yaml:"minimum_size,omitempty" toml:"minimum_size,omitempty"`
	MaximumSize []int      `yaml:"maximum_size,omitempty" toml:"maximum_size,omitempty"`
	Border      []int      `yaml:"border,omitempty" toml:"border,omitempty"`
	Styles      []string   `yaml:"styles,omitempty" toml:"styles,omitempty"`
	TopLevel    *bool      `yaml:"top_level,omitempty" toml:"top_level,omitempty"`
	BackColor   string     `yaml:"back_color,omitempty" toml:"back_color,omitempty"`
	BackShade   *ShadeSpec `yaml:"back_shade,omitempty" toml:"back_shade,omitempty"`
	ForeColor   string     `yaml:"fore_color,omitempty" toml:"fore_color,omitempty"`
	Font        *FontSpec  `yaml:"font,omitempty" toml:"font,omitempty"`
	Cursor      string     `yaml:"cursor,omitempty" toml:"cursor,omitempty"`
}

// File is the top-level document of a catalogue file.
type File struct {
	Version  int           `yaml:"version" toml:"version"`
	Variants []VariantSpec `yaml:"variants" toml:"variants"`
}

// ErrUnknownVariant is returned when a variant name cannot be found.
var ErrUnknownVariant = errors.New("theme: unknown variant")

// Catalogue is an immutable set of variants keyed by name.
type Catalogue struct {
	variants map[string]forms.Variant
}

// Default returns the catalogue of built-in variants.
func Default() *Catalogue {
	return &Catalogue{variants: forms.BuiltinVariants()}
}

// Load reads a catalogue file. The format is picked from the extension:
// .toml for TOML, anything else for YAML.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: failed to read catalogue: %w", err)
	}
	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = FormatTOML
	}
	return Parse(data, format)
}

// Parse decodes a catalogue document. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Catalogue, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("theme: failed to decode catalogue: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("theme: failed to decode catalogue: %w", err)
		}
	}
	if f.Version != 0 && f.Version != 1 {
		return nil, fmt.Errorf("theme: unsupported catalogue version %d", f.Version)
	}

	cat := Default()
	for _, spec := range f.Variants {
		v, err := cat.build(spec)
		if err != nil {
			return nil, err
		}
		cat.variants[v.Name] = v
	}
	return cat, nil
}

// Lookup returns the variant with the given name.
func (c *Catalogue) Lookup(name string) (forms.Variant, bool) {
	v, ok := c.variants[name]
	return v, ok
}

// Names returns the variant names in natural order ("Panel2" before
// "Panel10").
func (c *Catalogue) Names() []string {
	names := slices.Collect(maps.Keys(c.variants))
	sort.Sort(natural.StringSlice(names))
	return names
}

// New creates a control of the named variant.
func (c *Catalogue) New(name string, opts ...forms.Option) (*forms.Control, error) {
	v, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return forms.New(v, opts...), nil
}

func (c *Catalogue) build(spec VariantSpec) (forms.Variant, error) {
	if spec.Name == "" {
		return forms.Variant{}, errors.New("theme: variant without a name")
	}
	var v forms.Variant
	if spec.Base != "" {
		base, ok := c.variants[spec.Base]
		if !ok {
			return forms.Variant{}, fmt.Errorf("%w: %q (base of %q)", ErrUnknownVariant, spec.Base, spec.Name)
		}
		v = base
	}
	v.Name = spec.Name

	wrap := func(field string, err error) error {
		return fmt.Errorf("theme: variant %q: %s: %w", spec.Name, field, err)
	}
	var err error
	if v.DefaultSize, err = sizeOr(spec.Size, v.DefaultSize); err != nil {
		return v, wrap("size", err)
	}
	if v.DefaultMinimumSize, err = sizeOr(spec.MinimumSize, v.DefaultMinimumSize); err != nil {
		return v, wrap("minimum_size", err)
	}
	if v.DefaultMaximumSize, err = sizeOr(spec.MaximumSize, v.DefaultMaximumSize); err != nil {
		return v, wrap("maximum_size", err)
	}
	if v.BorderDelta, err = sizeOr(spec.Border, v.BorderDelta); err != nil {
		return v, wrap("border", err)
	}
	if v.DefaultMargin, err = edgesOr(spec.Margin, v.DefaultMargin); err != nil {
		return v, wrap("margin", err)
	}
	if v.DefaultPadding, err = edgesOr(spec.Padding, v.DefaultPadding); err != nil {
		return v, wrap("padding", err)
	}
	for _, name := range spec.Styles {
		flag, ok := forms.ParseControlStyle(name)
		if !ok {
			return v, wrap("styles", fmt.Errorf("unknown style %q", name))
		}
		v.Styles |= flag
	}
	if spec.TopLevel != nil {
		v.TopLevel = *spec.TopLevel
	}
	if spec.BackColor != "" {
		if v.DefaultBackColor, err = forms.ParseColor(spec.BackColor); err != nil {
			return v, wrap("back_color", err)
		}
	}
	if spec.BackShade != nil {
		if v.DefaultBackColor, err = shade(v.DefaultBackColor, *spec.BackShade); err != nil {
			return v, wrap("back_shade", err)
		}
	}
	if spec.ForeColor != "" {
		if v.DefaultForeColor, err = forms.ParseColor(spec.ForeColor); err != nil {
			return v, wrap("fore_color", err)
		}
	}
	if spec.Font != nil {
		f := forms.NewFont(spec.Font.Family, spec.Font.Size)
		if spec.Font.Bold {
			f.Style |= forms.FontBold
		}
		if spec.Font.Italic {
			f.Style |= forms.FontItalic
		}
		if spec.Font.Underline {
			f.Style |= forms.FontUnderline
		}
		v.DefaultFont = f
	}
	if spec.Cursor != "" {
		cur, ok := forms.CursorByName(spec.Cursor)
		if !ok {
			return v, wrap("cursor", fmt.Errorf("unknown cursor %q", spec.Cursor))
		}
		v.DefaultCursor = cur
	}
	return v, nil
}

// shade blends base, or the process-wide default when base is empty,
// towards the spec's color.
func shade(base forms.Color, spec ShadeSpec) (forms.Color, error) {
	if spec.Amount < 0 || spec.Amount > 1 {
		return base, fmt.Errorf("amount %v outside [0, 1]", spec.Amount)
	}
	toward, err := forms.ParseColor(spec.Toward)
	if err != nil {
		return base, err
	}
	if toward.IsEmpty() {
		return base, errors.New("toward color required")
	}
	if base.IsEmpty() {
		base = forms.DefaultBackColor()
	}
	return base.Blend(toward, spec.Amount), nil
}

func sizeOr(vals []int, fallback forms.Size) (forms.Size, error) {
	switch len(vals) {
	case 0:
		return fallback, nil
	case 2:
		return forms.NewSize(vals[0], vals[1]), nil
	default:
		return fallback, fmt.Errorf("want [width, height], got %d values", len(vals))
	}
}

// edgesOr accepts one value for all sides or four in left, top, right,
// bottom order.
func edgesOr(vals []int, fallback forms.Padding) (forms.Padding, error) {
	switch len(vals) {
	case 0:
		return fallback, nil
	case 1:
		return forms.PaddingAll(vals[0]), nil
	case 4:
		return forms.PaddingLTRB(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return fallback, fmt.Errorf("want 1 or 4 values, got %d", len(vals))
	}
}
