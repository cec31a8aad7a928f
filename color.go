package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 32-bit ARGB color.
// The zero value is the empty color, which BackColor and ForeColor treat as
// "inherit".
type Color struct {
	a, r, g, b uint8
	set        bool
}

// ARGB returns a Color from alpha, red, green and blue components.
func ARGB(a, r, g, b uint8) Color {
	return Color{a: a, r: r, g: g, b: b, set: true}
}

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return ARGB(255, r, g, b)
}

var (
	Transparent = ARGB(0, 255, 255, 255)
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 128, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Gray        = RGB(128, 128, 128)

	// System palette.
	ControlColor     = RGB(240, 240, 240)
	ControlTextColor = RGB(0, 0, 0)
	WindowColor      = RGB(255, 255, 255)
	WindowTextColor  = RGB(0, 0, 0)
)

var namedColors = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"gray":        Gray,
	"control":     ControlColor,
	"controltext": ControlTextColor,
	"window":      WindowColor,
	"windowtext":  WindowTextColor,
}

// ParseColor parses a named color ("red", "control"), "#RGB", "#RRGGBB", or
// "#AARRGGBB". The empty string yields the empty color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, nil
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 9 {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("forms: invalid color %q: %w", s, err)
		}
		c, err := parseHex("#" + s[3:])
		if err != nil {
			return Color{}, err
		}
		return ARGB(uint8(a), c.r, c.g, c.b), nil
	}
	return parseHex(s)
}

func parseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("forms: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// IsEmpty reports whether c is the empty color.
func (c Color) IsEmpty() bool {
	return !c.set
}

// IsTransparent reports whether c is a set color with any transparency.
func (c Color) IsTransparent() bool {
	return c.set && c.a < 255
}

// A returns the alpha component.
func (c Color) A() uint8 { return c.a }

// R returns the red component.
func (c Color) R() uint8 { return c.r }

// G returns the green component.
func (c Color) G() uint8 { return c.g }

// B returns the blue component.
func (c Color) B() uint8 { return c.b }

// Blend mixes c towards other in Lab space by t in [0, 1]. Alpha is taken
// from c. Blending with an empty color returns c.
func (c Color) Blend(other Color, t float64) Color {
	if c.IsEmpty() || other.IsEmpty() {
		return c
	}
	from := colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}
	to := colorful.Color{R: float64(other.r) / 255, G: float64(other.g) / 255, B: float64(other.b) / 255}
	r, g, b := from.BlendLab(to, t).Clamped().RGB255()
	return ARGB(c.a, r, g, b)
}

func (c Color) String() string {
	if c.IsEmpty() {
		return "Color[Empty]"
	}
	if c.a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.a, c.r, c.g, c.b)
}
