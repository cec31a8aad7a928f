package forms

import (
	"fmt"
	"strings"
)

// FontStyle is a flag set of font decorations.
type FontStyle int

const (
	FontRegular   FontStyle = 0
	FontBold      FontStyle = 1 << 0
	FontItalic    FontStyle = 1 << 1
	FontUnderline FontStyle = 1 << 2
	FontStrikeout FontStyle = 1 << 3
)

// Font describes a typeface. The zero value means "inherit".
type Font struct {
	Family string
	Size   float32
	Style  FontStyle
}

// NewFont creates a regular Font.
func NewFont(family string, size float32) Font {
	return Font{Family: family, Size: size}
}

// IsZero reports whether f is the inherit sentinel.
func (f Font) IsZero() bool {
	return f == Font{}
}

// WithStyle returns a copy of f with the given style.
func (f Font) WithStyle(style FontStyle) Font {
	f.Style = style
	return f
}

func (f Font) String() string {
	if f.IsZero() {
		return "Font[Inherit]"
	}
	return fmt.Sprintf("%s %gpt", f.Family, f.Size)
}

// Cursor names a pointer shape. The zero value means "inherit".
type Cursor struct {
	name string
}

var (
	CursorDefault = Cursor{name: "Default"}
	CursorArrow   = Cursor{name: "Arrow"}
	CursorHand    = Cursor{name: "Hand"}
	CursorIBeam   = Cursor{name: "IBeam"}
	CursorWait    = Cursor{name: "WaitCursor"}
	CursorCross   = Cursor{name: "Cross"}
)

var namedCursors = map[string]Cursor{
	"default":    CursorDefault,
	"arrow":      CursorArrow,
	"hand":       CursorHand,
	"ibeam":      CursorIBeam,
	"waitcursor": CursorWait,
	"cross":      CursorCross,
}

// CursorByName looks up a predefined cursor, case-insensitively.
func CursorByName(name string) (Cursor, bool) {
	c, ok := namedCursors[strings.ToLower(name)]
	return c, ok
}

// Name returns the cursor name, or "" for the inherit sentinel.
func (c Cursor) Name() string {
	return c.name
}

// IsZero reports whether c is the inherit sentinel.
func (c Cursor) IsZero() bool {
	return c.name == ""
}

func (c Cursor) String() string {
	if c.IsZero() {
		return "Cursor[Inherit]"
	}
	return "Cursor[" + c.name + "]"
}

// BindingContext is the container for data-binding managers shared by a
// subtree of controls. Identity matters: two contexts are equal only when
// they are the same pointer.
type BindingContext struct {
	entries map[string]any
}

// NewBindingContext creates an empty BindingContext.
func NewBindingContext() *BindingContext {
	return &BindingContext{entries: make(map[string]any)}
}

// Set stores v under key.
func (b *BindingContext) Set(key string, v any) {
	b.entries[key] = v
}

// Get returns the value stored under key.
func (b *BindingContext) Get(key string) (any, bool) {
	v, ok := b.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (b *BindingContext) Len() int {
	return len(b.entries)
}
