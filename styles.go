package forms

import (
	"cmp"
	"slices"
)

// ControlStyles is the per-control bitset of behavior flags.
type ControlStyles uint32

const (
	StyleContainerControl ControlStyles = 1 << iota
	StyleUserPaint
	StyleOpaque
	StyleResizeRedraw
	StyleFixedWidth
	StyleFixedHeight
	StyleStandardClick
	StyleSelectable
	StyleUserMouse
	StyleSupportsTransparentBackColor
	StyleStandardDoubleClick
	StyleAllPaintingInWmPaint
	StyleCacheText
	StyleEnableNotifyMessage
	StyleDoubleBuffer
	StyleOptimizedDoubleBuffer
	StyleUseTextForAccessibility
)

// doubleBufferStyles are the flags DoubleBuffered reads and writes together.
const doubleBufferStyles = StyleOptimizedDoubleBuffer | StyleAllPaintingInWmPaint

// GetStyle reports whether every flag in flag is set.
func (c *Control) GetStyle(flag ControlStyles) bool {
	return c.styles&flag == flag
}

// SetStyle sets or clears flag.
func (c *Control) SetStyle(flag ControlStyles, value bool) {
	if value {
		c.styles |= flag
	} else {
		c.styles &^= flag
	}
}

// Styles returns the full style bitset.
func (c *Control) Styles() ControlStyles {
	return c.styles
}

// DoubleBuffered reports whether painting goes through an off-screen buffer.
func (c *Control) DoubleBuffered() bool {
	return c.GetStyle(StyleOptimizedDoubleBuffer)
}

// SetDoubleBuffered toggles off-screen buffering.
func (c *Control) SetDoubleBuffered(value bool) {
	if value {
		c.SetStyle(doubleBufferStyles, true)
		return
	}
	c.SetStyle(StyleOptimizedDoubleBuffer, false)
}

var styleNames = map[string]ControlStyles{
	"ContainerControl":             StyleContainerControl,
	"UserPaint":                    StyleUserPaint,
	"Opaque":                       StyleOpaque,
	"ResizeRedraw":                 StyleResizeRedraw,
	"FixedWidth":                   StyleFixedWidth,
	"FixedHeight":                  StyleFixedHeight,
	"StandardClick":                StyleStandardClick,
	"Selectable":                   StyleSelectable,
	"UserMouse":                    StyleUserMouse,
	"SupportsTransparentBackColor": StyleSupportsTransparentBackColor,
	"StandardDoubleClick":          StyleStandardDoubleClick,
	"AllPaintingInWmPaint":         StyleAllPaintingInWmPaint,
	"CacheText":                    StyleCacheText,
	"EnableNotifyMessage":          StyleEnableNotifyMessage,
	"DoubleBuffer":                 StyleDoubleBuffer,
	"OptimizedDoubleBuffer":        StyleOptimizedDoubleBuffer,
	"UseTextForAccessibility":      StyleUseTextForAccessibility,
}

// ParseControlStyle maps a flag name such as "ResizeRedraw" to its flag.
func ParseControlStyle(name string) (ControlStyles, bool) {
	s, ok := styleNames[name]
	return s, ok
}

// StyleNames returns the names of the flags set in s, lowest bit first.
func StyleNames(s ControlStyles) []string {
	var out []string
	for name, flag := range styleNames {
		if s&flag != 0 {
			out = append(out, name)
		}
	}
	slices.SortFunc(out, func(a, b string) int {
		return cmp.Compare(styleNames[a], styleNames[b])
	})
	return out
}
