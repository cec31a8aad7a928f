package forms

import (
	"fmt"
	"slices"
)

// Property identifies an ambient property: one a control either sets
// explicitly or inherits.
type Property int

const (
	PropBackColor Property = iota
	PropForeColor
	PropFont
	PropCursor
	PropRightToLeft
	PropImeMode
	PropBindingContext
)

// AmbientPropertyList lists every ambient property in the order change
// events are raised when several change at once.
var AmbientPropertyList = []Property{
	PropBackColor, PropForeColor, PropFont, PropCursor,
	PropRightToLeft, PropImeMode, PropBindingContext,
}

// siteProperties are the ambient properties a Site's ambient bag can supply.
var siteProperties = []Property{PropBackColor, PropForeColor, PropCursor, PropFont}

func (p Property) String() string {
	if p >= 0 && int(p) < len(ambientDescriptors) {
		return ambientDescriptors[p].name
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// ParseProperty maps a property name such as "BackColor" to its Property.
func ParseProperty(name string) (Property, bool) {
	for p, d := range ambientDescriptors {
		if d.name == name {
			return Property(p), true
		}
	}
	return 0, false
}

// ambientDescriptor describes how one property resolves and notifies.
type ambientDescriptor struct {
	name     string
	changed  func(c *Control) *Event[EventArgs]
	fromSite func(a *AmbientProperties) (any, bool)
	fallback func(c *Control) any
	// inherits reports whether v is the sentinel that clears the override.
	inherits func(v any) bool
}

var ambientDescriptors = [...]ambientDescriptor{
	PropBackColor: {
		name:    "BackColor",
		changed: func(c *Control) *Event[EventArgs] { return &c.BackColorChanged },
		fromSite: func(a *AmbientProperties) (any, bool) {
			return a.BackColor, !a.BackColor.IsEmpty()
		},
		fallback: func(c *Control) any { return c.variant.backColor() },
		inherits: func(v any) bool { return v.(Color).IsEmpty() },
	},
	PropForeColor: {
		name:    "ForeColor",
		changed: func(c *Control) *Event[EventArgs] { return &c.ForeColorChanged },
		fromSite: func(a *AmbientProperties) (any, bool) {
			return a.ForeColor, !a.ForeColor.IsEmpty()
		},
		fallback: func(c *Control) any { return c.variant.foreColor() },
		inherits: func(v any) bool { return v.(Color).IsEmpty() },
	},
	PropFont: {
		name:    "Font",
		changed: func(c *Control) *Event[EventArgs] { return &c.FontChanged },
		fromSite: func(a *AmbientProperties) (any, bool) {
			return a.Font, !a.Font.IsZero()
		},
		fallback: func(c *Control) any { return c.variant.font() },
		inherits: func(v any) bool { return v.(Font).IsZero() },
	},
	PropCursor: {
		name:    "Cursor",
		changed: func(c *Control) *Event[EventArgs] { return &c.CursorChanged },
		fromSite: func(a *AmbientProperties) (any, bool) {
			return a.Cursor, !a.Cursor.IsZero()
		},
		fallback: func(c *Control) any { return c.variant.cursor() },
		inherits: func(v any) bool { return v.(Cursor).IsZero() },
	},
	PropRightToLeft: {
		name:     "RightToLeft",
		changed:  func(c *Control) *Event[EventArgs] { return &c.RightToLeftChanged },
		fallback: func(*Control) any { return defaultRightToLeft },
		inherits: func(v any) bool { return v.(RightToLeft) == RightToLeftInherit },
	},
	PropImeMode: {
		name:     "ImeMode",
		changed:  func(c *Control) *Event[EventArgs] { return &c.ImeModeChanged },
		fallback: func(*Control) any { return defaultImeMode },
		inherits: func(v any) bool { return v.(ImeMode) == ImeModeInherit },
	},
	PropBindingContext: {
		name:     "BindingContext",
		changed:  func(c *Control) *Event[EventArgs] { return &c.BindingContextChanged },
		fallback: func(*Control) any { return (*BindingContext)(nil) },
		inherits: func(v any) bool { return v.(*BindingContext) == nil },
	},
}

// resolve returns the effective value of p for c: the explicit override,
// else the site's ambient bag, else the parent's value, else the default.
func (c *Control) resolve(p Property) any {
	d := &ambientDescriptors[p]
	for n := c; n != nil; n = n.parent {
		if v, ok := n.overrides[p]; ok {
			return v
		}
		if d.fromSite != nil && n.site != nil {
			if bag := n.site.AmbientProperties(); bag != nil {
				if v, ok := d.fromSite(bag); ok {
					return v
				}
			}
		}
		if n.parent == nil {
			return d.fallback(n)
		}
	}
	return d.fallback(c)
}

// hasOverride reports whether c holds an explicit value for p.
func (c *Control) hasOverride(p Property) bool {
	_, ok := c.overrides[p]
	return ok
}

// ambientSnapshot is the resolved value of one property on one control,
// taken before a mutation. While the snapshot is pending, every Changed
// raised for that control and property moves value forward, so a handler
// that changes the value first leaves nothing for the outer pass to report.
type ambientSnapshot struct {
	control *Control
	value   any
}

// snapshot records the resolved value of p on c and on every descendant
// that inherits p, in pre-order and child declaration order. Descendants
// holding an override are left out, but their own descendants are visited.
func (c *Control) snapshot(p Property) []*ambientSnapshot {
	var out []*ambientSnapshot
	var walk func(n *Control, root bool)
	walk = func(n *Control, root bool) {
		if root || !n.hasOverride(p) {
			s := &ambientSnapshot{control: n, value: n.resolve(p)}
			if n.pending == nil {
				n.pending = make(map[Property][]*ambientSnapshot)
			}
			n.pending[p] = append(n.pending[p], s)
			out = append(out, s)
		}
		for _, ch := range n.children {
			walk(ch, false)
		}
	}
	walk(c, true)
	return out
}

// propagate compares every snapshot with the current resolved value and
// raises the change notifications for those that differ.
func propagate(p Property, snaps []*ambientSnapshot) {
	defer release(p, snaps)
	for _, s := range snaps {
		now := s.control.resolve(p)
		if now != s.value {
			s.control.onAmbientChanged(p, now)
		}
	}
}

func release(p Property, snaps []*ambientSnapshot) {
	for _, s := range snaps {
		n := s.control
		n.pending[p] = slices.DeleteFunc(n.pending[p], func(o *ambientSnapshot) bool { return o == s })
		if len(n.pending[p]) == 0 {
			delete(n.pending, p)
		}
	}
}

// snapshotAll snapshots every property in props.
func (c *Control) snapshotAll(props []Property) map[Property][]*ambientSnapshot {
	out := make(map[Property][]*ambientSnapshot, len(props))
	for _, p := range props {
		out[p] = c.snapshot(p)
	}
	return out
}

func propagateAll(props []Property, snaps map[Property][]*ambientSnapshot) {
	for _, p := range props {
		propagate(p, snaps[p])
	}
}

// onAmbientChanged raises the Changed event for p and the side effects tied
// to the property.
func (c *Control) onAmbientChanged(p Property, now any) {
	for _, s := range c.pending[p] {
		s.value = now
	}
	raise(c, ambientDescriptors[p].changed(c), EventArgs{})
	switch p {
	case PropBackColor:
		col := now.(Color)
		if !(col.IsTransparent() && c.GetStyle(StyleSupportsTransparentBackColor)) {
			c.Invalidate()
		}
	case PropForeColor:
		c.Invalidate()
	case PropFont:
		args := LayoutEventArgs{AffectedControl: c, AffectedProperty: "Font"}
		c.performLayout(args)
		c.requestParentLayout(args)
	}
}

// setAmbient stores v as the explicit value of p on c, or clears the
// override when v is the inherit sentinel, and notifies c and every
// inheriting descendant whose resolved value changed.
func (c *Control) setAmbient(p Property, v any) {
	snaps := c.snapshot(p)
	if ambientDescriptors[p].inherits(v) {
		delete(c.overrides, p)
	} else {
		c.overrides[p] = v
	}
	propagate(p, snaps)
}

// BackColor returns the resolved background color.
func (c *Control) BackColor() Color {
	return c.resolve(PropBackColor).(Color)
}

// SetBackColor sets the background color. The empty color clears the
// override so the value is inherited again.
func (c *Control) SetBackColor(col Color) {
	c.setAmbient(PropBackColor, col)
}

// ForeColor returns the resolved foreground color.
func (c *Control) ForeColor() Color {
	return c.resolve(PropForeColor).(Color)
}

// SetForeColor sets the foreground color. The empty color clears the override.
func (c *Control) SetForeColor(col Color) {
	c.setAmbient(PropForeColor, col)
}

// Font returns the resolved font.
func (c *Control) Font() Font {
	return c.resolve(PropFont).(Font)
}

// SetFont sets the font. The zero Font clears the override.
func (c *Control) SetFont(f Font) {
	c.setAmbient(PropFont, f)
}

// Cursor returns the resolved cursor.
func (c *Control) Cursor() Cursor {
	return c.resolve(PropCursor).(Cursor)
}

// SetCursor sets the cursor. The zero Cursor clears the override.
func (c *Control) SetCursor(cur Cursor) {
	c.setAmbient(PropCursor, cur)
}

// RightToLeft returns the resolved right-to-left setting. It is never
// RightToLeftInherit.
func (c *Control) RightToLeft() RightToLeft {
	return c.resolve(PropRightToLeft).(RightToLeft)
}

// SetRightToLeft sets the right-to-left setting. RightToLeftInherit clears
// the override.
func (c *Control) SetRightToLeft(r RightToLeft) error {
	if !r.valid() {
		return invalidEnum(int(r), "RightToLeft")
	}
	c.setAmbient(PropRightToLeft, r)
	return nil
}

// ImeMode returns the resolved input method mode. It is never ImeModeInherit.
func (c *Control) ImeMode() ImeMode {
	return c.resolve(PropImeMode).(ImeMode)
}

// SetImeMode sets the input method mode. ImeModeInherit clears the override.
func (c *Control) SetImeMode(m ImeMode) error {
	if !m.valid() {
		return invalidEnum(int(m), "ImeMode")
	}
	c.setAmbient(PropImeMode, m)
	return nil
}

// BindingContext returns the resolved binding context, or nil when no
// control up the chain has one.
func (c *Control) BindingContext() *BindingContext {
	return c.resolve(PropBindingContext).(*BindingContext)
}

// SetBindingContext sets the binding context. nil clears the override.
func (c *Control) SetBindingContext(b *BindingContext) {
	c.setAmbient(PropBindingContext, b)
}
