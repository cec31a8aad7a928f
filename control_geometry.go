package forms

import "github.com/grindlemire/go-forms/internal/geometry"

// Bounds returns the position and size of the control relative to its
// parent's client area.
func (c *Control) Bounds() Rect {
	return c.bounds
}

// Location returns the top-left corner of the control.
func (c *Control) Location() Point {
	return c.bounds.Location()
}

// Size returns the outer size of the control.
func (c *Control) Size() Size {
	return c.bounds.Size()
}

func (c *Control) Left() int   { return c.bounds.X }
func (c *Control) Top() int    { return c.bounds.Y }
func (c *Control) Width() int  { return c.bounds.Width }
func (c *Control) Height() int { return c.bounds.Height }
func (c *Control) Right() int  { return c.bounds.Right() }
func (c *Control) Bottom() int { return c.bounds.Bottom() }

// ClientSize returns the size of the client area: the outer size minus the
// variant's border delta.
func (c *Control) ClientSize() Size {
	return c.clientSize
}

// ClientRectangle returns the client area in client coordinates.
func (c *Control) ClientRectangle() Rect {
	return Rect{Width: c.clientSize.Width, Height: c.clientSize.Height}
}

// DisplayRectangle returns the area children are arranged in: the client
// rectangle minus Padding.
func (c *Control) DisplayRectangle() Rect {
	return c.ClientRectangle().Inset(c.padding)
}

// SetBounds requests new bounds. Negative sizes clamp to 0, then the maximum
// and minimum size apply per axis. A docked control inside a container takes
// the bounds its dock slot dictates instead.
//
// When the effective bounds change the control raises, in order: Layout on
// itself, Layout on its parent, Resize, SizeChanged and ClientSizeChanged if
// the size changed, Move and LocationChanged if the location changed.
func (c *Control) SetBounds(x, y, width, height int) {
	c.setBounds(NewRect(x, y, width, height), true)
}

// SetLocation moves the control.
func (c *Control) SetLocation(x, y int) {
	c.SetBounds(x, y, c.bounds.Width, c.bounds.Height)
}

// SetSize resizes the control.
func (c *Control) SetSize(width, height int) {
	c.SetBounds(c.bounds.X, c.bounds.Y, width, height)
}

func (c *Control) SetLeft(x int)        { c.SetBounds(x, c.bounds.Y, c.bounds.Width, c.bounds.Height) }
func (c *Control) SetTop(y int)         { c.SetBounds(c.bounds.X, y, c.bounds.Width, c.bounds.Height) }
func (c *Control) SetWidth(width int)   { c.SetBounds(c.bounds.X, c.bounds.Y, width, c.bounds.Height) }
func (c *Control) SetHeight(height int) { c.SetBounds(c.bounds.X, c.bounds.Y, c.bounds.Width, height) }

// SetClientSize resizes the control so its client area has the requested
// size, adding the border delta back before resolving bounds.
func (c *Control) SetClientSize(width, height int) {
	outer := geometry.OuterSize(NewSize(width, height), c.variant.BorderDelta)
	c.SetSize(outer.Width, outer.Height)
}

// MinimumSize returns the lower size limit. A zero axis is unconstrained.
func (c *Control) MinimumSize() Size {
	return c.minimumSize
}

// SetMinimumSize sets the lower size limit and re-resolves the bounds.
func (c *Control) SetMinimumSize(s Size) {
	s = s.NonNegative()
	if c.minimumSize == s {
		return
	}
	c.minimumSize = s
	c.setBounds(c.bounds, false)
}

// MaximumSize returns the upper size limit. A zero axis is unconstrained.
func (c *Control) MaximumSize() Size {
	return c.maximumSize
}

// SetMaximumSize sets the upper size limit and re-resolves the bounds.
func (c *Control) SetMaximumSize(s Size) {
	s = s.NonNegative()
	if c.maximumSize == s {
		return
	}
	c.maximumSize = s
	c.setBounds(c.bounds, false)
}

// Margin returns the space kept around the control.
func (c *Control) Margin() Padding {
	return c.margin
}

// SetMargin sets the margin. A value with any negative edge becomes empty.
func (c *Control) SetMargin(m Padding) {
	m = m.Normalize()
	if c.margin == m {
		return
	}
	c.margin = m
	c.notifyLayoutChanged("Margin", &c.MarginChanged)
}

// Padding returns the space kept inside the control around its children.
func (c *Control) Padding() Padding {
	return c.padding
}

// SetPadding sets the padding. A value with any negative edge becomes empty.
func (c *Control) SetPadding(p Padding) {
	p = p.Normalize()
	if c.padding == p {
		return
	}
	c.padding = p
	c.notifyLayoutChanged("Padding", &c.PaddingChanged)
}

// Dock returns the dock style.
func (c *Control) Dock() DockStyle {
	return c.dock
}

// SetDock sets the dock style. Any style other than DockNone also resets
// Anchor to Top|Left; returning to DockNone leaves Anchor as it is.
func (c *Control) SetDock(d DockStyle) error {
	if !d.IsValid() {
		return invalidEnum(int(d), "DockStyle")
	}
	if c.dock == d {
		return nil
	}
	c.dock = d
	if d != DockNone {
		c.anchor = AnchorTop | AnchorLeft
	} else {
		c.captureAnchor()
	}
	c.notifyLayoutChanged("Dock", &c.DockChanged)
	return nil
}

// Anchor returns the anchor flags.
func (c *Control) Anchor() AnchorStyles {
	return c.anchor
}

// SetAnchor sets the anchor flags. Values outside the four-flag domain
// normalize to all four edges.
func (c *Control) SetAnchor(a AnchorStyles) {
	a = a.Normalize()
	if c.anchor == a {
		return
	}
	c.anchor = a
	c.captureAnchor()
	c.notifyLayoutChanged("Anchor", nil)
}

func (c *Control) constraints() geometry.Constraints {
	return geometry.Constraints{Minimum: c.minimumSize, Maximum: c.maximumSize}
}

func (c *Control) dockManaged() bool {
	return c.dock != DockNone && c.parent != nil && c.visible
}

// setBounds resolves requested and applies the result. userSpecified marks
// bounds chosen by the caller rather than a layout pass; those become the new
// anchor snapshot.
func (c *Control) setBounds(requested Rect, userSpecified bool) {
	r := geometry.Resolve(requested, c.constraints())
	if c.dockManaged() {
		r = c.parent.dockSlot(c, r)
	}
	c.applyBounds(r, userSpecified)
}

// applyBounds commits already-resolved bounds and raises the bounds cascade.
func (c *Control) applyBounds(r Rect, userSpecified bool) {
	old := c.bounds
	if r == old {
		return
	}
	c.bounds = r
	c.clientSize = geometry.ClientSize(r.Size(), c.variant.BorderDelta)
	if userSpecified {
		c.captureAnchor()
	}
	c.notifyBoundsChanged(old)
}

// dockSlot returns the bounds the dock pass gives child when child requests r.
func (c *Control) dockSlot(child *Control, r Rect) Rect {
	items := c.dockItems()
	for i, ch := range c.children {
		if ch == child {
			items[i].Bounds = r
			return geometry.Dock(c.DisplayRectangle(), items)[i]
		}
	}
	return r
}

func (c *Control) dockItems() []geometry.DockItem {
	items := make([]geometry.DockItem, len(c.children))
	for i, ch := range c.children {
		items[i] = geometry.DockItem{Dock: ch.dock, Bounds: ch.bounds}
		if !ch.visible {
			items[i].Dock = DockNone
		}
	}
	return items
}

// captureAnchor records the snapshot an anchored control is re-positioned
// from when its container changes size.
func (c *Control) captureAnchor() {
	if c.parent == nil {
		c.anchored = false
		return
	}
	c.anchorInfo = geometry.AnchorInfo{Bounds: c.bounds, Display: c.parent.DisplayRectangle()}
	c.anchored = true
}
