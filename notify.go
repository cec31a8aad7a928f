package forms

import (
	"slices"

	"go.uber.org/zap"

	"github.com/grindlemire/go-forms/internal/geometry"
)

// Every mutation that affects geometry or appearance goes through this file:
// the caller commits the new state only when the resolved value changed, then
// the notifier raises the property's events, Layout on the control, and a
// layout pass on the parent. The unchanged-value guard in each setter is what
// keeps handlers that mutate further properties from recursing forever.

// notifyBoundsChanged raises the bounds cascade after c moved from old to
// its current bounds.
func (c *Control) notifyBoundsChanged(old Rect) {
	now := c.bounds
	args := LayoutEventArgs{AffectedControl: c, AffectedProperty: "Bounds"}
	c.performLayout(args)
	c.requestParentLayout(args)

	if old.SizeChanged(now) {
		raise(c, &c.Resize, EventArgs{})
		raise(c, &c.SizeChanged, EventArgs{})
		raise(c, &c.ClientSizeChanged, EventArgs{})
		if c.GetStyle(StyleResizeRedraw) {
			c.Invalidate()
		}
	}
	if old.LocationChanged(now) {
		raise(c, &c.Move, EventArgs{})
		raise(c, &c.LocationChanged, EventArgs{})
	}
}

// notifyLayoutChanged raises changed (if any), Layout on c, and a layout
// pass on the parent, all naming property.
func (c *Control) notifyLayoutChanged(property string, changed *Event[EventArgs]) {
	if changed != nil {
		raise(c, changed, EventArgs{})
	}
	args := LayoutEventArgs{AffectedControl: c, AffectedProperty: property}
	c.performLayout(args)
	c.requestParentLayout(args)
}

// requestParentLayout asks the parent for a layout pass unless the parent is
// the one currently arranging c.
func (c *Control) requestParentLayout(args LayoutEventArgs) {
	p := c.parent
	if p == nil || c.disposing || p.layoutDepth > 0 {
		return
	}
	p.performLayout(args)
}

// performLayout raises Layout on c and then arranges its children.
func (c *Control) performLayout(args LayoutEventArgs) {
	if c.disposing {
		return
	}
	if c.layoutSuspend > 0 {
		c.layoutPending = true
		return
	}
	if ce := c.log.Check(zap.DebugLevel, "layout pass"); ce != nil {
		fields := []zap.Field{zap.String("property", args.AffectedProperty)}
		if args.AffectedControl != nil {
			fields = append(fields, zap.Stringer("affected", args.AffectedControl))
		}
		ce.Write(fields...)
	}

	c.Layout.invoke(c, args)

	c.layoutDepth++
	defer func() { c.layoutDepth-- }()
	c.arrange()
}

// arrange runs the dock pass and then the anchor pass over the children.
func (c *Control) arrange() {
	if len(c.children) == 0 {
		return
	}
	kids := slices.Clone(c.children)
	display := c.DisplayRectangle()
	rects := geometry.Dock(display, c.dockItems())

	for i, ch := range kids {
		if !ch.visible || ch.parent != c {
			continue
		}
		if ch.dock != DockNone {
			ch.applyBounds(rects[i], false)
			continue
		}
		if ch.anchored && ch.anchor != AnchorTop|AnchorLeft {
			r := geometry.Reanchor(ch.anchor, ch.anchorInfo, display)
			ch.applyBounds(geometry.Resolve(r, ch.constraints()), false)
		}
	}
}

// SuspendLayout defers layout passes on c until the matching ResumeLayout.
// Calls nest.
func (c *Control) SuspendLayout() {
	c.layoutSuspend++
}

// ResumeLayout ends one SuspendLayout. When the last suspension ends and a
// pass was requested meanwhile, a single pass runs if performLayout is true.
func (c *Control) ResumeLayout(performLayout bool) {
	if c.layoutSuspend > 0 {
		c.layoutSuspend--
	}
	if c.layoutSuspend > 0 {
		return
	}
	pending := c.layoutPending
	c.layoutPending = false
	if performLayout && pending {
		c.performLayout(LayoutEventArgs{})
	}
}

// IsLayoutSuspended reports whether layout passes are currently deferred.
func (c *Control) IsLayoutSuspended() bool {
	return c.layoutSuspend > 0
}

// PerformLayout forces a layout pass with no affected control.
func (c *Control) PerformLayout() {
	c.performLayout(LayoutEventArgs{})
}

// PerformLayoutFor forces a layout pass naming the affected control and
// property.
func (c *Control) PerformLayoutFor(affected *Control, property string) {
	c.performLayout(LayoutEventArgs{AffectedControl: affected, AffectedProperty: property})
}
