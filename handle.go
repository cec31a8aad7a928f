package forms

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Handle is the opaque identifier of a native resource.
type Handle uintptr

// HandleProvider is the native windowing collaborator. The engine calls it;
// it never implements native behavior itself.
type HandleProvider interface {
	CreateHandle(c *Control) Handle
	DestroyHandle(c *Control, h Handle) error
	Invalidate(c *Control, region Rect)
}

// counterProvider hands out sequential handles and ignores invalidation.
type counterProvider struct {
	next atomic.Uintptr
}

func (p *counterProvider) CreateHandle(*Control) Handle {
	return Handle(p.next.Add(1))
}

func (p *counterProvider) DestroyHandle(*Control, Handle) error { return nil }

func (p *counterProvider) Invalidate(*Control, Rect) {}

var defaultProvider HandleProvider = &counterProvider{}

// DefaultHandleProvider returns the provider used by controls that have none
// configured on themselves or an ancestor.
func DefaultHandleProvider() HandleProvider {
	return defaultProvider
}

func (c *Control) handleProvider() HandleProvider {
	for n := c; n != nil; n = n.parent {
		if n.provider != nil {
			return n.provider
		}
	}
	return defaultProvider
}

// HandleState returns whether the native handle exists.
func (c *Control) HandleState() HandleState {
	return c.handleState
}

// IsHandleCreated reports whether the native handle exists. It never creates
// the handle.
func (c *Control) IsHandleCreated() bool {
	return c.handleState == HandleStateCreated
}

// Handle returns the native handle, creating it on first access.
func (c *Control) Handle() Handle {
	c.createHandle()
	return c.handle
}

// CreateControl creates the handles of c and of all its descendants,
// parents first.
func (c *Control) CreateControl() {
	c.createHandle()
	for _, ch := range c.children {
		ch.CreateControl()
	}
}

func (c *Control) createHandle() {
	if c.handleState == HandleStateCreated {
		return
	}
	c.handle = c.handleProvider().CreateHandle(c)
	c.handleState = HandleStateCreated
	c.log.Debug("handle created", zap.Uint64("handle", uint64(c.handle)))
	raise(c, &c.HandleCreated, EventArgs{})
}

// destroyHandle releases the native handle, if any.
func (c *Control) destroyHandle() error {
	if c.handleState != HandleStateCreated {
		return nil
	}
	h := c.handle
	err := c.handleProvider().DestroyHandle(c, h)
	c.handle = 0
	c.handleState = HandleStateNotCreated
	c.log.Debug("handle destroyed", zap.Uint64("handle", uint64(h)), zap.Error(err))
	c.HandleDestroyed.invoke(c, EventArgs{})
	return err
}

// Invalidate requests a repaint of the whole client area. It does nothing
// while the handle does not exist or the control is being disposed.
func (c *Control) Invalidate() {
	c.InvalidateRect(c.ClientRectangle())
}

// InvalidateRect requests a repaint of region.
func (c *Control) InvalidateRect(region Rect) {
	if c.handleState != HandleStateCreated || c.disposing {
		return
	}
	c.handleProvider().Invalidate(c, region)
	c.Invalidated.invoke(c, InvalidateEventArgs{Rect: region})
}
