package forms

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Dispose tears down c and its subtree: children first, then the native
// handle, then c leaves its parent and raises Disposed.
//
// From the moment disposal starts, change notifications on c are suppressed.
// Setters keep updating stored state, so a Disposed handler may still write
// and read properties. Errors from the handle provider are collected and
// returned together.
func (c *Control) Dispose() error {
	if c.disposing {
		return nil
	}
	c.disposing = true

	var err error
	for _, ch := range slices.Clone(c.children) {
		err = multierr.Append(err, ch.Dispose())
	}
	if derr := c.destroyHandle(); derr != nil {
		err = multierr.Append(err, fmt.Errorf("destroy handle of %s: %w", c, derr))
	}
	if c.parent != nil {
		c.parent.Controls().Remove(c)
	}
	c.disposed = true
	if err != nil {
		c.log.Debug("dispose failed", zap.Error(err))
	}
	c.Disposed.invoke(c, EventArgs{})
	return err
}

// IsDisposed reports whether Dispose has completed.
func (c *Control) IsDisposed() bool {
	return c.disposed
}

// Disposing reports whether disposal has started.
func (c *Control) Disposing() bool {
	return c.disposing
}
