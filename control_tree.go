package forms

import (
	"slices"

	"go.uber.org/zap"
)

// ControlCollection is the ordered list of a control's children.
type ControlCollection struct {
	owner *Control
}

// Controls returns the children collection of c.
func (c *Control) Controls() *ControlCollection {
	return &ControlCollection{owner: c}
}

// Children returns the child controls in declaration order.
func (c *Control) Children() []*Control {
	return c.children
}

// Parent returns the parent control, or nil if this is a root.
func (c *Control) Parent() *Control {
	return c.parent
}

// TopLevel reports whether c is a top-level control that cannot be parented.
func (c *Control) TopLevel() bool {
	return c.topLevel
}

// SetTopLevel marks c as top-level. A control that already has a parent
// cannot become top-level.
func (c *Control) SetTopLevel(topLevel bool) error {
	if topLevel && c.parent != nil {
		return topologyError("a control with a parent cannot become top-level")
	}
	c.topLevel = topLevel
	return nil
}

// SetParent moves c under p, or detaches it when p is nil.
func (c *Control) SetParent(p *Control) error {
	if p == nil {
		if c.parent != nil {
			c.parent.Controls().Remove(c)
		}
		return nil
	}
	return p.Controls().Add(c)
}

// Contains reports whether child is c or one of its descendants.
func (c *Control) Contains(child *Control) bool {
	for n := child; n != nil; n = n.parent {
		if n == c {
			return true
		}
	}
	return false
}

// Add appends child. child is first removed from any previous parent.
// Adding a control to itself or to one of its own descendants, or adding a
// top-level control, is rejected and leaves the tree untouched.
func (cc *ControlCollection) Add(child *Control) error {
	if err := cc.owner.checkChild(child); err != nil {
		return err
	}
	cc.owner.adopt(child)
	return nil
}

// AddRange appends every child in order. All children are validated before
// any is added.
func (cc *ControlCollection) AddRange(children ...*Control) error {
	for _, ch := range children {
		if err := cc.owner.checkChild(ch); err != nil {
			return err
		}
	}
	for _, ch := range children {
		cc.owner.adopt(ch)
	}
	return nil
}

// Remove detaches child. Returns true if child was a child of this collection.
func (cc *ControlCollection) Remove(child *Control) bool {
	if child == nil || child.parent != cc.owner {
		return false
	}
	cc.owner.release(child, true)
	return true
}

// RemoveAt detaches the child at index i.
func (cc *ControlCollection) RemoveAt(i int) bool {
	if i < 0 || i >= len(cc.owner.children) {
		return false
	}
	return cc.Remove(cc.owner.children[i])
}

// Clear detaches every child, last first.
func (cc *ControlCollection) Clear() {
	for i := len(cc.owner.children) - 1; i >= 0; i-- {
		cc.Remove(cc.owner.children[i])
	}
}

// Len returns the number of children.
func (cc *ControlCollection) Len() int {
	return len(cc.owner.children)
}

// At returns the child at index i.
func (cc *ControlCollection) At(i int) *Control {
	return cc.owner.children[i]
}

// IndexOf returns the position of child, or -1.
func (cc *ControlCollection) IndexOf(child *Control) int {
	return slices.Index(cc.owner.children, child)
}

// Contains reports whether child is a direct child.
func (cc *ControlCollection) Contains(child *Control) bool {
	return cc.IndexOf(child) >= 0
}

// SetChildIndex moves child to index i, clamped to the valid range, and
// re-arranges the container.
func (cc *ControlCollection) SetChildIndex(child *Control, i int) bool {
	cur := cc.IndexOf(child)
	if cur < 0 {
		return false
	}
	i = max(0, min(i, len(cc.owner.children)-1))
	if i == cur {
		return true
	}
	kids := slices.Delete(cc.owner.children, cur, cur+1)
	cc.owner.children = slices.Insert(kids, i, child)
	cc.owner.performLayout(LayoutEventArgs{AffectedControl: child, AffectedProperty: "ChildIndex"})
	return true
}

// checkChild validates that child may be added to c.
func (c *Control) checkChild(child *Control) error {
	var err error
	switch {
	case child == nil:
		err = topologyError("cannot add a nil control")
	case child == c:
		err = topologyError("a control cannot be its own parent")
	case child.Contains(c):
		err = topologyError("a control cannot be added to one of its own descendants")
	case child.topLevel:
		err = topologyError("a top-level control cannot be added to a control")
	}
	if err != nil {
		c.log.Debug("rejected child", zap.Error(err))
	}
	return err
}

// adopt appends child and raises the tree change notifications: ParentChanged
// on the child, ambient changes over its subtree, ControlAdded on c, then a
// layout pass on c.
func (c *Control) adopt(child *Control) {
	if child.parent == c {
		return
	}
	snaps := child.snapshotAll(AmbientPropertyList)
	if old := child.parent; old != nil {
		old.release(child, false)
	}
	c.children = append(c.children, child)
	child.parent = c
	child.captureAnchor()

	raise(child, &child.ParentChanged, EventArgs{})
	propagateAll(AmbientPropertyList, snaps)
	raise(c, &c.ControlAdded, ControlEventArgs{Control: child})
	c.performLayout(LayoutEventArgs{AffectedControl: child, AffectedProperty: "Parent"})
}

// release detaches child from c. When notify is false the caller is moving
// child to another parent and raises the child-side notifications itself.
func (c *Control) release(child *Control, notify bool) {
	var snaps map[Property][]*ambientSnapshot
	if notify {
		snaps = child.snapshotAll(AmbientPropertyList)
	}
	if i := slices.Index(c.children, child); i >= 0 {
		c.children = slices.Delete(c.children, i, i+1)
	}
	child.parent = nil
	child.anchored = false

	if notify {
		raise(child, &child.ParentChanged, EventArgs{})
		propagateAll(AmbientPropertyList, snaps)
	}
	raise(c, &c.ControlRemoved, ControlEventArgs{Control: child})
	c.performLayout(LayoutEventArgs{AffectedControl: child, AffectedProperty: "Parent"})
}
