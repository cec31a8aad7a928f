package forms

import (
	"fmt"
	"strings"
)

// trace records the notifications raised by a set of watched controls as
// "name.Event" strings, in the order they were raised.
type trace struct {
	entries []string
}

func (tr *trace) add(s string) {
	tr.entries = append(tr.entries, s)
}

func (tr *trace) reset() {
	tr.entries = nil
}

// count returns how many entries equal entry.
func (tr *trace) count(entry string) int {
	n := 0
	for _, e := range tr.entries {
		if e == entry {
			n++
		}
	}
	return n
}

// matching returns the entries containing substr, in order.
func (tr *trace) matching(substr string) []string {
	var out []string
	for _, e := range tr.entries {
		if strings.Contains(e, substr) {
			out = append(out, e)
		}
	}
	return out
}

// watch subscribes to every event of each control. Controls are identified
// by Name in the recorded entries.
func (tr *trace) watch(controls ...*Control) {
	for _, c := range controls {
		name := c.Name()
		c.Layout.Add(func(_ *Control, a LayoutEventArgs) {
			tr.add(fmt.Sprintf("%s.Layout(%s,%s)", name, nameOf(a.AffectedControl), a.AffectedProperty))
		})
		for ev, e := range c.ByName() {
			e.Add(func(*Control, EventArgs) {
				tr.add(name + "." + ev)
			})
		}
		c.Invalidated.Add(func(*Control, InvalidateEventArgs) {
			tr.add(name + ".Invalidated")
		})
		c.ControlAdded.Add(func(_ *Control, a ControlEventArgs) {
			tr.add(fmt.Sprintf("%s.ControlAdded(%s)", name, nameOf(a.Control)))
		})
		c.ControlRemoved.Add(func(_ *Control, a ControlEventArgs) {
			tr.add(fmt.Sprintf("%s.ControlRemoved(%s)", name, nameOf(a.Control)))
		})
	}
}

func nameOf(c *Control) string {
	if c == nil {
		return "<nil>"
	}
	return c.Name()
}

// fakeProvider records every call the engine makes on the native collaborator.
type fakeProvider struct {
	next        Handle
	created     []string
	destroyed   []string
	invalidated []Rect
	destroyErr  error
}

func (p *fakeProvider) CreateHandle(c *Control) Handle {
	p.next++
	p.created = append(p.created, c.Name())
	return p.next
}

func (p *fakeProvider) DestroyHandle(c *Control, _ Handle) error {
	p.destroyed = append(p.destroyed, c.Name())
	return p.destroyErr
}

func (p *fakeProvider) Invalidate(_ *Control, region Rect) {
	p.invalidated = append(p.invalidated, region)
}

// named creates a plain control with the given name.
func named(name string, opts ...Option) *Control {
	return NewControl(append([]Option{WithName(name)}, opts...)...)
}

// tree builds parent with children added in order.
func tree(parent *Control, children ...*Control) *Control {
	if err := parent.Controls().AddRange(children...); err != nil {
		panic(err)
	}
	return parent
}
