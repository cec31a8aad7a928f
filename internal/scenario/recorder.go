package scenario

import (
	"fmt"

	forms "github.com/grindlemire/go-forms"
)

// Recorder collects the notifications of watched controls as
// "name.Event" lines, in the order they are raised.
type Recorder struct {
	lines []string
}

// Lines returns everything recorded so far.
func (r *Recorder) Lines() []string {
	return r.lines
}

// Note appends a free-form line.
func (r *Recorder) Note(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// Watch subscribes to every notification c raises.
func (r *Recorder) Watch(c *forms.Control) {
	name := c.Name()
	c.Layout.Add(func(_ *forms.Control, a forms.LayoutEventArgs) {
		r.Note("%s.Layout(%s,%s)", name, nameOf(a.AffectedControl), a.AffectedProperty)
	})
	for ev, e := range c.ByName() {
		e.Add(func(*forms.Control, forms.EventArgs) {
			r.Note("%s.%s", name, ev)
		})
	}
	c.ControlAdded.Add(func(_ *forms.Control, a forms.ControlEventArgs) {
		r.Note("%s.ControlAdded(%s)", name, nameOf(a.Control))
	})
	c.ControlRemoved.Add(func(_ *forms.Control, a forms.ControlEventArgs) {
		r.Note("%s.ControlRemoved(%s)", name, nameOf(a.Control))
	})
	c.Invalidated.Add(func(_ *forms.Control, a forms.InvalidateEventArgs) {
		r.Note("%s.Invalidated(%d,%d,%d,%d)", name, a.Rect.X, a.Rect.Y, a.Rect.Width, a.Rect.Height)
	})
}

func nameOf(c *forms.Control) string {
	if c == nil {
		return "-"
	}
	return c.Name()
}
