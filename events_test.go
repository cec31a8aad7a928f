package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Order(t *testing.T) {
	var e Event[EventArgs]
	var got []int
	for i := range 3 {
		e.Add(func(*Control, EventArgs) { got = append(got, i) })
	}
	e.invoke(nil, EventArgs{})
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 3, e.Len())
}

func TestEvent_Remove(t *testing.T) {
	var e Event[EventArgs]
	var got []string
	e.Add(func(*Control, EventArgs) { got = append(got, "a") })
	id := e.Add(func(*Control, EventArgs) { got = append(got, "b") })
	e.Add(func(*Control, EventArgs) { got = append(got, "c") })

	assert.True(t, e.Remove(id))
	assert.False(t, e.Remove(id))
	e.invoke(nil, EventArgs{})
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestEvent_MutationDuringDispatch(t *testing.T) {
	var e Event[EventArgs]
	var got []string
	var second HandlerID
	e.Add(func(*Control, EventArgs) {
		got = append(got, "first")
		e.Remove(second)
		e.Add(func(*Control, EventArgs) { got = append(got, "late") })
	})
	second = e.Add(func(*Control, EventArgs) { got = append(got, "second") })

	e.invoke(nil, EventArgs{})
	assert.Equal(t, []string{"first", "second"}, got, "dispatch uses the handlers registered at call time")

	got = nil
	e.invoke(nil, EventArgs{})
	assert.Equal(t, []string{"first", "late"}, got)
}

func TestEvent_SenderAndArgs(t *testing.T) {
	parent := named("parent")
	child := named("child")

	var sender *Control
	var args ControlEventArgs
	parent.ControlAdded.Add(func(s *Control, a ControlEventArgs) {
		sender, args = s, a
	})
	tree(parent, child)

	assert.Same(t, parent, sender)
	assert.Same(t, child, args.Control)
}

func TestEvent_HandlerMutationTerminates(t *testing.T) {
	c := named("c")
	var tr trace
	tr.watch(c)

	// A handler that writes the value it was notified about stops at the
	// unchanged-value guard.
	c.SizeChanged.Add(func(s *Control, _ EventArgs) {
		s.SetSize(s.Width(), s.Width())
	})
	c.SetSize(10, 5)

	assert.Equal(t, NewSize(10, 10), c.Size())
	assert.Equal(t, 2, tr.count("c.SizeChanged"))
}

func TestControl_TextAndVisible(t *testing.T) {
	parent := named("parent")
	c := named("c", WithText("hello"))
	tree(parent, c)

	var tr trace
	tr.watch(parent, c)

	c.SetText("hello")
	assert.Empty(t, tr.entries)
	c.SetText("world")
	assert.Equal(t, "world", c.Text())
	assert.Equal(t, []string{"c.TextChanged"}, tr.entries)

	tr.reset()
	c.SetVisible(false)
	assert.False(t, c.Visible())
	assert.Equal(t, []string{
		"c.VisibleChanged",
		"c.Layout(c,Visible)",
		"parent.Layout(c,Visible)",
	}, tr.entries)

	tr.reset()
	c.SetVisible(false)
	assert.Empty(t, tr.entries)
}

func TestControl_Identity(t *testing.T) {
	a, b := NewControl(), NewControl()
	assert.NotEqual(t, a.ID(), b.ID())

	c := New(ButtonVariant, WithName("ok"))
	assert.Equal(t, "Button/ok", c.String())
	assert.Equal(t, "Button", c.Variant().Name)

	c.SetName("cancel")
	assert.Equal(t, "cancel", c.Name())
}

func TestControl_BackgroundImageLayout(t *testing.T) {
	c := named("c")
	var tr trace
	tr.watch(c)

	assert.NoError(t, c.SetBackgroundImageLayout(BackgroundImageLayoutZoom))
	assert.NoError(t, c.SetBackgroundImageLayout(BackgroundImageLayoutZoom))
	assert.Equal(t, BackgroundImageLayoutZoom, c.BackgroundImageLayout())
	assert.Equal(t, 1, tr.count("c.BackgroundImageLayoutChanged"))

	assert.NoError(t, c.SetAccessibleRole(AccessibleRolePushButton))
	assert.Equal(t, AccessibleRolePushButton, c.AccessibleRole())
}

func TestControlEvents_ByName(t *testing.T) {
	c := NewControl()
	events := c.ByName()
	assert.Len(t, events, 22)

	seen := map[*Event[EventArgs]]string{}
	for name, e := range events {
		other, dup := seen[e]
		assert.False(t, dup, "%s and %s share an event", name, other)
		seen[e] = name
	}

	fired := 0
	events["TextChanged"].Add(func(*Control, EventArgs) { fired++ })
	c.SetText("hello")
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, c.TextChanged.Len())
}
