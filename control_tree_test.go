package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_TopologyRejected(t *testing.T) {
	type tc struct {
		apply func(root, mid, leaf *Control) error
	}

	tests := map[string]tc{
		"self parent": {
			apply: func(_, mid, _ *Control) error { return mid.SetParent(mid) },
		},
		"add to itself": {
			apply: func(_, mid, _ *Control) error { return mid.Controls().Add(mid) },
		},
		"parent to child": {
			apply: func(root, mid, _ *Control) error { return mid.Controls().Add(root) },
		},
		"parent to grandchild": {
			apply: func(root, _, leaf *Control) error { return root.SetParent(leaf) },
		},
		"nil child": {
			apply: func(root, _, _ *Control) error { return root.Controls().Add(nil) },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, mid, leaf := named("root"), named("mid"), named("leaf")
			tree(root, mid)
			tree(mid, leaf)

			var tr trace
			tr.watch(root, mid, leaf)

			err := tt.apply(root, mid, leaf)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTopology))

			var argErr *ArgumentError
			require.ErrorAs(t, err, &argErr)

			assert.Nil(t, root.Parent())
			assert.Same(t, root, mid.Parent())
			assert.Same(t, mid, leaf.Parent())
			assert.Equal(t, []*Control{mid}, root.Children())
			assert.Equal(t, []*Control{leaf}, mid.Children())
			assert.Empty(t, tr.entries)
		})
	}
}

func TestTree_TopLevel(t *testing.T) {
	form := New(FormVariant)
	assert.True(t, form.TopLevel())

	panel := New(PanelVariant)
	err := panel.Controls().Add(form)
	require.ErrorIs(t, err, ErrInvalidTopology)
	assert.Nil(t, form.Parent())

	// A form can still own children.
	require.NoError(t, form.Controls().Add(panel))
	assert.Same(t, form, panel.Parent())

	err = panel.SetTopLevel(true)
	require.ErrorIs(t, err, ErrInvalidTopology)
	assert.False(t, panel.TopLevel())

	require.NoError(t, form.SetTopLevel(false))
	other := NewControl()
	require.NoError(t, other.Controls().Add(form))
}

func TestTree_AddRangeIsAtomic(t *testing.T) {
	parent := named("parent")
	a, b := named("a"), named("b")
	form := New(FormVariant, WithName("form"))

	var tr trace
	tr.watch(parent, a, b)

	err := parent.Controls().AddRange(a, b, form)
	require.ErrorIs(t, err, ErrInvalidTopology)
	assert.Zero(t, parent.Controls().Len())
	assert.Nil(t, a.Parent())
	assert.Empty(t, tr.entries)

	require.NoError(t, parent.Controls().AddRange(a, b))
	assert.Equal(t, []*Control{a, b}, parent.Children())
	assert.Equal(t, []string{
		"a.ParentChanged",
		"parent.ControlAdded(a)",
		"parent.Layout(a,Parent)",
		"b.ParentChanged",
		"parent.ControlAdded(b)",
		"parent.Layout(b,Parent)",
	}, tr.entries)
}

func TestTree_AddNotificationOrder(t *testing.T) {
	parent := named("parent")
	parent.SetBackColor(Red)
	child := named("child")
	grandchild := named("grandchild")
	tree(child, grandchild)

	var tr trace
	tr.watch(parent, child, grandchild)
	require.NoError(t, child.SetParent(parent))

	assert.Equal(t, []string{
		"child.ParentChanged",
		"child.BackColorChanged",
		"grandchild.BackColorChanged",
		"parent.ControlAdded(child)",
		"parent.Layout(child,Parent)",
	}, tr.entries)
	assert.Equal(t, Red, grandchild.BackColor())
}

func TestTree_AddKeepsExplicitValues(t *testing.T) {
	parent := named("parent")
	parent.SetBackColor(Red)
	child := named("child")
	child.SetBackColor(Blue)

	var tr trace
	tr.watch(child)
	require.NoError(t, parent.Controls().Add(child))

	assert.Equal(t, Blue, child.BackColor())
	assert.Zero(t, tr.count("child.BackColorChanged"))
	assert.Equal(t, 1, tr.count("child.ParentChanged"))
}

func TestTree_Reparent(t *testing.T) {
	oldParent, newParent := named("old"), named("new")
	newParent.SetForeColor(Blue)
	child := named("child")
	tree(oldParent, child)

	var tr trace
	tr.watch(oldParent, newParent, child)
	require.NoError(t, newParent.Controls().Add(child))

	assert.Equal(t, 1, tr.count("child.ParentChanged"))
	assert.Equal(t, 1, tr.count("child.ForeColorChanged"))
	assert.Equal(t, 1, tr.count("old.ControlRemoved(child)"))
	assert.Equal(t, 1, tr.count("new.ControlAdded(child)"))
	assert.Empty(t, oldParent.Children())
	assert.Same(t, newParent, child.Parent())

	tr.reset()
	require.NoError(t, newParent.Controls().Add(child))
	assert.Empty(t, tr.entries, "adding to the current parent is a no-op")
}

func TestTree_Remove(t *testing.T) {
	parent := named("parent")
	parent.SetBackColor(Red)
	a, b, c := named("a"), named("b"), named("c")
	tree(parent, a, b, c)

	var tr trace
	tr.watch(parent, b)

	assert.True(t, parent.Controls().Remove(b))
	assert.Equal(t, []*Control{a, c}, parent.Children())
	assert.Nil(t, b.Parent())
	assert.Equal(t, DefaultBackColor(), b.BackColor())
	assert.Equal(t, []string{
		"b.ParentChanged",
		"b.BackColorChanged",
		"parent.ControlRemoved(b)",
		"parent.Layout(b,Parent)",
	}, tr.entries)

	assert.False(t, parent.Controls().Remove(b))
	assert.False(t, parent.Controls().Remove(nil))
	assert.False(t, parent.Controls().RemoveAt(5))

	assert.True(t, parent.Controls().RemoveAt(0))
	assert.Equal(t, []*Control{c}, parent.Children())

	require.NoError(t, c.SetParent(nil))
	assert.Zero(t, parent.Controls().Len())
	require.NoError(t, c.SetParent(nil))
}

func TestTree_Clear(t *testing.T) {
	parent := named("parent")
	a, b := named("a"), named("b")
	tree(parent, a, b)

	var tr trace
	tr.watch(parent)
	parent.Controls().Clear()

	assert.Zero(t, parent.Controls().Len())
	assert.Equal(t, []string{"parent.ControlRemoved(b)", "parent.ControlRemoved(a)"}, tr.matching("ControlRemoved"))
}

func TestTree_CollectionQueries(t *testing.T) {
	parent := NewControl()
	a, b := NewControl(), NewControl()
	tree(parent, a, b)
	stranger := NewControl()

	cc := parent.Controls()
	assert.Equal(t, 2, cc.Len())
	assert.Same(t, b, cc.At(1))
	assert.Equal(t, 1, cc.IndexOf(b))
	assert.Equal(t, -1, cc.IndexOf(stranger))
	assert.True(t, cc.Contains(a))
	assert.False(t, cc.Contains(stranger))

	grandchild := NewControl()
	tree(a, grandchild)
	assert.True(t, parent.Contains(grandchild))
	assert.True(t, parent.Contains(parent))
	assert.False(t, b.Contains(grandchild))
}

func TestTree_SetChildIndex(t *testing.T) {
	parent := New(PanelVariant, WithName("parent"))
	a := New(ButtonVariant, WithName("a"))
	b := New(ButtonVariant, WithName("b"))
	tree(parent, a, b)
	require.NoError(t, a.SetDock(DockTop))
	require.NoError(t, b.SetDock(DockTop))

	// The last child sits nearest the edge.
	assert.Equal(t, 0, b.Top())
	assert.Equal(t, b.Height(), a.Top())

	var tr trace
	tr.watch(parent)
	assert.True(t, parent.Controls().SetChildIndex(b, 0))
	assert.Equal(t, []*Control{b, a}, parent.Children())
	assert.Equal(t, []string{"parent.Layout(b,ChildIndex)"}, tr.entries)
	assert.Equal(t, 0, a.Top())
	assert.Equal(t, a.Height(), b.Top())

	assert.True(t, parent.Controls().SetChildIndex(b, 99))
	assert.Equal(t, []*Control{a, b}, parent.Children())

	assert.False(t, parent.Controls().SetChildIndex(NewControl(), 0))
}
