package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_CreatedOnce(t *testing.T) {
	p := &fakeProvider{}
	c := named("c", WithHandleProvider(p))

	var tr trace
	tr.watch(c)

	assert.False(t, c.IsHandleCreated())
	assert.Equal(t, HandleStateNotCreated, c.HandleState())

	h := c.Handle()
	assert.NotZero(t, h)
	assert.Equal(t, h, c.Handle())
	c.CreateControl()

	assert.True(t, c.IsHandleCreated())
	assert.Equal(t, 1, tr.count("c.HandleCreated"))
	assert.Equal(t, []string{"c"}, p.created)
}

func TestHandle_MutationNeverCreates(t *testing.T) {
	c := NewControl()
	c.SetBounds(1, 2, 3, 4)
	c.SetBackColor(Red)
	c.SetFont(NewFont("Consolas", 9))
	c.SetText("hello")
	c.SetStyle(StyleUserPaint, true)
	_ = c.BackColor()
	_ = c.IsHandleCreated()

	assert.False(t, c.IsHandleCreated())
}

func TestHandle_CreateControlParentsFirst(t *testing.T) {
	p := &fakeProvider{}
	root := named("root", WithHandleProvider(p))
	a, b := named("a"), named("b")
	aa := named("aa")
	tree(root, a, b)
	tree(a, aa)

	root.CreateControl()

	assert.Equal(t, []string{"root", "a", "aa", "b"}, p.created, "children inherit the provider")
	for _, c := range []*Control{root, a, aa, b} {
		assert.True(t, c.IsHandleCreated(), c.Name())
	}
}

func TestHandle_DefaultProviderIsSequential(t *testing.T) {
	a, b := NewControl(), NewControl()
	ha, hb := a.Handle(), b.Handle()
	assert.Greater(t, uint64(hb), uint64(ha))
	assert.NotNil(t, DefaultHandleProvider())
}

func TestHandle_BackColorInvalidation(t *testing.T) {
	type tc struct {
		transparentStyle bool
		color            Color
		created          bool
		expected         int
	}

	tests := map[string]tc{
		"not created never invalidates": {
			color:    Red,
			expected: 0,
		},
		"opaque color": {
			color: Red, created: true,
			expected: 1,
		},
		"transparent without style": {
			color: Transparent, created: true,
			expected: 1,
		},
		"transparent with style": {
			transparentStyle: true,
			color:            Transparent, created: true,
			expected: 0,
		},
		"translucent with style": {
			transparentStyle: true,
			color:            ARGB(128, 10, 20, 30), created: true,
			expected: 0,
		},
		"opaque with style": {
			transparentStyle: true,
			color:            Blue, created: true,
			expected: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := &fakeProvider{}
			c := named("c", WithHandleProvider(p))
			c.SetStyle(StyleSupportsTransparentBackColor, tt.transparentStyle)
			if tt.created {
				c.CreateControl()
			}

			var tr trace
			tr.watch(c)
			c.SetBackColor(tt.color)

			assert.Equal(t, 1, tr.count("c.BackColorChanged"))
			assert.Equal(t, tt.expected, tr.count("c.Invalidated"))
			assert.Len(t, p.invalidated, tt.expected)
		})
	}
}

func TestHandle_InheritedColorInvalidatesChildren(t *testing.T) {
	parent := named("parent")
	child := named("child")
	tree(parent, child)
	parent.CreateControl()

	var tr trace
	tr.watch(parent, child)
	parent.SetForeColor(Red)

	assert.Equal(t, 1, tr.count("parent.Invalidated"))
	assert.Equal(t, 1, tr.count("child.Invalidated"))
}

func TestHandle_ResizeRedraw(t *testing.T) {
	type tc struct {
		resizeRedraw bool
		apply        func(c *Control)
		expected     int
	}

	tests := map[string]tc{
		"resize with flag": {
			resizeRedraw: true,
			apply:        func(c *Control) { c.SetSize(40, 40) },
			expected:     1,
		},
		"move with flag": {
			resizeRedraw: true,
			apply:        func(c *Control) { c.SetLocation(40, 40) },
			expected:     0,
		},
		"resize without flag": {
			apply:    func(c *Control) { c.SetSize(40, 40) },
			expected: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := named("c", WithBounds(0, 0, 10, 10))
			c.SetStyle(StyleResizeRedraw, tt.resizeRedraw)
			c.CreateControl()

			var tr trace
			tr.watch(c)
			tt.apply(c)
			assert.Equal(t, tt.expected, tr.count("c.Invalidated"))
		})
	}
}

func TestHandle_InvalidateRect(t *testing.T) {
	p := &fakeProvider{}
	c := NewControl(WithHandleProvider(p), WithBounds(0, 0, 50, 50))

	c.InvalidateRect(NewRect(1, 1, 2, 2))
	assert.Empty(t, p.invalidated)

	c.CreateControl()
	var got []Rect
	c.Invalidated.Add(func(_ *Control, a InvalidateEventArgs) {
		got = append(got, a.Rect)
	})
	c.InvalidateRect(NewRect(1, 1, 2, 2))
	c.Invalidate()

	require.Len(t, got, 2)
	assert.Equal(t, NewRect(1, 1, 2, 2), got[0])
	assert.Equal(t, c.ClientRectangle(), got[1])
	assert.Equal(t, got, p.invalidated)
}
