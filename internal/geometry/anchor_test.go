package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorStyles_Normalize(t *testing.T) {
	type tc struct {
		in       AnchorStyles
		expected AnchorStyles
	}

	tests := map[string]tc{
		"none":             {in: AnchorNone, expected: AnchorNone},
		"top left":         {in: AnchorTop | AnchorLeft, expected: AnchorTop | AnchorLeft},
		"all":              {in: AnchorAll, expected: AnchorAll},
		"negative":         {in: -1, expected: AnchorAll},
		"just past domain": {in: 16, expected: AnchorAll},
		"high bit":         {in: 1 << 20, expected: AnchorAll},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Normalize())
		})
	}
}

func TestReanchor(t *testing.T) {
	info := AnchorInfo{
		Bounds:  NewRect(10, 10, 20, 20),
		Display: NewRect(0, 0, 100, 100),
	}
	grown := NewRect(0, 0, 150, 120)

	type tc struct {
		anchor   AnchorStyles
		expected Rect
	}

	tests := map[string]tc{
		"top left stays":      {anchor: AnchorDefault, expected: NewRect(10, 10, 20, 20)},
		"right moves":         {anchor: AnchorTop | AnchorRight, expected: NewRect(60, 10, 20, 20)},
		"left right stretch":  {anchor: AnchorTop | AnchorLeft | AnchorRight, expected: NewRect(10, 10, 70, 20)},
		"all stretch":         {anchor: AnchorAll, expected: NewRect(10, 10, 70, 40)},
		"bottom moves":        {anchor: AnchorBottom | AnchorLeft, expected: NewRect(10, 30, 20, 20)},
		"none keeps centered": {anchor: AnchorNone, expected: NewRect(35, 20, 20, 20)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reanchor(tt.anchor, info, grown))
		})
	}
}

func TestReanchor_ShrinkNeverNegative(t *testing.T) {
	info := AnchorInfo{Bounds: NewRect(0, 0, 10, 10), Display: NewRect(0, 0, 100, 100)}

	got := Reanchor(AnchorAll, info, NewRect(0, 0, 50, 50))
	assert.Equal(t, Size{}, got.Size())
}
