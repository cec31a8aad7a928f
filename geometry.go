// geometry.go re-exports geometry types from internal/geometry.
// Any changes to internal/geometry types must be mirrored here.
package forms

import "github.com/grindlemire/go-forms/internal/geometry"

// Point represents an x/y coordinate.
type Point = geometry.Point

// Size represents a width/height pair.
type Size = geometry.Size

// Rect represents a rectangle with position and dimensions.
type Rect = geometry.Rect

// Padding represents spacing on four sides. It backs both Padding and Margin.
type Padding = geometry.Edges

// AnchorStyles names the container edges a child tracks when the container resizes.
type AnchorStyles = geometry.AnchorStyles

const (
	AnchorNone   = geometry.AnchorNone
	AnchorTop    = geometry.AnchorTop
	AnchorBottom = geometry.AnchorBottom
	AnchorLeft   = geometry.AnchorLeft
	AnchorRight  = geometry.AnchorRight
	AnchorAll    = geometry.AnchorAll
)

// DockStyle selects the container edge a child is stretched along.
type DockStyle = geometry.DockStyle

const (
	DockNone   = geometry.DockNone
	DockTop    = geometry.DockTop
	DockBottom = geometry.DockBottom
	DockLeft   = geometry.DockLeft
	DockRight  = geometry.DockRight
	DockFill   = geometry.DockFill
)

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geometry.NewRect(x, y, width, height)
}

// NewSize creates a Size.
func NewSize(width, height int) Size {
	return geometry.NewSize(width, height)
}

// PaddingAll creates a Padding with the same value on all sides.
func PaddingAll(n int) Padding {
	return geometry.EdgeAll(n)
}

// PaddingLTRB creates a Padding in left, top, right, bottom order.
func PaddingLTRB(l, t, r, b int) Padding {
	return geometry.EdgeLTRB(l, t, r, b)
}
