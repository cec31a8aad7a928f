package geometry

// AnchorStyles is a flag set naming the container edges a child tracks.
type AnchorStyles int

const (
	AnchorNone   AnchorStyles = 0
	AnchorTop    AnchorStyles = 1 << 0
	AnchorBottom AnchorStyles = 1 << 1
	AnchorLeft   AnchorStyles = 1 << 2
	AnchorRight  AnchorStyles = 1 << 3

	AnchorAll     = AnchorTop | AnchorBottom | AnchorLeft | AnchorRight
	AnchorDefault = AnchorTop | AnchorLeft
)

// Normalize maps any value outside the four-flag domain to AnchorAll.
func (a AnchorStyles) Normalize() AnchorStyles {
	if a < 0 || a > AnchorAll {
		return AnchorAll
	}
	return a
}

// Has reports whether every flag in f is set.
func (a AnchorStyles) Has(f AnchorStyles) bool {
	return a&f == f
}

// AnchorInfo is the snapshot an anchored child is positioned against: its
// bounds and the container display rectangle at the time they were recorded.
type AnchorInfo struct {
	Bounds  Rect
	Display Rect
}

// Reanchor computes the bounds of an anchored child for a new container
// display rectangle.
//
// On each axis: anchored to both edges stretches with the container, anchored
// to the far edge moves with it, anchored to the near edge stays, and anchored
// to neither keeps its center relative to the container.
func Reanchor(anchor AnchorStyles, info AnchorInfo, display Rect) Rect {
	anchor = anchor.Normalize()
	x, w := reanchorAxis(anchor.Has(AnchorLeft), anchor.Has(AnchorRight),
		info.Bounds.X, info.Bounds.Width, display.X-info.Display.X, display.Width-info.Display.Width)
	y, h := reanchorAxis(anchor.Has(AnchorTop), anchor.Has(AnchorBottom),
		info.Bounds.Y, info.Bounds.Height, display.Y-info.Display.Y, display.Height-info.Display.Height)
	return Rect{X: x, Y: y, Width: max(w, 0), Height: max(h, 0)}
}

func reanchorAxis(near, far bool, pos, length, shift, grow int) (int, int) {
	pos += shift
	switch {
	case near && far:
		return pos, length + grow
	case far:
		return pos + grow, length
	case near:
		return pos, length
	default:
		return pos + grow/2, length
	}
}
