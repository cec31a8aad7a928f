package geometry

// DockStyle selects the container edge a child is stretched along.
type DockStyle int

const (
	DockNone DockStyle = iota
	DockTop
	DockBottom
	DockLeft
	DockRight
	DockFill
)

// IsValid reports whether d is one of the defined dock styles.
func (d DockStyle) IsValid() bool {
	return d >= DockNone && d <= DockFill
}

func (d DockStyle) String() string {
	switch d {
	case DockNone:
		return "None"
	case DockTop:
		return "Top"
	case DockBottom:
		return "Bottom"
	case DockLeft:
		return "Left"
	case DockRight:
		return "Right"
	case DockFill:
		return "Fill"
	default:
		return "DockStyle(invalid)"
	}
}

// DockItem is one child taking part in a dock pass.
type DockItem struct {
	Dock   DockStyle
	Bounds Rect
}

// Dock runs the dock pass over items inside display and returns the bounds
// of every item in the same order.
//
// Items are consumed from last to first so the last declared child sits
// nearest the container edge. Top and Bottom keep their height, Left and Right
// keep their width, Fill takes whatever remains. Non-docked items are returned
// unchanged.
func Dock(display Rect, items []DockItem) []Rect {
	out := make([]Rect, len(items))
	remaining := display
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		h := item.Bounds.Height
		w := item.Bounds.Width
		switch item.Dock {
		case DockTop:
			out[i] = Rect{X: remaining.X, Y: remaining.Y, Width: remaining.Width, Height: h}
			remaining.Y += h
			remaining.Height = max(remaining.Height-h, 0)
		case DockBottom:
			out[i] = Rect{X: remaining.X, Y: remaining.Bottom() - h, Width: remaining.Width, Height: h}
			remaining.Height = max(remaining.Height-h, 0)
		case DockLeft:
			out[i] = Rect{X: remaining.X, Y: remaining.Y, Width: w, Height: remaining.Height}
			remaining.X += w
			remaining.Width = max(remaining.Width-w, 0)
		case DockRight:
			out[i] = Rect{X: remaining.Right() - w, Y: remaining.Y, Width: w, Height: remaining.Height}
			remaining.Width = max(remaining.Width-w, 0)
		case DockFill:
			out[i] = remaining
		default:
			out[i] = item.Bounds
		}
	}
	return out
}
