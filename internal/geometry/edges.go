package geometry

// Edges represents values for four sides of a box.
// It backs both Padding and Margin.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeLTRB creates Edges in left, top, right, bottom order.
func EdgeLTRB(l, t, r, b int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Normalize returns e unchanged when every edge is non-negative, and the
// zero Edges otherwise. A single negative edge empties all four.
func (e Edges) Normalize() Edges {
	if e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 {
		return Edges{}
	}
	return e
}
