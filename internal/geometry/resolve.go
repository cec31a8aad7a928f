package geometry

// Constraints are the per-axis size limits of a control.
// A zero axis means the axis is unconstrained.
type Constraints struct {
	Minimum Size
	Maximum Size
}

// Constrain clamps negative axes to 0 and then applies the maximum and the
// minimum per axis. When both limits are set and conflict, the minimum wins.
func (c Constraints) Constrain(s Size) Size {
	s = s.NonNegative()
	s.Width = constrainAxis(s.Width, c.Minimum.Width, c.Maximum.Width)
	s.Height = constrainAxis(s.Height, c.Minimum.Height, c.Maximum.Height)
	return s
}

func constrainAxis(v, lo, hi int) int {
	if hi > 0 && v > hi {
		v = hi
	}
	if lo > 0 && v < lo {
		v = lo
	}
	return v
}

// Resolve computes the effective bounds for a requested rectangle.
// Location is passed through untouched; only the size is constrained.
func Resolve(requested Rect, c Constraints) Rect {
	s := c.Constrain(requested.Size())
	return Rect{X: requested.X, Y: requested.Y, Width: s.Width, Height: s.Height}
}

// ClientSize returns the client area for an outer size and border delta.
func ClientSize(outer, borderDelta Size) Size {
	return outer.Sub(borderDelta).NonNegative()
}

// OuterSize returns the outer size for a requested client size.
func OuterSize(client, borderDelta Size) Size {
	return client.Add(borderDelta)
}
