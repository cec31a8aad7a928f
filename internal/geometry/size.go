package geometry

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// NewSize creates a Size.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Add returns the per-axis sum of two sizes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the per-axis difference of two sizes.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// NonNegative returns the size with each negative axis raised to 0.
func (s Size) NonNegative() Size {
	return Size{Width: max(s.Width, 0), Height: max(s.Height, 0)}
}
