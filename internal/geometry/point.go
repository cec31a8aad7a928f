package geometry

// Point is a control location in its parent's client coordinates.
type Point struct {
	X, Y int
}
