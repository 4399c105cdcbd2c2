package internal

// Geometry here uses a top-left origin with Y growing downward, matching the
// coordinate system shapes are rendered into.

type Point struct {
	X float64
	Y float64
}

// Axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// The three vertices of a triangle, in path order.
type Triangle struct {
	A, B, C Point
}
