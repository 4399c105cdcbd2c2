package advanced

import "github.com/osuushi/trishape/internal"

// Build the triangle described by angles with its base along the top edge of
// rect, as wide as rect, and the apex hanging below it.
//
//	   c
//	A ----- B
//	 b\   /a
//	    C
//
// Side c is the rect's width. The law of sines gives the other two:
// c/sin(C) = a/sin(A) = b/sin(B).
func lawOfSines(rect Rect, angles [3]Angle) Path {
	angleA, angleB, angleC := angles[0], angles[1], angles[2]

	sideC := rect.Width
	ratio := sideC / angleC.Sin()
	sideA := ratio * angleA.Sin()
	sideB := ratio * angleB.Sin()

	cornerA := Point{X: rect.MinX(), Y: rect.MinY()}
	// Walk side b from A, turned by angle A.
	apex := cornerA.Polar(sideB, angleA)
	// Then walk side a back up to B. Relative to the base, that edge leaves the
	// apex at -B.
	cornerB := apex.Polar(sideA, angleB.Neg())

	return internal.Polygon(cornerA, apex, cornerB)
}

// Flip the raw triangle so its apex points up, then scale it uniformly until
// it touches both sides of rect along one axis, centered along the other.
//
// The operations are applied in a fixed order: flip vertically, translate
// vertically, scale, translate horizontally.
func fitToRect(raw Path, rect Rect) Path {
	bounds := raw.Bounds()

	var scale float64
	if bounds.AspectRatio() < rect.AspectRatio() {
		// Fatter than the target, so width is the limit.
		scale = rect.Width / bounds.Width
	} else {
		scale = rect.Height / bounds.Height
	}

	top := rect.MinY() + (rect.Height-scale*bounds.Height)/2
	left := rect.MinX() + (rect.Width-scale*bounds.Width)/2

	// After the flip the apex sits at -bounds.MaxY(). Pick the vertical offset
	// so that once scaled it lands on top.
	dy := top/scale + bounds.MaxY()
	dx := left - scale*bounds.MinX()

	m := internal.Scale(1, -1).
		Then(internal.Translate(0, dy)).
		Then(internal.Scale(scale, scale)).
		Then(internal.Translate(dx, 0))
	return raw.Transform(m)
}
