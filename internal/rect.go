package internal

import "fmt"

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// A rect with no area can't host a shape. NaN sizes count as empty.
func (r Rect) IsEmpty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Shrink the rect by dx on the left and right, and dy on the top and bottom.
// Negative values grow it. If a dimension would go negative, it collapses to
// zero around the original center instead.
func (r Rect) Inset(dx, dy float64) Rect {
	result := Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
	if result.Width < 0 {
		result.X = r.MidX()
		result.Width = 0
	}
	if result.Height < 0 {
		result.Y = r.MidY()
		result.Height = 0
	}
	return result
}

// Height over width. Infinite for zero-width rects.
func (r Rect) AspectRatio() float64 {
	return r.Height / r.Width
}

func (r Rect) Equal(other Rect) bool {
	return Equal(r.X, other.X) && Equal(r.Y, other.Y) &&
		Equal(r.Width, other.Width) && Equal(r.Height, other.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X, r.Y, r.Width, r.Height)
}
