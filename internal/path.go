package internal

import (
	"fmt"
	"math"
	"strings"
)

// PathElement is one of MoveTo, LineTo or Close. Only straight edges exist;
// triangles never need curves.
type PathElement interface {
	isPathElement()
}

type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close the current subpath with an edge back to its first point.
type Close struct{}

func (Close) isPathElement() {}

// Path is built with MoveTo/LineTo/Close. The zero value is an empty path
// ready to use. Transform returns a new path, so a Path that has been handed
// out is never changed underneath its holder.
type Path struct {
	elements []PathElement
}

func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
}

func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
}

func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// A closed polygon path through the given points.
func Polygon(points ...Point) Path {
	var path Path
	for i, pt := range points {
		if i == 0 {
			path.MoveTo(pt)
		} else {
			path.LineTo(pt)
		}
	}
	if len(points) > 0 {
		path.Close()
	}
	return path
}

func (p Path) Elements() []PathElement {
	result := make([]PathElement, len(p.elements))
	copy(result, p.elements)
	return result
}

func (p Path) IsEmpty() bool {
	return len(p.elements) == 0
}

func (p Path) IsClosed() bool {
	if len(p.elements) == 0 {
		return false
	}
	_, ok := p.elements[len(p.elements)-1].(Close)
	return ok
}

// The vertices of the path in order. The implicit closing edge does not
// repeat the first point.
func (p Path) Points() []Point {
	points := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			points = append(points, e.Point)
		case LineTo:
			points = append(points, e.Point)
		}
	}
	return points
}

// The vertices as a triangle. ok is false unless the path has exactly three.
func (p Path) Triangle() (tri Triangle, ok bool) {
	points := p.Points()
	if len(points) != 3 {
		return tri, false
	}
	return Triangle{points[0], points[1], points[2]}, true
}

// Tight bounding box of the vertices. Empty paths give the zero Rect.
func (p Path) Bounds() Rect {
	points := p.Points()
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (p Path) Transform(m Matrix) Path {
	result := Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(m.TransformPoint(e.Point))
		case LineTo:
			result.LineTo(m.TransformPoint(e.Point))
		case Close:
			result.Close()
		}
	}
	return result
}

func (p Path) Offset(dx, dy float64) Path {
	return p.Transform(Translate(dx, dy))
}

// SVG path data, e.g. "M0,100 L50,0 L100,100 Z".
func (p Path) String() string {
	parts := make([]string, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			parts = append(parts, fmt.Sprintf("M%g,%g", e.Point.X, e.Point.Y))
		case LineTo:
			parts = append(parts, fmt.Sprintf("L%g,%g", e.Point.X, e.Point.Y))
		case Close:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

// Twice the signed area of the triangle. Positive when the vertices wind
// clockwise on screen (Y down).
func (tri Triangle) SignedArea() float64 {
	return (tri.B.X-tri.A.X)*(tri.C.Y-tri.A.Y) - (tri.C.X-tri.A.X)*(tri.B.Y-tri.A.Y)
}

// Interior angles at A, B and C.
func (tri Triangle) InteriorAngles() [3]Angle {
	return [3]Angle{
		AngleBetween(tri.A, tri.B, tri.C),
		AngleBetween(tri.B, tri.C, tri.A),
		AngleBetween(tri.C, tri.A, tri.B),
	}
}
