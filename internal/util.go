package internal

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. Angle
// sums in particular are built from trig results and rarely land exactly on
// 180 degrees.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Clamp x into [lo, hi]. NaN is passed through untouched so callers can decide
// what it means.
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// Step from p by length along the direction of angle.
func (p Point) Polar(length float64, angle Angle) Point {
	return Point{
		X: p.X + length*angle.Cos(),
		Y: p.Y + length*angle.Sin(),
	}
}
