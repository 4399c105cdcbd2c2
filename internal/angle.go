package internal

import (
	"fmt"
	"math"
)

// Angle is stored in radians. Use Degrees and Radians to build one so the unit
// is always explicit at the call site.
type Angle struct {
	radians float64
}

// Half turn. All three angles of a triangle sum to this.
var Straight = Degrees(180)

func Degrees(d float64) Angle {
	return Angle{d * math.Pi / 180}
}

func Radians(r float64) Angle {
	return Angle{r}
}

func (a Angle) Radians() float64 {
	return a.radians
}

func (a Angle) Degrees() float64 {
	return a.radians * 180 / math.Pi
}

func (a Angle) Add(b Angle) Angle {
	return Angle{a.radians + b.radians}
}

func (a Angle) Sub(b Angle) Angle {
	return Angle{a.radians - b.radians}
}

func (a Angle) Neg() Angle {
	return Angle{-a.radians}
}

func (a Angle) Less(b Angle) bool {
	return a.radians < b.radians
}

// Strictly positive, beyond float noise. An angle of 1e-9 degrees is treated
// as zero since it would put a side length through a near-zero sine.
func (a Angle) Positive() bool {
	return a.Degrees() > Tolerance
}

// Compare in degrees within tolerance.
func (a Angle) ApproxEqual(b Angle, tolerance float64) bool {
	return math.Abs(a.Degrees()-b.Degrees()) <= tolerance
}

func (a Angle) Sin() float64 {
	return math.Sin(a.radians)
}

func (a Angle) Cos() float64 {
	return math.Cos(a.radians)
}

func (a Angle) IsFinite() bool {
	return IsFinite(a.radians)
}

// Degrees, rounded so that Degrees(30) doesn't print as 29.999999999999996°.
func (a Angle) String() string {
	return fmt.Sprintf("%g°", math.Round(a.Degrees()*1e9)/1e9)
}

// The angle at vertex between the rays toward p and q.
func AngleBetween(vertex, p, q Point) Angle {
	u := p.Sub(vertex)
	v := q.Sub(vertex)
	cos := u.Dot(v) / (u.Length() * v.Length())
	return Radians(math.Acos(Clamp(cos, -1, 1)))
}
