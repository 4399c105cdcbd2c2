package advanced

import (
	"math"

	"github.com/osuushi/trishape/internal"
)

// Mode is how a Triangle picks its angles.
type Mode uint8

const (
	// Apex at top center, base along the bottom edge.
	ModeDefault Mode = iota
	// Both base angles are fixed; the apex angle is whatever remains.
	ModeFixed
	// Base angles are derived from the rect to place the apex.
	ModePlacement
)

func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModePlacement:
		return "placement"
	}
	return "default"
}

// Triangle is a shape that fills whatever rect it is given. Angle A is the
// bottom left corner, B the bottom right, and C the apex, which is always
// derived from the other two.
//
// Triangle is a value. Inset returns a modified copy, so a Triangle can be
// shared between goroutines and Path called concurrently.
type Triangle struct {
	angleA      AngleSpec
	angleB      AngleSpec
	insetAmount float64
}

// A triangle whose apex is centered on the top edge and whose base covers the
// bottom edge.
func New() Triangle {
	return Triangle{}
}

// A triangle with the given base angles. If they can't form a triangle, a
// warning is logged and the result is the same as New(). This never fails, so
// a bad configuration still draws something.
func NewWithAngles(angleA, angleB Angle) Triangle {
	if err := internal.ValidateAngles(angleA, angleB); err != nil {
		internal.Logger().Warn("invalid triangle angles, using default layout",
			"angleA", angleA.Degrees(),
			"angleB", angleB.Degrees(),
			"err", err,
		)
		return New()
	}
	return Triangle{angleA: Fixed(angleA), angleB: Fixed(angleB)}
}

// A triangle with its apex at fraction p along the top edge, 0 being the left
// corner and 1 the right. p is clamped to [0, 1].
func NewWithApexPlacement(p float64) Triangle {
	return Triangle{
		angleA: FromPlacement(p, LeftCorner),
		angleB: FromPlacement(p, RightCorner),
	}
}

// A triangle from explicit angle specs. A pair of fixed angles is validated
// the same way as NewWithAngles, and specs with only one side set are treated
// as unset.
func NewWithSpecs(angleA, angleB AngleSpec) Triangle {
	if angleA.Kind() == AngleUnset || angleB.Kind() == AngleUnset {
		return New()
	}
	if angleA.Kind() == AngleFixed && angleB.Kind() == AngleFixed {
		return NewWithAngles(angleA.angle, angleB.angle)
	}
	return Triangle{angleA: angleA, angleB: angleB}
}

// Check whether NewWithAngles would accept these angles.
func ValidateAngles(angleA, angleB Angle) error {
	return internal.ValidateAngles(angleA, angleB)
}

// How the triangle picks its angles. Any unset angle means the default layout.
func (t Triangle) Mode() Mode {
	switch {
	case t.angleA.Kind() == AngleUnset || t.angleB.Kind() == AngleUnset:
		return ModeDefault
	case t.angleA.Kind() == AnglePlacement || t.angleB.Kind() == AnglePlacement:
		return ModePlacement
	}
	return ModeFixed
}

func (t Triangle) AngleSpecs() (angleA, angleB AngleSpec) {
	return t.angleA, t.angleB
}

func (t Triangle) AngleA(rect Rect) (Angle, bool) {
	return t.angleA.Eval(rect)
}

func (t Triangle) AngleB(rect Rect) (Angle, bool) {
	return t.angleB.Eval(rect)
}

// The apex angle, derived as 180 minus A and B. It is only defined when both
// base angles are.
func (t Triangle) AngleC(rect Rect) (Angle, bool) {
	a, okA := t.AngleA(rect)
	b, okB := t.AngleB(rect)
	if !okA || !okB {
		return Angle{}, false
	}
	return internal.Straight.Sub(a).Sub(b), true
}

// Total inset accumulated by Inset calls.
func (t Triangle) InsetAmount() float64 {
	return t.insetAmount
}

// A copy of t drawn amount further inside its rect on every side. Insets
// accumulate, so t.Inset(3).Inset(4) is t.Inset(7). Amounts that are not
// positive are ignored; the inset only ever grows.
func (t Triangle) Inset(amount float64) Triangle {
	if amount > 0 && !math.IsInf(amount, 1) {
		t.insetAmount += amount
	}
	return t
}

// The closed triangle for rect. The vertices are, in order, the bottom left
// corner, the apex, and the bottom right corner.
//
// Angles are evaluated against rect itself, but the triangle is drawn into
// rect after the inset has been applied.
func (t Triangle) Path(rect Rect) Path {
	inset := rect.Inset(t.insetAmount, t.insetAmount)
	if angles, ok := t.angles(rect); ok && !inset.IsEmpty() {
		return fitToRect(lawOfSines(inset, angles), inset)
	}
	return defaultPath(inset)
}

// A, B and C for rect, if they are all set and form a real triangle.
func (t Triangle) angles(rect Rect) (angles [3]Angle, ok bool) {
	a, okA := t.AngleA(rect)
	b, okB := t.AngleB(rect)
	c, okC := t.AngleC(rect)
	if !okA || !okB || !okC {
		return angles, false
	}
	angles = [3]Angle{a, b, c}
	for _, angle := range angles {
		if !angle.IsFinite() || !angle.Positive() {
			return angles, false
		}
	}
	sum := a.Add(b).Add(c)
	if !sum.ApproxEqual(internal.Straight, internal.Tolerance) {
		return angles, false
	}
	return angles, true
}

func defaultPath(rect Rect) Path {
	return internal.Polygon(
		Point{X: rect.MinX(), Y: rect.MaxY()},
		Point{X: rect.MidX(), Y: rect.MinY()},
		Point{X: rect.MaxX(), Y: rect.MaxY()},
	)
}
