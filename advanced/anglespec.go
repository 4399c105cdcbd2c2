package advanced

import (
	"fmt"
	"math"

	"github.com/osuushi/trishape/internal"
)

type AngleKind uint8

const (
	AngleUnset AngleKind = iota
	AngleFixed
	AnglePlacement
)

func (k AngleKind) String() string {
	switch k {
	case AngleUnset:
		return "unset"
	case AngleFixed:
		return "fixed"
	case AnglePlacement:
		return "placement"
	}
	return fmt.Sprintf("AngleKind(%d)", uint8(k))
}

// Which base corner of the triangle an angle belongs to.
type Corner uint8

const (
	LeftCorner Corner = iota
	RightCorner
)

// AngleSpec describes one base angle of a triangle. It is either unset, a
// fixed angle, or derived from the rectangle the triangle is drawn into so that
// the apex lands at a given fraction along the top edge. Nothing is computed
// until Eval is given a concrete rectangle.
type AngleSpec struct {
	kind      AngleKind
	angle     Angle
	placement float64
	corner    Corner
}

func Unset() AngleSpec {
	return AngleSpec{}
}

func Fixed(angle Angle) AngleSpec {
	return AngleSpec{kind: AngleFixed, angle: angle}
}

// The base angle at corner that puts the apex at horizontal fraction p of the
// rect's top edge. p is clamped to [0, 1]; NaN means centered.
func FromPlacement(p float64, corner Corner) AngleSpec {
	if math.IsNaN(p) {
		p = 0.5
	}
	return AngleSpec{
		kind:      AnglePlacement,
		placement: internal.Clamp(p, 0, 1),
		corner:    corner,
	}
}

func (s AngleSpec) Kind() AngleKind {
	return s.kind
}

// The clamped placement fraction. Zero unless Kind is AnglePlacement.
func (s AngleSpec) Placement() float64 {
	return s.placement
}

func (s AngleSpec) Eval(rect Rect) (Angle, bool) {
	switch s.kind {
	case AngleFixed:
		return s.angle, true
	case AnglePlacement:
		run := s.placement
		if s.corner == RightCorner {
			run = 1 - s.placement
		}
		// A zero run divides to +Inf, and atan of that is a right angle: the apex
		// sits directly above this corner.
		return internal.Radians(math.Atan(rect.Height / (rect.Width * run))), true
	}
	return Angle{}, false
}

func (s AngleSpec) String() string {
	switch s.kind {
	case AngleFixed:
		return s.angle.String()
	case AnglePlacement:
		side := "left"
		if s.corner == RightCorner {
			side = "right"
		}
		return fmt.Sprintf("apex@%g (%s)", s.placement, side)
	}
	return "unset"
}
