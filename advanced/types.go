package advanced

import "github.com/osuushi/trishape/internal"

type Point = internal.Point
type Rect = internal.Rect
type Angle = internal.Angle
type Path = internal.Path

var (
	Degrees = internal.Degrees
	Radians = internal.Radians
	NewRect = internal.NewRect
)

var ErrInvalidAngles = internal.ErrInvalidAngles
