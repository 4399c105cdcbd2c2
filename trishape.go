// A triangle shape for Go.
//
// This package builds the closed path of a triangle that fills a rectangle.
// The triangle's two base angles can be fixed, or derived from where the apex
// should sit along the top edge; the apex angle is whatever remains. The path
// is scaled to fit the rectangle without distorting those angles.
//
// Bad angles never cause an error. The shape logs a warning and draws the
// default triangle instead. See SetLogger.
package trishape

import (
	"log/slog"

	"github.com/osuushi/trishape/advanced"
	"github.com/osuushi/trishape/internal"
)

type Point = advanced.Point
type Rect = advanced.Rect
type Angle = advanced.Angle
type Path = advanced.Path
type Triangle = advanced.Triangle

var (
	Degrees = advanced.Degrees
	Radians = advanced.Radians
	NewRect = advanced.NewRect
)

// The default triangle: apex at the top center, base along the bottom.
func New() Triangle {
	return advanced.New()
}

// A triangle with the given bottom left and bottom right angles. Angles that
// don't leave room for an apex give the default triangle.
func NewWithAngles(angleA, angleB Angle) Triangle {
	return advanced.NewWithAngles(angleA, angleB)
}

// A triangle with its apex at fraction p (0 to 1) along the top edge.
func NewWithApexPlacement(p float64) Triangle {
	return advanced.NewWithApexPlacement(p)
}

// Route the package's diagnostics to l. By default nothing is logged; nil
// restores that.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

func Logger() *slog.Logger {
	return internal.Logger()
}
