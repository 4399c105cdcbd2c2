package advanced

// Helpers for checking the paths triangles produce. The rules are:
// 1. The path is closed and has exactly three finite vertices.
// 2. Every vertex lies inside the rect.
// 3. The bounding box spans the rect exactly along at least one axis.
// 4. Along the other axis it is centered.

import (
	"testing"

	"github.com/osuushi/trishape/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fitTolerance = 1e-6

func AssertFitsRect(t *testing.T, path Path, rect Rect) {
	t.Helper()
	require.True(t, path.IsClosed(), "path should be closed: %v", path)
	tri, ok := path.Triangle()
	require.True(t, ok, "path should have three vertices: %v", path)

	for _, p := range []Point{tri.A, tri.B, tri.C} {
		require.True(t, p.IsFinite(), "vertex %v is not finite in %v", p, path)
		assert.True(t, p.X >= rect.MinX()-fitTolerance && p.X <= rect.MaxX()+fitTolerance,
			"vertex %v outside %v", p, rect)
		assert.True(t, p.Y >= rect.MinY()-fitTolerance && p.Y <= rect.MaxY()+fitTolerance,
			"vertex %v outside %v", p, rect)
	}

	bounds := path.Bounds()
	fitsWidth := internal.Equal(bounds.Width, rect.Width)
	fitsHeight := internal.Equal(bounds.Height, rect.Height)
	assert.True(t, fitsWidth || fitsHeight,
		"bounds %v should span %v along one axis", bounds, rect)
	assert.InDelta(t, rect.MidX(), bounds.MidX(), fitTolerance, "not centered horizontally")
	assert.InDelta(t, rect.MidY(), bounds.MidY(), fitTolerance, "not centered vertically")
}

func AssertPointsInDelta(t *testing.T, expected []Point, actual []Point) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, fitTolerance, "x of vertex %d", i)
		assert.InDelta(t, expected[i].Y, actual[i].Y, fitTolerance, "y of vertex %d", i)
	}
}
