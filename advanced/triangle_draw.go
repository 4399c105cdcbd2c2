package advanced

import (
	"fmt"
	"image"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/trishape/dbg"
)

// This is for debugging purposes only

// Padding around the rect so the outline of the triangle isn't clipped
const dbgDrawPadding = 20

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle <%s> { A: %s, B: %s, inset: %g }",
		t.Mode(), t.angleA, t.angleB, t.insetAmount)
}

// Readable name for the triangle, colored by how it picks its angles. Names
// follow the variable, not the value: two copies of the same triangle get
// different names.
func (t *Triangle) DbgName() string {
	name := dbg.Name(t)
	switch t.Mode() {
	case ModeFixed:
		name = aurora.Green(name).String()
	case ModePlacement:
		name = aurora.Yellow(name).String()
	default:
		name = aurora.Cyan(name).String()
	}
	return name
}

// Draw the rect, the inset rect and the triangle inside them, each vertex
// labeled with its interior angle.
func (t Triangle) dbgImage(rect Rect, scale float64) image.Image {
	width := int(scale*rect.Width) + dbgDrawPadding*2
	height := int(scale*rect.Height) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Push()
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-rect.X, -rect.Y)

	c.SetLineWidth(1)
	c.SetRGB(0.4, 0.4, 0.4)
	c.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	c.Stroke()

	inset := rect.Inset(t.insetAmount, t.insetAmount)
	c.SetRGB(0.8, 0.8, 0)
	c.DrawRectangle(inset.X, inset.Y, inset.Width, inset.Height)
	c.Stroke()

	path := t.Path(rect)
	points := path.Points()
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGBA(0, 0.5, 0, 0.7)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()

	var labels [3]string
	if tri, ok := path.Triangle(); ok {
		for i, angle := range tri.InteriorAngles() {
			labels[i] = fmt.Sprintf("%.1f°", angle.Degrees())
		}
	}
	// Text is drawn unscaled, so map the vertices to canvas space first.
	screen := make([]Point, len(points))
	for i, p := range points {
		x, y := c.TransformPoint(p.X, p.Y)
		screen[i] = Point{X: x, Y: y}
	}
	c.Pop()

	c.SetRGB(1, 1, 1)
	for i, p := range screen {
		c.DrawStringAnchored(labels[i], p.X, p.Y, 0.5, 0.5)
	}
	return c.Image()
}

// Draw and print the triangle in the terminal (iTerm only).
func (t Triangle) dbgDraw(rect Rect, scale float64) {
	if err := imgcat.CatImage(t.dbgImage(rect, scale), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "dbgDraw:", err)
	}
}
