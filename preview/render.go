package preview

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/trishape/advanced"
	"github.com/osuushi/trishape/internal"
	"github.com/pkg/errors"
)

// Style says how to paint a triangle. A nil color skips that layer.
type Style struct {
	Background color.Color
	Fill       color.Color
	Stroke     color.Color
	LineWidth  float64
}

// Green border on white.
func DefaultStyle() Style {
	return Style{
		Background: color.White,
		Stroke:     color.RGBA{0, 0xc0, 0, 0xff},
		LineWidth:  10,
	}
}

func (s Style) strokes() bool {
	return s.Stroke != nil && s.LineWidth > 0
}

// The path the stroke follows: the shape pulled in by half the line width.
func (s Style) borderPath(shape advanced.Triangle, rect internal.Rect) internal.Path {
	return shape.Inset(s.LineWidth / 2).Path(rect)
}

// Render the shape into a width by height image.
func Render(shape advanced.Triangle, width, height int, style Style) image.Image {
	dc := gg.NewContext(width, height)
	if style.Background != nil {
		dc.SetColor(style.Background)
		dc.Clear()
	}

	rect := internal.NewRect(0, 0, float64(width), float64(height))
	if style.Fill != nil {
		tracePath(dc, shape.Path(rect))
		dc.SetColor(style.Fill)
		dc.Fill()
	}
	if style.strokes() {
		tracePath(dc, style.borderPath(shape, rect))
		dc.SetColor(style.Stroke)
		dc.SetLineWidth(style.LineWidth)
		dc.SetLineJoinRound()
		dc.Stroke()
	}
	return dc.Image()
}

func RenderFill(shape advanced.Triangle, width, height int, fill color.Color) image.Image {
	return Render(shape, width, height, Style{Fill: fill})
}

func RenderStrokeBorder(shape advanced.Triangle, width, height int, stroke color.Color, lineWidth float64) image.Image {
	return Render(shape, width, height, Style{Stroke: stroke, LineWidth: lineWidth})
}

func tracePath(dc *gg.Context, path internal.Path) {
	dc.NewSubPath()
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case internal.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case internal.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case internal.Close:
			dc.ClosePath()
		}
	}
}

func EncodePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(gg.NewContextForImage(img).EncodePNG(w), "encoding png")
}

func SavePNG(filename string, img image.Image) error {
	return errors.Wrapf(gg.NewContextForImage(img).SavePNG(filename), "saving %s", filename)
}

// Print the image inline in the terminal. Only iTerm-compatible terminals
// understand this.
func Show(w io.Writer, img image.Image) error {
	return errors.Wrap(imgcat.CatImage(img, w), "showing preview")
}
