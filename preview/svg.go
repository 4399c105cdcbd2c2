package preview

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/osuushi/trishape/advanced"
	"github.com/osuushi/trishape/internal"
	"github.com/pkg/errors"
)

// Write the shape as a standalone SVG document, styled the same way Render
// paints it.
func WriteSVG(w io.Writer, shape advanced.Triangle, width, height float64, style Style) error {
	rect := internal.NewRect(0, 0, width, height)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	if style.Background != nil {
		fmt.Fprintf(&b, `  <rect width="%g" height="%g" fill="%s"/>`+"\n", width, height, hexColor(style.Background))
	}
	if style.Fill != nil {
		fmt.Fprintf(&b, `  <polygon points="%s" fill="%s"/>`+"\n",
			SVGPoints(shape.Path(rect)), hexColor(style.Fill))
	}
	if style.strokes() {
		fmt.Fprintf(&b, `  <polygon points="%s" fill="none" stroke="%s" stroke-width="%g" stroke-linejoin="round"/>`+"\n",
			SVGPoints(style.borderPath(shape, rect)), hexColor(style.Stroke), style.LineWidth)
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing svg")
}

// The vertices in the format of an SVG polygon's points attribute.
func SVGPoints(path internal.Path) string {
	points := path.Points()
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", n.R, n.G, n.B, float64(n.A)/0xff)
}
