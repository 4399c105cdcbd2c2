package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/trishape"
	"github.com/osuushi/trishape/preview"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Draws triangles into rectangles. Rectangles are given as arguments or, when
// there are none, read from stdin one per line as "x y width height".
//
// With --format=points (the default), each rectangle prints the triangle's
// vertices as "x y" lines followed by a blank line. The svg and png formats
// draw a single triangle at the size of the one rectangle given.
type options struct {
	angles    string
	apex      string
	insets    []float64
	format    string
	out       string
	fill      string
	stroke    string
	lineWidth float64
	imgcat    bool
	color     bool
	verbose   bool
	rects     []string
}

func main() {
	app := kingpin.New("trishape", "Draw triangles that fill rectangles.")
	opts := &options{}
	app.Flag("angles", "Bottom left and bottom right angles in degrees, as A,B.").
		Envar("TRISHAPE_ANGLES").StringVar(&opts.angles)
	app.Flag("apex", "Apex placement along the top edge, from 0 (left) to 1 (right).").
		Envar("TRISHAPE_APEX").StringVar(&opts.apex)
	app.Flag("inset", "Inset the triangle inside its rect. Repeat to accumulate.").
		Float64ListVar(&opts.insets)
	app.Flag("format", "Output format.").
		Short('f').Default("points").Envar("TRISHAPE_FORMAT").EnumVar(&opts.format, "points", "svg", "png")
	app.Flag("out", "Write to this file instead of stdout.").
		Short('o').StringVar(&opts.out)
	app.Flag("fill", "Fill color (#rrggbb, or none).").
		Default("#000000").Envar("TRISHAPE_FILL").StringVar(&opts.fill)
	app.Flag("stroke", "Border color (#rrggbb, or none).").
		Default("none").Envar("TRISHAPE_STROKE").StringVar(&opts.stroke)
	app.Flag("line-width", "Border width. The border is drawn inside the rect.").
		Default("1").Float64Var(&opts.lineWidth)
	app.Flag("imgcat", "Also show png output in the terminal (iTerm only).").
		BoolVar(&opts.imgcat)
	app.Flag("color", "Color terminal output.").
		Default("true").BoolVar(&opts.color)
	app.Flag("verbose", "Log debug output and print interior angles.").
		Short('v').BoolVar(&opts.verbose)
	app.Arg("rect", "Rectangles as x,y,width,height or width,height.").
		StringsVar(&opts.rects)

	kingpin.MustParse(app.Parse(os.Args[1:]))
	app.FatalIfError(run(opts, os.Stdin, os.Stdout), "")
}

func run(opts *options, stdin io.Reader, stdout io.Writer) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	trishape.SetLogger(logger)

	shape, err := buildShape(opts)
	if err != nil {
		return err
	}

	rects, err := collectRects(opts.rects, stdin)
	if err != nil {
		return err
	}
	logger.Debug("drawing", "shape", shape, "rects", len(rects))

	out := stdout
	if opts.out != "" {
		file, err := os.Create(opts.out)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer file.Close()
		out = file
	}

	if opts.format == "points" {
		return writePoints(out, shape, rects, opts)
	}
	if len(rects) != 1 {
		return errors.Errorf("%s output needs exactly one rect, got %d", opts.format, len(rects))
	}
	return writeImage(out, stdout, shape, rects[0], opts)
}

func buildShape(opts *options) (trishape.Triangle, error) {
	if opts.angles != "" && opts.apex != "" {
		return trishape.Triangle{}, errors.New("--angles and --apex can't be used together")
	}

	shape := trishape.New()
	switch {
	case opts.angles != "":
		a, b, err := parseAngles(opts.angles)
		if err != nil {
			return shape, errors.Wrap(err, "--angles")
		}
		shape = trishape.NewWithAngles(a, b)
	case opts.apex != "":
		p, err := strconv.ParseFloat(opts.apex, 64)
		if err != nil {
			return shape, errors.Wrapf(err, "--apex")
		}
		shape = trishape.NewWithApexPlacement(p)
	}

	for _, amount := range opts.insets {
		if amount < 0 {
			return shape, errors.Errorf("--inset must not be negative, got %g", amount)
		}
		shape = shape.Inset(amount)
	}
	return shape, nil
}

func collectRects(args []string, stdin io.Reader) ([]trishape.Rect, error) {
	if len(args) == 0 {
		return readRects(stdin)
	}
	rects := make([]trishape.Rect, 0, len(args))
	for _, arg := range args {
		rect, err := parseRect(arg)
		if err != nil {
			return nil, err
		}
		rects = append(rects, rect)
	}
	return rects, nil
}

func writePoints(out io.Writer, shape trishape.Triangle, rects []trishape.Rect, opts *options) error {
	au := aurora.NewAurora(opts.color)
	for i, rect := range rects {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return errors.Wrap(err, "writing points")
			}
		}
		path := shape.Path(rect)
		if opts.verbose {
			fmt.Fprintf(out, "# %s %s\n", au.Bold(rect.String()), au.Cyan(shape.Mode().String()))
		}
		tri, _ := path.Triangle()
		angles := tri.InteriorAngles()
		for j, p := range path.Points() {
			line := formatPoint(p)
			if opts.verbose {
				line += fmt.Sprintf("  %s", au.Yellow(angles[j].String()))
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return errors.Wrap(err, "writing points")
			}
		}
	}
	return nil
}

func writeImage(out, terminal io.Writer, shape trishape.Triangle, rect trishape.Rect, opts *options) error {
	fill, err := parseColor(opts.fill)
	if err != nil {
		return errors.Wrap(err, "--fill")
	}
	stroke, err := parseColor(opts.stroke)
	if err != nil {
		return errors.Wrap(err, "--stroke")
	}
	style := preview.Style{Fill: fill, Stroke: stroke, LineWidth: opts.lineWidth}

	if opts.format == "svg" {
		return preview.WriteSVG(out, shape, rect.Width, rect.Height, style)
	}

	img := preview.Render(shape, int(rect.Width), int(rect.Height), style)
	// Raw png bytes would garble the inline image, so only show it.
	if opts.imgcat && opts.out == "" {
		return preview.Show(terminal, img)
	}
	if err := preview.EncodePNG(out, img); err != nil {
		return err
	}
	if opts.imgcat {
		return preview.Show(terminal, img)
	}
	return nil
}
