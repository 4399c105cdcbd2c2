package main

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/trishape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() *options {
	return &options{format: "points", fill: "#000000", stroke: "none", lineWidth: 1}
}

func TestReadRects(t *testing.T) {
	input := `
# a comment
0 0 100 100
200,100

-5, 5, 10, 20
`
	rects, err := readRects(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []trishape.Rect{
		trishape.NewRect(0, 0, 100, 100),
		trishape.NewRect(0, 0, 200, 100),
		trishape.NewRect(-5, 5, 10, 20),
	}, rects)

	_, err = readRects(strings.NewReader("1 2 3\n"))
	assert.EqualError(t, err, `line 1: expected 2 or 4 numbers in rect "1 2 3", got 3`)

	_, err = readRects(strings.NewReader("10 10\nten 10\n"))
	assert.EqualError(t, err, `line 2: invalid number "ten"`)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0xff, 0x80, 0, 0xff}, c)

	c, err = parseColor("#0f0")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0xff}, c)

	c, err = parseColor("11223344")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x11, 0x22, 0x33, 0x44}, c)

	c, err = parseColor("none")
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = parseColor("#12345")
	assert.Error(t, err)
	_, err = parseColor("#gggggg")
	assert.Error(t, err)
}

func TestBuildShape(t *testing.T) {
	opts := defaultOptions()
	opts.angles = "60,60"
	opts.insets = []float64{1, 2}
	shape, err := buildShape(opts)
	require.NoError(t, err)
	assert.Equal(t, trishape.NewWithAngles(trishape.Degrees(60), trishape.Degrees(60)).Inset(3), shape)

	opts = defaultOptions()
	opts.apex = "0.25"
	shape, err = buildShape(opts)
	require.NoError(t, err)
	assert.Equal(t, trishape.NewWithApexPlacement(0.25), shape)

	opts.angles = "30,30"
	_, err = buildShape(opts)
	assert.Error(t, err)

	opts = defaultOptions()
	opts.angles = "30"
	_, err = buildShape(opts)
	assert.Error(t, err)

	opts = defaultOptions()
	opts.insets = []float64{-1}
	_, err = buildShape(opts)
	assert.Error(t, err)
}

func TestRunPoints(t *testing.T) {
	opts := defaultOptions()
	opts.color = false

	var out bytes.Buffer
	err := run(opts, strings.NewReader("0 0 100 100\n20 10\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "0 100\n50 0\n100 100\n\n0 10\n10 0\n20 10\n", out.String())
}

func TestRunPointsFromArgs(t *testing.T) {
	opts := defaultOptions()
	opts.apex = "0"
	opts.rects = []string{"100,50"}

	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(""), &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	expected := [][]float64{{0, 50}, {0, 0}, {100, 50}}
	for i, line := range lines {
		values, err := parseNumbers(line)
		require.NoError(t, err)
		assert.InDeltaSlice(t, expected[i], values, 1e-9, "vertex %d", i)
	}
}

func TestRunVerbose(t *testing.T) {
	opts := defaultOptions()
	opts.verbose = true
	opts.angles = "50,60"
	opts.rects = []string{"0,0,100,100"}

	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "# (0, 0, 100, 100) fixed")
	assert.Contains(t, out.String(), "50°")
	assert.Contains(t, out.String(), "70°")
}

func TestRunSVG(t *testing.T) {
	opts := defaultOptions()
	opts.format = "svg"
	opts.rects = []string{"100,100"}

	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), `<polygon points="0,100 50,0 100,100" fill="#000000"/>`)

	opts.rects = []string{"100,100", "50,50"}
	assert.Error(t, run(opts, strings.NewReader(""), &out))
}

func TestRunPNGToFile(t *testing.T) {
	opts := defaultOptions()
	opts.format = "png"
	opts.stroke = "#00ff00"
	opts.lineWidth = 4
	opts.out = filepath.Join(t.TempDir(), "out.png")
	opts.rects = []string{"64,48"}

	var stdout bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(""), &stdout))
	assert.Empty(t, stdout.String())
	assert.FileExists(t, opts.out)
}

func TestRunPNGToStdout(t *testing.T) {
	opts := defaultOptions()
	opts.format = "png"
	opts.rects = []string{"32,32"}

	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(""), &out))
	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}
