package main

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/osuushi/trishape"
	"github.com/pkg/errors"
)

// Rectangles come one per line as "x y width height", or just "width height"
// for a rect at the origin. Commas work as separators too. Blank lines and
// lines starting with # are skipped.
func readRects(in io.Reader) ([]trishape.Rect, error) {
	var rects []trishape.Rect
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rect, err := parseRect(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		rects = append(rects, rect)
	}
	return rects, errors.Wrap(scanner.Err(), "reading rects")
}

func parseRect(s string) (trishape.Rect, error) {
	values, err := parseNumbers(s)
	if err != nil {
		return trishape.Rect{}, err
	}
	switch len(values) {
	case 2:
		return trishape.NewRect(0, 0, values[0], values[1]), nil
	case 4:
		return trishape.NewRect(values[0], values[1], values[2], values[3]), nil
	}
	return trishape.Rect{}, errors.Errorf("expected 2 or 4 numbers in rect %q, got %d", s, len(values))
}

// Base angles in degrees, as "A,B".
func parseAngles(s string) (trishape.Angle, trishape.Angle, error) {
	values, err := parseNumbers(s)
	if err != nil {
		return trishape.Angle{}, trishape.Angle{}, err
	}
	if len(values) != 2 {
		return trishape.Angle{}, trishape.Angle{}, errors.Errorf("expected two angles, got %q", s)
	}
	return trishape.Degrees(values[0]), trishape.Degrees(values[1]), nil
}

func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", field)
		}
		values[i] = value
	}
	return values, nil
}

// "#rgb", "#rrggbb" or "#rrggbbaa". "none" and the empty string mean no color.
func parseColor(s string) (color.Color, error) {
	if s == "" || s == "none" {
		return nil, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, errors.Errorf("invalid color %q", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Errorf("invalid color %q", s)
	}
	return color.NRGBA{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}, nil
}

func formatPoint(p trishape.Point) string {
	return fmt.Sprintf("%g %g", p.X, p.Y)
}
