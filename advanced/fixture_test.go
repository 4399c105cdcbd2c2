package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file loads the svg fixtures into test cases. This is not a general svg
// parser. The root <svg> element describes the case:
//
//	width, height       size of the rect
//	data-x, data-y      origin of the rect (default 0)
//	data-angles="A B"   NewWithAngles, in degrees
//	data-apex="p"       NewWithApexPlacement
//	data-inset="a b"    insets applied one after the other
//
// and the single <polygon> holds the expected vertices. If anything goes wrong,
// it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Name     string
	Rect     Rect
	Triangle Triangle
	Expected []Point
}

func LoadFixture(name string) *Fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer file.Close()

	rootEl, err := svgparser.Parse(file, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	result := &Fixture{Name: name, Triangle: New()}
	attrs := rootEl.Attributes
	result.Rect = NewRect(
		parseFloatAttr(name, attrs, "data-x", 0),
		parseFloatAttr(name, attrs, "data-y", 0),
		parseFloatAttr(name, attrs, "width", -1),
		parseFloatAttr(name, attrs, "height", -1),
	)

	if angles, ok := attrs["data-angles"]; ok {
		values := parseFloats(name, angles)
		if len(values) != 2 {
			log.Fatalf("Fixture %q needs exactly two angles, got %q", name, angles)
		}
		result.Triangle = NewWithAngles(Degrees(values[0]), Degrees(values[1]))
	}
	if _, ok := attrs["data-apex"]; ok {
		result.Triangle = NewWithApexPlacement(parseFloatAttr(name, attrs, "data-apex", 0))
	}
	if insets, ok := attrs["data-inset"]; ok {
		for _, amount := range parseFloats(name, insets) {
			result.Triangle = result.Triangle.Inset(amount)
		}
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		values := parseFloats(name, coords[0]+" "+coords[1])
		result.Expected = append(result.Expected, Point{X: values[0], Y: values[1]})
	}
	return result
}

func parseFloatAttr(fixture string, attrs map[string]string, key string, fallback float64) float64 {
	s, ok := attrs[key]
	if !ok {
		if fallback < 0 {
			log.Fatalf("Fixture %q is missing %q", fixture, key)
		}
		return fallback
	}
	return parseFloats(fixture, s)[0]
}

func parseFloats(fixture string, s string) []float64 {
	var result []float64
	for _, field := range strings.Fields(s) {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			log.Fatalf("Invalid number %q in fixture %q: %v", field, fixture, err)
		}
		result = append(result, value)
	}
	if len(result) == 0 {
		log.Fatalf("Expected a number in fixture %q, got %q", fixture, s)
	}
	return result
}

func FixtureNames() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		log.Fatalf("Could not list fixtures: %v", err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	return names
}
