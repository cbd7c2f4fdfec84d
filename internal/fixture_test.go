package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs outlines. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW Outline. If anything goes
// wrong, it bails.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Outline {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	outline := make(Outline, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		outline = append(outline, Vector2{x, y})
	}

	// Ensure that the outline is CCW
	if IsCW(outline) {
		outline = outline.Reverse()
	}
	return outline
}

// Some ad hoc code specified fixtures

func RegularPolygon(sides int, radius float64) Outline {
	outline := make(Outline, sides)
	for i := range outline {
		outline[i] = FromAngle(2 * math.Pi * float64(i) / float64(sides)).Multiply(radius)
	}
	return outline
}

func Square() Outline {
	return Outline{
		{1, -1},
		{1, 1},
		{-1, 1},
		{-1, -1},
	}
}

// An L, with one reflex corner at (1, 1).
func LShape() Outline {
	return Outline{
		{0, 0},
		{2, 0},
		{2, 1},
		{1, 1},
		{1, 2},
		{0, 2},
	}
}
