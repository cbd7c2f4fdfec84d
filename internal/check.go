package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Relative tolerance for comparing the summed triangle area with the outline
// area.
const areaTolerance = 1e-9

// Sanity checks for a triangulation, for the CLI and for debugging. Passing
// these does not prove the triangles don't overlap, but an overlap would have
// to be matched by a gap of exactly the same area.
func CheckTriangulation(outline Outline, triangles []Triangle) error {
	if len(outline) < 3 {
		return errors.Errorf("outline has only %d points", len(outline))
	}
	if len(triangles) != len(outline)-2 {
		return errors.Errorf("expected %d triangles, got %d", len(outline)-2, len(triangles))
	}

	var triangleArea float64
	used := make([]bool, len(outline))
	for i, tri := range triangles {
		for _, index := range tri {
			if index < 0 || index >= len(outline) {
				return errors.Errorf("triangle %d: index %d out of range", i, index)
			}
			used[index] = true
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			return errors.Errorf("triangle %d: repeated index in %v", i, tri)
		}
		a, b, c := outline.Triangle(tri)
		area := TriangleSignedArea(a, b, c)
		if area < 0 {
			return errors.Errorf("triangle %d: clockwise %v", i, tri)
		}
		triangleArea += area
	}

	for index, ok := range used {
		if !ok {
			return errors.Errorf("point %d is not part of any triangle", index)
		}
	}

	outlineArea := outline.Area()
	if outlineArea <= 0 {
		return errors.Errorf("outline is not counterclockwise (area %g)", outlineArea)
	}
	if math.Abs(triangleArea-outlineArea) > areaTolerance*outlineArea {
		return errors.Errorf("triangle area %g does not match outline area %g", triangleArea, outlineArea)
	}
	return nil
}
