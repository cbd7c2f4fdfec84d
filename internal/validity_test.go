package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/rclancey/earcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles, each with three distinct in range indices.
// 2. Every outline point is used by some triangle.
// 3. Every outline edge is an edge of some triangle.
// 4. Every triangle is counterclockwise.
// 5. The sum of the areas of all triangles is equal to the area of the outline.
func AssertValidTriangulation(t *testing.T, outline Outline, triangles []Triangle) {
	require.True(t, IsCCW(outline), "outline is not counterclockwise")
	require.Len(t, triangles, len(outline)-2)

	used := make(map[int]struct{})
	edges := make(indexEdgeSet)
	var triangleArea float64
	for _, tri := range triangles {
		for _, index := range tri {
			require.True(t, index >= 0 && index < len(outline), "index %d out of range in %v", index, tri)
			used[index] = struct{}{}
		}
		require.True(t, tri[0] != tri[1] && tri[1] != tri[2] && tri[0] != tri[2], "repeated index in %v", tri)

		a, b, c := outline.Triangle(tri)
		area := TriangleSignedArea(a, b, c)
		require.GreaterOrEqual(t, area, 0.0, "clockwise triangle: %v", tri)
		triangleArea += area

		edges.add(tri[0], tri[1])
		edges.add(tri[1], tri[2])
		edges.add(tri[2], tri[0])
	}
	require.Len(t, used, len(outline), "every point must be part of a triangle")

	for i := range outline {
		j := CircularIndex(i+1, len(outline))
		require.True(t, edges.contains(i, j), "outline edge %d-%d is not in any triangle", i, j)
	}

	outlineArea := outline.Area()
	require.InDelta(t, outlineArea, triangleArea, 1e-9*outlineArea, "sum of the triangle areas must equal the outline area")

	// An independent triangulation must cover the same area
	require.InDelta(t, outlineArea, earcutArea(t, outline), 1e-9*outlineArea, "earcut disagrees with the outline area")
}

type indexEdge struct {
	lower, upper int
}

type indexEdgeSet map[indexEdge]struct{}

func (set indexEdgeSet) add(a, b int) {
	set[newIndexEdge(a, b)] = struct{}{}
}

func (set indexEdgeSet) contains(a, b int) bool {
	_, ok := set[newIndexEdge(a, b)]
	return ok
}

func newIndexEdge(a, b int) indexEdge {
	if a < b {
		return indexEdge{a, b}
	}
	return indexEdge{b, a}
}

func earcutArea(t *testing.T, outline Outline) float64 {
	coords := make([]float64, 0, len(outline)*2)
	for _, p := range outline {
		coords = append(coords, p.X, p.Y)
	}
	indices, err := earcut.Earcut(coords, nil, 2)
	require.NoError(t, err)
	require.Zero(t, len(indices)%3)

	var area float64
	for i := 0; i < len(indices); i += 3 {
		area += math.Abs(TriangleSignedArea(outline[indices[i]], outline[indices[i+1]], outline[indices[i+2]]))
	}
	return area
}

// Sample a grid over the outline's bounding box, and check that every sample
// is inside some triangle exactly when it is inside the outline. Samples that
// land on an edge are skipped, since both answers are fine there.
func validateBySampling(t *testing.T, outline Outline, triangles []Triangle) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range outline {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50
	// Offset the grid so samples don't line up with axis aligned fixtures
	offset := step * 0.137

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := Vector2{x, y}
			if nearEdge(outline, p, step*1e-3) {
				continue
			}

			inTriangle := false
			for _, tri := range triangles {
				a, b, c := outline.Triangle(tri)
				if PointInTriangle(a, b, c, p) {
					inTriangle = true
					break
				}
			}
			if outline.ContainsPointByEvenOdd(p) {
				assert.True(t, inTriangle, "point %v should be in a triangle", p)
			} else {
				assert.False(t, inTriangle, "point %v should not be in any triangle", p)
			}
		}
	}
}

func nearEdge(outline Outline, p Vector2, epsilon float64) bool {
	for i, a := range outline {
		b := outline[CircularIndex(i+1, len(outline))]
		edge := b.Sub(a)
		t := p.Sub(a).Dot(edge) / edge.LengthSquared()
		t = math.Max(0, math.Min(1, t))
		if a.Add(edge.Multiply(t)).Sub(p).Length() < epsilon {
			return true
		}
	}
	return false
}
