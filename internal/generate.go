package internal

import (
	"math"
	"math/rand"
)

// Generation of the lobed outline. Each level of recursion places points
// around a hexagon-like ring of divisions/2 lobes. Every lobe contributes the
// two points bounding it, and between them, the whole outline of a smaller
// child ring sitting outside the lobe. Emitting the child's points between the
// lobe's boundary points is what stitches everything into one closed outline.

// Anything that can produce uniform samples in [0, 1). *rand.Rand satisfies
// this.
type RandomSource interface {
	Float64() float64
}

// A source that always returns the same value. FixedSource(0.5) produces zero
// jitter.
type FixedSource float64

func (s FixedSource) Float64() float64 {
	return float64(s)
}

// Uses the package level math/rand functions, which are safe for concurrent
// use.
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

var DefaultSource RandomSource = globalSource{}

// Jitter added to each coordinate of a unit direction before scaling by the
// radius. It is uniform in [-π/divisions/2, π/divisions/2).
func jitter(source RandomSource, divisions int) float64 {
	return (source.Float64() - 0.5) * math.Pi * 2 / float64(divisions) * 0.5
}

// Number of points GeneratePoints emits for the given parameters.
func PointCount(divisions, depth int) int {
	if depth <= 0 {
		return 0
	}
	return divisions / 2 * (2 + PointCount(divisions, depth-1))
}

func GeneratePoints(center Vector2, radius float64, divisions int, startAngle float64, depth int, source RandomSource) Outline {
	if divisions%2 != 0 {
		fatalf(ErrInvalidConfig, "divisions must be even, got %d", divisions)
	}
	if divisions <= 0 {
		fatalf(ErrInvalidConfig, "divisions must be positive, got %d", divisions)
	}
	if depth < 0 {
		fatalf(ErrInvalidConfig, "depth must not be negative, got %d", depth)
	}
	if depth == 0 {
		return Outline{}
	}
	if source == nil {
		source = DefaultSource
	}

	dAngle := math.Pi * 2 / float64(divisions)
	points := make(Outline, 0, PointCount(divisions, depth))

	boundaryPoint := func(angle float64) Vector2 {
		direction := FromAngle(angle)
		// Draw X before Y so seeded sources are reproducible
		jitterX := jitter(source, divisions)
		jitterY := jitter(source, divisions)
		return Vector2{direction.X + jitterX, direction.Y + jitterY}.Multiply(radius).Add(center)
	}

	for i := 0; i < divisions/2; i++ {
		angle := float64(i)*dAngle*2 + startAngle
		aMinus := angle - dAngle/2
		aPlus := angle + dAngle/2

		minusPoint := boundaryPoint(aMinus)

		// The child ring sits just outside this lobe, and is rotated so that the
		// gap in its outline faces back toward us.
		childCenter := center.Add(FromAngle(angle).Multiply(radius * 2))
		childPoints := GeneratePoints(childCenter, radius/2, divisions, angle-math.Pi+dAngle, depth-1, source)

		plusPoint := boundaryPoint(aPlus)

		points = append(points, minusPoint)
		points = append(points, childPoints...)
		points = append(points, plusPoint)
	}
	return points
}
