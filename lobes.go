// Generation of lobed, fractal-looking polygon outlines, and their
// triangulation into near-equilateral triangles.
//
// An outline is built by placing points around a ring of hexagon-like "lobes",
// each of which recursively grows a smaller ring outside of it. The outline is
// then triangulated by greedy ear clipping that prefers corners close to 60
// degrees.
//
// Coordinates are in an abstract unit space centered on the origin, with the
// outline fitting well inside the unit circle. Mapping them onto a canvas is
// left to the caller (see the render package).
package lobes

import (
	"math/rand"

	"github.com/osuushi/lobes/internal"
	"github.com/pkg/errors"
)

type Vector2 = internal.Vector2
type Outline = internal.Outline
type Triangle = internal.Triangle
type RandomSource = internal.RandomSource
type FixedSource = internal.FixedSource

// Radius of the outermost ring.
const BaseRadius = 1.0 / 7

var (
	ErrInvalidConfig    = internal.ErrInvalidConfig
	ErrAlgorithmFailure = internal.ErrAlgorithmFailure
)

type Result struct {
	Outline   Outline
	Triangles []Triangle
}

type config struct {
	source RandomSource
}

type Option func(*config)

// Draw jitter from the given source instead of the math/rand globals.
func WithRandomSource(source RandomSource) Option {
	return func(c *config) {
		c.source = source
	}
}

// Make the jitter reproducible. Note that the resulting source is not safe to
// share between goroutines, but each call gets its own.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.source = rand.New(rand.NewSource(seed))
	}
}

// Place every point exactly on its ring.
func WithoutJitter() Option {
	return WithRandomSource(FixedSource(0.5))
}

// Generate an outline with the given number of divisions per ring and
// recursion depth, and triangulate it.
//
// Divisions must be even and positive, and depth must be at least 1, or
// ErrInvalidConfig is returned before any work is done. If the triangulation
// heuristic gets stuck, ErrAlgorithmFailure is returned.
func GeneratePolygon(divisions, depth int, opts ...Option) (result *Result, err error) {
	if divisions%2 != 0 || divisions <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "divisions must be even and positive, got %d", divisions)
	}
	if depth < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "depth must be at least 1, got %d", depth)
	}

	c := config{source: internal.DefaultSource}
	for _, opt := range opts {
		opt(&c)
	}

	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	outline := internal.GeneratePoints(Vector2{}, BaseRadius, divisions, 0, depth, c.source)
	return &Result{
		Outline:   outline,
		Triangles: internal.Triangulate(outline),
	}, nil
}

// Generate just the outline of a single ring and its descendants. A depth of
// zero gives an empty outline.
func GeneratePoints(center Vector2, radius float64, divisions int, startAngle float64, depth int, source RandomSource) (outline Outline, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			outline = nil
			err = recoveredErr
		}
	}()
	return internal.GeneratePoints(center, radius, divisions, startAngle, depth, source), nil
}

// Triangulate a counterclockwise outline. On success, there are exactly
// len(outline)-2 triangles.
func Triangulate(outline Outline) (triangles []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			triangles = nil
			err = recoveredErr
		}
	}()
	return internal.Triangulate(outline), nil
}

// Number of points in the outline GeneratePolygon produces.
func PointCount(divisions, depth int) int {
	return internal.PointCount(divisions, depth)
}

// Directed angle swept counterclockwise from v1 to v2, in [0, 2π).
func AngleBetween(v1, v2 Vector2) float64 {
	return internal.AngleBetween(v1, v2)
}

// Boundary inclusive point in triangle test.
func PointInTriangle(a, b, c, p Vector2) bool {
	return internal.PointInTriangle(a, b, c, p)
}

// Check that the triangles are a plausible triangulation of the outline: the
// right count, valid distinct indices, counterclockwise winding, and areas
// summing to the outline's area.
func (r *Result) Check() error {
	return internal.CheckTriangulation(r.Outline, r.Triangles)
}
