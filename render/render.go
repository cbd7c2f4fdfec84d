// Package render draws generated outlines and their triangulations. The core
// lobes package knows nothing about canvases. This package maps its unit
// space onto pixels and draws the result as PNG (with gg) or SVG (with svgo).
package render

import (
	"image/color"

	"github.com/osuushi/lobes"
)

// Maps unit space onto a canvas. The origin lands on the center of the canvas
// and +Y points up, so the picture isn't mirrored.
type Viewport struct {
	Width, Height int
	// Pixels per unit
	Scale float64
}

// A square viewport where the outermost ring's radius is 80 pixels on a 600
// pixel canvas, scaling proportionally for other sizes.
func DefaultViewport(size int) Viewport {
	return Viewport{
		Width:  size,
		Height: size,
		Scale:  float64(size) * 80 / 600 / lobes.BaseRadius,
	}
}

func (vp Viewport) ToCanvas(v lobes.Vector2) (x, y float64) {
	x = float64(vp.Width)/2 + v.X*vp.Scale
	y = float64(vp.Height)/2 - v.Y*vp.Scale
	return x, y
}

type Style struct {
	Background   color.Color
	TriangleFill color.Color
	TriangleLine color.Color
	OutlineLine  color.Color
	Vertex       color.Color
	// Stroke widths in pixels
	TriangleWidth float64
	OutlineWidth  float64
	// Vertex dot radius in pixels. Zero skips the dots.
	VertexRadius float64
	// Label each triangle with a readable name, for debugging
	Labels bool
}

var DefaultStyle = Style{
	Background:    color.Black,
	TriangleFill:  color.RGBA{0, 0, 255, 255},
	TriangleLine:  color.RGBA{255, 0, 0, 255},
	OutlineLine:   color.White,
	Vertex:        color.RGBA{0xff, 0xb9, 0x00, 0xff},
	TriangleWidth: 1,
	OutlineWidth:  4,
	VertexRadius:  4,
}

// The staged reveal of a triangulation: frame i shows the first i+1 triangles.
// Timing is up to the caller.
func Frames(result *lobes.Result) [][]lobes.Triangle {
	frames := make([][]lobes.Triangle, len(result.Triangles))
	for i := range result.Triangles {
		frames[i] = result.Triangles[:i+1]
	}
	return frames
}

func centroid(outline lobes.Outline, tri lobes.Triangle) lobes.Vector2 {
	a, b, c := outline.Triangle(tri)
	return a.Add(b).Add(c).Divide(3)
}
