package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/lobes"
	"github.com/osuushi/lobes/dbg"
)

// svgo doesn't report write errors, so we hold on to the first one.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func SVG(w io.Writer, outline lobes.Outline, triangles []lobes.Triangle, vp Viewport, style Style) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(vp.Width, vp.Height)
	canvas.Rect(0, 0, vp.Width, vp.Height, "fill:"+cssColor(style.Background))

	triangleStyle := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g",
		cssColor(style.TriangleFill), cssColor(style.TriangleLine), style.TriangleWidth)
	for _, tri := range triangles {
		a, b, c := outline.Triangle(tri)
		xs, ys := canvasCoordinates(vp, []lobes.Vector2{a, b, c})
		canvas.Polygon(xs, ys, triangleStyle)
	}

	if len(outline) > 0 {
		xs, ys := canvasCoordinates(vp, outline)
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g",
			cssColor(style.OutlineLine), style.OutlineWidth))
	}

	if style.VertexRadius > 0 {
		r := int(math.Round(style.VertexRadius))
		for _, p := range outline {
			x, y := vp.ToCanvas(p)
			canvas.Circle(int(math.Round(x)), int(math.Round(y)), r, "fill:"+cssColor(style.Vertex))
		}
	}

	if style.Labels {
		labelStyle := "text-anchor:middle;font-size:8px;fill:" + cssColor(style.OutlineLine)
		for _, tri := range triangles {
			x, y := vp.ToCanvas(centroid(outline, tri))
			canvas.Text(int(math.Round(x)), int(math.Round(y)), dbg.Name(tri), labelStyle)
		}
	}

	canvas.End()
	return ew.err
}

func canvasCoordinates(vp Viewport, points []lobes.Vector2) (xs, ys []int) {
	xs = make([]int, len(points))
	ys = make([]int, len(points))
	for i, p := range points {
		x, y := vp.ToCanvas(p)
		xs[i] = int(math.Round(x))
		ys[i] = int(math.Round(y))
	}
	return xs, ys
}

func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", r>>8, g>>8, b>>8, float64(a)/0xffff)
}
