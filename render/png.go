package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/osuushi/lobes"
	"github.com/osuushi/lobes/dbg"
)

// Rasterize the triangles, then the outline on top of them.
func Image(outline lobes.Outline, triangles []lobes.Triangle, vp Viewport, style Style) image.Image {
	return draw(outline, triangles, vp, style).Image()
}

func PNG(w io.Writer, outline lobes.Outline, triangles []lobes.Triangle, vp Viewport, style Style) error {
	return draw(outline, triangles, vp, style).EncodePNG(w)
}

func draw(outline lobes.Outline, triangles []lobes.Triangle, vp Viewport, style Style) *gg.Context {
	c := gg.NewContext(vp.Width, vp.Height)
	c.SetColor(style.Background)
	c.DrawRectangle(0, 0, float64(vp.Width), float64(vp.Height))
	c.Fill()

	c.SetLineWidth(style.TriangleWidth)
	for _, tri := range triangles {
		a, b, cc := outline.Triangle(tri)
		tracePath(c, vp, []lobes.Vector2{a, b, cc})
		c.SetColor(style.TriangleFill)
		c.FillPreserve()
		c.SetColor(style.TriangleLine)
		c.Stroke()
	}

	if len(outline) > 0 {
		c.SetLineWidth(style.OutlineWidth)
		tracePath(c, vp, outline)
		c.SetColor(style.OutlineLine)
		c.Stroke()
	}

	if style.VertexRadius > 0 {
		c.SetColor(style.Vertex)
		for _, p := range outline {
			x, y := vp.ToCanvas(p)
			c.DrawCircle(x, y, style.VertexRadius)
			c.Fill()
		}
	}

	if style.Labels {
		c.SetColor(style.OutlineLine)
		for _, tri := range triangles {
			x, y := vp.ToCanvas(centroid(outline, tri))
			c.DrawStringAnchored(dbg.Name(tri), x, y, 0.5, 0.5)
		}
	}
	return c
}

func tracePath(c *gg.Context, vp Viewport, points []lobes.Vector2) {
	c.NewSubPath()
	for i, p := range points {
		x, y := vp.ToCanvas(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
}
