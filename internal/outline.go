package internal

// A closed polygon boundary. The last point connects back to the first.
type Outline []Vector2

// Indices into the outline the triangle was produced from, in (previous,
// current, next) order at the moment the ear was clipped.
type Triangle [3]int

func (o Outline) Triangle(tri Triangle) (a, b, c Vector2) {
	return o[tri[0]], o[tri[1]], o[tri[2]]
}

// Even-odd point-in-polygon. This is provided primarily for validating
// triangulations, by sampling points against both the outline and its
// triangles.
func (o Outline) ContainsPointByEvenOdd(p Vector2) bool {
	return o.CrossingCount(p)%2 == 1
}

// Number of outline edges crossed by a ray cast from p toward +X.
func (o Outline) CrossingCount(p Vector2) int {
	crossingCount := 0
	for i, vertex := range o {
		nextVertex := o[CircularIndex(i+1, len(o))]
		if vertex.Below(p) == nextVertex.Below(p) {
			continue
		}
		// Solve for the X where the edge crosses the ray's Y
		t := (p.Y - vertex.Y) / (nextVertex.Y - vertex.Y)
		x := vertex.X + t*(nextVertex.X-vertex.X)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (o Outline) Area() float64 {
	return SignedArea(o)
}

func (o Outline) Reverse() Outline {
	reversed := make(Outline, 0, len(o))
	for i := len(o) - 1; i >= 0; i-- {
		reversed = append(reversed, o[i])
	}
	return reversed
}
