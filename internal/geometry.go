package internal

import "math"

// Directed angle swept counterclockwise from v1 to v2, in [0, 2π). The cross
// product picks the half of the circle, so this is not the unsigned angle
// between the vectors. Zero vectors give NaN.
func AngleBetween(v1, v2 Vector2) float64 {
	n1 := v1.Normalize()
	n2 := v2.Normalize()
	sin := n1.Cross(n2)
	// Rounding can push the dot product of (anti)parallel unit vectors just
	// outside [-1, 1], where Acos returns NaN. NaN passes through Max/Min.
	cos := math.Max(-1, math.Min(1, n1.Dot(n2)))
	if sin >= 0 {
		return math.Acos(cos)
	}
	return 2*math.Pi - math.Acos(cos)
}

// Whether p1 and p2 are on the same side of the infinite line through a and b.
// A point on the line counts as being on both sides.
func SameSide(a, b, p1, p2 Vector2) bool {
	edge := b.Sub(a)
	c1 := edge.Cross(p1.Sub(a))
	c2 := edge.Cross(p2.Sub(a))
	return c1*c2 >= 0
}

// Boundary inclusive. The winding of a, b, c doesn't matter.
func PointInTriangle(a, b, c, p Vector2) bool {
	return SameSide(a, b, c, p) && SameSide(b, c, a, p) && SameSide(c, a, b, p)
}

// Shoelace formula. Positive for counterclockwise point lists.
func SignedArea(points []Vector2) float64 {
	var sum float64
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		sum += p.Cross(next)
	}
	return sum / 2
}

func IsCCW(points []Vector2) bool {
	return SignedArea(points) > 0
}

func IsCW(points []Vector2) bool {
	return SignedArea(points) < 0
}

func TriangleSignedArea(a, b, c Vector2) float64 {
	return b.Sub(a).Cross(c.Sub(a)) / 2
}
