package internal

import "math"

// Greedy ear clipping. At every step, of all the corners that could be
// clipped, we clip the one whose angle is closest to 60 degrees, which keeps
// the resulting triangles close to equilateral. This is not a proven
// algorithm. It works well on the lobed outlines produced by GeneratePoints,
// but it can get stuck on other inputs, in which case it fails with
// ErrAlgorithmFailure.
//
// Convex corners are detected with a directed angle, so the outline must be
// counterclockwise.

const idealCornerAngle = math.Pi / 3

// A corner considered for clipping. Positions index the working list, not the
// outline.
type earCandidate struct {
	position int
	triangle Triangle
	score    float64
}

func Triangulate(outline Outline) []Triangle {
	if len(outline) < 3 {
		fatalf(ErrAlgorithmFailure, "cannot triangulate degenerate outline with point count: %d", len(outline))
	}

	// Working list of outline indices, treated as circular
	remaining := make([]int, len(outline))
	for i := range remaining {
		remaining[i] = i
	}

	triangles := make([]Triangle, 0, len(outline)-2)
	for len(remaining) > 2 {
		best, ok := bestEar(outline, remaining)
		if !ok {
			fatalf(ErrAlgorithmFailure, "no ear found with %d of %d points remaining", len(remaining), len(outline))
		}
		remaining = append(remaining[:best.position], remaining[best.position+1:]...)
		triangles = append(triangles, best.triangle)
	}
	return triangles
}

// Find the clippable corner with the best score. Ties go to the earliest
// position.
func bestEar(outline Outline, remaining []int) (earCandidate, bool) {
	best := earCandidate{position: -1, score: math.Inf(1)}
	for i := range remaining {
		candidate, ok := cornerAt(outline, remaining, i)
		if !ok || candidate.score >= best.score {
			continue
		}
		// Only pay for the containment check if this corner would win
		if containsOtherPoint(outline, remaining, candidate.triangle) {
			continue
		}
		best = candidate
	}
	return best, best.position >= 0
}

// Score the corner at a working list position. Reflex and degenerate corners
// are not candidates at all.
func cornerAt(outline Outline, remaining []int, position int) (earCandidate, bool) {
	iP := remaining[CircularIndex(position-1, len(remaining))]
	iC := remaining[position]
	iN := remaining[CircularIndex(position+1, len(remaining))]
	pP, pC, pN := outline[iP], outline[iC], outline[iN]

	vCP := pP.Sub(pC)
	vCN := pN.Sub(pC)
	angle := AngleBetween(vCN, vCP)
	// NaN angles, from coincident points, fail this comparison too
	if !(angle < math.Pi) {
		return earCandidate{}, false
	}
	return earCandidate{
		position: position,
		triangle: Triangle{iP, iC, iN},
		score:    math.Abs(angle - idealCornerAngle),
	}, true
}

// Whether any remaining point other than the triangle's own vertices lies in
// the triangle, boundary included.
func containsOtherPoint(outline Outline, remaining []int, tri Triangle) bool {
	a, b, c := outline.Triangle(tri)
	for _, index := range remaining {
		if index == tri[0] || index == tri[1] || index == tri[2] {
			continue
		}
		if PointInTriangle(a, b, c, outline[index]) {
			return true
		}
	}
	return false
}
