package internal

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// If two points have the same Y value, the one with the smaller X value is
// "lower". This simulates a slightly rotated coordinate system, so a ray cast
// for even-odd containment never runs along a horizontal edge.
func (v Vector2) Below(other Vector2) bool {
	if Equal(v.Y, other.Y) {
		return v.X < other.X
	}
	return v.Y < other.Y
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
