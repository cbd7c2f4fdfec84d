package internal

import (
	"fmt"
	"math"
)

// Vector2 is used both for points and for free vectors. It is a plain value,
// and none of its methods modify the receiver.
type Vector2 struct {
	X float64
	Y float64
}

// Unit vector pointing at the given angle, measured counterclockwise from +X.
func FromAngle(angle float64) Vector2 {
	return Vector2{math.Cos(angle), math.Sin(angle)}
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

func (v Vector2) Multiply(scalar float64) Vector2 {
	return Vector2{v.X * scalar, v.Y * scalar}
}

// Dividing by zero is not guarded. The result follows IEEE-754, so you get
// infinities, or NaN for a zero component.
func (v Vector2) Divide(scalar float64) Vector2 {
	return Vector2{v.X / scalar, v.Y / scalar}
}

func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// The 2D cross product is the Z component of the 3D cross product. It is
// positive when other is counterclockwise from v.
func (v Vector2) Cross(other Vector2) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalizing the zero vector yields NaN components, same as Divide.
func (v Vector2) Normalize() Vector2 {
	return v.Divide(v.Length())
}

// Rotate counterclockwise about the origin.
func (v Vector2) Rotate(angle float64) Vector2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
