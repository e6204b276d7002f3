// Package vmath provides the small 2D vector types used by the raycaster.
// Rotations go through mathgl's 2x2 matrices so direction and camera plane
// are always transformed by the same matrix.
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2F is a continuous 2D point or direction in grid units.
type Vec2F struct {
	X, Y float64
}

// Vec2I is a grid cell coordinate.
type Vec2I struct {
	X, Y int
}

// Add returns v + o.
func (v Vec2F) Add(o Vec2F) Vec2F {
	return Vec2F{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2F) Sub(o Vec2F) Vec2F {
	return Vec2F{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2F) Scale(s float64) Vec2F {
	return Vec2F{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2F) Dot(o Vec2F) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2F) Cross(o Vec2F) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Len returns the Euclidean length of v.
func (v Vec2F) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2F) Normalize() Vec2F {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2F{X: v.X / l, Y: v.Y / l}
}

// Perp returns v rotated by +90 degrees: (-Y, X).
func (v Vec2F) Perp() Vec2F {
	return Vec2F{X: -v.Y, Y: v.X}
}

// Floor returns the grid cell containing v.
func (v Vec2F) Floor() Vec2I {
	return Vec2I{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// Vec converts v to a mathgl vector.
func (v Vec2F) Vec() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// FromVec converts a mathgl vector back to a Vec2F.
func FromVec(m mgl64.Vec2) Vec2F {
	return Vec2F{X: m[0], Y: m[1]}
}

// Rotate returns v rotated by theta radians.
func (v Vec2F) Rotate(theta float64) Vec2F {
	return FromVec(mgl64.Rotate2D(theta).Mul2x1(v.Vec()))
}

// RotatePair rotates a and b by the same angle. Both results are computed
// from the pre-rotation inputs, so the angle between a and b is preserved.
func RotatePair(a, b Vec2F, theta float64) (Vec2F, Vec2F) {
	rot := mgl64.Rotate2D(theta)
	return FromVec(rot.Mul2x1(a.Vec())), FromVec(rot.Mul2x1(b.Vec()))
}

// Angle returns the signed angle from a to b in radians.
func Angle(a, b Vec2F) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b))
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func ApproxEqual(a, b Vec2F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// Add returns v + o.
func (v Vec2I) Add(o Vec2I) Vec2I {
	return Vec2I{X: v.X + o.X, Y: v.Y + o.Y}
}
