package lsystem

import (
	"math"

	"github.com/pkg/errors"
)

// Vec2 is a point or direction in the plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Slice() []float64 { return []float64{v.X, v.Y} }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec2) Normalize() Vec2 { return v.Scale(1 / v.Norm()) }

func (v Vec2) ApproxEqual(w Vec2, tol float64) bool {
	return math.Abs(v.X-w.X) <= tol && math.Abs(v.Y-w.Y) <= tol
}

// Rotate2 rotates v counter-clockwise by theta radians.
func Rotate2(v Vec2, theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Vec3 is a point or direction in space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Slice() []float64 { return []float64{v.X, v.Y, v.Z} }
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }
func (v Vec3) Normalize() Vec3 { return v.Scale(1 / v.Norm()) }

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) ApproxEqual(w Vec3, tol float64) bool {
	return math.Abs(v.X-w.X) <= tol && math.Abs(v.Y-w.Y) <= tol && math.Abs(v.Z-w.Z) <= tol
}

// unit2 normalizes v. NaN, infinite and subnormal-scale inputs are rejected
// since they do not normalize to a unit vector.
func unit2(v Vec2) (Vec2, error) {
	if v.IsZero() {
		return Vec2{}, ErrZeroHeading
	}
	u := v.Normalize()
	if !(math.Abs(u.Norm()-1) <= frameTolerance) {
		return Vec2{}, errors.Wrapf(ErrDegenerateVector, "%v", v)
	}
	return u, nil
}

// unit3 is unit2 for Vec3.
func unit3(v Vec3) (Vec3, error) {
	if v.IsZero() {
		return Vec3{}, ErrZeroHeading
	}
	u := v.Normalize()
	if !(math.Abs(u.Norm()-1) <= frameTolerance) {
		return Vec3{}, errors.Wrapf(ErrDegenerateVector, "%v", v)
	}
	return u, nil
}

// RotateAxis rotates v by theta radians about the unit vector axis, using
// Rodrigues' formula:
//
//	v cosθ + (axis × v) sinθ + axis (axis · v)(1 - cosθ)
func RotateAxis(v, axis Vec3, theta float64) Vec3 {
	sin, cos := math.Sincos(theta)
	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}

// RotationCache memoizes the initial heading rotated by multiples of a fixed
// angle. It is not safe for concurrent use; each turtle owns one.
//
// Values repeat when the angle divides a full turn, but the cache is keyed
// by the raw multiple and does not fold them together.
type RotationCache struct {
	angle   float64
	initial Vec2
	vectors map[int]Vec2
}

// NewRotationCache returns a cache for the given angle and initial heading.
func NewRotationCache(angle float64, initial Vec2) *RotationCache {
	return &RotationCache{
		angle:   angle,
		initial: initial,
		vectors: map[int]Vec2{0: initial},
	}
}

// Vector returns the initial heading rotated by angle*k.
func (c *RotationCache) Vector(k int) Vec2 {
	if v, ok := c.vectors[k]; ok {
		return v
	}
	v := Rotate2(c.initial, c.angle*float64(k))
	c.vectors[k] = v
	return v
}

// Len returns the number of cached directions.
func (c *RotationCache) Len() int {
	return len(c.vectors)
}
