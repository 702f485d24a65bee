package lsystem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotate2(t *testing.T) {
	assertVec2(t, Vec2{0, 1}, Rotate2(Vec2{1, 0}, math.Pi/2))
	assertVec2(t, Vec2{-1, 0}, Rotate2(Vec2{0, 1}, math.Pi/2))
	assertVec2(t, Vec2{1, 0}, Rotate2(Vec2{1, 0}, 2*math.Pi))
}

func TestRotateAxis(t *testing.T) {
	assertVec3(t, yAxis, RotateAxis(xAxis, zAxis, math.Pi/2))
	assertVec3(t, zAxis, RotateAxis(zAxis, zAxis, 1.234))

	// A third of a turn about the diagonal cycles the axes.
	diagonal := Vec3{1, 1, 1}.Normalize()
	assertVec3(t, yAxis, RotateAxis(xAxis, diagonal, 2*math.Pi/3))
	assertVec3(t, zAxis, RotateAxis(yAxis, diagonal, 2*math.Pi/3))
}

func TestRotateAxis_PreservesLength(t *testing.T) {
	v := Vec3{3, -4, 12}
	axis := Vec3{2, 1, -1}.Normalize()
	for _, theta := range []float64{0.1, 1, 2.5, -7} {
		assert.InDelta(t, v.Norm(), RotateAxis(v, axis, theta).Norm(), tolerance)
	}
}

func TestRotationCache_IsPeriodic(t *testing.T) {
	tests := []struct {
		angle  float64
		period int
	}{
		{math.Pi / 2, 4},
		{2 * math.Pi / 3, 3},
		{math.Pi / 3, 6},
		{math.Pi / 4, 8},
		{math.Pi * 25 / 180, 72},
	}

	for _, tt := range tests {
		c := NewRotationCache(tt.angle, Vec2{0.6, 0.8})
		for k := -2 * tt.period; k <= 2*tt.period; k++ {
			assertVec2(t, c.Vector(k), c.Vector(k+tt.period), "angle %v, k=%d", tt.angle, k)
		}
	}
}

func TestRotationCache_StartsWithInitialHeading(t *testing.T) {
	c := NewRotationCache(1, Vec2{0, 1})
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, Vec2{0, 1}, c.Vector(0))

	c.Vector(-3)
	c.Vector(-3)
	assert.Equal(t, 2, c.Len())
}

func TestVec3_Cross(t *testing.T) {
	assert.Equal(t, zAxis, xAxis.Cross(yAxis))
	assert.Equal(t, zAxis.Neg(), yAxis.Cross(xAxis))
	assert.Equal(t, xAxis, yAxis.Cross(zAxis))
}
