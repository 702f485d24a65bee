package lsystem

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 {
	return &f
}

func TestTraceSegments(t *testing.T) {
	t.Run("2d defaults", func(t *testing.T) {
		segments, err := TraceSegments("F+F", Geometry{Mode: Mode2D, Angle: math.Pi / 2})
		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, 2, segments[0].Dim())
		assert.Equal(t, Point{0, 0}, segments[0].From)
		assert.InDelta(t, 1, segments[1].To[1], tolerance)
	})

	t.Run("3d defaults", func(t *testing.T) {
		segments, err := TraceSegments("F&F", Geometry{Mode: Mode3D, Angle: math.Pi / 2})
		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, 3, segments[1].Dim())
		assert.InDelta(t, -1, segments[1].To[2], tolerance)
	})

	t.Run("3d pitch override", func(t *testing.T) {
		segments, err := TraceSegments("&F", Geometry{Mode: Mode3D, Angle: 0.1, PitchAngle: ptr(math.Pi / 2)})
		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.InDelta(t, -1, segments[0].To[2], tolerance)
	})

	t.Run("3d explicit zero pitch", func(t *testing.T) {
		segments, err := TraceSegments("&F", Geometry{Mode: Mode3D, Angle: 0.1, PitchAngle: ptr(0)})
		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.InDelta(t, 1, segments[0].To[0], tolerance)
		assert.InDelta(t, 0, segments[0].To[2], tolerance)
	})

	t.Run("custom symbols", func(t *testing.T) {
		symbols := DefaultSymbols2D().Bind('A', Draw)
		segments, err := TraceSegments("AFA", Geometry{Angle: 1, Symbols: &symbols})
		require.NoError(t, err)
		assert.Len(t, segments, 3)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := TraceSegments("F", Geometry{Mode: Mode(7)})
		assert.True(t, errors.Is(err, ErrUnknownMode))
	})

	t.Run("unbalanced", func(t *testing.T) {
		_, err := TraceSegments("F]", Geometry{Mode: Mode3D, Angle: 1})
		assert.True(t, errors.Is(err, ErrUnbalancedBrackets))
	})
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("3d")
	require.NoError(t, err)
	assert.Equal(t, Mode3D, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Mode2D, m)

	_, err = ParseMode("4d")
	assert.True(t, errors.Is(err, ErrUnknownMode))
	assert.Equal(t, "2d", Mode2D.String())
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(nil)
	assert.Nil(t, lo)
	assert.Nil(t, hi)

	segments := []Segment{
		{From: Point{0, 0}, To: Point{2, -1}},
		{From: Point{2, -1}, To: Point{-3, 4}},
	}
	lo, hi = Bounds(segments)
	assert.Equal(t, Point{-3, -1}, lo)
	assert.Equal(t, Point{2, 4}, hi)
}
