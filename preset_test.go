package lsystem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset_Segments(t *testing.T) {
	p := Preset{
		Name:       "koch-curve",
		Parameters: kochParameters,
		Geometry:   Geometry{Mode: Mode2D, Angle: math.Pi / 2, Heading: Vec2{1, 0}},
		Iterations: 2,
	}

	s, err := p.Expand(p.Iterations)
	require.NoError(t, err)
	assert.Len(t, s, 49)

	segments, err := p.Segments(p.Iterations)
	require.NoError(t, err)
	assert.Len(t, segments, 25)

	_, err = p.Segments(3, WithMaxLength(10))
	assert.ErrorIs(t, err, ErrLengthExceeded)
}
