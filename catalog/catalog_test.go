package catalog

import (
	"math"
	"strings"
	"testing"

	"github.com/mainakk/lsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Names(t *testing.T) {
	names := Names()
	assert.Len(t, names, 21)
	assert.Contains(t, names, "koch-curve")
	assert.Contains(t, names, "fractal-plant")
	assert.Contains(t, names, "hilbert-3d")
	assert.IsIncreasing(t, names)
}

func TestCatalog_EveryPresetTraces(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			assert.NotEmpty(t, p.Source)
			assert.Positive(t, p.Iterations)

			g, err := p.Grammar()
			require.NoError(t, err)
			assert.Less(t, lsystem.ProjectedLength(g, p.Iterations), 1<<20)

			s, err := lsystem.Expand(g, p.Iterations, lsystem.WithStrict())
			require.NoError(t, err)

			segments, err := lsystem.TraceSegments(s, p.Geometry)
			require.NoError(t, err)

			table := lsystem.DefaultSymbols2D()
			wantDim := 2
			if p.Geometry.Mode == lsystem.Mode3D {
				table = lsystem.DefaultSymbols3D()
				wantDim = 3
			}
			var draws int
			for _, r := range s {
				if table.Lookup(r) == lsystem.Draw {
					draws++
				}
			}
			require.Len(t, segments, draws)
			assert.Equal(t, wantDim, segments[0].Dim())
		})
	}
}

func TestCatalog_KochCurve(t *testing.T) {
	p, ok := Lookup("koch-curve")
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, p.Geometry.Angle, 1e-12)

	s, err := p.Expand(1)
	require.NoError(t, err)
	assert.Equal(t, "F+F-F-F+F", s)
}

func TestCatalog_ClosedCurves(t *testing.T) {
	for _, name := range []string{"quadratic-koch-island", "koch-snowflake", "sierpinski-square"} {
		p, err := Get(name)
		require.NoError(t, err)

		segments, err := p.Segments(2)
		require.NoError(t, err)
		last := segments[len(segments)-1].To
		assert.InDelta(t, 0, last[0], 1e-9, name)
		assert.InDelta(t, 0, last[1], 1e-9, name)
	}
}

func TestCatalog_Unknown(t *testing.T) {
	_, ok := Lookup("nope")
	assert.False(t, ok)

	_, err := Get("nope")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.True(t, strings.Contains(err.Error(), "nope"))
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	assert.NotEqual(t, "changed", All()[0].Name)
}
