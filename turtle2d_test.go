package lsystem

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func assertVec2(t *testing.T, want, got Vec2, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tolerance, msgAndArgs...)
}

func TestTrace2D_Koch(t *testing.T) {
	s, err := Expand(MustGrammar(kochParameters), 1)
	require.NoError(t, err)

	turtle, err := NewTurtle2D(math.Pi/2, Vec2{1, 0})
	require.NoError(t, err)
	segments, final, err := turtle.TraceState(s)
	require.NoError(t, err)

	want := []Segment2{
		{Vec2{0, 0}, Vec2{1, 0}},
		{Vec2{1, 0}, Vec2{1, 1}},
		{Vec2{1, 1}, Vec2{2, 1}},
		{Vec2{2, 1}, Vec2{2, 0}},
		{Vec2{2, 0}, Vec2{3, 0}},
	}
	require.Len(t, segments, len(want))
	for i := range want {
		assertVec2(t, want[i].From, segments[i].From, "segment %d from", i)
		assertVec2(t, want[i].To, segments[i].To, "segment %d to", i)
	}

	// Each segment starts where the previous one ended.
	for i := 1; i < len(segments); i++ {
		assert.Equal(t, segments[i-1].To, segments[i].From)
	}

	assertVec2(t, Vec2{3, 0}, final.Position)
	assert.Equal(t, 0, final.RotationIndex)
}

func TestTrace2D_InitialHeading(t *testing.T) {
	segments, err := Trace2D("F+F", math.Pi/2, Vec2{0, 2})
	require.NoError(t, err)
	require.Len(t, segments, 2)

	// The heading is normalized and turning left from +Y points to -X.
	assertVec2(t, Vec2{0, 1}, segments[0].To)
	assertVec2(t, Vec2{-1, 1}, segments[1].To)
}

func TestTrace2D_JumpDrawsNothing(t *testing.T) {
	turtle, err := NewTurtle2D(math.Pi/2, Vec2{1, 0})
	require.NoError(t, err)

	segments, final, err := turtle.TraceState("FfgG")
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assertVec2(t, Vec2{3, 0}, segments[1].From)
	assertVec2(t, Vec2{4, 0}, final.Position)
}

func TestTrace2D_UnknownSymbolsAreNoOps(t *testing.T) {
	withNoise, err := Trace2D("XF+YF&^|Z", math.Pi/3, Vec2{1, 0})
	require.NoError(t, err)
	clean, err := Trace2D("F+F", math.Pi/3, Vec2{1, 0})
	require.NoError(t, err)
	assert.Equal(t, clean, withNoise)
}

func TestTrace2D_BranchRestoresState(t *testing.T) {
	turtle, err := NewTurtle2D(math.Pi/4, Vec2{1, 0})
	require.NoError(t, err)

	_, final, err := turtle.TraceState("F+[+F-fF[--F]]")
	require.NoError(t, err)

	_, want, err := turtle.TraceState("F+")
	require.NoError(t, err)
	assert.Equal(t, want, final)
}

// removeBranches deletes every balanced bracketed substring.
func removeBranches(s string) string {
	var sb strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']':
			depth--
		case depth == 0:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestTrace2D_BranchesDoNotAffectFinalState(t *testing.T) {
	g := MustGrammar(plantParameters)
	turtle, err := NewTurtle2D(25*math.Pi/180, Vec2{1, 0})
	require.NoError(t, err)

	for n := 0; n <= 4; n++ {
		s, err := Expand(g, n)
		require.NoError(t, err)

		_, got, err := turtle.TraceState(s)
		require.NoError(t, err)
		_, want, err := turtle.TraceState(removeBranches(s))
		require.NoError(t, err)

		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestTrace2D_PlantSegmentCount(t *testing.T) {
	g := MustGrammar(plantParameters)
	for n := 0; n <= 3; n++ {
		s, err := Expand(g, n)
		require.NoError(t, err)

		segments, err := Trace2D(s, 25*math.Pi/180, Vec2{1, 0})
		require.NoError(t, err)
		assert.Len(t, segments, countRune(s, 'F'), "n=%d", n)
	}
}

func TestTrace2D_UnbalancedBrackets(t *testing.T) {
	for _, s := range []string{"F]", "]", "[F]]F", "F[+F]-F]"} {
		_, err := Trace2D(s, math.Pi/2, Vec2{1, 0})
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrUnbalancedBrackets), s)
	}

	_, err := Trace2D("F[F]]", math.Pi/2, Vec2{1, 0})
	var ube *UnbalancedBracketsError
	require.True(t, errors.As(err, &ube))
	assert.Equal(t, 4, ube.Position)
	assert.Equal(t, Letter(']'), ube.Symbol)
}

func TestTrace2D_UnclosedPushIsAllowed(t *testing.T) {
	segments, err := Trace2D("F[F", math.Pi/2, Vec2{1, 0})
	require.NoError(t, err)
	assert.Len(t, segments, 2)
}

func TestTrace2D_ZeroHeading(t *testing.T) {
	_, err := Trace2D("F", math.Pi/2, Vec2{})
	assert.True(t, errors.Is(err, ErrZeroHeading))

	for _, heading := range []Vec2{
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{1, math.Inf(-1)},
	} {
		_, err := Trace2D("F", math.Pi/2, heading)
		assert.True(t, errors.Is(err, ErrDegenerateVector), "heading %v", heading)
	}

	// Tiny but representable headings still normalize.
	segments, err := Trace2D("F", math.Pi/2, Vec2{1e-200, 0})
	require.NoError(t, err)
	assertVec2(t, Vec2{1, 0}, segments[0].To)
}

func TestTrace2D_CustomSymbols(t *testing.T) {
	symbols := DefaultSymbols2D().BindAll("AB", Draw).Bind('F', None)
	segments, err := Trace2D("A-B-BF", 2*math.Pi/3, Vec2{1, 0}, WithSymbols(symbols))
	require.NoError(t, err)
	require.Len(t, segments, 3)

	// An equilateral triangle closes on itself.
	assertVec2(t, Vec2{0, 0}, segments[2].To)
}

func TestTurtle2D_CachesDirections(t *testing.T) {
	turtle, err := NewTurtle2D(math.Pi/2, Vec2{1, 0})
	require.NoError(t, err)

	_, err = turtle.Trace("+F+F-F-F-F")
	require.NoError(t, err)
	// Indices 0, 1, 2 and -1.
	assert.Equal(t, 4, turtle.CachedDirections())
}

func BenchmarkTrace2D(b *testing.B) {
	s, err := Expand(MustGrammar(plantParameters), 6)
	if err != nil {
		b.Fatal(err)
	}
	turtle, err := NewTurtle2D(25*math.Pi/180, Vec2{1, 0})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := turtle.Trace(s); err != nil {
			b.Fatal(err)
		}
	}
}
