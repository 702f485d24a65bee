package lsystem

import "github.com/pkg/errors"

// Segment2 is a line drawn by a 2D turtle.
type Segment2 struct {
	From, To Vec2
}

// State2D is the full state of a 2D turtle.
type State2D struct {
	Position      Vec2
	Heading       Vec2
	RotationIndex int
}

type traceConfig struct {
	symbols    SymbolTable
	hasSymbols bool

	// 3D only; nil means the turn angle.
	pitch, roll *float64
}

// TraceOption configures a turtle.
type TraceOption func(*traceConfig)

// WithSymbols replaces the default symbol table.
func WithSymbols(t SymbolTable) TraceOption {
	return func(c *traceConfig) {
		c.symbols = t
		c.hasSymbols = true
	}
}

// WithPitchRoll sets separate angles for pitching (& ^) and rolling (\ /).
// 2D turtles ignore it.
func WithPitchRoll(pitch, roll float64) TraceOption {
	return func(c *traceConfig) {
		c.pitch = &pitch
		c.roll = &roll
	}
}

func newTraceConfig(defaults SymbolTable, opts []TraceOption) traceConfig {
	var cfg traceConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSymbols {
		cfg.symbols = defaults
	}
	return cfg
}

// Turtle2D interprets strings in the plane. The heading after k net left
// turns is the initial heading rotated by k times the angle; those
// directions are cached for the lifetime of the turtle.
//
// A Turtle2D is not safe for concurrent use.
type Turtle2D struct {
	angle   float64
	symbols SymbolTable
	cache   *RotationCache
}

// NewTurtle2D returns a turtle turning by angle radians. The heading is
// normalized, so every move has unit length.
func NewTurtle2D(angle float64, heading Vec2, opts ...TraceOption) (*Turtle2D, error) {
	heading, err := unit2(heading)
	if err != nil {
		return nil, errors.Wrap(err, "heading")
	}
	cfg := newTraceConfig(DefaultSymbols2D(), opts)
	return &Turtle2D{
		angle:   angle,
		symbols: cfg.symbols,
		cache:   NewRotationCache(angle, heading),
	}, nil
}

// Trace2D interprets symbols with a fresh turtle.
func Trace2D(symbols string, angle float64, heading Vec2, opts ...TraceOption) ([]Segment2, error) {
	t, err := NewTurtle2D(angle, heading, opts...)
	if err != nil {
		return nil, err
	}
	return t.Trace(symbols)
}

// Trace walks symbols from the origin and returns the drawn segments in
// order.
func (t *Turtle2D) Trace(symbols string) ([]Segment2, error) {
	segments, _, err := t.TraceState(symbols)
	return segments, err
}

// TraceState is like Trace and also returns the state of the turtle after
// the last symbol.
func (t *Turtle2D) TraceState(symbols string) ([]Segment2, State2D, error) {
	segments := make([]Segment2, 0, t.countDraws(symbols))
	state := State2D{Heading: t.cache.Vector(0)}
	var stack []State2D

	position := 0
	for _, r := range symbols {
		switch t.symbols.Lookup(r) {
		case Draw:
			next := state.Position.Add(state.Heading)
			segments = append(segments, Segment2{From: state.Position, To: next})
			state.Position = next
		case Jump:
			state.Position = state.Position.Add(state.Heading)
		case TurnLeft:
			state.RotationIndex++
			state.Heading = t.cache.Vector(state.RotationIndex)
		case TurnRight:
			state.RotationIndex--
			state.Heading = t.cache.Vector(state.RotationIndex)
		case Push:
			stack = append(stack, state)
		case Pop:
			if len(stack) == 0 {
				return nil, state, errors.WithStack(&UnbalancedBracketsError{Symbol: Letter(r), Position: position})
			}
			state = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		position++
	}

	return segments, state, nil
}

// CachedDirections returns how many directions the turtle has computed so
// far.
func (t *Turtle2D) CachedDirections() int {
	return t.cache.Len()
}

func (t *Turtle2D) countDraws(symbols string) int {
	var n int
	for _, r := range symbols {
		if t.symbols.Lookup(r) == Draw {
			n++
		}
	}
	return n
}
