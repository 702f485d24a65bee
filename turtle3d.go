package lsystem

import (
	"math"

	"github.com/pkg/errors"
)

// frameTolerance bounds how far a frame may be from orthonormal.
const frameTolerance = 1e-9

// Segment3 is a line drawn by a 3D turtle.
type Segment3 struct {
	From, To Vec3
}

// State3D is the full state of a 3D turtle. Head and LeftArm are unit
// vectors and orthogonal to each other.
type State3D struct {
	Position Vec3
	Head     Vec3
	LeftArm  Vec3
}

// Up returns the third axis of the frame, Head × LeftArm.
func (s State3D) Up() Vec3 {
	return s.Head.Cross(s.LeftArm)
}

// Turtle3D interprets strings in space.
type Turtle3D struct {
	turn, pitch, roll float64
	head, leftArm     Vec3
	symbols           SymbolTable
}

// NewTurtle3D returns a turtle rotating by angle radians. head and leftArm
// are normalized and must be finite and orthogonal.
func NewTurtle3D(angle float64, head, leftArm Vec3, opts ...TraceOption) (*Turtle3D, error) {
	head, err := unit3(head)
	if err != nil {
		return nil, errors.Wrap(err, "head")
	}
	leftArm, err = unit3(leftArm)
	if err != nil {
		return nil, errors.Wrap(err, "left arm")
	}
	if d := head.Dot(leftArm); !(math.Abs(d) <= frameTolerance) {
		return nil, errors.Wrapf(ErrInvalidFrame, "head · left arm = %g", d)
	}

	cfg := newTraceConfig(DefaultSymbols3D(), opts)
	t := &Turtle3D{
		turn:    angle,
		pitch:   angle,
		roll:    angle,
		head:    head,
		leftArm: leftArm,
		symbols: cfg.symbols,
	}
	if cfg.pitch != nil {
		t.pitch = *cfg.pitch
	}
	if cfg.roll != nil {
		t.roll = *cfg.roll
	}
	return t, nil
}

// Trace3D interprets symbols with a fresh turtle.
func Trace3D(symbols string, angle float64, head, leftArm Vec3, opts ...TraceOption) ([]Segment3, error) {
	t, err := NewTurtle3D(angle, head, leftArm, opts...)
	if err != nil {
		return nil, err
	}
	return t.Trace(symbols)
}

// Trace walks symbols from the origin and returns the drawn segments in
// order.
func (t *Turtle3D) Trace(symbols string) ([]Segment3, error) {
	segments, _, err := t.TraceState(symbols)
	return segments, err
}

// TraceState is like Trace and also returns the final state.
func (t *Turtle3D) TraceState(symbols string) ([]Segment3, State3D, error) {
	var segments []Segment3
	state := State3D{Head: t.head, LeftArm: t.leftArm}
	var stack []State3D

	position := 0
	for _, r := range symbols {
		switch t.symbols.Lookup(r) {
		case Draw:
			next := state.Position.Add(state.Head)
			segments = append(segments, Segment3{From: state.Position, To: next})
			state.Position = next
		case Jump:
			state.Position = state.Position.Add(state.Head)
		case TurnLeft:
			state = state.rotate(state.Head.Cross(state.LeftArm), t.turn)
		case TurnRight:
			state = state.rotate(state.LeftArm.Cross(state.Head), t.turn)
		case PitchDown:
			state = state.rotate(state.LeftArm, t.pitch)
		case PitchUp:
			state = state.rotate(state.LeftArm.Neg(), t.pitch)
		case RollLeft:
			state = state.rotate(state.Head, t.roll)
		case RollRight:
			state = state.rotate(state.Head.Neg(), t.roll)
		case TurnAround:
			state.Head = state.Head.Neg()
			state.LeftArm = state.LeftArm.Neg()
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

// rotate turns both frame vectors by theta about axis, then removes the
// rounding drift so the frame stays orthonormal.
func (s State3D) rotate(axis Vec3, theta float64) State3D {
	head := RotateAxis(s.Head, axis, theta).Normalize()
	left := RotateAxis(s.LeftArm, axis, theta)
	left = left.Sub(head.Scale(head.Dot(left))).Normalize()

	s.Head, s.LeftArm = head, left
	return s
}
