package lsystem

import (
	"math"

	"github.com/pkg/errors"
)

// Mode selects the 2D or the 3D turtle.
type Mode int

const (
	Mode2D Mode = iota
	Mode3D
)

func (m Mode) String() string {
	switch m {
	case Mode2D:
		return "2d"
	case Mode3D:
		return "3d"
	}
	return "unknown"
}

// ParseMode accepts "2d" and "3d", case-sensitively. The empty string is 2D.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "2d":
		return Mode2D, nil
	case "3d":
		return Mode3D, nil
	}
	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}

// Geometry describes how a string is turned into segments. Heading is used
// in 2D; Head and LeftArm in 3D. Zero vectors fall back to the defaults:
// heading and head along +X, left arm along +Y.
type Geometry struct {
	Mode    Mode
	Angle   float64
	Heading Vec2
	Head    Vec3
	LeftArm Vec3

	// PitchAngle and RollAngle override Angle for & ^ and \ / in 3D. Nil
	// means Angle.
	PitchAngle *float64
	RollAngle  *float64

	// Symbols overrides the default table of the mode when non-nil.
	Symbols *SymbolTable
}

func (g Geometry) options() []TraceOption {
	var opts []TraceOption
	if g.Symbols != nil {
		opts = append(opts, WithSymbols(*g.Symbols))
	}
	if g.Mode == Mode3D && (g.PitchAngle != nil || g.RollAngle != nil) {
		pitch, roll := g.Angle, g.Angle
		if g.PitchAngle != nil {
			pitch = *g.PitchAngle
		}
		if g.RollAngle != nil {
			roll = *g.RollAngle
		}
		opts = append(opts, WithPitchRoll(pitch, roll))
	}
	return opts
}

func (g Geometry) heading() Vec2 {
	if g.Heading.IsZero() {
		return Vec2{1, 0}
	}
	return g.Heading
}

func (g Geometry) frame() (Vec3, Vec3) {
	head, left := g.Head, g.LeftArm
	if head.IsZero() {
		head = Vec3{1, 0, 0}
	}
	if left.IsZero() {
		left = Vec3{0, 1, 0}
	}
	return head, left
}

// Point is a 2- or 3-tuple of coordinates.
type Point []float64

// Segment is a mode-agnostic line. Both points have the same arity.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Dim returns the arity of the segment's points.
func (s Segment) Dim() int {
	return len(s.From)
}

// TraceSegments interprets symbols according to g.
func TraceSegments(symbols string, g Geometry) ([]Segment, error) {
	switch g.Mode {
	case Mode2D:
		segments, err := Trace2D(symbols, g.Angle, g.heading(), g.options()...)
		if err != nil {
			return nil, err
		}
		return Segments2(segments), nil
	case Mode3D:
		head, left := g.frame()
		segments, err := Trace3D(symbols, g.Angle, head, left, g.options()...)
		if err != nil {
			return nil, err
		}
		return Segments3(segments), nil
	}
	return nil, errors.Wrapf(ErrUnknownMode, "%d", int(g.Mode))
}

// Segments2 converts 2D segments to the mode-agnostic form.
func Segments2(in []Segment2) []Segment {
	out := make([]Segment, len(in))
	for i, s := range in {
		out[i] = Segment{From: s.From.Slice(), To: s.To.Slice()}
	}
	return out
}

// Segments3 converts 3D segments to the mode-agnostic form.
func Segments3(in []Segment3) []Segment {
	out := make([]Segment, len(in))
	for i, s := range in {
		out[i] = Segment{From: s.From.Slice(), To: s.To.Slice()}
	}
	return out
}

// Bounds returns the per-axis minimum and maximum over every endpoint. Both
// are nil for an empty list.
func Bounds(segments []Segment) (lo, hi Point) {
	if len(segments) == 0 {
		return nil, nil
	}
	dim := segments[0].Dim()
	lo, hi = make(Point, dim), make(Point, dim)
	for i := range lo {
		lo[i], hi[i] = math.Inf(1), math.Inf(-1)
	}
	for _, s := range segments {
		for _, p := range []Point{s.From, s.To} {
			for i := 0; i < dim && i < len(p); i++ {
				lo[i] = math.Min(lo[i], p[i])
				hi[i] = math.Max(hi[i], p[i])
			}
		}
	}
	return lo, hi
}
