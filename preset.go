package lsystem

// Preset is a named L-system together with the geometry it is meant to be
// drawn with. Presets are plain data.
type Preset struct {
	Name       string
	Source     string
	Parameters Parameters
	Geometry   Geometry

	// Iterations is the suggested number of rewriting rounds.
	Iterations int
}

// Grammar builds the preset's grammar.
func (p Preset) Grammar() (Grammar, error) {
	return NewGrammar(p.Parameters)
}

// Expand rewrites the preset's axiom the given number of times.
func (p Preset) Expand(iterations int, opts ...ExpandOption) (string, error) {
	g, err := p.Grammar()
	if err != nil {
		return "", err
	}
	return Expand(g, iterations, opts...)
}

// Segments expands the preset and traces the result with its geometry.
func (p Preset) Segments(iterations int, opts ...ExpandOption) ([]Segment, error) {
	s, err := p.Expand(iterations, opts...)
	if err != nil {
		return nil, err
	}
	return TraceSegments(s, p.Geometry)
}
