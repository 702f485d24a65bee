// Package lsif is the reference implementation of the L-System Interchange
// Format, a YAML description of a preset.
//
// A document looks like:
//
//	name: fractal-plant
//	source: https://en.wikipedia.org/wiki/L-system
//	variables: XF
//	constants: '+-[]'
//	rules:
//	  X: 'F+[[X]-X]-F[-FX]+X'
//	  F: 'FF'
//	axiom: X
//	angle: 25 * deg
//	heading: [0, 1]
//	iterations: 5
//
// Angles are expressions evaluated against an Environment; pi, tau and deg
// are predefined and a document may add its own under params. Several
// documents can follow each other in one stream, separated by "---".
//
// 3D documents may set pitch_angle and roll_angle for & ^ and \ /. An absent
// field falls back to angle; an explicit 0 leaves that rotation out.
package lsif

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Format is one LSIF document.
type Format struct {
	Name       string             `yaml:"name"`
	Source     string             `yaml:"source,omitempty"`
	Mode       string             `yaml:"mode,omitempty"`
	Variables  string             `yaml:"variables"`
	Constants  string             `yaml:"constants,omitempty"`
	Rules      map[string]string  `yaml:"rules"`
	Axiom      string             `yaml:"axiom"`
	Params     map[string]float64 `yaml:"params,omitempty"`
	Angle      string             `yaml:"angle"`
	PitchAngle string             `yaml:"pitch_angle,omitempty"`
	RollAngle  string             `yaml:"roll_angle,omitempty"`
	Heading    []float64          `yaml:"heading,omitempty,flow"`
	Head       []float64          `yaml:"head,omitempty,flow"`
	LeftArm    []float64          `yaml:"left_arm,omitempty,flow"`
	Iterations int                `yaml:"iterations,omitempty"`

	// Symbols rebinds turtle actions, keyed by action name ("draw",
	// "jump", ...). Each value lists the symbols bound to that action on top
	// of the mode's defaults.
	Symbols map[string]string `yaml:"symbols,omitempty"`
}

type Decoder struct {
	yamlDecoder *yaml.Decoder
}

func NewDecoder(in io.Reader) *Decoder {
	return &Decoder{
		yamlDecoder: yaml.NewDecoder(in),
	}
}

// Decode reads the next document. It returns io.EOF when the stream is
// exhausted.
func (dec *Decoder) Decode() (*Format, error) {
	format := &Format{}
	err := dec.yamlDecoder.Decode(format)
	return format, err
}

// DecodeAll reads every remaining document.
func (dec *Decoder) DecodeAll() ([]*Format, error) {
	var formats []*Format
	for {
		format, err := dec.Decode()
		if err == io.EOF {
			return formats, nil
		}
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
}

type Encoder struct {
	yamlEncoder *yaml.Encoder
}

func NewEncoder(out io.Writer) *Encoder {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	return &Encoder{yamlEncoder: enc}
}

// Encode writes format as a new document.
func (enc *Encoder) Encode(format *Format) error {
	return enc.yamlEncoder.Encode(format)
}

// Close flushes the encoder.
func (enc *Encoder) Close() error {
	return enc.yamlEncoder.Close()
}
