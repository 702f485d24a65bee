package lsif

import (
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/mainakk/lsystem"
	"github.com/pkg/errors"
)

// Import builds a preset using DefaultEnvironment.
func (format *Format) Import() (lsystem.Preset, error) {
	return format.ImportWith(DefaultEnvironment)
}

// ImportWith builds a preset, evaluating angles against env extended with
// the document's params.
func (format *Format) ImportWith(env Environment) (lsystem.Preset, error) {
	rules := make(map[lsystem.Letter]string, len(format.Rules))
	for from, to := range format.Rules {
		if utf8.RuneCountInString(from) != 1 {
			return lsystem.Preset{}, errors.Errorf("preset %s: rule key %q must be a single letter", format.Name, from)
		}
		r, _ := utf8.DecodeRuneInString(from)
		rules[lsystem.Letter(r)] = to
	}

	parameters := lsystem.Parameters{
		Alphabet: lsystem.Alphabet{
			Variables: lsystem.Letters(format.Variables),
			Constants: lsystem.Letters(format.Constants),
		},
		Rules: rules,
		Axiom: format.Axiom,
	}
	if _, err := lsystem.NewGrammar(parameters); err != nil {
		return lsystem.Preset{}, errors.Wrapf(err, "preset %s", format.Name)
	}

	geometry, err := format.geometry(wrapEnvironment(env, format.Params))
	if err != nil {
		return lsystem.Preset{}, errors.Wrapf(err, "preset %s", format.Name)
	}

	return lsystem.Preset{
		Name:       format.Name,
		Source:     format.Source,
		Parameters: parameters,
		Geometry:   geometry,
		Iterations: format.Iterations,
	}, nil
}

func (format *Format) geometry(env Environment) (lsystem.Geometry, error) {
	mode, err := lsystem.ParseMode(format.Mode)
	if err != nil {
		return lsystem.Geometry{}, err
	}
	geometry := lsystem.Geometry{Mode: mode}

	if geometry.Angle, err = Evaluate(format.Angle, env); err != nil {
		return lsystem.Geometry{}, errors.Wrap(err, "angle")
	}
	if geometry.PitchAngle, err = optionalAngle(format.PitchAngle, env); err != nil {
		return lsystem.Geometry{}, errors.Wrap(err, "pitch_angle")
	}
	if geometry.RollAngle, err = optionalAngle(format.RollAngle, env); err != nil {
		return lsystem.Geometry{}, errors.Wrap(err, "roll_angle")
	}

	switch mode {
	case lsystem.Mode2D:
		if format.Heading != nil {
			if len(format.Heading) != 2 {
				return lsystem.Geometry{}, errors.Errorf("heading needs 2 components, got %d", len(format.Heading))
			}
			geometry.Heading = lsystem.Vec2{X: format.Heading[0], Y: format.Heading[1]}
		}
	case lsystem.Mode3D:
		if geometry.Head, err = vec3("head", format.Head); err != nil {
			return lsystem.Geometry{}, err
		}
		if geometry.LeftArm, err = vec3("left_arm", format.LeftArm); err != nil {
			return lsystem.Geometry{}, err
		}
	}

	if len(format.Symbols) > 0 {
		table := lsystem.DefaultSymbols2D()
		if mode == lsystem.Mode3D {
			table = lsystem.DefaultSymbols3D()
		}
		// Sorted so that overlap errors name the actions in a stable order.
		names := make([]string, 0, len(format.Symbols))
		for name := range format.Symbols {
			names = append(names, name)
		}
		sort.Strings(names)
		bound := make(map[rune]string)
		for _, name := range names {
			action, ok := lsystem.ParseAction(name)
			if !ok {
				return lsystem.Geometry{}, errors.Errorf("unknown action %q", name)
			}
			for _, r := range format.Symbols[name] {
				if prev, dup := bound[r]; dup && prev != name {
					return lsystem.Geometry{}, errors.Wrapf(lsystem.ErrSymbolOverlap, "%q listed under %s and %s", r, prev, name)
				}
				bound[r] = name
			}
			table = table.BindAll(format.Symbols[name], action)
		}
		geometry.Symbols = &table
	}

	return geometry, nil
}

// optionalAngle evaluates expr, returning nil when it is empty.
func optionalAngle(expr string, env Environment) (*float64, error) {
	if expr == "" {
		return nil, nil
	}
	v, err := Evaluate(expr, env)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func vec3(field string, v []float64) (lsystem.Vec3, error) {
	if v == nil {
		return lsystem.Vec3{}, nil
	}
	if len(v) != 3 {
		return lsystem.Vec3{}, errors.Errorf("%s needs 3 components, got %d", field, len(v))
	}
	return lsystem.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// FromPreset describes p as an LSIF document. Angles are written as plain
// numbers and the symbol table, if any, in full.
func FromPreset(p lsystem.Preset) *Format {
	g := p.Parameters
	format := &Format{
		Name:       p.Name,
		Source:     p.Source,
		Mode:       p.Geometry.Mode.String(),
		Variables:  lettersString(g.Alphabet.Variables),
		Constants:  lettersString(g.Alphabet.Constants),
		Rules:      make(map[string]string, len(g.Rules)),
		Axiom:      g.Axiom,
		Angle:      formatFloat(p.Geometry.Angle),
		Iterations: p.Iterations,
	}
	for from, to := range g.Rules {
		format.Rules[string(from)] = to
	}
	if p.Geometry.PitchAngle != nil {
		format.PitchAngle = formatFloat(*p.Geometry.PitchAngle)
	}
	if p.Geometry.RollAngle != nil {
		format.RollAngle = formatFloat(*p.Geometry.RollAngle)
	}

	switch p.Geometry.Mode {
	case lsystem.Mode2D:
		if h := p.Geometry.Heading; !h.IsZero() {
			format.Heading = h.Slice()
		}
	case lsystem.Mode3D:
		if h := p.Geometry.Head; !h.IsZero() {
			format.Head = h.Slice()
		}
		if l := p.Geometry.LeftArm; !l.IsZero() {
			format.LeftArm = l.Slice()
		}
	}

	if p.Geometry.Symbols != nil {
		format.Symbols = make(map[string]string)
		for r, action := range p.Geometry.Symbols.Bindings() {
			format.Symbols[action.String()] += string(r)
		}
		defaults := lsystem.DefaultSymbols2D()
		if p.Geometry.Mode == lsystem.Mode3D {
			defaults = lsystem.DefaultSymbols3D()
		}
		for r := range defaults.Bindings() {
			if p.Geometry.Symbols.Lookup(r) == lsystem.None {
				format.Symbols[lsystem.None.String()] += string(r)
			}
		}
		for name, symbols := range format.Symbols {
			format.Symbols[name] = sortString(symbols)
		}
	}

	return format
}

func lettersString(letters []lsystem.Letter) string {
	runes := make([]rune, len(letters))
	for i, l := range letters {
		runes[i] = rune(l)
	}
	return string(runes)
}

func sortString(s string) string {
	runes := []rune(s)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
