package lsystem

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Letter is a single symbol of an L-system alphabet.
type Letter rune

func (l Letter) String() string {
	return string(l)
}

// Alphabet partitions the letters of a grammar. Variables are rewritten,
// constants are copied verbatim.
type Alphabet struct {
	Variables []Letter
	Constants []Letter
}

// Parameters is the static description a Grammar is built from.
type Parameters struct {
	Alphabet Alphabet
	Rules    map[Letter]string
	Axiom    string
}

// Grammar is a deterministic context-free L-system. It is immutable once
// built by NewGrammar.
type Grammar struct {
	variables map[Letter]struct{}
	constants map[Letter]struct{}
	rules     map[Letter]string
	axiom     string
}

// NewGrammar validates the parameters and builds a Grammar.
//
// Variables and constants must be disjoint and every rule must rewrite a
// declared variable. A variable without a rule is accepted; how it is treated
// during expansion depends on WithStrict.
func NewGrammar(p Parameters) (Grammar, error) {
	g := Grammar{
		variables: make(map[Letter]struct{}, len(p.Alphabet.Variables)),
		constants: make(map[Letter]struct{}, len(p.Alphabet.Constants)),
		rules:     make(map[Letter]string, len(p.Rules)),
		axiom:     p.Axiom,
	}

	for _, v := range p.Alphabet.Variables {
		g.variables[v] = struct{}{}
	}
	for _, c := range p.Alphabet.Constants {
		if _, ok := g.variables[c]; ok {
			return Grammar{}, errors.Wrapf(ErrAlphabetOverlap, "letter %q", c)
		}
		g.constants[c] = struct{}{}
	}

	for from, to := range p.Rules {
		if _, ok := g.variables[from]; !ok {
			return Grammar{}, errors.Wrapf(ErrUndeclaredRule, "letter %q", from)
		}
		g.rules[from] = to
	}

	return g, nil
}

// MustGrammar is like NewGrammar but panics on invalid parameters. It is
// meant for static tables such as the preset catalog.
func MustGrammar(p Parameters) Grammar {
	g, err := NewGrammar(p)
	if err != nil {
		panic("lsystem: " + err.Error())
	}
	return g
}

// Axiom returns the initial string.
func (g Grammar) Axiom() string {
	return g.axiom
}

// IsVariable reports whether l is a declared variable.
func (g Grammar) IsVariable(l Letter) bool {
	_, ok := g.variables[l]
	return ok
}

// IsConstant reports whether l is a declared constant.
func (g Grammar) IsConstant(l Letter) bool {
	_, ok := g.constants[l]
	return ok
}

// Rule returns the replacement for l and whether one exists.
func (g Grammar) Rule(l Letter) (string, bool) {
	r, ok := g.rules[l]
	return r, ok
}

// Variables returns the declared variables in ascending order.
func (g Grammar) Variables() []Letter {
	return sortedLetters(g.variables)
}

// Constants returns the declared constants in ascending order.
func (g Grammar) Constants() []Letter {
	return sortedLetters(g.constants)
}

// Rules returns a copy of the rule mapping.
func (g Grammar) Rules() map[Letter]string {
	out := make(map[Letter]string, len(g.rules))
	for k, v := range g.rules {
		out[k] = v
	}
	return out
}

// Parameters returns the parameters g was built from, in canonical order.
func (g Grammar) Parameters() Parameters {
	return Parameters{
		Alphabet: Alphabet{
			Variables: g.Variables(),
			Constants: g.Constants(),
		},
		Rules: g.Rules(),
		Axiom: g.axiom,
	}
}

func (g Grammar) String() string {
	var sb strings.Builder
	sb.WriteString("axiom: ")
	sb.WriteString(g.axiom)
	for _, v := range g.Variables() {
		if r, ok := g.rules[v]; ok {
			sb.WriteString("; ")
			sb.WriteRune(rune(v))
			sb.WriteString(" -> ")
			sb.WriteString(r)
		}
	}
	return sb.String()
}

func sortedLetters(set map[Letter]struct{}) []Letter {
	out := make([]Letter, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Letters converts a string into its letters. Handy when declaring an
// alphabet: Letters("F+-").
func Letters(s string) []Letter {
	out := make([]Letter, 0, len(s))
	for _, r := range s {
		out = append(out, Letter(r))
	}
	return out
}
