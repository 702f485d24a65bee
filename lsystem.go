// Package lsystem expands deterministic context-free Lindenmayer systems and
// interprets the resulting strings as turtle graphics.
//
// # Rewriting
//
// A Grammar is rewritten in parallel: every letter of a round is replaced
// against the string as it was at the start of that round. Expand runs a
// fixed number of rounds; RewriteOnce runs one. The length of the result
// grows exponentially with the number of rounds and no limit is applied
// unless WithMaxLength is given.
//
// # Turtle interpretation
//
// Trace2D and Trace3D walk a string and emit line segments. In 2D the heading
// only ever takes the values of the initial heading rotated by a multiple of
// the turn angle, so those directions are computed once per multiple and
// cached. In 3D the orientation is a head/left-arm frame rotated with
// Rodrigues' formula.
//
// Angles are in radians and turn counter-clockwise.
package lsystem

import (
	"math"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

type expandConfig struct {
	strict    bool
	maxLength int
}

// ExpandOption configures Expand.
type ExpandOption func(*expandConfig)

// WithStrict makes a declared variable without a rule an error instead of
// being copied through unchanged.
func WithStrict() ExpandOption {
	return func(c *expandConfig) {
		c.strict = true
	}
}

// WithMaxLength rejects expansions whose result would be longer than n
// letters. The check happens before any rewriting. n <= 0 disables it.
func WithMaxLength(n int) ExpandOption {
	return func(c *expandConfig) {
		c.maxLength = n
	}
}

// Expand rewrites the axiom of g the given number of times.
func Expand(g Grammar, iterations int, opts ...ExpandOption) (string, error) {
	var cfg expandConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if iterations < 0 {
		return "", errors.Wrapf(ErrNegativeIterations, "%d", iterations)
	}

	if cfg.maxLength > 0 {
		if n := ProjectedLength(g, iterations); n > cfg.maxLength {
			return "", errors.Wrapf(ErrLengthExceeded, "%d letters after %d iterations, limit is %d", n, iterations, cfg.maxLength)
		}
	}

	current := g.axiom
	for i := 0; i < iterations; i++ {
		next, err := rewrite(g, current, i, cfg.strict)
		if err != nil {
			return "", err
		}
		current = next
	}
	return current, nil
}

// RewriteOnce runs a single lenient rewriting round over s.
func RewriteOnce(g Grammar, s string) string {
	// Lenient rewriting never fails.
	out, _ := rewrite(g, s, 0, false)
	return out
}

// outputSize returns the byte length of s after one round.
func outputSize(g Grammar, s string) int {
	var size int
	for _, r := range s {
		if rule, ok := g.rules[Letter(r)]; ok {
			size += len(rule)
		} else {
			size += len(string(r))
		}
	}
	return size
}

func rewrite(g Grammar, s string, iteration int, strict bool) (string, error) {
	var sb strings.Builder
	sb.Grow(outputSize(g, s))

	position := 0
	for _, r := range s {
		l := Letter(r)
		if rule, ok := g.rules[l]; ok {
			sb.WriteString(rule)
		} else {
			if strict && g.IsVariable(l) {
				return "", &MissingRuleError{Symbol: l, Position: position, Iteration: iteration}
			}
			sb.WriteRune(r)
		}
		position++
	}
	return sb.String(), nil
}

// ProjectedLength returns the number of letters Expand(g, iterations) would
// produce, without building the string. The result saturates at math.MaxInt.
func ProjectedLength(g Grammar, iterations int) int {
	if iterations < 0 {
		return 0
	}

	counts := letterCounts(g.axiom)
	produced := make(map[Letter]map[Letter]int, len(g.rules))
	for from, to := range g.rules {
		produced[from] = letterCounts(to)
	}

	for i := 0; i < iterations; i++ {
		next := make(map[Letter]int, len(counts))
		for l, c := range counts {
			p, ok := produced[l]
			if !ok {
				next[l] = saturatingAdd(next[l], c)
				continue
			}
			for out, k := range p {
				next[out] = saturatingAdd(next[out], saturatingMul(c, k))
			}
		}
		counts = next
		if total(counts) == math.MaxInt {
			return math.MaxInt
		}
	}
	return total(counts)
}

func letterCounts(s string) map[Letter]int {
	counts := make(map[Letter]int)
	for _, r := range s {
		counts[Letter(r)]++
	}
	return counts
}

func total(counts map[Letter]int) int {
	var n int
	for _, c := range counts {
		n = saturatingAdd(n, c)
	}
	return n
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func saturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// LSystem holds the successive tiers of a grammar's expansion, one
// Derivate call at a time.
type LSystem struct {
	Grammar Grammar

	opts        []ExpandOption
	strict      bool
	currentTier int
	tier        string

	mu sync.Mutex
}

// New prepares an LSystem whose tier 0 is the axiom of g. Only WithStrict is
// honoured by Derivate; WithMaxLength applies to DerivateUntil.
func New(g Grammar, opts ...ExpandOption) *LSystem {
	var cfg expandConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &LSystem{
		Grammar: g,
		opts:    opts,
		strict:  cfg.strict,
		tier:    g.axiom,
	}
}

// Derivate runs one rewriting round.
func (ls *LSystem) Derivate() error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	return ls.derivate()
}

// derivate runs one round; ls.mu must be held.
func (ls *LSystem) derivate() error {
	next, err := rewrite(ls.Grammar, ls.tier, ls.currentTier, ls.strict)
	if err != nil {
		return err
	}

	ls.tier = next
	ls.currentTier++
	return nil
}

// DerivateUntil runs rounds until the given tier is reached. It is a no-op
// if the system is already at or past it. Concurrent calls never overshoot
// the tier.
func (ls *LSystem) DerivateUntil(tier int) error {
	var cfg expandConfig
	for _, opt := range ls.opts {
		opt(&cfg)
	}
	if cfg.maxLength > 0 {
		if n := ProjectedLength(ls.Grammar, tier); n > cfg.maxLength {
			return errors.Wrapf(ErrLengthExceeded, "%d letters at tier %d, limit is %d", n, tier, cfg.maxLength)
		}
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	for ls.currentTier < tier {
		if err := ls.derivate(); err != nil {
			return err
		}
	}
	return nil
}

// Export returns the current tier.
func (ls *LSystem) Export() string {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	return ls.tier
}

// CurrentTier returns how many rounds have been run.
func (ls *LSystem) CurrentTier() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	return ls.currentTier
}
