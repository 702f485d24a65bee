package lsystem

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingRule is returned in strict mode when a variable has no rule.
	ErrMissingRule = errors.New("missing rule")

	// ErrUnbalancedBrackets is returned when a pop finds an empty stack.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")

	ErrAlphabetOverlap    = errors.New("letter is both a variable and a constant")
	ErrUndeclaredRule     = errors.New("rule for a letter that is not a variable")
	ErrNegativeIterations = errors.New("negative iteration count")
	ErrLengthExceeded     = errors.New("expanded length exceeds the limit")
	ErrZeroHeading        = errors.New("heading is the zero vector")
	ErrDegenerateVector   = errors.New("vector cannot be normalized")
	ErrSymbolOverlap      = errors.New("symbol bound to more than one action")
	ErrInvalidFrame       = errors.New("head and left arm are not orthonormal")
	ErrUnknownMode        = errors.New("unknown geometry mode")
)

// MissingRuleError reports a variable without a rule found while expanding
// in strict mode.
type MissingRuleError struct {
	Symbol    Letter
	Position  int // index in the string being rewritten, in letters
	Iteration int // zero-based round
}

func (e *MissingRuleError) Error() string {
	return fmt.Sprintf("%v: variable %q at position %d (iteration %d)", ErrMissingRule, e.Symbol, e.Position, e.Iteration)
}

func (e *MissingRuleError) Unwrap() error {
	return ErrMissingRule
}

// UnbalancedBracketsError reports a pop symbol with no matching push.
type UnbalancedBracketsError struct {
	Symbol   Letter
	Position int
}

func (e *UnbalancedBracketsError) Error() string {
	return fmt.Sprintf("%v: %q at position %d has no matching push", ErrUnbalancedBrackets, e.Symbol, e.Position)
}

func (e *UnbalancedBracketsError) Unwrap() error {
	return ErrUnbalancedBrackets
}
