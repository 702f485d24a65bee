package lsystem

// Action is what the turtle does when it reads a symbol.
type Action uint8

const (
	None Action = iota
	Draw
	Jump
	TurnLeft
	TurnRight
	PitchDown
	PitchUp
	RollLeft
	RollRight
	TurnAround
	Push
	Pop
)

var actionNames = [...]string{
	None:       "none",
	Draw:       "draw",
	Jump:       "jump",
	TurnLeft:   "turn-left",
	TurnRight:  "turn-right",
	PitchDown:  "pitch-down",
	PitchUp:    "pitch-up",
	RollLeft:   "roll-left",
	RollRight:  "roll-right",
	TurnAround: "turn-around",
	Push:       "push",
	Pop:        "pop",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction is the inverse of Action.String.
func ParseAction(s string) (Action, bool) {
	for a, name := range actionNames {
		if name == s {
			return Action(a), true
		}
	}
	return None, false
}

// SymbolTable classifies every symbol into exactly one Action. Symbols that
// were never bound are None. Because a symbol holds a single action, the
// draw, jump, rotate and stack classes can never overlap.
//
// The zero value classifies everything as None. Tables are values; Bind
// returns a modified copy.
type SymbolTable struct {
	ascii [128]Action
	other map[rune]Action
}

// Lookup returns the action bound to r.
func (t SymbolTable) Lookup(r rune) Action {
	if r >= 0 && r < 128 {
		return t.ascii[r]
	}
	return t.other[r]
}

// Bind returns a copy of t with r bound to a.
func (t SymbolTable) Bind(r rune, a Action) SymbolTable {
	if r >= 0 && r < 128 {
		t.ascii[r] = a
		return t
	}
	other := make(map[rune]Action, len(t.other)+1)
	for k, v := range t.other {
		other[k] = v
	}
	other[r] = a
	t.other = other
	return t
}

// BindAll binds every rune of symbols to a.
func (t SymbolTable) BindAll(symbols string, a Action) SymbolTable {
	for _, r := range symbols {
		t = t.Bind(r, a)
	}
	return t
}

// Bindings returns every bound symbol with its action.
func (t SymbolTable) Bindings() map[rune]Action {
	out := make(map[rune]Action)
	for r, a := range t.ascii {
		if a != None {
			out[rune(r)] = a
		}
	}
	for r, a := range t.other {
		if a != None {
			out[r] = a
		}
	}
	return out
}

// DefaultSymbols2D binds F and G to Draw, f and g to Jump, + and - to the
// turns and [ and ] to the stack.
func DefaultSymbols2D() SymbolTable {
	var t SymbolTable
	t = t.BindAll("FG", Draw)
	t = t.BindAll("fg", Jump)
	t = t.Bind('+', TurnLeft)
	t = t.Bind('-', TurnRight)
	t = t.Bind('[', Push)
	t = t.Bind(']', Pop)
	return t
}

// DefaultSymbols3D extends DefaultSymbols2D with & ^ \ / and |.
func DefaultSymbols3D() SymbolTable {
	t := DefaultSymbols2D()
	t = t.Bind('&', PitchDown)
	t = t.Bind('^', PitchUp)
	t = t.Bind('\\', RollLeft)
	t = t.Bind('/', RollRight)
	t = t.Bind('|', TurnAround)
	return t
}
