package lsif

import (
	"math"

	"github.com/pkg/errors"
)

// Environment resolves the names used in angle expressions.
type Environment interface {
	Get(v string) (float64, error)
}

// MapEnvironment is an Environment backed by a map.
type MapEnvironment map[string]float64

func (m MapEnvironment) Get(v string) (float64, error) {
	if val, ok := m[v]; ok {
		return val, nil
	}
	return 0, errors.Errorf("undefined variable %q", v)
}

// DefaultEnvironment defines pi, tau and deg (one degree in radians).
var DefaultEnvironment Environment = MapEnvironment{
	"pi":  math.Pi,
	"tau": 2 * math.Pi,
	"deg": math.Pi / 180,
}

// wrappedEnvironment lets a document's own params shadow the outer
// environment.
type wrappedEnvironment struct {
	Inner Environment

	params map[string]float64
}

func (wenv *wrappedEnvironment) Get(v string) (float64, error) {
	if val, ok := wenv.params[v]; ok {
		return val, nil
	} else if wenv.Inner != nil {
		return wenv.Inner.Get(v)
	} else {
		return 0, errors.Errorf("undefined variable %q as there is no environment defined", v)
	}
}

func wrapEnvironment(inner Environment, params map[string]float64) *wrappedEnvironment {
	return &wrappedEnvironment{inner, params}
}
