package lsystem

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrammar(t *testing.T) {
	tests := []struct {
		name    string
		params  Parameters
		wantErr error
	}{
		{
			name:   "koch",
			params: kochParameters,
		},
		{
			name: "variable without rule",
			params: Parameters{
				Alphabet: Alphabet{Variables: Letters("FX")},
				Rules:    map[Letter]string{'F': "FX"},
				Axiom:    "F",
			},
		},
		{
			name: "overlapping alphabet",
			params: Parameters{
				Alphabet: Alphabet{Variables: Letters("F"), Constants: Letters("F+")},
				Rules:    map[Letter]string{'F': "F+F"},
				Axiom:    "F",
			},
			wantErr: ErrAlphabetOverlap,
		},
		{
			name: "rule for a constant",
			params: Parameters{
				Alphabet: Alphabet{Variables: Letters("F"), Constants: Letters("+")},
				Rules:    map[Letter]string{'F': "F+F", '+': "-"},
				Axiom:    "F",
			},
			wantErr: ErrUndeclaredRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrammar(tt.params)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestMustGrammar_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGrammar(Parameters{
			Alphabet: Alphabet{Variables: Letters("F"), Constants: Letters("F")},
		})
	})
}

func TestGrammar_IsImmutable(t *testing.T) {
	rules := map[Letter]string{'F': "F+F"}
	g := MustGrammar(Parameters{
		Alphabet: Alphabet{Variables: Letters("F"), Constants: Letters("+")},
		Rules:    rules,
		Axiom:    "F",
	})

	rules['F'] = "changed"
	g.Rules()['F'] = "changed too"

	r, ok := g.Rule('F')
	require.True(t, ok)
	assert.Equal(t, "F+F", r)
}

func TestGrammar_Accessors(t *testing.T) {
	g := MustGrammar(plantParameters)

	assert.Equal(t, Letters("FX"), g.Variables())
	assert.Equal(t, Letters("+-[]"), g.Constants())
	assert.True(t, g.IsVariable('X'))
	assert.False(t, g.IsVariable('+'))
	assert.True(t, g.IsConstant('['))
	assert.Equal(t, "X", g.Axiom())

	_, ok := g.Rule('+')
	assert.False(t, ok)

	p := g.Parameters()
	again, err := NewGrammar(p)
	require.NoError(t, err)
	assert.Equal(t, g.String(), again.String())
	assert.Equal(t, "axiom: X; F -> FF; X -> F+[[X]-X]-F[-FX]+X", g.String())
}
