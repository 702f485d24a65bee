package lsif

import (
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/pkg/errors"
)

type expressionFunction func(environment Environment) (float64, error)

// wrappedVariablesForExpression adapts an Environment to govaluate.Parameters.
type wrappedVariablesForExpression struct {
	env Environment
}

func (wvfp wrappedVariablesForExpression) Get(name string) (interface{}, error) {
	val, err := wvfp.env.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't find %s", name)
	}
	return val, nil
}

func parseExpression(asString string) (expressionFunction, error) {
	asString = strings.TrimSpace(asString)
	if asString == "" {
		return nil, errors.New("empty expression")
	}

	// Plain numbers skip the evaluator.
	if scalar, err := strconv.ParseFloat(asString, 64); err == nil {
		return func(_ Environment) (float64, error) {
			return scalar, nil
		}, nil
	}

	evaluable, err := govaluate.NewEvaluableExpression(asString)
	if err != nil {
		return nil, errors.Wrapf(err, "error while parsing expression %q", asString)
	}

	return func(env Environment) (float64, error) {
		resAsInterface, err := evaluable.Eval(wrappedVariablesForExpression{env})
		if err != nil {
			return 0, errors.Wrapf(err, "error while evaluating %q", asString)
		}

		resAsFloat, ok := resAsInterface.(float64)
		if !ok {
			return 0, errors.Errorf("expression %q is not numeric", asString)
		}
		return resAsFloat, nil
	}, nil
}

// Evaluate parses and evaluates an expression in one step.
func Evaluate(expression string, env Environment) (float64, error) {
	f, err := parseExpression(expression)
	if err != nil {
		return 0, err
	}
	return f(env)
}
