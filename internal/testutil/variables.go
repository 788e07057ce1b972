package testutil

import (
	"strconv"

	"github.com/specialistvlad/finsheet/internal/model"
)

// VariableOption customizes a variable built by Series, Constant or
// Integration.
type VariableOption func(*model.Variable)

// Named sets the display name.
func Named(name string) VariableOption {
	return func(v *model.Variable) { v.Name = name }
}

// FirstValue sets Value1 and enables HasDistinctFirstValue.
func FirstValue(expr string) VariableOption {
	return func(v *model.Variable) {
		v.HasDistinctFirstValue = true
		v.Value1 = expr
	}
}

// StartingAt sets the number of leading placeholder periods.
func StartingAt(n int) VariableOption {
	return func(v *model.Variable) { v.StartingAt = n }
}

// Series returns a formula variable evaluated for every period.
func Series(id, value string, opts ...VariableOption) model.Variable {
	return build(model.Variable{
		ID:           id,
		Name:         "Variable " + id,
		Kind:         model.KindFormula,
		IsTimeSeries: true,
		Value:        value,
	}, opts)
}

// Constant returns a non-time-series value variable.
func Constant(id, value string, opts ...VariableOption) model.Variable {
	return build(model.Variable{
		ID:    id,
		Name:  "Variable " + id,
		Kind:  model.KindValue,
		Value: value,
	}, opts)
}

// Integration returns an integration variable with pre-computed values.
func Integration(id string, values []string, opts ...VariableOption) model.Variable {
	return build(model.Variable{
		ID:                id,
		Name:              "Variable " + id,
		Kind:              model.KindIntegration,
		IsTimeSeries:      true,
		IntegrationValues: values,
	}, opts)
}

// Sequence returns n decimal strings counting up from start.
func Sequence(start, n int) []string {
	values := make([]string, n)
	for i := range values {
		values[i] = strconv.Itoa(start + i)
	}
	return values
}

// Repeat returns n copies of value.
func Repeat(value string, n int) []string {
	values := make([]string, n)
	for i := range values {
		values[i] = value
	}
	return values
}

func build(v model.Variable, opts []VariableOption) model.Variable {
	for _, opt := range opts {
		opt(&v)
	}
	return v
}
