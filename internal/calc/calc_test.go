package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateFloor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		expr     string
		expected string
	}{
		{name: "integer literal", expr: "123456789", expected: "123456789"},
		{name: "fraction floors", expr: "0.3", expected: "0"},
		{name: "addition chain", expr: "1+1+1+1", expected: "4"},
		{name: "precedence", expr: "2+3*4", expected: "14"},
		{name: "parentheses", expr: "(2+3)*4", expected: "20"},
		{name: "growth step", expr: "100*(1+0.01)", expected: "101"},
		{name: "growth step floors", expr: "101*(1+0.01)", expected: "102"},
		{name: "negative floors down", expr: "0-1.5", expected: "-2"},
		{name: "unary minus", expr: "-(4*2)", expected: "-8"},
		{name: "parenthesized negative operand", expr: "10-(-5)", expected: "15"},
		{name: "binary noise absorbed", expr: "0.7*10", expected: "7"},
		{name: "third times three", expr: "1/3*3", expected: "1"},
		{name: "whitespace", expr: " 1 + 2 ", expected: "3"},
		{name: "large but in range", expr: "1e30*1e30", expected: "1" + strings.Repeat("0", 60)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := EvaluateFloor(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		expr string
		err  error
	}{
		{name: "empty", expr: "", err: ErrEmptyExpression},
		{name: "blank", expr: "   ", err: ErrEmptyExpression},
		{name: "division by zero", expr: "1/0", err: ErrDivisionByZero},
		{name: "zero by zero", expr: "0/(2-2)", err: ErrDivisionByZero},
		{name: "unresolved reference", expr: "$1+1", err: ErrInvalidExpression},
		{name: "dangling operator", expr: "1+", err: ErrInvalidExpression},
		{name: "implicit multiplication", expr: "5(7*89)", err: ErrInvalidExpression},
		{name: "variable", expr: "foo+1", err: ErrUnsupportedExpression},
		{name: "function call", expr: "max(1,2)", err: ErrUnsupportedExpression},
		{name: "string", expr: `"1"`, err: ErrUnsupportedExpression},
		{name: "boolean", expr: "true", err: ErrUnsupportedExpression},
		{name: "modulo", expr: "5%2", err: ErrUnsupportedExpression},
		{name: "comparison", expr: "1<2", err: ErrUnsupportedExpression},
		{name: "logical not", expr: "!1", err: ErrUnsupportedExpression},
		{name: "line comment", expr: "10//2", err: ErrUnsupportedExpression},
		{name: "block comment", expr: "7/*3*/", err: ErrUnsupportedExpression},
		{name: "hash comment", expr: "1+1 # 2", err: ErrUnsupportedExpression},
		{name: "huge literal", expr: "1e100000000", err: ErrOutOfRange},
		{name: "overflowing product", expr: "1e400000000*1e400000000", err: ErrOutOfRange},
		{name: "product above bound", expr: "1e60*1e60", err: ErrOutOfRange},
		{name: "huge quotient", expr: "1/0.0000000000000000000000000000000000000000000000000000000000000000000000000000000001", err: ErrOutOfRange},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Evaluate(tc.expr)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestOperand(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "12", Operand("12"))
	assert.Equal(t, "(-12)", Operand("-12"))
	assert.Equal(t, "0", Operand("0"))
}

func TestEvaluateExact(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		expr     string
		expected string
	}{
		{expr: "0.01", expected: "0.01"},
		{expr: "1000", expected: "1000"},
		{expr: "1/4", expected: "0.25"},
		{expr: "1/3", expected: "0.3333333333"},
		{expr: "0.1+0.2", expected: "0.3"},
		{expr: "-2.50", expected: "-2.5"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			got, err := EvaluateExact(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
