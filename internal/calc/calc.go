// Package calc evaluates the arithmetic left over once every reference in a
// formula has been replaced by a number.
//
// Expressions are parsed with the HCL native syntax parser and then walked
// node by node, so only numeric literals, parentheses, unary minus and the
// four binary operators + - * / are ever evaluated. The source is lexed first
// so that HCL comments ("//", "/* */", "#") cannot hide part of a formula.
// Anything else HCL would accept (variables, function calls, strings,
// conditionals, comments) is rejected with ErrUnsupportedExpression.
package calc

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
)

var (
	ErrEmptyExpression       = errors.New("empty expression")
	ErrInvalidExpression     = errors.New("invalid expression")
	ErrUnsupportedExpression = errors.New("unsupported expression")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrOutOfRange            = errors.New("number out of range")
)

// floorScale is the number of decimal places kept before flooring. It absorbs
// binary rounding noise such as 0.7*10 landing just below 7.
const floorScale = 10

// maxExponent bounds every literal and intermediate result to magnitudes
// below 2^maxExponent (about 1e77).
const maxExponent = 256

// Evaluate parses and evaluates src, returning the exact result.
func Evaluate(src string) (*big.Float, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmptyExpression
	}

	start := hcl.Pos{Line: 1, Column: 1}
	if err := checkTokens(src, start); err != nil {
		return nil, err
	}

	expr, diags := hclsyntax.ParseExpression([]byte(src), "formula", start)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w %q: %s", ErrInvalidExpression, src, diags.Error())
	}

	val, err := eval(expr)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", src, err)
	}
	return val.AsBigFloat(), nil
}

// checkTokens accepts only number literals, the four operators and
// parentheses.
func checkTokens(src string, start hcl.Pos) error {
	tokens, _ := hclsyntax.LexExpression([]byte(src), "formula", start)
	for _, tok := range tokens {
		switch tok.Type {
		case hclsyntax.TokenNumberLit,
			hclsyntax.TokenPlus, hclsyntax.TokenMinus,
			hclsyntax.TokenStar, hclsyntax.TokenSlash,
			hclsyntax.TokenOParen, hclsyntax.TokenCParen,
			hclsyntax.TokenNewline, hclsyntax.TokenEOF:
		case hclsyntax.TokenInvalid, hclsyntax.TokenBadUTF8:
			return fmt.Errorf("%w %q: unexpected %q at column %d", ErrInvalidExpression, src, tok.Bytes, tok.Range.Start.Column)
		case hclsyntax.TokenComment:
			return fmt.Errorf("%w %q: comment %q", ErrUnsupportedExpression, src, tok.Bytes)
		default:
			return fmt.Errorf("%w %q: %s at column %d", ErrUnsupportedExpression, src, tok.Type, tok.Range.Start.Column)
		}
	}
	return nil
}

// inRange rejects infinities and magnitudes of 2^maxExponent or more, which
// would otherwise overflow or expand into enormous decimal strings.
func inRange(v cty.Value) (cty.Value, error) {
	f := v.AsBigFloat()
	if f.IsInf() || f.MantExp(nil) > maxExponent {
		return cty.NilVal, ErrOutOfRange
	}
	return v, nil
}

// EvaluateFloor evaluates src and returns the result rounded down to an
// integer, formatted as a decimal string.
func EvaluateFloor(src string) (string, error) {
	f, err := Evaluate(src)
	if err != nil {
		return "", err
	}
	return Floor(f).String(), nil
}

// Floor rounds f down to the nearest integer. f must be finite, as every
// result of Evaluate is.
func Floor(f *big.Float) decimal.Decimal {
	return toDecimal(f).Floor()
}

// Format returns f with at most floorScale decimal places and no trailing
// zeros, e.g. "0.01" or "1000".
func Format(f *big.Float) string {
	return toDecimal(f).String()
}

// EvaluateExact evaluates src and formats the result with Format.
func EvaluateExact(src string) (string, error) {
	f, err := Evaluate(src)
	if err != nil {
		return "", err
	}
	return Format(f), nil
}

func toDecimal(f *big.Float) decimal.Decimal {
	text := f.Text('f', floorScale+2)
	d, err := decimal.NewFromString(text)
	if err != nil {
		// Text('f') always yields a plain decimal for finite values.
		panic(fmt.Sprintf("calc: unexpected float text %q", text))
	}
	return d.Round(floorScale)
}

// Operand formats a computed value so it can be spliced into another
// expression. Negative values are parenthesized so that "10-$1" never becomes
// "10--5".
func Operand(value string) string {
	if strings.HasPrefix(value, "-") {
		return "(" + value + ")"
	}
	return value
}

func eval(expr hclsyntax.Expression) (cty.Value, error) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if e.Val.IsNull() || !e.Val.Type().Equals(cty.Number) {
			return cty.NilVal, fmt.Errorf("%w: literal of type %s", ErrUnsupportedExpression, e.Val.Type().FriendlyName())
		}
		return inRange(e.Val)

	case *hclsyntax.ParenthesesExpr:
		return eval(e.Expression)

	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return cty.NilVal, fmt.Errorf("%w: unary operator", ErrUnsupportedExpression)
		}
		v, err := eval(e.Val)
		if err != nil {
			return cty.NilVal, err
		}
		return v.Negate(), nil

	case *hclsyntax.BinaryOpExpr:
		lhs, err := eval(e.LHS)
		if err != nil {
			return cty.NilVal, err
		}
		rhs, err := eval(e.RHS)
		if err != nil {
			return cty.NilVal, err
		}
		return binary(e.Op, lhs, rhs)
	}

	return cty.NilVal, fmt.Errorf("%w: %T", ErrUnsupportedExpression, expr)
}

func binary(op *hclsyntax.Operation, lhs, rhs cty.Value) (cty.Value, error) {
	switch op {
	case hclsyntax.OpAdd:
		return inRange(lhs.Add(rhs))
	case hclsyntax.OpSubtract:
		return inRange(lhs.Subtract(rhs))
	case hclsyntax.OpMultiply:
		return inRange(lhs.Multiply(rhs))
	case hclsyntax.OpDivide:
		if rhs.AsBigFloat().Sign() == 0 {
			return cty.NilVal, ErrDivisionByZero
		}
		return inRange(lhs.Divide(rhs))
	}
	return cty.NilVal, fmt.Errorf("%w: binary operator", ErrUnsupportedExpression)
}
