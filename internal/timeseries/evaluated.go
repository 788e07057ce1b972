package timeseries

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/finsheet/internal/calc"
	"github.com/specialistvlad/finsheet/internal/formula"
	"github.com/specialistvlad/finsheet/internal/model"
)

// Evaluated holds the variables of one evaluation call whose rows are already
// known. It is the lookup table external references resolve against and must
// not be shared between calls.
type Evaluated struct {
	vars    map[string]model.Variable
	rows    map[string][]string
	scalars map[string]scalar
}

type scalar struct {
	value string
	err   error
}

// NewEvaluated returns an empty table.
func NewEvaluated() *Evaluated {
	return &Evaluated{
		vars:    make(map[string]model.Variable),
		rows:    make(map[string][]string),
		scalars: make(map[string]scalar),
	}
}

// Add records the row produced for v, making v referencable.
func (e *Evaluated) Add(v model.Variable, values []string) {
	e.vars[v.ID] = v
	e.rows[v.ID] = values
	delete(e.scalars, v.ID)
}

// Row returns the row recorded for id.
func (e *Evaluated) Row(id string) ([]string, bool) {
	row, ok := e.rows[id]
	return row, ok
}

// period substitutes every token of a formula for period t and evaluates the
// result. own is the part of the variable's row computed so far.
func (e *Evaluated) period(tokens formula.Tokens, t int, own []string) (string, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		text, err := e.resolve(tok, t, own)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return calc.EvaluateFloor(sb.String())
}

func (e *Evaluated) resolve(tok formula.Token, t int, own []string) (string, error) {
	if err := tok.Err(); err != nil {
		return "", err
	}

	switch tok.Kind {
	case formula.InternalRef:
		if tok.Lag == 0 {
			return "", fmt.Errorf("%q: %w", tok.Text, ErrSelfReferenceAtZeroLag)
		}
		return at(tok, own, t-tok.Lag)

	case formula.ExternalRef:
		ref, ok := e.vars[tok.ID]
		if !ok {
			return "", fmt.Errorf("%q: %w", tok.Text, ErrUnresolvedReference)
		}
		if !producesSeries(ref) {
			return e.scalar(tok.ID)
		}
		return at(tok, e.rows[tok.ID], t-tok.Lag)

	default:
		return tok.Text, nil
	}
}

// scalar evaluates the Value of a non-time-series variable once and caches
// the result, error included.
func (e *Evaluated) scalar(id string) (string, error) {
	if s, ok := e.scalars[id]; ok {
		return s.value, s.err
	}

	// Seeded before evaluating so a value referencing itself terminates.
	e.scalars[id] = scalar{err: fmt.Errorf("scalar %q references itself: %w", id, ErrUnresolvedReference)}

	value, err := e.evaluateScalar(e.vars[id])
	if err == nil {
		value = calc.Operand(value)
	}
	e.scalars[id] = scalar{value: value, err: err}
	return value, err
}

func (e *Evaluated) evaluateScalar(v model.Variable) (string, error) {
	var sb strings.Builder
	for _, tok := range formula.Tokenize(v.Value) {
		if err := tok.Err(); err != nil {
			return "", err
		}

		switch tok.Kind {
		case formula.InternalRef:
			return "", fmt.Errorf("%q: %w", tok.Text, ErrScalarSelfReference)

		case formula.ExternalRef:
			ref, ok := e.vars[tok.ID]
			if !ok {
				return "", fmt.Errorf("%q: %w", tok.Text, ErrUnresolvedReference)
			}
			if producesSeries(ref) {
				return "", fmt.Errorf("%q: %w", tok.Text, ErrSeriesInScalar)
			}
			value, err := e.scalar(tok.ID)
			if err != nil {
				return "", err
			}
			sb.WriteString(value)

		default:
			sb.WriteString(tok.Text)
		}
	}
	return calc.EvaluateExact(sb.String())
}

func at(tok formula.Token, row []string, i int) (string, error) {
	if i < 0 || i >= len(row) {
		return "", fmt.Errorf("%q at period %d: %w", tok.Text, i, ErrPeriodOutOfRange)
	}
	value := row[i]
	if value == "" || value == model.Placeholder || value == model.RefError {
		return "", fmt.Errorf("%q at period %d holds %q: %w", tok.Text, i, value, ErrUnavailableValue)
	}
	return calc.Operand(value), nil
}

func producesSeries(v model.Variable) bool {
	return v.Kind == model.KindIntegration || v.IsTimeSeries
}
