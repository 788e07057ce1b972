package timeseries

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/finsheet/internal/ctxlog"
	"github.com/specialistvlad/finsheet/internal/formula"
	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/specialistvlad/finsheet/internal/refgraph"
	"github.com/specialistvlad/finsheet/internal/scheduler"
)

// EvaluateAll evaluates every variable and returns their rows in input order.
//
// Per-variable failures are reported as rows of model.RefError. The returned
// error is non-nil only for a *DuplicateIDError, a *scheduler.CycleError or a
// cancelled context, in which case no rows are returned.
func EvaluateAll(ctx context.Context, vars []model.Variable) ([]model.Row, error) {
	logger := ctxlog.FromContext(ctx)

	index := make(map[string]int, len(vars))
	for i, v := range vars {
		if _, ok := index[v.ID]; ok {
			return nil, &DuplicateIDError{ID: v.ID}
		}
		index[v.ID] = i
	}

	order, err := scheduler.Schedule(refgraph.Build(vars))
	if err != nil {
		return nil, fmt.Errorf("scheduling variables: %w", err)
	}
	logger.Debug("Scheduled variables for evaluation.", "count", len(order))

	done := NewEvaluated()
	rows := make([]model.Row, len(vars))
	for _, id := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v := vars[index[id]]
		values, err := EvaluateOne(v, done)
		if err != nil {
			logger.Debug("Variable evaluation failed, filling row with error sentinel.", "id", v.ID, "name", v.Name, "error", err)
		}
		done.Add(v, values)
		rows[index[id]] = model.Row{ID: v.ID, Name: v.Name, Values: values}
	}
	return rows, nil
}

// EvaluateSection evaluates section i of sheet together with the sheet's
// assumptions. Rows are returned assumptions first, then the section's rows,
// and finally its end row.
func EvaluateSection(ctx context.Context, sheet *model.Sheet, i int) ([]model.Row, error) {
	vars, err := sheet.SectionVariables(i)
	if err != nil {
		return nil, err
	}
	rows, err := EvaluateAll(ctx, vars)
	if err != nil {
		return nil, fmt.Errorf("sheet %q section %q: %w", sheet.Name, sheet.Sections[i].Name, err)
	}
	return rows, nil
}

// EvaluateOne computes the row of v against the variables already in done.
// On failure the returned row is filled with model.RefError and the error
// explains the first problem found.
func EvaluateOne(v model.Variable, done *Evaluated) ([]string, error) {
	values, err := evaluate(v, done)
	if err != nil {
		return model.FilledRow(v.ID, v.Name, model.RefError).Values, err
	}
	return values, nil
}

func evaluate(v model.Variable, done *Evaluated) ([]string, error) {
	if v.Kind == model.KindIntegration {
		return integrationRow(v), nil
	}
	if !v.IsTimeSeries || strings.TrimSpace(v.Value) == "" {
		return model.FilledRow(v.ID, v.Name, model.Placeholder).Values, nil
	}

	row := make([]string, 0, model.Periods)
	for len(row) < v.FirstComputedPeriod() {
		row = append(row, model.Placeholder)
	}

	if v.HasDistinctFirstValue && len(row) < model.Periods {
		t := len(row)
		value, err := done.period(formula.Tokenize(v.Value1), t, row)
		if err != nil {
			return nil, &VariableError{ID: v.ID, Period: t, Err: fmt.Errorf("first value: %w", err)}
		}
		row = append(row, value)
	}

	tokens := formula.Tokenize(v.Value)
	for t := len(row); t < model.Periods; t++ {
		value, err := done.period(tokens, t, row)
		if err != nil {
			return nil, &VariableError{ID: v.ID, Period: t, Err: err}
		}
		row = append(row, value)
	}
	return row, nil
}

func integrationRow(v model.Variable) []string {
	row := model.FilledRow(v.ID, v.Name, model.Placeholder).Values
	copy(row, v.IntegrationValues)
	return row
}
