package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/finsheet/internal/ctxlog"
	"github.com/specialistvlad/finsheet/internal/hcl"
	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/specialistvlad/finsheet/internal/periods"
	"github.com/specialistvlad/finsheet/internal/pnl"
	"github.com/specialistvlad/finsheet/internal/readable"
	"github.com/specialistvlad/finsheet/internal/render"
	"github.com/specialistvlad/finsheet/internal/timeseries"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	m, err := a.LoadModel(ctx)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(a.config.Output)
	if err != nil {
		return err
	}
	labels, err := periodLabels(m.StartingMonth)
	if err != nil {
		return err
	}

	switch {
	case a.config.ShowFormulas:
		err = a.printFormulas(m, format)
	case a.config.Sheet != "":
		err = a.printSheet(ctx, m, format, labels)
	default:
		err = a.printStatement(ctx, m, format, labels)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) printStatement(ctx context.Context, m *model.Model, format render.Format, labels []string) error {
	p, err := pnl.Calculate(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to calculate profit and loss: %w", err)
	}
	return render.Statement(a.outW, format, m.Name, labels, p)
}

func (a *App) printSheet(ctx context.Context, m *model.Model, format render.Format, labels []string) error {
	sheet := selectSheet(m, a.config.Sheet)
	for i, section := range sheet.Sections {
		rows, err := timeseries.EvaluateSection(ctx, sheet, i)
		if err != nil {
			return err
		}
		if err := render.Rows(a.outW, format, sheet.Name+": "+section.Name, labels, rows); err != nil {
			return err
		}
	}
	if len(sheet.Sections) == 0 {
		a.logger.Warn("Sheet has no sections, nothing to print.", "sheet", sheet.Name)
	}
	return nil
}

// printFormulas lists every formula of the selected sheets in both syntaxes.
// Translation failures are reported per variable.
func (a *App) printFormulas(m *model.Model, format render.Format) error {
	sheets := []*model.Sheet{&m.Revenue, &m.Cost}
	if a.config.Sheet != "" {
		sheets = []*model.Sheet{selectSheet(m, a.config.Sheet)}
	}

	for _, sheet := range sheets {
		vars := sheet.AllVariables()
		lookup := readable.LookupFromVariables(vars)

		var entries []render.FormulaEntry
		for _, v := range vars {
			if v.Kind == model.KindIntegration {
				continue
			}
			entry := render.FormulaEntry{ID: v.ID, Name: v.Name, Formula: v.Value}
			var err error
			entry.Readable, err = readable.ToHumanReadable(v.Value, v.ID, lookup)
			if err == nil && v.HasDistinctFirstValue {
				entry.First, err = readable.ToHumanReadable(v.Value1, v.ID, lookup)
			}
			if err != nil {
				a.logger.Debug("Formula could not be translated.", "id", v.ID, "error", err)
				entry.Error = err.Error()
			}
			entries = append(entries, entry)
		}

		if err := render.Formulas(a.outW, format, sheet.Name, entries); err != nil {
			return err
		}
	}
	return nil
}

func selectSheet(m *model.Model, name string) *model.Sheet {
	if name == hcl.CostSheet {
		return &m.Cost
	}
	return &m.Revenue
}

// periodLabels names the periods after calendar months, or numbers them
// when the model has no starting month.
func periodLabels(startingMonth string) ([]string, error) {
	if startingMonth == "" {
		labels := make([]string, model.Periods)
		for p := range labels {
			labels[p] = fmt.Sprintf("P%d", p+1)
		}
		return labels, nil
	}
	start, err := periods.ParseMonth(startingMonth)
	if err != nil {
		return nil, err
	}
	return periods.Labels(start), nil
}
