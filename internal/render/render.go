package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/specialistvlad/finsheet/internal/pnl"
)

// FormulaEntry is one line of a formula listing.
type FormulaEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Formula  string `json:"formula"`
	Readable string `json:"readable"`
	First    string `json:"first_value,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Statement writes a profit-and-loss statement. labels name the periods.
func Statement(w io.Writer, format Format, title string, labels []string, p *pnl.ProfitLoss) error {
	if format == FormatJSON {
		return writeJSON(w, struct {
			Model     string          `json:"model"`
			Periods   []string        `json:"periods"`
			Statement *pnl.ProfitLoss `json:"statement"`
		}{title, labels, p})
	}

	t := periodTable(labels)
	for _, row := range p.GrossIncome.RevenueStreams {
		t.AddRow(append([]string{"  " + row.Name}, row.Values...)...)
	}
	totals := map[string]bool{
		p.GrossIncome.Total.Name: true,
		p.GrossMargin.Name:       true,
		p.OperatingIncome.Name:   true,
		p.NetIncome.Name:         true,
		p.CashBalance.Name:       true,
	}
	for _, row := range p.Rows()[len(p.GrossIncome.RevenueStreams):] {
		values := append([]string{row.Name}, row.Values...)
		if totals[row.Name] {
			t.AddTotalRow(values...)
		} else {
			t.AddRow(values...)
		}
	}
	return writeTable(w, title, t)
}

// Rows writes the evaluated rows of a sheet.
func Rows(w io.Writer, format Format, title string, labels []string, rows []model.Row) error {
	if format == FormatJSON {
		return writeJSON(w, struct {
			Sheet   string      `json:"sheet"`
			Periods []string    `json:"periods"`
			Rows    []model.Row `json:"rows"`
		}{title, labels, rows})
	}

	t := periodTable(labels)
	for _, row := range rows {
		t.AddRow(append([]string{row.Name}, row.Values...)...)
	}
	return writeTable(w, title, t)
}

// Formulas writes a listing of formulas next to their display form.
func Formulas(w io.Writer, format Format, title string, entries []FormulaEntry) error {
	if format == FormatJSON {
		return writeJSON(w, struct {
			Sheet    string         `json:"sheet"`
			Formulas []FormulaEntry `json:"formulas"`
		}{title, entries})
	}

	t := NewTable(
		Column{Name: "ID", Align: AlignRight},
		Column{Name: "Name"},
		Column{Name: "Formula"},
		Column{Name: "Readable"},
	)
	for _, e := range entries {
		readable := e.Readable
		if e.First != "" {
			readable += " (first: " + e.First + ")"
		}
		if e.Error != "" {
			readable = Error.Render(e.Error)
		}
		t.AddRow(e.ID, e.Name, e.Formula, readable)
	}
	return writeTable(w, title, t)
}

func periodTable(labels []string) *Table {
	columns := make([]Column, 0, len(labels)+1)
	columns = append(columns, Column{Name: "Line"})
	for _, label := range labels {
		columns = append(columns, Column{Name: label, Align: AlignRight})
	}
	return NewTable(columns...)
}

func writeTable(w io.Writer, title string, t *Table) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, Title.Render(title)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, t.Render())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
