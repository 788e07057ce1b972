// Package pnl rolls evaluated sheets up into a profit-and-loss statement.
//
// Every revenue section contributes one revenue stream, its end row. The
// cost sheet's first three sections are cost of goods sold, operating cost
// and other cost; a missing section counts as zero. Derived lines are
// computed period by period. A placeholder counts as zero, while a "#REF!"
// in any input makes the derived cell "#REF!" too.
package pnl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/specialistvlad/finsheet/internal/calc"
	"github.com/specialistvlad/finsheet/internal/ctxlog"
	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/specialistvlad/finsheet/internal/periods"
	"github.com/specialistvlad/finsheet/internal/timeseries"
)

// Cost sheet section positions.
const (
	CostOfGoodsSoldSection = 0
	OperatingCostSection   = 1
	OtherCostSection       = 2
)

// GrossIncome groups the revenue streams with their total.
type GrossIncome struct {
	RevenueStreams []model.Row `json:"revenue_streams"`
	Total          model.Row   `json:"total"`
}

// ProfitLoss is the statement produced by Calculate.
type ProfitLoss struct {
	GrossIncome     GrossIncome `json:"gross_income"`
	CostOfGoodsSold model.Row   `json:"cost_of_goods_sold"`
	GrossMargin     model.Row   `json:"gross_margin"`
	PayrollCost     model.Row   `json:"payroll_cost"`
	OperatingCost   model.Row   `json:"operating_cost"`
	OperatingIncome model.Row   `json:"operating_income"`
	OtherCost       model.Row   `json:"other_cost"`
	NetIncome       model.Row   `json:"net_income"`
	CashBalance     model.Row   `json:"cash_balance"`
}

// Rows returns every line of the statement in display order.
func (p *ProfitLoss) Rows() []model.Row {
	rows := make([]model.Row, 0, len(p.GrossIncome.RevenueStreams)+9)
	rows = append(rows, p.GrossIncome.RevenueStreams...)
	return append(rows,
		p.GrossIncome.Total,
		p.CostOfGoodsSold,
		p.GrossMargin,
		p.PayrollCost,
		p.OperatingCost,
		p.OperatingIncome,
		p.OtherCost,
		p.NetIncome,
		p.CashBalance,
	)
}

// Calculate evaluates both sheets of m and builds its profit-and-loss
// statement. Errors are returned only for problems that prevent evaluation
// altogether, such as duplicate ids or reference cycles in a section.
func Calculate(ctx context.Context, m *model.Model) (*ProfitLoss, error) {
	logger := ctxlog.FromContext(ctx)

	streams, err := sectionTotals(ctx, &m.Revenue)
	if err != nil {
		return nil, err
	}
	costs, err := sectionTotals(ctx, &m.Cost)
	if err != nil {
		return nil, err
	}
	if len(costs) > OtherCostSection+1 {
		logger.Warn("Cost sheet has more sections than the statement uses, extra sections are ignored.", "sections", len(costs))
	}

	payroll, err := payrollRow(&m.Payroll, m.StartingMonth)
	if err != nil {
		return nil, err
	}

	p := &ProfitLoss{
		GrossIncome: GrossIncome{
			RevenueStreams: streams,
			Total:          derive("Gross Income", "+", streams...),
		},
		CostOfGoodsSold: costRow(costs, CostOfGoodsSoldSection, "Cost of Goods Sold"),
		PayrollCost:     payroll,
		OperatingCost:   costRow(costs, OperatingCostSection, "Operating Cost"),
		OtherCost:       costRow(costs, OtherCostSection, "Other Cost"),
	}
	p.GrossMargin = derive("Gross Margin", "-", p.GrossIncome.Total, p.CostOfGoodsSold)
	p.OperatingIncome = derive("Operating Income", "-", p.GrossMargin, p.OperatingCost, p.PayrollCost)
	p.NetIncome = derive("Net Income", "-", p.OperatingIncome, p.OtherCost)
	p.CashBalance = cashBalance(m.StartingBalance, p.NetIncome)

	logger.Debug("Calculated profit and loss.", "revenue_streams", len(streams), "cost_sections", len(costs))
	return p, nil
}

// sectionTotals evaluates every section of sheet and returns its end rows,
// named after their sections.
func sectionTotals(ctx context.Context, sheet *model.Sheet) ([]model.Row, error) {
	totals := make([]model.Row, 0, len(sheet.Sections))
	for i, section := range sheet.Sections {
		rows, err := timeseries.EvaluateSection(ctx, sheet, i)
		if err != nil {
			return nil, err
		}
		end := rows[len(rows)-1]
		totals = append(totals, model.Row{ID: end.ID, Name: section.Name, Values: end.Values})
	}
	return totals, nil
}

func costRow(costs []model.Row, i int, name string) model.Row {
	if i < len(costs) {
		return costs[i]
	}
	return model.FilledRow("", name, "0")
}

// derive combines rows period by period with op.
func derive(name, op string, rows ...model.Row) model.Row {
	out := model.Row{Name: name, Values: make([]string, model.Periods)}
	for p := range out.Values {
		out.Values[p] = cell(p, op, rows)
	}
	return out
}

func cell(p int, op string, rows []model.Row) string {
	if len(rows) == 0 {
		return "0"
	}
	operands := make([]string, len(rows))
	for i, row := range rows {
		v := model.Placeholder
		if p < len(row.Values) {
			v = row.Values[p]
		}
		if v == model.Placeholder {
			v = "0"
		}
		operands[i] = calc.Operand(v)
	}
	out, err := calc.EvaluateExact(strings.Join(operands, op))
	if err != nil {
		return model.RefError
	}
	return out
}

func payrollRow(payroll *model.Payroll, startingMonth string) (model.Row, error) {
	row := model.FilledRow("", "Payroll Cost", "0")
	if len(payroll.Values) > 0 {
		copy(row.Values, payroll.Values)
		return row, nil
	}
	if len(payroll.Employees) == 0 {
		return row, nil
	}

	start, err := payrollStart(payroll.Employees, startingMonth)
	if err != nil {
		return model.Row{}, err
	}
	sums := make([]decimal.Decimal, model.Periods)
	for _, e := range payroll.Employees {
		active, err := periods.Active(start, e.StartDate, e.EndDate)
		if err != nil {
			return model.Row{}, fmt.Errorf("payroll: employee %q: %w", e.ID, err)
		}
		for p, on := range active {
			if on {
				sums[p] = sums[p].Add(e.MonthlySalary)
			}
		}
	}
	for p, sum := range sums {
		row.Values[p] = sum.String()
	}
	return row, nil
}

// payrollStart returns the month of period 0. A model without a starting
// month is anchored at its earliest hire.
func payrollStart(employees []model.Employee, startingMonth string) (time.Time, error) {
	if startingMonth != "" {
		start, err := periods.ParseMonth(startingMonth)
		if err != nil {
			return time.Time{}, fmt.Errorf("payroll: starting month: %w", err)
		}
		return start, nil
	}

	var earliest time.Time
	for i, e := range employees {
		hired, err := periods.ParseMonth(e.StartDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("payroll: employee %q: %w", e.ID, err)
		}
		if i == 0 || hired.Before(earliest) {
			earliest = hired
		}
	}
	return earliest, nil
}

// cashBalance accumulates net income onto the starting balance. Once a
// period fails, every later balance is unknown.
func cashBalance(starting decimal.Decimal, net model.Row) model.Row {
	out := model.FilledRow("", "Cash Balance", model.RefError)
	balance := starting
	for p, v := range net.Values {
		if v == model.Placeholder {
			v = "0"
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			break
		}
		balance = balance.Add(d)
		out.Values[p] = balance.String()
	}
	return out
}
