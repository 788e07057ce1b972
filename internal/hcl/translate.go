package hcl

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateModel converts the merged HCL blocks into the agnostic model.
func (l *Loader) translateModel(root *fileRoot) (*model.Model, error) {
	switch len(root.Models) {
	case 0:
		return nil, fmt.Errorf("no model block found")
	case 1:
	default:
		return nil, fmt.Errorf("found %d model blocks, only one is allowed", len(root.Models))
	}
	mb := root.Models[0]

	balance, err := decimalValue(mb.StartingBalance)
	if err != nil {
		return nil, fmt.Errorf("model %q: starting_balance: %w", mb.Name, err)
	}
	m := &model.Model{
		Name:            mb.Name,
		StartingMonth:   mb.StartingMonth,
		StartingBalance: balance,
		Revenue:         model.Sheet{Name: RevenueSheet},
		Cost:            model.Sheet{Name: CostSheet},
	}

	seen := make(map[string]bool)
	for _, sb := range root.Sheets {
		if seen[sb.Name] {
			return nil, fmt.Errorf("duplicate sheet %q", sb.Name)
		}
		seen[sb.Name] = true

		sheet, err := l.translateSheet(sb)
		if err != nil {
			return nil, err
		}
		switch sb.Name {
		case RevenueSheet:
			m.Revenue = *sheet
		case CostSheet:
			m.Cost = *sheet
		default:
			return nil, fmt.Errorf("unknown sheet %q, expected %q or %q", sb.Name, RevenueSheet, CostSheet)
		}
	}

	switch len(root.Payroll) {
	case 0:
	case 1:
		payroll, err := l.translatePayroll(root.Payroll[0])
		if err != nil {
			return nil, err
		}
		m.Payroll = *payroll
	default:
		return nil, fmt.Errorf("found %d payroll blocks, only one is allowed", len(root.Payroll))
	}

	return m, nil
}

func (l *Loader) translateSheet(sb *sheetBlock) (*model.Sheet, error) {
	sheet := &model.Sheet{Name: sb.Name}
	for _, vb := range sb.Assumptions {
		v, err := l.translateVariable(vb)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sb.Name, err)
		}
		sheet.Assumptions = append(sheet.Assumptions, v)
	}

	for _, secb := range sb.Sections {
		if secb.EndRow == nil {
			return nil, fmt.Errorf("sheet %q: section %q has no end_row block", sb.Name, secb.Name)
		}
		section := model.Section{Name: secb.Name}
		for _, vb := range secb.Rows {
			v, err := l.translateVariable(vb)
			if err != nil {
				return nil, fmt.Errorf("sheet %q: section %q: %w", sb.Name, secb.Name, err)
			}
			section.Rows = append(section.Rows, v)
		}
		end, err := l.translateVariable(secb.EndRow)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: section %q: end_row: %w", sb.Name, secb.Name, err)
		}
		section.EndRow = end
		sheet.Sections = append(sheet.Sections, section)
	}
	return sheet, nil
}

func (l *Loader) translateVariable(vb *variableBlock) (model.Variable, error) {
	kind, err := model.ParseKind(vb.Kind)
	if err != nil {
		return model.Variable{}, fmt.Errorf("variable %q: %w", vb.ID, err)
	}
	valueType, err := parseValueType(vb.ValueType)
	if err != nil {
		return model.Variable{}, fmt.Errorf("variable %q: %w", vb.ID, err)
	}
	if vb.StartingAt < 0 {
		return model.Variable{}, fmt.Errorf("variable %q: starting_at must not be negative", vb.ID)
	}

	editable := kind != model.KindIntegration
	if vb.Editable != nil {
		editable = *vb.Editable
	}

	return model.Variable{
		ID:                    vb.ID,
		Name:                  vb.Name,
		Kind:                  kind,
		IsTimeSeries:          vb.TimeSeries,
		StartingAt:            vb.StartingAt,
		HasDistinctFirstValue: vb.FirstValueDiff,
		Value:                 vb.Value,
		Value1:                vb.Value1,
		ValueType:             valueType,
		DecimalPlaces:         vb.DecimalPlaces,
		Editable:              editable,
		IntegrationName:       vb.IntegrationName,
		IntegrationValues:     vb.IntegrationValues,
	}, nil
}

func (l *Loader) translatePayroll(pb *payrollBlock) (*model.Payroll, error) {
	payroll := &model.Payroll{Values: pb.Values}
	for _, eb := range pb.Employees {
		salary, err := decimalValue(eb.MonthlySalary)
		if err != nil {
			return nil, fmt.Errorf("employee %q: monthly_salary: %w", eb.ID, err)
		}
		payroll.Employees = append(payroll.Employees, model.Employee{
			ID:            eb.ID,
			Name:          eb.Name,
			Title:         eb.Title,
			Department:    eb.Department,
			StartDate:     eb.StartDate,
			EndDate:       eb.EndDate,
			MonthlySalary: salary,
		})
	}
	return payroll, nil
}

func parseValueType(raw string) (model.ValueType, error) {
	switch model.ValueType(raw) {
	case "":
		return model.ValueTypeNumber, nil
	case model.ValueTypeNumber, model.ValueTypePercentage, model.ValueTypeCurrency:
		return model.ValueType(raw), nil
	default:
		return "", fmt.Errorf("unknown value_type %q", raw)
	}
}

// decimalValue accepts a number or a numeric string. A missing value is zero.
func decimalValue(v cty.Value) (decimal.Decimal, error) {
	if v.IsNull() {
		return decimal.Zero, nil
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil {
		return decimal.Zero, err
	}
	if !s.IsKnown() || s.IsNull() {
		return decimal.Zero, fmt.Errorf("value must be known")
	}
	return decimal.NewFromString(s.AsString())
}
