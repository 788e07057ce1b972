package yamlmodel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/specialistvlad/finsheet/internal/ctxlog"
	"github.com/specialistvlad/finsheet/internal/model"
	"gopkg.in/yaml.v3"
)

// Loader reads YAML and JSON model documents.
type Loader struct{}

// NewLoader creates a new YAML model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates the document at path.
func (l *Loader) Load(ctx context.Context, path string) (*model.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("model file %s: %w", path, err)
	}

	logger.Debug("YAML loading complete.",
		"model", m.Name,
		"revenue_sections", len(m.Revenue.Sections),
		"cost_sections", len(m.Cost.Sections),
	)
	return m, nil
}

// Parse decodes a YAML or JSON document.
func Parse(data []byte) (*model.Model, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return translate(&doc)
}

func translate(doc *document) (*model.Model, error) {
	m := &model.Model{
		Name:          doc.Meta.Name,
		StartingMonth: firstNonEmpty(doc.StartingMonth, doc.Meta.StartingMonth),
		Revenue:       model.Sheet{Name: "revenue"},
		Cost:          model.Sheet{Name: "cost"},
	}

	balance, err := parseDecimal(firstNonEmpty(doc.StartingBalance, doc.Meta.StartingBalance))
	if err != nil {
		return nil, fmt.Errorf("starting_balance: %w", err)
	}
	m.StartingBalance = balance

	for i, sd := range doc.Sheets {
		sheet, err := translateSheet(&sd)
		if err != nil {
			return nil, err
		}
		switch name := strings.ToLower(sd.Meta.Name); {
		case name == "revenue" || (name == "" && i == 0):
			sheet.Name = "revenue"
			m.Revenue = *sheet
		case name == "cost" || (name == "" && i == 1):
			sheet.Name = "cost"
			m.Cost = *sheet
		default:
			return nil, fmt.Errorf("unknown sheet %q at position %d", sd.Meta.Name, i)
		}
	}

	payroll, err := translatePayroll(&doc.Payroll)
	if err != nil {
		return nil, err
	}
	m.Payroll = *payroll
	return m, nil
}

func translateSheet(sd *sheetDoc) (*model.Sheet, error) {
	sheet := &model.Sheet{Name: sd.Meta.Name}
	for _, vd := range sd.Assumptions {
		v, err := translateVariable(&vd)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sd.Meta.Name, err)
		}
		sheet.Assumptions = append(sheet.Assumptions, v)
	}

	for _, secd := range sd.Sections {
		if secd.EndRow == nil {
			return nil, fmt.Errorf("sheet %q: section %q has no end_row", sd.Meta.Name, secd.Name)
		}
		section := model.Section{Name: secd.Name}
		for _, vd := range secd.Rows {
			v, err := translateVariable(&vd)
			if err != nil {
				return nil, fmt.Errorf("sheet %q: section %q: %w", sd.Meta.Name, secd.Name, err)
			}
			section.Rows = append(section.Rows, v)
		}
		end, err := translateVariable(secd.EndRow)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: section %q: end_row: %w", sd.Meta.Name, secd.Name, err)
		}
		section.EndRow = end
		sheet.Sections = append(sheet.Sections, section)
	}
	return sheet, nil
}

func translateVariable(vd *variableDoc) (model.Variable, error) {
	if vd.ID == "" {
		return model.Variable{}, fmt.Errorf("variable %q has no _id", vd.Name)
	}
	kind, err := model.ParseKind(vd.VarType)
	if err != nil {
		return model.Variable{}, fmt.Errorf("variable %q: %w", vd.ID, err)
	}
	if vd.StartingAt < 0 {
		return model.Variable{}, fmt.Errorf("variable %q: starting_at must not be negative", vd.ID)
	}

	valueType := model.ValueType(vd.ValType)
	if valueType == "" {
		valueType = model.ValueTypeNumber
	}
	editable := kind != model.KindIntegration
	if vd.Editable != nil {
		editable = *vd.Editable
	}

	var integrationValues []string
	for _, iv := range vd.IntegrationValues {
		integrationValues = append(integrationValues, iv.Value)
	}

	return model.Variable{
		ID:                    vd.ID,
		Name:                  vd.Name,
		Kind:                  kind,
		IsTimeSeries:          vd.TimeSeries,
		StartingAt:            vd.StartingAt,
		HasDistinctFirstValue: vd.FirstValueDiff,
		Value:                 vd.Value,
		Value1:                vd.Value1,
		ValueType:             valueType,
		DecimalPlaces:         vd.DecimalPlaces,
		Editable:              editable,
		IntegrationName:       vd.IntegrationName,
		IntegrationValues:     integrationValues,
	}, nil
}

func translatePayroll(pd *payrollDoc) (*model.Payroll, error) {
	payroll := &model.Payroll{}
	for _, pv := range pd.PayrollValues {
		payroll.Values = append(payroll.Values, pv.Value)
	}
	for _, ed := range pd.Employees {
		salary, err := parseDecimal(ed.MonthlySalary)
		if err != nil {
			return nil, fmt.Errorf("employee %q: monthly_salary: %w", ed.ID, err)
		}
		payroll.Employees = append(payroll.Employees, model.Employee{
			ID:            ed.ID,
			Name:          ed.Name,
			Title:         ed.Title,
			Department:    ed.Department,
			StartDate:     ed.StartDate,
			EndDate:       ed.EndDate,
			MonthlySalary: salary,
		})
	}
	return payroll, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
