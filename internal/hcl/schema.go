package hcl

import "github.com/zclconf/go-cty/cty"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Models  []*modelBlock   `hcl:"model,block"`
	Sheets  []*sheetBlock   `hcl:"sheet,block"`
	Payroll []*payrollBlock `hcl:"payroll,block"`
}

type modelBlock struct {
	Name            string    `hcl:"name,label"`
	StartingMonth   string    `hcl:"starting_month,optional"`
	StartingBalance cty.Value `hcl:"starting_balance,optional"`
}

type sheetBlock struct {
	Name        string           `hcl:"name,label"`
	Assumptions []*variableBlock `hcl:"assumption,block"`
	Sections    []*sectionBlock  `hcl:"section,block"`
}

type sectionBlock struct {
	Name   string           `hcl:"name,label"`
	Rows   []*variableBlock `hcl:"row,block"`
	EndRow *variableBlock   `hcl:"end_row,block"`
}

// variableBlock is shared by `assumption`, `row` and `end_row` blocks.
type variableBlock struct {
	ID                string   `hcl:"id,label"`
	Name              string   `hcl:"name"`
	Kind              string   `hcl:"kind,optional"`
	TimeSeries        bool     `hcl:"time_series,optional"`
	StartingAt        int      `hcl:"starting_at,optional"`
	FirstValueDiff    bool     `hcl:"first_value_diff,optional"`
	Value             string   `hcl:"value,optional"`
	Value1            string   `hcl:"value_1,optional"`
	ValueType         string   `hcl:"value_type,optional"`
	DecimalPlaces     int      `hcl:"decimal_places,optional"`
	Editable          *bool    `hcl:"editable,optional"`
	IntegrationName   string   `hcl:"integration_name,optional"`
	IntegrationValues []string `hcl:"integration_values,optional"`
}

type payrollBlock struct {
	Values    []string         `hcl:"values,optional"`
	Employees []*employeeBlock `hcl:"employee,block"`
}

type employeeBlock struct {
	ID            string    `hcl:"id,label"`
	Name          string    `hcl:"name"`
	Title         string    `hcl:"title,optional"`
	Department    string    `hcl:"department,optional"`
	StartDate     string    `hcl:"start_date"`
	EndDate       string    `hcl:"end_date,optional"`
	MonthlySalary cty.Value `hcl:"monthly_salary"`
}
