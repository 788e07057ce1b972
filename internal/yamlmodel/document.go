package yamlmodel

// document mirrors the stored model document.
type document struct {
	Meta            metaDoc    `yaml:"meta"`
	StartingMonth   string     `yaml:"starting_month"`
	StartingBalance string     `yaml:"starting_balance"`
	Sheets          []sheetDoc `yaml:"sheets"`
	Payroll         payrollDoc `yaml:"payroll"`
}

type metaDoc struct {
	Name            string `yaml:"name"`
	StartingMonth   string `yaml:"starting_month"`
	StartingBalance string `yaml:"starting_balance"`
}

type sheetDoc struct {
	Meta struct {
		Name string `yaml:"name"`
	} `yaml:"meta"`
	Assumptions []variableDoc `yaml:"assumptions"`
	Sections    []sectionDoc  `yaml:"sections"`
}

type sectionDoc struct {
	Name   string        `yaml:"name"`
	Rows   []variableDoc `yaml:"rows"`
	EndRow *variableDoc  `yaml:"end_row"`
}

type variableDoc struct {
	ID                string       `yaml:"_id"`
	Name              string       `yaml:"name"`
	ValType           string       `yaml:"val_type"`
	Editable          *bool        `yaml:"editable"`
	DecimalPlaces     int          `yaml:"decimal_places"`
	VarType           string       `yaml:"var_type"`
	TimeSeries        bool         `yaml:"time_series"`
	StartingAt        int          `yaml:"starting_at"`
	FirstValueDiff    bool         `yaml:"first_value_diff"`
	Value             string       `yaml:"value"`
	Value1            string       `yaml:"value_1"`
	IntegrationName   string       `yaml:"integration_name"`
	IntegrationValues []datedValue `yaml:"integration_values"`
}

type datedValue struct {
	Date  string `yaml:"date"`
	Value string `yaml:"value"`
}

type payrollDoc struct {
	PayrollValues []datedValue  `yaml:"payroll_values"`
	Employees     []employeeDoc `yaml:"employees"`
}

type employeeDoc struct {
	ID              string `yaml:"_id"`
	Name            string `yaml:"name"`
	StartDate       string `yaml:"start_date"`
	EndDate         string `yaml:"end_date"`
	Title           string `yaml:"title"`
	Department      string `yaml:"department"`
	MonthlySalary   string `yaml:"monthly_salary"`
	FromIntegration bool   `yaml:"from_integration"`
}
