package pnl

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/specialistvlad/finsheet/internal/model"
	tu "github.com/specialistvlad/finsheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() *model.Model {
	return &model.Model{
		Name:            "Sample",
		StartingMonth:   "2023-01",
		StartingBalance: decimal.NewFromInt(1000),
		Revenue: model.Sheet{
			Name:        "revenue",
			Assumptions: []model.Variable{tu.Constant("1", "10", tu.Named("Price"))},
			Sections: []model.Section{
				{
					Name:   "Product A",
					Rows:   []model.Variable{tu.Series("2", "$1+10", tu.FirstValue("100"), tu.Named("Units"))},
					EndRow: tu.Series("3", "#2*#1", tu.Named("Product A Revenue")),
				},
				{
					Name:   "Product B",
					Rows:   []model.Variable{tu.Series("4", "50")},
					EndRow: tu.Series("5", "#4"),
				},
			},
		},
		Cost: model.Sheet{
			Name: "cost",
			Sections: []model.Section{
				{Name: "COGS", EndRow: tu.Series("10", "200")},
				{Name: "Opex", EndRow: tu.Series("11", "100")},
			},
		},
		Payroll: model.Payroll{
			Employees: []model.Employee{
				{ID: "e1", Name: "Ada", StartDate: "2023-01", MonthlySalary: decimal.NewFromInt(1000)},
				{ID: "e2", Name: "Bob", StartDate: "2023-03", EndDate: "2023-04", MonthlySalary: decimal.RequireFromString("500.50")},
			},
		},
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	p, err := Calculate(context.Background(), sampleModel())
	require.NoError(t, err)

	require.Len(t, p.GrossIncome.RevenueStreams, 2)
	assert.Equal(t, "Product A", p.GrossIncome.RevenueStreams[0].Name)
	assert.Equal(t, "3", p.GrossIncome.RevenueStreams[0].ID)
	assert.Equal(t, "1000", p.GrossIncome.RevenueStreams[0].Values[0])
	assert.Equal(t, "1100", p.GrossIncome.RevenueStreams[0].Values[1])
	assert.Equal(t, tu.Repeat("50", model.Periods), p.GrossIncome.RevenueStreams[1].Values)

	expected := map[string][]string{
		"Gross Income":       {"1050", "1150", "1250", "1350", "1450"},
		"Cost of Goods Sold": {"200", "200", "200", "200", "200"},
		"Gross Margin":       {"850", "950", "1050", "1150", "1250"},
		"Payroll Cost":       {"1000", "1000", "1500.5", "1500.5", "1000"},
		"Operating Cost":     {"100", "100", "100", "100", "100"},
		"Operating Income":   {"-250", "-150", "-550.5", "-450.5", "150"},
		"Other Cost":         {"0", "0", "0", "0", "0"},
		"Net Income":         {"-250", "-150", "-550.5", "-450.5", "150"},
		"Cash Balance":       {"750", "600", "49.5", "-401", "-251"},
	}

	got := make(map[string][]string)
	for _, row := range p.Rows()[2:] {
		require.Len(t, row.Values, model.Periods, row.Name)
		got[row.Name] = row.Values[:5]
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("statement mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_Rows(t *testing.T) {
	t.Parallel()

	p, err := Calculate(context.Background(), sampleModel())
	require.NoError(t, err)

	var names []string
	for _, row := range p.Rows() {
		names = append(names, row.Name)
	}
	assert.Equal(t, []string{
		"Product A", "Product B", "Gross Income", "Cost of Goods Sold", "Gross Margin",
		"Payroll Cost", "Operating Cost", "Operating Income", "Other Cost", "Net Income", "Cash Balance",
	}, names)
}

func TestCalculate_ErrorPropagation(t *testing.T) {
	t.Parallel()

	m := sampleModel()
	m.Revenue.Sections[1].EndRow = tu.Series("5", "1/0")

	p, err := Calculate(context.Background(), m)
	require.NoError(t, err)

	assert.True(t, p.GrossIncome.RevenueStreams[1].HasErrors())
	for _, row := range []model.Row{p.GrossIncome.Total, p.GrossMargin, p.OperatingIncome, p.NetIncome, p.CashBalance} {
		assert.Equal(t, tu.Repeat(model.RefError, model.Periods), row.Values, row.Name)
	}
	assert.False(t, p.CostOfGoodsSold.HasErrors())
}

func TestCalculate_PlaceholdersCountAsZero(t *testing.T) {
	t.Parallel()

	m := sampleModel()
	m.Revenue.Sections[1].EndRow = tu.Series("5", "#4", tu.StartingAt(2))

	p, err := Calculate(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, []string{"1000", "1100", "1250"}, p.GrossIncome.Total.Values[:3])
}

func TestCalculate_CashBalanceStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	net := model.Row{Name: "Net Income", Values: tu.Repeat("10", model.Periods)}
	net.Values[3] = model.RefError

	got := cashBalance(decimal.NewFromInt(5), net)
	assert.Equal(t, []string{"15", "25", "35"}, got.Values[:3])
	assert.Equal(t, tu.Repeat(model.RefError, model.Periods-3), got.Values[3:])
}

func TestCalculate_Payroll(t *testing.T) {
	t.Parallel()

	t.Run("explicit values are padded", func(t *testing.T) {
		t.Parallel()
		m := sampleModel()
		m.Payroll.Values = []string{"5", "7"}

		p, err := Calculate(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, append([]string{"5", "7"}, tu.Repeat("0", model.Periods-2)...), p.PayrollCost.Values)
	})

	t.Run("no payroll is zero", func(t *testing.T) {
		t.Parallel()
		m := sampleModel()
		m.Payroll = model.Payroll{}

		p, err := Calculate(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, tu.Repeat("0", model.Periods), p.PayrollCost.Values)
	})

	t.Run("without a starting month the earliest hire is period 0", func(t *testing.T) {
		t.Parallel()
		m := sampleModel()
		m.StartingMonth = ""
		m.Payroll.Employees[0].StartDate = "2023-02"

		p, err := Calculate(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, []string{"1000", "1500.5", "1500.5", "1000", "1000"}, p.PayrollCost.Values[:5])
	})

	t.Run("without a starting month hire dates must parse", func(t *testing.T) {
		t.Parallel()
		m := sampleModel()
		m.StartingMonth = ""
		m.Payroll.Employees[1].StartDate = "soon"

		_, err := Calculate(context.Background(), m)
		assert.ErrorContains(t, err, `employee "e2"`)
	})

	t.Run("invalid starting month", func(t *testing.T) {
		t.Parallel()
		m := sampleModel()
		m.StartingMonth = "2023-13"

		_, err := Calculate(context.Background(), m)
		assert.ErrorContains(t, err, "payroll: starting month")
	})

	t.Run("invalid employee dates", func(t *testing.T) {
		t.Parallel()
		m := sampleModel()
		m.Payroll.Employees[1].EndDate = "2022-01"

		_, err := Calculate(context.Background(), m)
		assert.ErrorContains(t, err, `employee "e2"`)
	})
}

func TestCalculate_HardErrors(t *testing.T) {
	t.Parallel()

	m := sampleModel()
	m.Cost.Sections[0].Rows = []model.Variable{tu.Series("10", "1")}

	_, err := Calculate(context.Background(), m)
	require.Error(t, err)
	assert.ErrorContains(t, err, "duplicate variable id")
	assert.ErrorContains(t, err, "COGS")
}

func TestCalculate_EmptyModel(t *testing.T) {
	t.Parallel()

	p, err := Calculate(context.Background(), &model.Model{})
	require.NoError(t, err)
	assert.Empty(t, p.GrossIncome.RevenueStreams)
	assert.Equal(t, tu.Repeat("0", model.Periods), p.NetIncome.Values)
	assert.Equal(t, tu.Repeat("0", model.Periods), p.CashBalance.Values)
}
