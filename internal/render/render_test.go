package render

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/specialistvlad/finsheet/internal/pnl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func row(id, name string, values ...string) model.Row {
	return model.Row{ID: id, Name: name, Values: values}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("table")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	_, err = ParseFormat("csv")
	require.ErrorContains(t, err, `unknown output format "csv"`)
}

func TestTable_Render(t *testing.T) {
	t.Parallel()

	tbl := NewTable(
		Column{Name: "Line"},
		Column{Name: "Jan", Align: AlignRight},
	).AddRow("Revenue", "100").AddTotalRow("Total", model.RefError).AddRow("Empty")

	lines := strings.Split(strings.TrimRight(plain(tbl.Render()), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Line      Jan", lines[0])
	assert.Equal(t, strings.Repeat("─", 13), lines[1])
	assert.Equal(t, "Revenue   100", lines[2])
	assert.Equal(t, "Total   #REF!", lines[3])
	assert.Equal(t, "Empty"+strings.Repeat(" ", 8), lines[4])
}

func TestTable_MultiByteCells(t *testing.T) {
	t.Parallel()

	tbl := NewTable(Column{Name: "A", Align: AlignRight}, Column{Name: "B"}).
		AddRow(model.Placeholder, "x").
		AddRow("10", "y")

	lines := strings.Split(strings.TrimRight(plain(tbl.Render()), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, " A B", lines[0])
	assert.Equal(t, "────", lines[1])
	assert.Equal(t, " – x", lines[2])
	assert.Equal(t, "10 y", lines[3])
}

func TestTable_NoColumns(t *testing.T) {
	t.Parallel()
	assert.Empty(t, NewTable().Render())
}

func TestRows_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rows := []model.Row{
		row("1", "Customers", "1", "2"),
		row("2", "Revenue", "10", model.RefError),
	}
	require.NoError(t, Rows(&buf, FormatTable, "Revenue", []string{"Jan 23", "Feb 23"}, rows))

	out := plain(buf.String())
	assert.Contains(t, out, "Revenue\n")
	assert.Contains(t, out, "Line      Jan 23 Feb 23")
	assert.Contains(t, out, "Customers      1      2")
	assert.Contains(t, out, "Revenue       10  #REF!")
}

func TestRows_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rows := []model.Row{row("1", "Customers", "1", "2")}
	require.NoError(t, Rows(&buf, FormatJSON, "Revenue", []string{"Jan 23", "Feb 23"}, rows))

	var got struct {
		Sheet   string      `json:"sheet"`
		Periods []string    `json:"periods"`
		Rows    []model.Row `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Revenue", got.Sheet)
	assert.Equal(t, []string{"Jan 23", "Feb 23"}, got.Periods)
	assert.Equal(t, rows, got.Rows)
}

func sampleStatement() *pnl.ProfitLoss {
	return &pnl.ProfitLoss{
		GrossIncome: pnl.GrossIncome{
			RevenueStreams: []model.Row{row("s1", "Subscriptions", "100")},
			Total:          row("", "Gross Income", "100"),
		},
		CostOfGoodsSold: row("", "Cost of Goods Sold", "10"),
		GrossMargin:     row("", "Gross Margin", "90"),
		PayrollCost:     row("", "Payroll Cost", "50"),
		OperatingCost:   row("", "Operating Cost", "5"),
		OperatingIncome: row("", "Operating Income", "35"),
		OtherCost:       row("", "Other Cost", "0"),
		NetIncome:       row("", "Net Income", "35"),
		CashBalance:     row("", "Cash Balance", "1035"),
	}
}

func TestStatement_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Statement(&buf, FormatTable, "Acme", []string{"Jan 23"}, sampleStatement()))

	lines := strings.Split(strings.TrimRight(plain(buf.String()), "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "Acme", lines[0])
	assert.True(t, strings.HasPrefix(lines[3], "  Subscriptions"), "revenue streams are indented: %q", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "Gross Income"))
	assert.True(t, strings.HasPrefix(lines[12], "Cash Balance"))
	assert.True(t, strings.HasSuffix(lines[12], "1035"))
}

func TestStatement_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Statement(&buf, FormatJSON, "Acme", []string{"Jan 23"}, sampleStatement()))

	var got struct {
		Model     string         `json:"model"`
		Periods   []string       `json:"periods"`
		Statement pnl.ProfitLoss `json:"statement"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Acme", got.Model)
	assert.Equal(t, *sampleStatement(), got.Statement)
}

func TestFormulas(t *testing.T) {
	t.Parallel()

	entries := []FormulaEntry{
		{ID: "1", Name: "Customers", Formula: "$1+10", Readable: "Customers[1]+10", First: "100"},
		{ID: "2", Name: "Revenue", Formula: "#9*2", Error: "unknown id 9"},
	}

	var buf bytes.Buffer
	require.NoError(t, Formulas(&buf, FormatTable, "Revenue", entries))
	out := plain(buf.String())
	assert.Contains(t, out, "Customers[1]+10 (first: 100)")
	assert.Contains(t, out, "unknown id 9")

	buf.Reset()
	require.NoError(t, Formulas(&buf, FormatJSON, "Revenue", entries))
	var got struct {
		Formulas []FormulaEntry `json:"formulas"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, entries, got.Formulas)
}
