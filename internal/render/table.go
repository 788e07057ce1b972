package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment specifies column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column defines a table column with name and alignment. Width grows to fit
// the widest cell when the table is rendered.
type Column struct {
	Name  string
	Width int
	Align Alignment
}

type tableRow struct {
	values []string
	bold   bool
}

// Table provides styled table rendering.
type Table struct {
	columns []Column
	rows    []tableRow
}

// NewTable creates a new table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow adds a row of values to the table.
func (t *Table) AddRow(values ...string) *Table {
	return t.addRow(false, values)
}

// AddTotalRow adds a row rendered in bold.
func (t *Table) AddTotalRow(values ...string) *Table {
	return t.addRow(true, values)
}

func (t *Table) addRow(bold bool, values []string) *Table {
	// Pad with empty strings if needed
	for len(values) < len(t.columns) {
		values = append(values, "")
	}
	t.rows = append(t.rows, tableRow{values: values, bold: bold})
	return t
}

// Render returns the formatted table string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	widths := t.widths()

	var sb strings.Builder

	// Render header
	for i, col := range t.columns {
		sb.WriteString(pad(Bold.Render(col.Name), widths[i], col.Align))
		if i < len(t.columns)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")

	// Render separator
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(Dim.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	// Render rows
	for _, row := range t.rows {
		for i, col := range t.columns {
			val := row.values[i]
			if style, ok := cellStyle(val); ok {
				val = style.Render(val)
			} else if row.bold {
				val = Bold.Render(val)
			}
			sb.WriteString(pad(val, widths[i], col.Align))
			if i < len(t.columns)-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Name))
	}
	for _, row := range t.rows {
		for i := range t.columns {
			widths[i] = max(widths[i], lipgloss.Width(row.values[i]))
		}
	}
	return widths
}

// pad pads text to width, measuring the visible width so that ANSI escape
// sequences and multi-byte runes do not skew alignment.
func pad(text string, width int, align Alignment) string {
	padding := width - lipgloss.Width(text)
	if padding <= 0 {
		return text
	}
	if align == AlignRight {
		return strings.Repeat(" ", padding) + text
	}
	return text + strings.Repeat(" ", padding)
}
