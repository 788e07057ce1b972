// Package render writes evaluated rows, profit-and-loss statements and
// formula listings either as terminal tables styled with Lipgloss or as
// JSON.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/finsheet/internal/model"
)

var (
	// Bold style for headers and totals
	Bold = lipgloss.NewStyle().Bold(true)

	// Title style for table captions
	Title = lipgloss.NewStyle().Bold(true).Underline(true)

	// Dim style for placeholders and separators (gray)
	Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Error style for failed cells (red)
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected %q or %q", s, FormatTable, FormatJSON)
	}
}

// cellStyle highlights sentinels so failures stand out in a wide table.
func cellStyle(value string) (lipgloss.Style, bool) {
	switch value {
	case model.RefError:
		return Error, true
	case model.Placeholder:
		return Dim, true
	default:
		return lipgloss.Style{}, false
	}
}
