package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/finsheet/internal/ctxlog"
	"github.com/specialistvlad/finsheet/internal/fsutil"
	"github.com/specialistvlad/finsheet/internal/model"
)

// Sheet labels accepted on `sheet` blocks.
const (
	RevenueSheet = "revenue"
	CostSheet    = "cost"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the .hcl file at path, or every .hcl file below path when it is
// a directory, and translates the blocks into a single model.
func (l *Loader) Load(ctx context.Context, path string) (*model.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	hclFiles, err := fsutil.FindFiles(path, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %s", path)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	var merged fileRoot

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		merged.Models = append(merged.Models, root.Models...)
		merged.Sheets = append(merged.Sheets, root.Sheets...)
		merged.Payroll = append(merged.Payroll, root.Payroll...)
	}

	m, err := l.translateModel(&merged)
	if err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"model", m.Name,
		"revenue_sections", len(m.Revenue.Sections),
		"cost_sections", len(m.Cost.Sections),
		"employees", len(m.Payroll.Employees),
	)
	return m, nil
}
