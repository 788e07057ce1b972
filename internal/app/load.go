package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/finsheet/internal/config"
	"github.com/specialistvlad/finsheet/internal/ctxlog"
	"github.com/specialistvlad/finsheet/internal/hcl"
	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/specialistvlad/finsheet/internal/yamlmodel"
)

// LoaderFor picks a loader from the model path: directories and .hcl files
// are HCL, .yaml, .yml and .json files are documents.
func LoaderFor(path string) (config.Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access model path: %w", err)
	}
	if info.IsDir() {
		return hcl.NewLoader(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml", ".json":
		return yamlmodel.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported model file %s: expected .hcl, .yaml, .yml or .json", path)
	}
}

// LoadModel loads the configured model and applies overrides from the config.
func (a *App) LoadModel(ctx context.Context) (*model.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading model...", "model_path", a.config.ModelPath)

	loader := a.loader
	if loader == nil {
		var err error
		if loader, err = LoaderFor(a.config.ModelPath); err != nil {
			return nil, err
		}
	}

	m, err := loader.Load(ctx, a.config.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	if a.config.StartingMonth != "" {
		logger.Debug("Overriding starting month.", "model", m.StartingMonth, "override", a.config.StartingMonth)
		m.StartingMonth = a.config.StartingMonth
	}

	logger.Info("Model loaded successfully.",
		"name", m.Name,
		"revenue_sections", len(m.Revenue.Sections),
		"cost_sections", len(m.Cost.Sections),
		"employees", len(m.Payroll.Employees),
	)
	return m, nil
}
