package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/finsheet/internal/hcl"
	"github.com/specialistvlad/finsheet/internal/periods"
	"github.com/specialistvlad/finsheet/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModelPath string // .hcl file or directory, .yaml, .yml or .json file

	LogFormat string
	LogLevel  string

	Output        string // "table" or "json"
	StartingMonth string // overrides the model's starting month when set
	Sheet         string // "revenue" or "cost" prints that sheet instead of the statement
	ShowFormulas  bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
	}

	if cfg.Output == "" {
		cfg.Output = string(render.FormatTable)
	}
	if _, err := render.ParseFormat(cfg.Output); err != nil {
		return nil, err
	}

	switch cfg.Sheet {
	case "", hcl.RevenueSheet, hcl.CostSheet:
	default:
		return nil, fmt.Errorf("unknown sheet %q, expected %q or %q", cfg.Sheet, hcl.RevenueSheet, hcl.CostSheet)
	}

	if cfg.StartingMonth != "" {
		if _, err := periods.ParseMonth(cfg.StartingMonth); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}
