package config

import (
	"context"

	"github.com/specialistvlad/finsheet/internal/model"
)

// Loader is the interface for a format-specific model loader.
type Loader interface {
	// Load reads the model stored at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*model.Model, error)
}
