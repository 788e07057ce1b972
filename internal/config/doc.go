// Package config defines the format-agnostic Loader interface used to read
// model files, along with the optional TOML settings file that supplies
// defaults for command-line flags.
//
// Concrete loaders live in separate packages: internal/hcl reads HCL model
// files and internal/yamlmodel reads YAML and JSON exports. Both produce the
// same *model.Model.
package config
