package testutil

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/finsheet/internal/hcl"
	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/stretchr/testify/require"
)

// WriteModel writes an HCL model snippet to main.hcl in a temporary
// directory and returns the file path. The snippet may be indented.
func WriteModel(t *testing.T, src string) string {
	t.Helper()
	dir := WriteFiles(t, map[string]string{"main.hcl": Unindent(src)})
	return filepath.Join(dir, "main.hcl")
}

// LoadModel parses an HCL model snippet and fails the test on error.
func LoadModel(t *testing.T, src string) *model.Model {
	t.Helper()
	m, err := hcl.NewLoader().Load(context.Background(), WriteModel(t, src))
	require.NoError(t, err, "failed to load test model")
	return m
}

// Unindent removes common leading whitespace from a multi-line string,
// allowing for readable, indented HCL snippets in Go tests.
func Unindent(s string) string {
	lines := strings.Split(s, "\n")

	// Remove leading/trailing empty lines that are common with multi-line literals
	if strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	// Find the minimum indentation of non-empty lines
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	// Strip the common indentation from each line
	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		} else {
			lines[i] = strings.TrimSpace(line)
		}
	}
	return strings.Join(lines, "\n")
}
