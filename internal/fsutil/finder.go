// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoExtension is returned when no file extension is given.
var ErrNoExtension = errors.New("extension must not be empty")

// FindFiles resolves path to the files it names. A regular file is returned
// as is, whatever its extension. A directory is searched recursively for
// files whose extension matches one of extensions, case-insensitively, and
// the matches are returned in lexical order.
func FindFiles(path string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		return nil, ErrNoExtension
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasExtension(d.Name(), extensions) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
