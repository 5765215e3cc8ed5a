// Package loader reads translation JSON files into the flat entry list the
// analyzer consumes.
//
// A translation file is one flat JSON object mapping translation keys to
// string values:
//
//	{
//	    "welcome.title": "Bienvenue",
//	    "error.message": "Une erreur s'est produite"
//	}
//
// Files load in parallel; entries from all workers are merged into one
// collection behind a mutex before Load returns, so callers always observe
// a complete, immutable corpus. Per-file failures do not abort the run:
// they are collected and returned alongside whatever loaded, and the
// caller decides whether to warn-and-continue or bail out.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/i18n-tools/transdup/translation"
)

// FileError records one translation file that failed to load.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// Load reads every file concurrently and returns the merged entry list
// plus the per-file failures. Entries of a failed file are simply absent
// from the result; there is no partial recovery within a file.
//
// Entry file paths are stored relative to root (slash-separated), so the
// derived project path is a true prefix of the file path and matches the
// package identifiers users pass on the command line. An empty root keeps
// paths as given.
func Load(root string, paths []string) ([]translation.Entry, []FileError) {
	var (
		mu       sync.Mutex
		entries  []translation.Entry
		failures []FileError
	)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		path := path
		g.Go(func() error {
			loaded, err := LoadFile(root, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, FileError{Path: path, Err: err})
				return nil
			}
			entries = append(entries, loaded...)
			return nil
		})
	}
	// Workers never return errors; Wait is the merge barrier.
	_ = g.Wait()

	return entries, failures
}

// LoadFile parses one translation file into entries. The file must contain
// a single flat JSON object; non-string values are rejected.
func LoadFile(root, path string) ([]translation.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	filePath := relativeTo(root, path)
	entries := make([]translation.Entry, 0, len(raw))
	for key, rawValue := range raw {
		var value string
		if err := json.Unmarshal(rawValue, &value); err != nil {
			return nil, fmt.Errorf("key %q: value is not a string", key)
		}
		entries = append(entries, translation.Entry{
			Key:      key,
			Value:    value,
			FilePath: filePath,
		})
	}
	return entries, nil
}

// relativeTo rewrites path relative to root in slash form. Paths outside
// the root, or an empty root, are kept as given.
func relativeTo(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
