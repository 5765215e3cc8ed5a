// Package search locates translation files in a repository tree.
package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// Files walks root recursively and returns every file whose base name
// matches pattern. Directories whose name appears in skipDirs are pruned
// wherever they occur in the tree, so nothing below them is visited.
// Results are sorted for deterministic downstream output.
func Files(root string, pattern *regexp.Regexp, skipDirs []string) ([]string, error) {
	skip := make(map[string]bool, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = true
	}

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("reading root %s: %w", root, err)
	}

	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if pattern.MatchString(d.Name()) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
