package translation

import "sort"

// ValueIndex groups every entry of the corpus by its exact translation
// text. It is built once, before any per-project analysis, and shared
// read-only across however many analyses run in a session.
type ValueIndex map[string][]Entry

// IndexByValue builds the content index. Grouping is by Value string
// equality: two entries with different keys but identical text are
// duplicates of each other; two entries with the same key but different
// text are not. Empty and whitespace-only values are grouping keys like
// any other. This is a pure fold with no error conditions.
func IndexByValue(entries []Entry) ValueIndex {
	idx := make(ValueIndex, len(entries))
	for _, e := range entries {
		idx[e.Value] = append(idx[e.Value], e)
	}
	return idx
}

// Group returns the entries sharing a value, sorted by (FilePath, Key) so
// report output is deterministic regardless of load order. The returned
// slice is a copy; the index itself is never mutated.
func (idx ValueIndex) Group(value string) []Entry {
	group := append([]Entry(nil), idx[value]...)
	SortEntries(group)
	return group
}

// IndexByProject groups classified entries by their ProjectPath.
// Unclassifiable entries (empty ProjectPath) are left out: they cannot be
// the subject of a project-scoped analysis.
func IndexByProject(entries []Entry) map[string][]Entry {
	byProject := make(map[string][]Entry)
	for _, e := range entries {
		if e.ProjectPath == "" {
			continue
		}
		byProject[e.ProjectPath] = append(byProject[e.ProjectPath], e)
	}
	return byProject
}

// ForProject returns the entries whose ProjectPath equals target exactly.
// Sub-packages of target are distinct projects and do not match.
func ForProject(target string, entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.ProjectPath != "" && e.ProjectPath == target {
			out = append(out, e)
		}
	}
	return out
}

// SortEntries orders entries by (FilePath, Key) in place.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].FilePath != entries[j].FilePath {
			return entries[i].FilePath < entries[j].FilePath
		}
		return entries[i].Key < entries[j].Key
	})
}

// ProjectPaths returns the sorted list of distinct classified project
// paths present in the corpus.
func ProjectPaths(entries []Entry) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, e := range entries {
		if e.ProjectPath == "" || seen[e.ProjectPath] {
			continue
		}
		seen[e.ProjectPath] = true
		paths = append(paths, e.ProjectPath)
	}
	sort.Strings(paths)
	return paths
}
