// Package report assembles analyzer output into the shapes consumed by the
// CLI: a four-counter summary, a detailed per-value listing, and the
// whole-repository per-project listing. All shapes are derived purely from
// analyze records; rendering goes to an io.Writer so tests can capture it.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/i18n-tools/transdup/analyze"
	"github.com/i18n-tools/transdup/translation"
)

// Summary is the four-counter aggregate for one analyzed project. The
// counters are sums of per-entry record counts, not counts of distinct
// values, and they are not mutually exclusive totals over one group.
type Summary struct {
	InterPackage      int `json:"inter_package"`
	CommonTranslation int `json:"common_translation"`
	ExternalProjects  int `json:"external_projects"`
	Total             int `json:"total"`
}

// NewSummary projects analyzer totals into a Summary.
func NewSummary(c analyze.Counts) Summary {
	return Summary{
		InterPackage:      c.InterPackage,
		CommonTranslation: c.CommonTranslation,
		ExternalProjects:  c.ExternalProjects,
		Total:             c.Total(),
	}
}

// Location is one occurrence of a duplicated value.
type Location struct {
	// FilePath is shown relative to the analysis root when possible.
	FilePath string `json:"file_path"`
	Key      string `json:"key"`
	// Own marks locations belonging to the target project.
	Own bool `json:"own"`
}

// DetailEntry is one duplicated value with everything needed to display it.
type DetailEntry struct {
	Value string `json:"value"`
	// Types lists the duplication categories the value falls in, in the
	// fixed order inter_package, common_translation, external_projects.
	Types []string `json:"types"`
	// Occurrences is the corpus-wide size of the value group.
	Occurrences int        `json:"occurrences"`
	Locations   []Location `json:"locations"`
}

// Detailed is the full per-value report for one target project.
type Detailed struct {
	Project string        `json:"project"`
	Summary Summary       `json:"summary"`
	Entries []DetailEntry `json:"entries"`
}

// ProjectSummary pairs a project with its summary in all-projects mode.
type ProjectSummary struct {
	Project string  `json:"project"`
	Summary Summary `json:"summary"`
}

// Global is the whole-repository report.
type Global struct {
	FileCount int              `json:"file_count"`
	Projects  []ProjectSummary `json:"projects"`
}

// Duplication category names used in detailed output and its JSON
// projection. Field-name compatible with the Summary counters.
const (
	TypeInterPackage      = "inter_package"
	TypeCommonTranslation = "common_translation"
	TypeExternalProjects  = "external_projects"
)

// NewDetailed assembles the detailed report from an analyzer report.
// Records are merged per value (one DetailEntry per duplicated value,
// however many target entries carry it), ordered by descending occurrence
// count then by value, so repeated runs are byte-identical.
func NewDetailed(root string, r analyze.Report) Detailed {
	d := Detailed{
		Project: r.Project,
		Summary: NewSummary(r.Totals),
	}

	merged := make(map[string]*DetailEntry)
	categories := make(map[string]analyze.Counts)
	var order []string

	for _, rec := range r.Records {
		c := categories[rec.Entry.Value]
		c.Add(rec.Counts)
		categories[rec.Entry.Value] = c

		if _, ok := merged[rec.Entry.Value]; ok {
			continue
		}
		order = append(order, rec.Entry.Value)
		merged[rec.Entry.Value] = &DetailEntry{
			Value:       rec.Entry.Value,
			Occurrences: rec.Occurrences,
			Locations:   locations(root, r.Project, rec.Members),
		}
	}

	for _, value := range order {
		entry := merged[value]
		entry.Types = typeNames(categories[value])
		d.Entries = append(d.Entries, *entry)
	}

	sort.SliceStable(d.Entries, func(i, j int) bool {
		if d.Entries[i].Occurrences != d.Entries[j].Occurrences {
			return d.Entries[i].Occurrences > d.Entries[j].Occurrences
		}
		return d.Entries[i].Value < d.Entries[j].Value
	})

	return d
}

func typeNames(c analyze.Counts) []string {
	var types []string
	if c.InterPackage > 0 {
		types = append(types, TypeInterPackage)
	}
	if c.CommonTranslation > 0 {
		types = append(types, TypeCommonTranslation)
	}
	if c.ExternalProjects > 0 {
		types = append(types, TypeExternalProjects)
	}
	return types
}

func locations(root, target string, members []translation.Entry) []Location {
	locs := make([]Location, 0, len(members))
	for _, m := range members {
		locs = append(locs, Location{
			FilePath: relativeTo(root, m.FilePath),
			Key:      m.Key,
			Own:      m.ProjectPath != "" && m.ProjectPath == target,
		})
	}
	return locs
}

// relativeTo strips the analysis root prefix for display. Paths outside
// the root are shown unchanged.
func relativeTo(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	valueColor  = color.New(color.FgYellow)
	ownColor    = color.New(color.FgGreen, color.Bold)
)

// WriteSummary prints the four-counter report for one project.
func WriteSummary(w io.Writer, project string, s Summary) {
	headerColor.Fprintf(w, "Duplication report: %s\n", project)
	fmt.Fprintf(w, "  Inter-package duplication:     %d\n", s.InterPackage)
	fmt.Fprintf(w, "  Common-translation duplication: %d\n", s.CommonTranslation)
	fmt.Fprintf(w, "  External-projects duplication:  %d\n", s.ExternalProjects)
	fmt.Fprintf(w, "  Total duplication:              %d\n", s.Total)
}

// WriteDetailed prints the summary plus one block per duplicated value.
// Locations belonging to the target project are marked with "**".
func WriteDetailed(w io.Writer, d Detailed) {
	WriteSummary(w, d.Project, d.Summary)

	for _, entry := range d.Entries {
		fmt.Fprintln(w)
		headerColor.Fprintf(w, "Duplication seen %d times (%s)\n",
			entry.Occurrences, strings.Join(entry.Types, ", "))
		valueColor.Fprintf(w, "  %q\n", entry.Value)
		for _, loc := range entry.Locations {
			marker := "  "
			if loc.Own {
				marker = ownColor.Sprint("**")
			}
			fmt.Fprintf(w, "  %s %s - %s\n", marker, loc.FilePath, loc.Key)
		}
	}
}

// WriteGlobal prints the per-project summaries of all-projects mode.
func WriteGlobal(w io.Writer, g Global) {
	fmt.Fprintf(w, "Found %d translation files\n", g.FileCount)
	for _, ps := range g.Projects {
		fmt.Fprintln(w)
		WriteSummary(w, ps.Project, ps.Summary)
	}
}

// WriteJSON renders any report shape as indented JSON, for external
// consumers. Field names and integer semantics match the display shapes
// exactly.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
