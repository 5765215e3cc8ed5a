// Package analyze implements duplication analysis of a translation corpus.
//
// The analyzer is pure: it consumes the immutable entry collection and the
// shared value index, performs no I/O, and never fails. A target project
// with zero entries yields an all-zero report.
package analyze

import (
	"sort"

	"github.com/i18n-tools/transdup/translation"
)

// Counts holds the per-category duplication counts for one record or one
// whole report. A duplicated value's status is a set of categories with
// independent counts, not a single tag: a value seen once in the common
// module and twice in unrelated packages contributes to both
// CommonTranslation and ExternalProjects.
type Counts struct {
	// InterPackage: members of the value group owned by the target
	// project itself (a different file or key reproduces the text).
	InterPackage int `json:"inter_package"`
	// CommonTranslation: members owned by a configured common-translations
	// module.
	CommonTranslation int `json:"common_translation"`
	// ExternalProjects: members owned by any other classified project.
	ExternalProjects int `json:"external_projects"`
}

// Total is the sum of the three category counts.
func (c Counts) Total() int {
	return c.InterPackage + c.CommonTranslation + c.ExternalProjects
}

// IsZero reports whether no category counted any member.
func (c Counts) IsZero() bool {
	return c.Total() == 0
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	c.InterPackage += other.InterPackage
	c.CommonTranslation += other.CommonTranslation
	c.ExternalProjects += other.ExternalProjects
}

// Record is the duplication finding for one entry of the target project.
// Records are rebuilt on every analysis call and never stored.
type Record struct {
	// Entry is the target-project entry the record was produced for.
	Entry translation.Entry
	// Occurrences is the total size of the value group across the whole
	// corpus, including Entry itself.
	Occurrences int
	// Counts are the per-category member counts, excluding Entry itself.
	Counts Counts
	// Members is the full value group sorted by (FilePath, Key).
	Members []translation.Entry
}

// Report is the outcome of analyzing one target project.
type Report struct {
	// Project is the target project path.
	Project string
	// Totals is the sum of every record's counts.
	Totals Counts
	// Records holds one record per duplicated target-project entry,
	// ordered by descending occurrence count then by value.
	Records []Record
}

// Project analyzes the duplication status of one target project.
// projectEntries must be the target's own entries (translation.ForProject);
// index is the shared corpus-wide value index, built once and reused
// across calls.
func Project(target string, projectEntries []translation.Entry, index translation.ValueIndex, commonPaths []string) Report {
	report := Report{Project: target}

	for _, e := range projectEntries {
		group := index.Group(e.Value)
		if len(group) <= 1 {
			continue
		}

		var counts Counts
		for _, member := range group {
			if member.SameOrigin(e) {
				continue
			}
			switch {
			case member.ProjectPath == "":
				// Unclassifiable members inflate the occurrence count
				// but belong to no project category.
			case member.ProjectPath == target:
				counts.InterPackage++
			case translation.IsCommonTranslations(member.ProjectPath, commonPaths):
				counts.CommonTranslation++
			default:
				counts.ExternalProjects++
			}
		}
		if counts.IsZero() {
			continue
		}

		report.Records = append(report.Records, Record{
			Entry:       e,
			Occurrences: len(group),
			Counts:      counts,
			Members:     group,
		})
		report.Totals.Add(counts)
	}

	sortRecords(report.Records)
	return report
}

// sortRecords orders records by descending occurrence count, then value,
// then (FilePath, Key) of the record's own entry, so repeated runs emit
// byte-identical reports.
func sortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Occurrences != b.Occurrences {
			return a.Occurrences > b.Occurrences
		}
		if a.Entry.Value != b.Entry.Value {
			return a.Entry.Value < b.Entry.Value
		}
		if a.Entry.FilePath != b.Entry.FilePath {
			return a.Entry.FilePath < b.Entry.FilePath
		}
		return a.Entry.Key < b.Entry.Key
	})
}

// ProjectReport pairs a project path with its duplication totals.
type ProjectReport struct {
	Project string
	Totals  Counts
}

// AllProjects analyzes every distinct classified project in the corpus,
// reusing the single shared index, and returns one totals entry per
// project in sorted project-path order.
func AllProjects(entries []translation.Entry, index translation.ValueIndex, commonPaths []string) []ProjectReport {
	byProject := translation.IndexByProject(entries)

	paths := make([]string, 0, len(byProject))
	for p := range byProject {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	reports := make([]ProjectReport, 0, len(paths))
	for _, p := range paths {
		r := Project(p, byProject[p], index, commonPaths)
		reports = append(reports, ProjectReport{Project: p, Totals: r.Totals})
	}
	return reports
}
