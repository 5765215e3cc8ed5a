package analyze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i18n-tools/transdup/translation"
)

func entry(key, value, file, project string) translation.Entry {
	return translation.Entry{Key: key, Value: value, FilePath: file, ProjectPath: project}
}

func analyzeCorpus(target string, commonPaths []string, corpus []translation.Entry) Report {
	idx := translation.IndexByValue(corpus)
	return Project(target, translation.ForProject(target, corpus), idx, commonPaths)
}

func TestInterPackageDuplication(t *testing.T) {
	// Scenario: the same text under two different keys/files of one package.
	corpus := []translation.Entry{
		entry("a", "Hello", "P1/Messages.json", "P1"),
		entry("b", "Hello", "P1/Other.json", "P1"),
	}

	r := analyzeCorpus("P1", nil, corpus)

	// Each entry sees the other one.
	assert.Equal(t, 2, r.Totals.InterPackage)
	assert.Equal(t, 0, r.Totals.CommonTranslation)
	assert.Equal(t, 0, r.Totals.ExternalProjects)
	assert.Equal(t, 2, r.Totals.Total())
	require.Len(t, r.Records, 2)
	assert.Equal(t, 2, r.Records[0].Occurrences)
}

func TestCommonTranslationDuplication(t *testing.T) {
	corpus := []translation.Entry{
		entry("hi", "Hi", "common/Messages.json", "common"),
		entry("hi", "Hi", "P1/Messages.json", "P1"),
	}

	r := analyzeCorpus("P1", []string{"common"}, corpus)

	assert.Equal(t, 0, r.Totals.InterPackage)
	assert.Equal(t, 1, r.Totals.CommonTranslation)
	assert.Equal(t, 0, r.Totals.ExternalProjects)
}

func TestExternalProjectsDuplication(t *testing.T) {
	corpus := []translation.Entry{
		entry("hi", "Hi", "P1/Messages.json", "P1"),
		entry("hi", "Hi", "P2/Messages.json", "P2"),
		entry("hi", "Hi", "P3/Messages.json", "P3"),
	}

	r := analyzeCorpus("P1", nil, corpus)

	assert.Equal(t, 0, r.Totals.InterPackage)
	assert.Equal(t, 0, r.Totals.CommonTranslation)
	assert.Equal(t, 2, r.Totals.ExternalProjects)
	require.Len(t, r.Records, 1)
	assert.Equal(t, 3, r.Records[0].Occurrences)
}

func TestCategoriesAreNotExclusive(t *testing.T) {
	// One value duplicated in the common module AND in external packages
	// contributes to both counters independently.
	corpus := []translation.Entry{
		entry("k", "Shared", "P1/Messages.json", "P1"),
		entry("k", "Shared", "common/Messages.json", "common"),
		entry("k", "Shared", "P2/Messages.json", "P2"),
		entry("k", "Shared", "P3/Messages.json", "P3"),
	}

	r := analyzeCorpus("P1", []string{"common"}, corpus)

	assert.Equal(t, 0, r.Totals.InterPackage)
	assert.Equal(t, 1, r.Totals.CommonTranslation)
	assert.Equal(t, 2, r.Totals.ExternalProjects)
	assert.Equal(t, 3, r.Totals.Total())
}

func TestEntryIsNeverItsOwnDuplicate(t *testing.T) {
	// A value appearing once in the corpus yields no record, even though
	// the entry is its own group member.
	corpus := []translation.Entry{
		entry("only", "Unique", "P1/Messages.json", "P1"),
		entry("other", "Unrelated", "P1/Messages.json", "P1"),
	}

	r := analyzeCorpus("P1", nil, corpus)

	assert.True(t, r.Totals.IsZero())
	assert.Empty(t, r.Records)
}

func TestSameFileDifferentKeyCounts(t *testing.T) {
	// A different key in the same file is a real inter-package duplicate.
	corpus := []translation.Entry{
		entry("a", "Hello", "P1/Messages.json", "P1"),
		entry("b", "Hello", "P1/Messages.json", "P1"),
	}

	r := analyzeCorpus("P1", nil, corpus)

	assert.Equal(t, 2, r.Totals.InterPackage)
	for _, rec := range r.Records {
		assert.Equal(t, 1, rec.Counts.InterPackage)
		assert.LessOrEqual(t, rec.Counts.Total(), rec.Occurrences-1)
	}
}

func TestUnclassifiedMembersInflateOccurrencesOnly(t *testing.T) {
	corpus := []translation.Entry{
		entry("k", "Hi", "P1/Messages.json", "P1"),
		entry("k", "Hi", "P2/Messages.json", "P2"),
		entry("k", "Hi", "tools/Messages.json", ""),
	}

	r := analyzeCorpus("P1", nil, corpus)

	require.Len(t, r.Records, 1)
	assert.Equal(t, 3, r.Records[0].Occurrences)
	assert.Equal(t, 1, r.Records[0].Counts.ExternalProjects)
	assert.Equal(t, 1, r.Totals.Total())
}

func TestEmptyValuesAreDuplicates(t *testing.T) {
	corpus := []translation.Entry{
		entry("a", "", "P1/Messages.json", "P1"),
		entry("b", "", "P2/Messages.json", "P2"),
	}

	r := analyzeCorpus("P1", nil, corpus)

	assert.Equal(t, 1, r.Totals.ExternalProjects)
}

func TestProjectWithNoEntries(t *testing.T) {
	corpus := []translation.Entry{
		entry("a", "Hello", "P1/Messages.json", "P1"),
	}

	r := analyzeCorpus("P-empty", nil, corpus)

	assert.True(t, r.Totals.IsZero())
	assert.Empty(t, r.Records)
}

func TestAnalysisIsIdempotentAndOrderIndependent(t *testing.T) {
	corpus := []translation.Entry{
		entry("a", "Hello", "P1/Messages.json", "P1"),
		entry("b", "Hello", "P1/Other.json", "P1"),
		entry("c", "Hello", "P2/Messages.json", "P2"),
		entry("d", "Hi", "P1/Messages.json", "P1"),
		entry("e", "Hi", "common/Messages.json", "common"),
	}
	common := []string{"common"}

	reference := analyzeCorpus("P1", common, corpus)

	// Same immutable corpus, repeated run: identical report.
	assert.Equal(t, reference, analyzeCorpus("P1", common, corpus))

	// Shuffled load order: identical report, member ordering included.
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]translation.Entry(nil), corpus...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := analyzeCorpus("P1", common, shuffled)
		assert.Equal(t, reference.Totals, got.Totals)
		for j := range reference.Records {
			assert.Equal(t, reference.Records[j].Members, got.Records[j].Members)
		}
	}
}

func TestRecordOrdering(t *testing.T) {
	corpus := []translation.Entry{
		entry("a", "BBB", "P1/Messages.json", "P1"),
		entry("b", "BBB", "P2/Messages.json", "P2"),
		entry("c", "AAA", "P1/Messages.json", "P1"),
		entry("d", "AAA", "P2/Messages.json", "P2"),
		entry("e", "CCC", "P1/Messages.json", "P1"),
		entry("f", "CCC", "P2/Messages.json", "P2"),
		entry("g", "CCC", "P3/Messages.json", "P3"),
	}

	r := analyzeCorpus("P1", nil, corpus)

	require.Len(t, r.Records, 3)
	// Descending occurrences first, then value.
	assert.Equal(t, "CCC", r.Records[0].Entry.Value)
	assert.Equal(t, "AAA", r.Records[1].Entry.Value)
	assert.Equal(t, "BBB", r.Records[2].Entry.Value)
}

func TestAllProjects(t *testing.T) {
	corpus := []translation.Entry{
		entry("a", "Hello", "apps/zulu/Messages.json", "apps/zulu"),
		entry("b", "Hello", "apps/alpha/Messages.json", "apps/alpha"),
		entry("c", "Solo", "apps/alpha/Messages.json", "apps/alpha"),
		entry("d", "Loose", "tools/Messages.json", ""),
	}
	idx := translation.IndexByValue(corpus)

	reports := AllProjects(corpus, idx, nil)

	require.Len(t, reports, 2, "unclassified entries form no project")
	assert.Equal(t, "apps/alpha", reports[0].Project)
	assert.Equal(t, "apps/zulu", reports[1].Project)
	assert.Equal(t, 1, reports[0].Totals.ExternalProjects)
	assert.Equal(t, 1, reports[1].Totals.ExternalProjects)
}
