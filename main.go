// transdup — translation duplication analyzer for monorepos.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/i18n-tools/transdup/analyze"
	"github.com/i18n-tools/transdup/config"
	"github.com/i18n-tools/transdup/i18n"
	"github.com/i18n-tools/transdup/loader"
	"github.com/i18n-tools/transdup/report"
	"github.com/i18n-tools/transdup/search"
	"github.com/i18n-tools/transdup/translation"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	infoTag  = color.New(color.FgBlue).Sprint("[INFO]")
	warnTag  = color.New(color.FgYellow, color.Bold).Sprint("[WARN]")
	errorTag = color.New(color.FgRed).Sprint("[ERROR]")
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, infoTag+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, warnTag+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, errorTag+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	rootDir    string
	configPath string
	jsonOutput bool
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "transdup",
		Short: "Detect duplicated translation strings across a monorepo",
		Long: `transdup — translation duplication analyzer for monorepos.

Scans a repository for translation JSON files, indexes every translated
string, and reports duplicates relative to a target package:

  inter-package        the same text repeats inside the target package
  common-translation   the text also lives in the shared translations module
  external-projects    the text also appears in unrelated packages

Commands:
  report      Summary counts for one package, or for every package
  detail      Per-string listing of every duplicate for one package`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Monorepo root directory")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default <root>/"+config.FileName+")")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit reports as JSON")

	root.AddCommand(
		newReportCmd(),
		newDetailCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("transdup version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// report (summary counts)
// ---------------------------------------------------------------------------

func newReportCmd() *cobra.Command {
	var packagePath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Duplication summary for one package or for every package",
		Long: `Print duplication counts.

With --package, analyzes that single package (e.g.
packages/manager/apps/zimbra). Without it, analyzes every package
discovered in the corpus, reusing one shared content index.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(os.Stdout, packagePath)
		},
	}

	cmd.Flags().StringVar(&packagePath, "package", "", "Package path to analyze (default: all packages)")

	return cmd
}

// ---------------------------------------------------------------------------
// detail (per-string listing)
// ---------------------------------------------------------------------------

func newDetailCmd() *cobra.Command {
	var packagePath string

	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Detailed duplication listing for one package",
		Long: `Print every duplicated string of a package with all of its
occurrences across the monorepo. Occurrences belonging to the target
package are marked with **.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetail(os.Stdout, packagePath)
		},
	}

	cmd.Flags().StringVar(&packagePath, "package", "", "Package path to analyze")
	cmd.MarkFlagRequired("package")

	return cmd
}

// ---------------------------------------------------------------------------
// Orchestration: search -> load -> classify -> index -> analyze -> render
// ---------------------------------------------------------------------------

// corpus is the fully loaded, classified, immutable entry collection.
type corpus struct {
	settings  config.Settings
	entries   []translation.Entry
	index     translation.ValueIndex
	fileCount int
}

func loadCorpus() (*corpus, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(rootDir, config.FileName)
	}
	settings, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	files, err := search.Files(rootDir, settings.Pattern(), settings.SkipDirectories)
	if err != nil {
		return nil, err
	}
	logInfo(i18n.N("Found %d translation file", "Found %d translation files", len(files)), len(files))

	entries, failures := loader.Load(rootDir, files)
	for _, f := range failures {
		logWarning(i18n.T("skipping %s: %v"), f.Path, f.Err)
	}

	classifier := translation.NewClassifier(settings.ProjectMarkers)
	entries = classifier.ClassifyAll(entries)

	return &corpus{
		settings:  settings,
		entries:   entries,
		index:     translation.IndexByValue(entries),
		fileCount: len(files),
	}, nil
}

func runReport(w io.Writer, packagePath string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}

	if packagePath != "" {
		logInfo(i18n.T("Analyzing project %s"), packagePath)
		r := analyze.Project(packagePath,
			translation.ForProject(packagePath, c.entries),
			c.index, c.settings.CommonTranslationsPaths)
		if jsonOutput {
			return report.WriteJSON(w, report.ProjectSummary{
				Project: r.Project,
				Summary: report.NewSummary(r.Totals),
			})
		}
		report.WriteSummary(w, r.Project, report.NewSummary(r.Totals))
		return nil
	}

	global := report.Global{FileCount: c.fileCount}
	for _, pr := range analyze.AllProjects(c.entries, c.index, c.settings.CommonTranslationsPaths) {
		global.Projects = append(global.Projects, report.ProjectSummary{
			Project: pr.Project,
			Summary: report.NewSummary(pr.Totals),
		})
	}
	if jsonOutput {
		return report.WriteJSON(w, global)
	}
	report.WriteGlobal(w, global)
	return nil
}

func runDetail(w io.Writer, packagePath string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}

	logInfo(i18n.T("Analyzing project %s"), packagePath)
	r := analyze.Project(packagePath,
		translation.ForProject(packagePath, c.entries),
		c.index, c.settings.CommonTranslationsPaths)

	// Entry paths are already root-relative; nothing left to strip.
	d := report.NewDetailed("", r)
	if jsonOutput {
		return report.WriteJSON(w, d)
	}
	report.WriteDetailed(w, d)
	return nil
}
