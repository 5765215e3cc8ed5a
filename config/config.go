// Package config — .transdup.yaml configuration file support.
//
// When a .transdup.yaml file exists (or --config points at one), it
// overrides the built-in defaults. The defaults target the monorepo layout
// the tool was written for: French i18next message files under
// packages/manager, with a dedicated common-translations module.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name, looked up in the analysis root.
const FileName = ".transdup.yaml"

// Settings drives file discovery and duplication classification.
type Settings struct {
	// TranslationFileRegex matches translation file base names.
	TranslationFileRegex string `yaml:"translation_file_regex"`
	// SkipDirectories are directory names pruned anywhere in the tree.
	SkipDirectories []string `yaml:"skip_directories"`
	// CommonTranslationsPaths are project paths whose translations are
	// intentionally shared; duplicates found there are a refactoring
	// target, not a problem.
	CommonTranslationsPaths []string `yaml:"common_translations_paths"`
	// ProjectMarkers are the path segments that open a project boundary
	// (the project is "<...>/<marker>/<name>").
	ProjectMarkers []string `yaml:"project_markers"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		TranslationFileRegex: `^Messages_fr_FR\.json$`,
		SkipDirectories: []string{
			".git", "node_modules", "target", ".idea", ".vscode",
			"dist", "build", "manager-tools",
		},
		CommonTranslationsPaths: []string{
			"packages/manager/modules/common-translations",
		},
		ProjectMarkers: []string{"apps", "modules"},
	}
}

// Load reads settings from a YAML file. Fields absent from the file keep
// their default values.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadOrDefault loads settings from path when the file exists and falls
// back to defaults when it does not. Malformed files are an error, not a
// silent fallback.
func LoadOrDefault(path string) (Settings, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading %s: %w", path, err)
	}
	return Load(path)
}

// Validate checks the settings the analyzer depends on. It runs before
// any analysis so the core can assume a well-formed configuration.
func (s Settings) Validate() error {
	if s.TranslationFileRegex == "" {
		return errors.New("translation_file_regex must not be empty")
	}
	if _, err := regexp.Compile(s.TranslationFileRegex); err != nil {
		return fmt.Errorf("invalid translation_file_regex: %w", err)
	}
	if len(s.ProjectMarkers) == 0 {
		return errors.New("project_markers must not be empty")
	}
	for _, m := range s.ProjectMarkers {
		if m == "" {
			return errors.New("project_markers must not contain empty segments")
		}
	}
	return nil
}

// Pattern compiles the translation file regex. Call Validate first;
// Pattern panics on a pattern Validate would have rejected.
func (s Settings) Pattern() *regexp.Regexp {
	return regexp.MustCompile(s.TranslationFileRegex)
}
