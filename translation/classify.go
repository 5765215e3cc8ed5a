package translation

import (
	"path"
	"path/filepath"
	"strings"
)

// Classifier derives package identity from file paths. It is a stateless
// string transformation: no I/O, total, and deterministic, so the same
// path always maps to the same project.
type Classifier struct {
	markers []string
}

// NewClassifier returns a Classifier that treats the given path segments
// (e.g. "apps", "modules") as project boundaries. The owning project of a
// file is the path prefix up to and including the first "<marker>/<name>"
// pair found in the file path.
func NewClassifier(markers []string) *Classifier {
	return &Classifier{markers: append([]string(nil), markers...)}
}

// Project identifies the package that owns a file.
type Project struct {
	// Path is the project path prefix, e.g. "packages/manager/apps/zimbra".
	Path string
	// Type is derived from the marker segment that matched.
	Type PackageType
}

// ProjectOf derives the owning project from a file path. The second return
// value is false when the path contains no marker segment followed by a
// package name; such entries stay in the global content index but are
// excluded from project-scoped analysis.
func (c *Classifier) ProjectOf(filePath string) (Project, bool) {
	segments := strings.Split(path.Clean(filepath.ToSlash(filePath)), "/")
	for i, seg := range segments {
		if i+1 >= len(segments) {
			break
		}
		for _, marker := range c.markers {
			if seg == marker && segments[i+1] != "" {
				return Project{
					Path: strings.Join(segments[:i+2], "/"),
					Type: typeForMarker(marker),
				}, true
			}
		}
	}
	return Project{}, false
}

// Classify fills ProjectPath and Type on a loaded entry. Unclassifiable
// entries keep an empty ProjectPath and PackageTypeUnknown.
func (c *Classifier) Classify(e Entry) Entry {
	if p, ok := c.ProjectOf(e.FilePath); ok {
		e.ProjectPath = p.Path
		e.Type = p.Type
	} else {
		e.ProjectPath = ""
		e.Type = PackageTypeUnknown
	}
	return e
}

// ClassifyAll returns a new slice with every entry classified.
func (c *Classifier) ClassifyAll(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = c.Classify(e)
	}
	return out
}

func typeForMarker(marker string) PackageType {
	switch marker {
	case "apps":
		return PackageTypeApp
	case "modules":
		return PackageTypeModule
	default:
		return PackageTypeUnknown
	}
}

// IsCommonTranslations reports whether a project path is one of the
// configured common-translations modules, either exactly or as a
// descendant of one.
func IsCommonTranslations(projectPath string, commonPaths []string) bool {
	if projectPath == "" {
		return false
	}
	for _, common := range commonPaths {
		common = strings.TrimSuffix(filepath.ToSlash(common), "/")
		if common == "" {
			continue
		}
		if projectPath == common || strings.HasPrefix(projectPath, common+"/") {
			return true
		}
	}
	return false
}
