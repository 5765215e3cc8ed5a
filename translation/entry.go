// Package translation defines the in-memory model for loaded translation
// entries and the pure indexing/classification helpers built on top of it.
//
// An Entry is one key/value pair from one translation file. Entries are
// immutable after load: every index and report in this repository is a pure
// aggregation over a fixed []Entry, so the same corpus always produces the
// same output regardless of load order.
package translation

// PackageType indicates which kind of monorepo package owns an entry.
// It is derived from the marker segment found in the file path and is used
// only for display grouping, never for duplication classification.
type PackageType string

const (
	// PackageTypeApp: path contains an apps/<name> segment.
	PackageTypeApp PackageType = "app"
	// PackageTypeModule: path contains a modules/<name> segment.
	PackageTypeModule PackageType = "module"
	// PackageTypeUnknown: the marker segment is not one of the well-known ones.
	PackageTypeUnknown PackageType = "unknown"
)

// Entry is a single translation string loaded from a translation file.
type Entry struct {
	// Key is the translation key. Unique within one file, not globally.
	Key string `json:"key"`
	// Value is the translated text. May be empty; an empty value is still
	// a valid grouping key for duplicate detection.
	Value string `json:"value"`
	// FilePath is the path of the source file the entry was loaded from.
	FilePath string `json:"file_path"`
	// ProjectPath is the owning package path derived from FilePath
	// (e.g. "packages/manager/apps/zimbra"). Empty when the path could
	// not be classified.
	ProjectPath string `json:"project_path,omitempty"`
	// Type is the owning package kind, for display grouping.
	Type PackageType `json:"package_type,omitempty"`
}

// SameOrigin reports whether two entries are the literal same key in the
// literal same file. An entry is never a duplicate of itself.
func (e Entry) SameOrigin(other Entry) bool {
	return e.FilePath == other.FilePath && e.Key == other.Key
}
