// Package paths holds the pure path helpers shared by the archive and
// extract services: archive entry naming, extension checks, generated
// archive names, and containment checks for extraction targets.
package paths

import (
	"path"
	"path/filepath"
	"strings"
	"time"
)

// NameLayout is the timestamp layout used for generated archive names,
// producing names like Archive_20260831_154501.zip.
const NameLayout = "20060102_150405"

// EntryName computes the archive entry name for a file found beneath
// baseDir: the directory's base name joined with the file's path
// relative to it, normalized to forward slashes as the ZIP format
// expects.
func EntryName(baseDir, file string) (string, error) {
	rel, err := filepath.Rel(baseDir, file)
	if err != nil {
		return "", err
	}
	return path.Join(filepath.Base(filepath.Clean(baseDir)), filepath.ToSlash(rel)), nil
}

// HasExt reports whether p carries the given extension, ignoring case.
// ext includes the leading dot.
func HasExt(p, ext string) bool {
	return strings.EqualFold(filepath.Ext(p), ext)
}

// GeneratedName returns the default archive file name for a point in
// time, e.g. Archive_20260831_154501.zip.
func GeneratedName(prefix, ext string, t time.Time) string {
	return prefix + t.Format(NameLayout) + ext
}

// WithinBase reports whether target resolves to a location inside base.
// Used to reject archive entries whose names would escape the
// extraction directory.
func WithinBase(base, target string) bool {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
