package archiver

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/zipdesk/zipdesk/pkg/paths"
)

// now is a seam for tests that assert generated archive names.
var now = time.Now

func (a *Archiver) now() time.Time {
	return now()
}

// resolveDestination validates and auto-corrects the destination path.
// A destination whose final segment is missing or lacks the archive
// extension is treated as a directory, falling back to the current
// working directory when it does not exist, and the generated
// timestamped file name is appended.
func (a *Archiver) resolveDestination(dest string) string {
	base := filepath.Base(dest)

	endsWithSeparator := strings.HasSuffix(dest, "/") || strings.HasSuffix(dest, string(filepath.Separator))
	if !endsWithSeparator && base != "." && base != string(filepath.Separator) && paths.HasExt(base, a.options.Extension) {
		return dest
	}

	dir := dest
	if info, err := a.fs.Stat(dir); err != nil || !info.IsDir() {
		if cwd, err := a.fs.Pwd(); err == nil {
			dir = cwd
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, paths.GeneratedName(a.options.NamePrefix, a.options.Extension, a.now()))
}
