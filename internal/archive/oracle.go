// Package archive implements advisory duplicate detection against an
// external, read-only comic archive directory.
package archive

import (
	"os"
	"path/filepath"
	"strings"
)

// Oracle answers whether a planned file already exists in the external
// archive. Root is the archive directory; empty disables all checks. The
// oracle never mutates the archive and never fails a run: any unset,
// missing, or unreadable path yields "not a duplicate".
type Oracle struct {
	Root string
}

// IsDuplicate reports whether a file with the same extension-stripped name
// (case-insensitive) as filename exists directly under the first archive
// subfolder whose name case-insensitively equals title. The search is one
// directory level deep; no recursion.
func (o Oracle) IsDuplicate(title, filename string) bool {
	if o.Root == "" {
		return false
	}
	entries, err := os.ReadDir(o.Root)
	if err != nil {
		return false
	}

	wantStem := strings.ToLower(stripExt(filename))
	for _, e := range entries {
		if !e.IsDir() || !strings.EqualFold(e.Name(), title) {
			continue
		}
		// First matching folder decides; unreadable folders are skipped.
		files, err := os.ReadDir(filepath.Join(o.Root, e.Name()))
		if err == nil {
			for _, f := range files {
				if f.IsDir() {
					continue
				}
				if strings.ToLower(stripExt(f.Name())) == wantStem {
					return true
				}
			}
		}
		break
	}
	return false
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
