package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Recognized comic archive extensions (lowercase, with leading dot).
var comicExtensions = map[string]bool{
	".cbr": true,
	".cbz": true,
}

// IsComicFile reports whether name has a recognized comic archive extension,
// matched case-insensitively.
func IsComicFile(name string) bool {
	return comicExtensions[strings.ToLower(filepath.Ext(name))]
}

// Discover lists the comic files at the top level of dir, skipping hidden
// entries and subdirectories. The returned basenames are sorted
// lexicographically so processing order is deterministic and unaffected by
// moves the run itself performs.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || e.IsDir() || !IsComicFile(name) {
			continue
		}
		files = append(files, name)
	}
	// os.ReadDir already sorts by filename.
	return files, nil
}
