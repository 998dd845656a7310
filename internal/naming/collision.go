package naming

import (
	"fmt"
	"os"
	"path/filepath"
)

// UniqueDestination returns a destination path in dir for stem+ext that does
// not collide with an existing entry, appending " (1)", " (2)", ... as
// needed. ext includes the leading dot.
func UniqueDestination(dir, stem, ext string) string {
	candidate := filepath.Join(dir, stem+ext)
	if _, err := os.Stat(candidate); err != nil {
		return candidate
	}
	for counter := 1; ; counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, counter, ext))
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}
