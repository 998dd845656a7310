package naming

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUniqueDestination(t *testing.T) {
	dir := t.TempDir()

	touch := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	want := filepath.Join(dir, "Batman #001 (2019).cbz")
	if got := UniqueDestination(dir, "Batman #001 (2019)", ".cbz"); got != want {
		t.Errorf("empty dir: got %q, want %q", got, want)
	}

	touch("Batman #001 (2019).cbz")
	want = filepath.Join(dir, "Batman #001 (2019) (1).cbz")
	if got := UniqueDestination(dir, "Batman #001 (2019)", ".cbz"); got != want {
		t.Errorf("one collision: got %q, want %q", got, want)
	}

	touch("Batman #001 (2019) (1).cbz")
	want = filepath.Join(dir, "Batman #001 (2019) (2).cbz")
	if got := UniqueDestination(dir, "Batman #001 (2019)", ".cbz"); got != want {
		t.Errorf("two collisions: got %q, want %q", got, want)
	}

	// Suffixing is per extension: the .cbr slot is still free.
	want = filepath.Join(dir, "Batman #001 (2019).cbr")
	if got := UniqueDestination(dir, "Batman #001 (2019)", ".cbr"); got != want {
		t.Errorf("other extension: got %q, want %q", got, want)
	}
}
