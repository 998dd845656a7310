package archive

import (
	"os"
	"path/filepath"
	"testing"
)

func seedArchive(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	mkdir := func(parts ...string) string {
		p := filepath.Join(append([]string{root}, parts...)...)
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatal(err)
		}
		return p
	}
	touch := func(dir, name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	batman := mkdir("Batman")
	touch(batman, "Batman #007 (2019).cbz")
	touch(batman, "Batman Vol. 2 (2012).cbr")

	nested := mkdir("Saga", "Extras")
	touch(nested, "Saga #001 (2012).cbz")

	touch(root, "Loose File (2020).cbz")
	return root
}

func TestOracleIsDuplicate(t *testing.T) {
	root := seedArchive(t)
	o := Oracle{Root: root}

	cases := []struct {
		name     string
		title    string
		filename string
		want     bool
	}{
		{"exact hit", "Batman", "Batman #007 (2019).cbz", true},
		{"extension insensitive", "Batman", "Batman #007 (2019).cbr", true},
		{"case insensitive title", "BATMAN", "Batman #007 (2019).cbz", true},
		{"case insensitive filename", "Batman", "batman #007 (2019).CBZ", true},
		{"different issue", "Batman", "Batman #008 (2019).cbz", false},
		{"unknown title", "Spawn", "Spawn #001 (1992).cbz", false},
		{"no recursion into subfolders", "Saga", "Saga #001 (2012).cbz", false},
		{"loose file not under title folder", "Loose File (2020)", "Loose File (2020).cbz", false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.IsDuplicate(tt.title, tt.filename); got != tt.want {
				t.Errorf("IsDuplicate(%q, %q) = %v, want %v", tt.title, tt.filename, got, tt.want)
			}
		})
	}
}

func TestOracleDisabled(t *testing.T) {
	if (Oracle{}).IsDuplicate("Batman", "Batman #007 (2019).cbz") {
		t.Error("empty root must never report duplicates")
	}
	o := Oracle{Root: filepath.Join(t.TempDir(), "missing")}
	if o.IsDuplicate("Batman", "Batman #007 (2019).cbz") {
		t.Error("unreadable root must never report duplicates")
	}
}
