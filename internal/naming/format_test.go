package naming

import "testing"

func TestCapitalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"batman", "Batman"},
		{"batman - dark victory", "Batman - Dark Victory"},
		{"ABSOLUTE BATMAN", "Absolute Batman"},
		{"XIII", "Xiii"},
		{"mcFarlane's spawn", "Mcfarlane's Spawn"},
		{"  spaced   out  ", "Spaced Out"},
		{"2000ad", "2000ad"},
		{"", ""},
	}
	for _, tt := range cases {
		if got := CapitalizeTitle(tt.in); got != tt.want {
			t.Errorf("CapitalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatIssue(t *testing.T) {
	cases := []struct {
		issue int
		want  string
	}{
		{1, "#001"},
		{42, "#042"},
		{999, "#999"},
		{1000, "#1000"},
		{1050, "#1050"},
	}
	for _, tt := range cases {
		if got := FormatIssue(tt.issue); got != tt.want {
			t.Errorf("FormatIssue(%d) = %q, want %q", tt.issue, got, tt.want)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a  b", "a b"},
		{"  a b  ", "a b"},
		{"a\tb", "a b"},
		{"", ""},
	}
	for _, tt := range cases {
		if got := collapseSpaces(tt.in); got != tt.want {
			t.Errorf("collapseSpaces(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
