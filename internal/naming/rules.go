package naming

import (
	"regexp"
	"strconv"
)

// MatchRule pairs a scheme name with its matcher. Rules are evaluated in
// order by [ParseStem]; first match wins.
type MatchRule struct {
	Name  string
	Match func(stem string) (ParsedComic, bool)
}

// Rules is the ordered matcher table. The plain issue matcher is the most
// permissive numeric pattern and must run only after volume and annual.
var Rules = []MatchRule{
	{"volume", matchVolume},
	{"annual", matchAnnual},
	{"issue", matchIssue},
	{"standalone-year", matchStandaloneYear},
	{"standalone-bare", matchStandaloneBare},
}

// atoiCapture parses a digit-only regex capture. A capture that fails to
// parse is treated as a non-match rather than an error.
func atoiCapture(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// All patterns are anchored at the stem start and may leave trailing rip
// info (scan-group tags, "(digital)", ...) unconsumed. A stray duplicated
// closing paren after a captured year, e.g. "(2019))", is tolerated via
// the trailing `\)?` in the year groups.

// Volume: "Title v2 (2012)", "Title v02 (2012) extra rip info".
// The year is mandatory, unlike issue matching.
var reVolume = regexp.MustCompile(
	`(?i)^(?P<title>.+?)\s+v(?P<vol>\d{1,4})\s*\((?P<year>\d{4})\)\)?`)

func matchVolume(stem string) (ParsedComic, bool) {
	m := reVolume.FindStringSubmatch(stem)
	if m == nil {
		return ParsedComic{}, false
	}
	vol, ok := atoiCapture(m[2])
	if !ok {
		return ParsedComic{}, false
	}
	return ParsedComic{
		Kind:   KindVolume,
		Title:  collapseSpaces(m[1]),
		Volume: vol,
		Year:   m[3],
	}, true
}

// Annual: "Title 2025 Annual 001 (2025)", "Title 2025 Annual #001".
// The title-year and the trailing parenthetical year are independent
// fields: either may be present, absent, or differ.
var reAnnual = regexp.MustCompile(
	`(?i)^(?P<title>.+?)\s+(?P<titleyear>\d{4})\s+Annual\s+#?(?P<issue>\d{1,4})\s*(?:\((?P<year>\d{4})\)\)?)?`)

func matchAnnual(stem string) (ParsedComic, bool) {
	m := reAnnual.FindStringSubmatch(stem)
	if m == nil {
		return ParsedComic{}, false
	}
	issue, ok := atoiCapture(m[3])
	if !ok {
		return ParsedComic{}, false
	}
	base := collapseSpaces(m[1])
	return ParsedComic{
		Kind:      KindAnnual,
		Title:     base,
		FullTitle: collapseSpaces(m[1] + " " + m[2] + " Annual"),
		Issue:     issue,
		Year:      m[4],
	}, true
}

// Issue: "Title 001 (2019)", "Title #1", "Title 02 (of 04) (2025) rip info".
// The "(of NN)" qualifier is discarded; the year is optional.
var reIssue = regexp.MustCompile(
	`(?i)^(?P<title>.+?)\s+#?(?P<issue>\d{1,4})\s*(?:\(of\s+\d+\s*\))?\s*(?:\((?P<year>\d{4})\)\)?)?`)

func matchIssue(stem string) (ParsedComic, bool) {
	m := reIssue.FindStringSubmatch(stem)
	if m == nil {
		return ParsedComic{}, false
	}
	issue, ok := atoiCapture(m[2])
	if !ok {
		return ParsedComic{}, false
	}
	return ParsedComic{
		Kind:  KindIssue,
		Title: collapseSpaces(m[1]),
		Issue: issue,
		Year:  m[3],
	}, true
}

// Standalone with year: "Title (2025)", "Title - Subtitle (2022) (digital)".
var reStandaloneYear = regexp.MustCompile(
	`^(?P<title>.+?)\s+\((?P<year>\d{4})\)`)

// Trailing tokens that indicate the issue/volume matchers should have
// applied instead; the standalone matcher defers by returning no match.
// Note the bare-digit check can misfire on legitimately numeric titles;
// that behavior is long-standing and kept as-is.
var (
	reTrailingIssueToken  = regexp.MustCompile(`#?\d{1,4}\s*$`)
	reTrailingVolumeToken = regexp.MustCompile(`(?i)\s+v\d{1,4}\s*$`)
)

func matchStandaloneYear(stem string) (ParsedComic, bool) {
	m := reStandaloneYear.FindStringSubmatch(stem)
	if m == nil {
		return ParsedComic{}, false
	}
	title := m[1]
	if reTrailingIssueToken.MatchString(title) || reTrailingVolumeToken.MatchString(title) {
		return ParsedComic{}, false
	}
	return ParsedComic{
		Kind:  KindStandalone,
		Title: collapseSpaces(title),
		Year:  m[2],
	}, true
}

// Standalone without year: "Title", "Title (20th Anniversary Edition)",
// "Title - Subtitle". The fallback rule: it rejects any stem carrying an
// issue, volume, or parenthetical-year signature anywhere, since those
// belong to earlier matchers.
var (
	reHashIssueSignature = regexp.MustCompile(`#\d{1,4}`)
	reBareIssueSignature = regexp.MustCompile(`(?i)\s+\d{1,4}\s*(?:\(of\s+\d+\s*\)|\(\d{4}\))`)
	reVolumeSignature    = regexp.MustCompile(`(?i)\s+v\d{1,4}`)
	reParenYear          = regexp.MustCompile(`\(\d{4}\)`)

	// Title up to an optional trailing parenthetical (edition qualifier etc.).
	reBareTitle = regexp.MustCompile(`^(?P<title>[^(]+?)(?:\s+\([^)]+\))?\s*$`)
)

func matchStandaloneBare(stem string) (ParsedComic, bool) {
	if reHashIssueSignature.MatchString(stem) ||
		reBareIssueSignature.MatchString(stem) ||
		reVolumeSignature.MatchString(stem) ||
		reParenYear.MatchString(stem) {
		return ParsedComic{}, false
	}
	m := reBareTitle.FindStringSubmatch(stem)
	if m == nil {
		return ParsedComic{}, false
	}
	title := collapseSpaces(m[1])
	if title == "" {
		// Empty or whitespace-only stem: nothing to name.
		return ParsedComic{}, false
	}
	return ParsedComic{
		Kind:  KindStandaloneBare,
		Title: title,
	}, true
}
