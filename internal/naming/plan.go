package naming

import "fmt"

// Plan is the unified output of the classification cascade: the per-title
// folder a file belongs in and the canonical filename stem, independent of
// which matcher produced it.
type Plan struct {
	FolderTitle   string
	CanonicalStem string
}

// PlanStem classifies a stem and renders its canonical plan. ok=false means
// the stem is unparseable and the caller should route the file to the error
// path.
func PlanStem(stem string) (Plan, bool) {
	p, ok := ParseStem(stem)
	if !ok {
		return Plan{}, false
	}

	switch p.Kind {
	case KindVolume:
		// Volume numbers are not zero-padded.
		title := CapitalizeTitle(p.Title)
		return Plan{title, fmt.Sprintf("%s Vol. %d (%s)", title, p.Volume, p.Year)}, true

	case KindAnnual:
		// Folder uses the base title only; the rendered filename uses the
		// full title, which already embeds the title-year and "Annual".
		folder := CapitalizeTitle(p.Title)
		full := CapitalizeTitle(p.FullTitle)
		stem := full + " " + FormatIssue(p.Issue)
		if p.Year != "" {
			stem += " (" + p.Year + ")"
		}
		return Plan{folder, stem}, true

	case KindIssue:
		title := CapitalizeTitle(p.Title)
		stem := title + " " + FormatIssue(p.Issue)
		if p.Year != "" {
			stem += " (" + p.Year + ")"
		}
		return Plan{title, stem}, true

	case KindStandalone:
		title := CapitalizeTitle(p.Title)
		return Plan{title, title + " (" + p.Year + ")"}, true

	case KindStandaloneBare:
		title := CapitalizeTitle(p.Title)
		return Plan{title, title}, true
	}

	return Plan{}, false
}
