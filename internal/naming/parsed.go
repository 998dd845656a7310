package naming

// Kind identifies which canonical comic-naming scheme a stem matched.
type Kind string

const (
	KindVolume         Kind = "volume"          // Title v2 (2012)
	KindAnnual         Kind = "annual"          // Title 2025 Annual 001 (2025)
	KindIssue          Kind = "issue"           // Title #007 (2019)
	KindStandalone     Kind = "standalone"      // Title (2022)
	KindStandaloneBare Kind = "standalone-bare" // Title, Title (Special Edition)
)

// ParsedComic holds the structured result of stem classification. Which
// fields are meaningful depends on Kind.
type ParsedComic struct {
	Kind Kind

	// Title is the base title used for folder organization. For annuals it
	// never includes the embedded title-year or the word "Annual".
	Title string

	// FullTitle is set for annuals only: the base title plus the title-year
	// and "Annual", used for the rendered filename.
	FullTitle string

	Issue  int    // Issue number (issue and annual kinds).
	Volume int    // Volume number (volume kind).
	Year   string // 4-digit year; mandatory for volume and standalone, else optional.
}
