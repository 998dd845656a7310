package pipeline

// Stats tracks aggregate counters and the report lists across a batch run.
// The string slices preserve processing order for the trailing report.
type Stats struct {
	Renamed    int
	Skipped    int
	Errored    int
	Duplicates int

	// Unparseable lists original filenames no matcher accepted, plus files
	// whose planned move failed.
	Unparseable []string

	// DuplicateFiles lists "original -> canonical" pairs the archive oracle
	// flagged as already present.
	DuplicateFiles []string
}
