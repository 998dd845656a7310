package naming

// ParseStem classifies a filename stem (filename without its archive
// extension) against the ordered [Rules] cascade. It returns the first
// successful match, or ok=false when no scheme applies.
func ParseStem(stem string) (ParsedComic, bool) {
	for _, rule := range Rules {
		if p, ok := rule.Match(stem); ok {
			return p, true
		}
	}
	return ParsedComic{}, false
}
