package linkify

// Span identifies a detected match as a half-open byte range [Start, End)
// into the scanned source string.
type Span struct {
	Start int
	End   int
	Text  string // the matched substring, exactly as it appears in the source
	URL   string // the normalized target the match resolves to
}

// ValidSpans reports whether spans satisfy the detector contract for source:
// each span in bounds with Start < End, ascending and non-overlapping.
// Segment does not call this; it exists for tests and debug assertions.
func ValidSpans(source string, spans []Span) bool {
	cursor := 0
	for _, sp := range spans {
		if sp.Start < cursor || sp.Start >= sp.End || sp.End > len(source) {
			return false
		}
		cursor = sp.End
	}
	return true
}
