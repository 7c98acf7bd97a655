package linkify

// SegmentKind distinguishes passthrough text from link-eligible runs.
type SegmentKind int

const (
	KindLiteral SegmentKind = iota
	KindLink
)

// Segment is one run of the segmented source. For literals Text and Matched
// are the same substring and URL is empty. For links Text is the display
// label (the matched text unless a label policy overrides it), Matched is
// the substring the detector matched, and URL is its target.
type Segment struct {
	Kind    SegmentKind
	Text    string
	Matched string
	URL     string
}

// Split divides source into an ordered, gap-free sequence of literal and
// link segments. spans must satisfy the detector contract (see ValidSpans);
// the loop assumes it and performs no validation. A nil policy displays the
// matched text verbatim.
//
// Concatenating Matched over the result reproduces source exactly. Empty
// spans yield a single literal covering all of source, or nil for an empty
// source.
func Split(source string, spans []Span, policy LabelPolicy) []Segment {
	if len(spans) == 0 {
		if source == "" {
			return nil
		}
		return []Segment{{Kind: KindLiteral, Text: source, Matched: source}}
	}

	out := make([]Segment, 0, 2*len(spans)+1)
	cursor := 0
	for _, sp := range spans {
		if sp.Start > cursor {
			lit := source[cursor:sp.Start]
			out = append(out, Segment{Kind: KindLiteral, Text: lit, Matched: lit})
		}
		display := sp.Text
		if policy != nil {
			display = policy.Label(sp.URL)
		}
		out = append(out, Segment{Kind: KindLink, Text: display, Matched: sp.Text, URL: sp.URL})
		cursor = sp.End
	}
	if cursor < len(source) {
		lit := source[cursor:]
		out = append(out, Segment{Kind: KindLiteral, Text: lit, Matched: lit})
	}
	return out
}

// JoinMatched reassembles the original source from a segment sequence.
func JoinMatched(segments []Segment) string {
	if len(segments) == 0 {
		return ""
	}
	total := 0
	for _, seg := range segments {
		total += len(seg.Matched)
	}
	buf := make([]byte, 0, total)
	for _, seg := range segments {
		buf = append(buf, seg.Matched...)
	}
	return string(buf)
}
