package linkify

import "testing"

func spanOver(source, match, url string) Span {
	start := indexOf(source, match)
	return Span{Start: start, End: start + len(match), Text: match, URL: url}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestSplitSingleMatchWithSurroundingText(t *testing.T) {
	source := "Visit https://example.com for more info"
	spans := []Span{spanOver(source, "https://example.com", "https://example.com")}

	got := Split(source, spans, nil)

	want := []Segment{
		{Kind: KindLiteral, Text: "Visit ", Matched: "Visit "},
		{Kind: KindLink, Text: "https://example.com", Matched: "https://example.com", URL: "https://example.com"},
		{Kind: KindLiteral, Text: " for more info", Matched: " for more info"},
	}
	assertSegments(t, got, want)
}

func TestSplitFixedLabelChangesOnlyDisplayText(t *testing.T) {
	source := "Visit https://example.com for more info"
	spans := []Span{spanOver(source, "https://example.com", "https://example.com")}

	got := Split(source, spans, FixedLabel("Click here"))

	want := []Segment{
		{Kind: KindLiteral, Text: "Visit ", Matched: "Visit "},
		{Kind: KindLink, Text: "Click here", Matched: "https://example.com", URL: "https://example.com"},
		{Kind: KindLiteral, Text: " for more info", Matched: " for more info"},
	}
	assertSegments(t, got, want)
}

func TestSplitNoSpansYieldsSingleLiteral(t *testing.T) {
	source := "Test without link"
	got := Split(source, nil, FixedLabel("unused"))
	if len(got) != 1 {
		t.Fatalf("expected one segment, got %d: %+v", len(got), got)
	}
	if got[0].Kind != KindLiteral || got[0].Text != source || got[0].Matched != source {
		t.Fatalf("unexpected literal segment: %+v", got[0])
	}
}

func TestSplitEmptySource(t *testing.T) {
	if got := Split("", nil, nil); got != nil {
		t.Fatalf("expected nil segments for empty source, got %+v", got)
	}
}

func TestSplitTwoMatchesAlternate(t *testing.T) {
	source := "a http://x.com b http://y.com c"
	spans := []Span{
		spanOver(source, "http://x.com", "http://x.com"),
		spanOver(source, "http://y.com", "http://y.com"),
	}

	got := Split(source, spans, nil)

	if len(got) != 5 {
		t.Fatalf("expected five segments, got %d: %+v", len(got), got)
	}
	wantKinds := []SegmentKind{KindLiteral, KindLink, KindLiteral, KindLink, KindLiteral}
	for i, kind := range wantKinds {
		if got[i].Kind != kind {
			t.Fatalf("segment %d kind = %v, want %v", i, got[i].Kind, kind)
		}
	}
	if got[1].URL != "http://x.com" || got[3].URL != "http://y.com" {
		t.Fatalf("link order not preserved: %+v", got)
	}
	if JoinMatched(got) != source {
		t.Fatalf("round trip mismatch: %q", JoinMatched(got))
	}
}

func TestSplitAdjacentMatchesAtBounds(t *testing.T) {
	source := "http://a.devhttp://b.dev"
	spans := []Span{
		{Start: 0, End: 12, Text: "http://a.dev", URL: "http://a.dev"},
		{Start: 12, End: 24, Text: "http://b.dev", URL: "http://b.dev"},
	}

	got := Split(source, spans, nil)

	if len(got) != 2 {
		t.Fatalf("expected two segments, got %d: %+v", len(got), got)
	}
	if got[0].Kind != KindLink || got[1].Kind != KindLink {
		t.Fatalf("expected back-to-back links: %+v", got)
	}
	if JoinMatched(got) != source {
		t.Fatalf("round trip mismatch: %q", JoinMatched(got))
	}
}

func TestSplitLabelFuncResultUsedVerbatim(t *testing.T) {
	source := "see https://example.com"
	spans := []Span{spanOver(source, "https://example.com", "https://example.com")}

	got := Split(source, spans, LabelFunc(func(string) string { return "" }))

	if got[1].Text != "" {
		t.Fatalf("empty label result must be kept, got %q", got[1].Text)
	}
	if got[1].Matched != "https://example.com" {
		t.Fatalf("label policy must not alter matched text, got %q", got[1].Matched)
	}
	if JoinMatched(got) != source {
		t.Fatalf("round trip mismatch: %q", JoinMatched(got))
	}
}

func TestSplitRoundTripAndCoverage(t *testing.T) {
	cases := []struct {
		name   string
		source string
		spans  []Span
	}{
		{"no spans", "plain text only", nil},
		{"leading match", "http://x.dev tail", []Span{{Start: 0, End: 12, Text: "http://x.dev", URL: "http://x.dev"}}},
		{"trailing match", "head http://x.dev", []Span{{Start: 5, End: 17, Text: "http://x.dev", URL: "http://x.dev"}}},
		{"full-string match", "http://x.dev", []Span{{Start: 0, End: 12, Text: "http://x.dev", URL: "http://x.dev"}}},
		{"unicode literals", "zażółć http://x.dev gęślą", []Span{{Start: 13, End: 25, Text: "http://x.dev", URL: "http://x.dev"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !ValidSpans(tc.source, tc.spans) {
				t.Fatalf("test spans violate the detector contract")
			}
			got := Split(tc.source, tc.spans, nil)
			if JoinMatched(got) != tc.source {
				t.Fatalf("round trip mismatch: %q != %q", JoinMatched(got), tc.source)
			}
			total := 0
			links := 0
			for _, seg := range got {
				total += len(seg.Matched)
				if seg.Kind == KindLink {
					links++
				}
			}
			if total != len(tc.source) {
				t.Fatalf("coverage mismatch: %d != %d", total, len(tc.source))
			}
			if links != len(tc.spans) {
				t.Fatalf("expected %d links, got %d", len(tc.spans), links)
			}
		})
	}
}

func TestValidSpans(t *testing.T) {
	source := "a http://x.com b"
	ok := []Span{{Start: 2, End: 14, Text: "http://x.com"}}
	if !ValidSpans(source, ok) {
		t.Fatalf("expected valid spans to pass")
	}

	bad := [][]Span{
		{{Start: 5, End: 3}},                 // inverted
		{{Start: 3, End: 3}},                 // zero length
		{{Start: 0, End: 99}},                // out of bounds
		{{Start: 4, End: 8}, {Start: 6, End: 10}}, // overlapping
		{{Start: 8, End: 10}, {Start: 2, End: 4}}, // out of order
	}
	for i, spans := range bad {
		if ValidSpans(source, spans) {
			t.Fatalf("case %d: expected invalid spans to fail: %+v", i, spans)
		}
	}
}

func assertSegments(t *testing.T, got, want []Segment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("segment count = %d, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
