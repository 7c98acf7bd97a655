// Package urldetect provides the default link detector: a pragmatic regexp
// scan for http(s) URLs, www-prefixed hosts and mailto addresses. It is not
// a full URL grammar; callers needing one inject their own detector.
package urldetect

import (
	"regexp"
	"strings"

	"github.com/kk-code-lab/linkview/internal/linkify"
)

var (
	urlRe    = regexp.MustCompile(`(?:https?://|www\.)[^\s<>"']+`)
	mailtoRe = regexp.MustCompile(`mailto:[^\s<>"']+@[^\s<>"']+`)
)

// trailing punctuation that reads as prose, not as part of the URL
const trailingPunct = ".,!?;:'\""

// Detector implements linkify.Detector. The zero value is ready to use;
// it holds no state and is safe for concurrent use.
type Detector struct{}

// New returns the default detector.
func New() *Detector { return &Detector{} }

// PreTest reports whether source could contain a match. It checks for the
// fixed prefixes every scan pattern requires, so it never returns false for
// a source Scan would match.
func (*Detector) PreTest(source string) bool {
	return strings.Contains(source, "://") ||
		strings.Contains(source, "www.") ||
		strings.Contains(source, "mailto:")
}

// Scan returns all matches ordered by start offset, non-overlapping and
// within bounds. Trailing prose punctuation and unbalanced closing
// parens/brackets are trimmed off each match.
func (*Detector) Scan(source string) []linkify.Span {
	var spans []linkify.Span
	for _, loc := range urlRe.FindAllStringIndex(source, -1) {
		start, end := loc[0], loc[1]
		end = trimTrailing(source, start, end)
		if end <= start {
			continue
		}
		matched := source[start:end]
		spans = append(spans, linkify.Span{
			Start: start,
			End:   end,
			Text:  matched,
			URL:   normalizeTarget(matched),
		})
	}
	spans = appendMailto(source, spans)
	return spans
}

func appendMailto(source string, spans []linkify.Span) []linkify.Span {
	locs := mailtoRe.FindAllStringIndex(source, -1)
	if len(locs) == 0 {
		return spans
	}
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		end = trimTrailing(source, start, end)
		if end <= start || overlaps(spans, start, end) {
			continue
		}
		matched := source[start:end]
		spans = append(spans, linkify.Span{Start: start, End: end, Text: matched, URL: matched})
	}
	sortSpans(spans)
	return spans
}

func overlaps(spans []linkify.Span, start, end int) bool {
	for _, sp := range spans {
		if start < sp.End && end > sp.Start {
			return true
		}
	}
	return false
}

func sortSpans(spans []linkify.Span) {
	// insertion sort; match counts per string are tiny
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].Start < spans[j-1].Start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
}

// trimTrailing shortens [start, end) so the match does not end in prose
// punctuation or a closing paren/bracket without a matching open inside the
// match.
func trimTrailing(source string, start, end int) int {
	for end > start {
		last := source[end-1]
		if strings.IndexByte(trailingPunct, last) >= 0 {
			end--
			continue
		}
		if last == ')' && !balanced(source[start:end], '(', ')') {
			end--
			continue
		}
		if last == ']' && !balanced(source[start:end], '[', ']') {
			end--
			continue
		}
		break
	}
	return end
}

func balanced(s string, open, closing byte) bool {
	opens, closes := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			opens++
		case closing:
			closes++
		}
	}
	return closes <= opens
}

// normalizeTarget produces the span target: matched text as-is for URLs
// that already carry a scheme, https default for bare www hosts. Display
// text is never touched here; only the target is normalized.
func normalizeTarget(matched string) string {
	if strings.HasPrefix(matched, "http://") || strings.HasPrefix(matched, "https://") {
		return matched
	}
	return "https://" + matched
}
