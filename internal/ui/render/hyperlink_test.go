package render

import (
	"strings"
	"testing"

	"github.com/kk-code-lab/linkview/internal/linkify"
)

func TestHyperlinkTextWrapsLinks(t *testing.T) {
	segments := []linkify.Segment{
		{Kind: linkify.KindLiteral, Text: "Visit ", Matched: "Visit "},
		{Kind: linkify.KindLink, Text: "example", Matched: "https://example.com", URL: "https://example.com"},
		{Kind: linkify.KindLiteral, Text: " now", Matched: " now"},
	}

	got := HyperlinkText(segments)

	want := "Visit \x1b]8;;https://example.com\x1b\\example\x1b]8;;\x1b\\ now"
	if got != want {
		t.Fatalf("HyperlinkText = %q, want %q", got, want)
	}
}

func TestHyperlinkTextPlainPassthrough(t *testing.T) {
	segments := []linkify.Segment{{Kind: linkify.KindLiteral, Text: "no links", Matched: "no links"}}
	got := HyperlinkText(segments)
	if got != "no links" || strings.Contains(got, "\x1b") {
		t.Fatalf("plain text must pass through unchanged: %q", got)
	}
}

func TestHyperlinkTextEmpty(t *testing.T) {
	if got := HyperlinkText(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
