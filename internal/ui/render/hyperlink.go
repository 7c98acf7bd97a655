package render

import (
	"strings"

	"github.com/kk-code-lab/linkview/internal/linkify"
)

// HyperlinkText renders segments to a plain string with OSC 8 hyperlink
// escapes around link segments, for non-interactive output in terminals
// that support clickable hyperlinks.
func HyperlinkText(segments []linkify.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Kind != linkify.KindLink {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString("\x1b]8;;")
		b.WriteString(seg.URL)
		b.WriteString("\x1b\\")
		b.WriteString(seg.Text)
		b.WriteString("\x1b]8;;\x1b\\")
	}
	return b.String()
}
