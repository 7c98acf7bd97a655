package app

import (
	"strings"

	"github.com/kk-code-lab/linkview/internal/linkify"
	"github.com/kk-code-lab/linkview/internal/textutil"
)

// LinkRef locates one link segment inside a Document, with its display
// column extent for mouse hit testing.
type LinkRef struct {
	Line    int
	Seg     int
	StartX  int // inclusive display column
	EndX    int // exclusive display column
	Display string
	URL     string
}

// Document is a segmented text ready for display: one segment sequence per
// line plus the flattened list of links in reading order.
type Document struct {
	Lines [][]linkify.Segment
	Links []LinkRef
}

// BuildDocument sanitizes, tab-expands and linkifies text line by line.
// Detection runs on the displayed text, so link column extents line up with
// what the renderer draws.
func BuildDocument(text string, adapter *linkify.Adapter, policy linkify.LabelPolicy) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rawLines := strings.Split(text, "\n")

	doc := &Document{Lines: make([][]linkify.Segment, len(rawLines))}
	for i, raw := range rawLines {
		line := textutil.ExpandTabs(textutil.Sanitize(raw), textutil.DefaultTabWidth)
		segments := adapter.Linkify(line, policy)
		doc.Lines[i] = segments

		x := 0
		for s, seg := range segments {
			w := textutil.DisplayWidth(seg.Text)
			if seg.Kind == linkify.KindLink {
				doc.Links = append(doc.Links, LinkRef{
					Line:    i,
					Seg:     s,
					StartX:  x,
					EndX:    x + w,
					Display: seg.Text,
					URL:     seg.URL,
				})
			}
			x += w
		}
	}
	return doc
}

// LinkAt returns the index in Links of the link covering display position
// (x, line), or -1.
func (d *Document) LinkAt(line, x int) int {
	for i, ref := range d.Links {
		if ref.Line == line && x >= ref.StartX && x < ref.EndX {
			return i
		}
	}
	return -1
}
