package textutil

import "strings"

// invisibleRuneLabels maps bidi and zero-width formatting runes to visible
// placeholders. Left in link text, these runes can reorder what the user
// sees and make a displayed URL differ from the dispatched one.
var invisibleRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x00AD: "⟪SHY⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// Sanitize returns text with terminal control characters and invisible
// formatting runes replaced so document content cannot inject escape
// sequences or reorder displayed link text. Tabs are preserved for the tab
// expander; other controls become '?', line breaks become spaces, and
// invisible formatting runes become visible labels. Clean input is returned
// unchanged without allocating.
func Sanitize(text string) string {
	clean := true
	for _, r := range text {
		if unsafeRune(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t':
			b.WriteByte('\t')
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			if label, ok := invisibleRuneLabels[r]; ok {
				b.WriteString(label)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func unsafeRune(r rune) bool {
	if r == '\t' {
		return false
	}
	if r < 0x20 || r == 0x7f {
		return true
	}
	_, invisible := invisibleRuneLabels[r]
	return invisible
}

// HasInvisibleRunes reports whether text contains bidi or zero-width
// formatting runes. The app uses it to warn when a link's visible text may
// not match its target.
func HasInvisibleRunes(text string) bool {
	for _, r := range text {
		if _, ok := invisibleRuneLabels[r]; ok {
			return true
		}
	}
	return false
}
