package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// DisplayWidth reports the printable terminal width of text accounting for
// wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		width += w
	}
	return width
}

// ExpandTabs replaces tab characters with spaces respecting terminal column
// width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
			column += spaces
			continue
		}
		b.WriteRune(ru)
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		column += w
	}
	return b.String()
}

// TruncateMiddle shortens text to at most maxWidth display columns by
// replacing its middle with an ellipsis, keeping the head and tail visible.
// Long URLs keep both their host and their final path element readable this
// way.
func TruncateMiddle(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	const ellipsis = '…'
	if maxWidth == 1 {
		return string(ellipsis)
	}

	runes := []rune(text)
	headBudget := (maxWidth - 1) / 2
	tailBudget := maxWidth - 1 - headBudget

	head := 0
	headWidth := 0
	for head < len(runes) {
		w := runewidth.RuneWidth(runes[head])
		if w <= 0 {
			w = 1
		}
		if headWidth+w > headBudget {
			break
		}
		headWidth += w
		head++
	}

	tail := len(runes)
	tailWidth := 0
	for tail > head {
		w := runewidth.RuneWidth(runes[tail-1])
		if w <= 0 {
			w = 1
		}
		if tailWidth+w > tailBudget {
			break
		}
		tailWidth += w
		tail--
	}

	return string(runes[:head]) + string(ellipsis) + string(runes[tail:])
}
