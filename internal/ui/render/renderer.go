package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/linkview/internal/linkify"
)

// Renderer draws segmented document lines onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, theme: GetColorTheme()}
}

// DrawLine draws one segmented line at row y, clipping at maxX. selected
// reports whether a given segment index is the selected link on this line;
// it may be nil. Returns the x position after the last drawn cell.
func (r *Renderer) DrawLine(y, maxX int, segments []linkify.Segment, selected func(seg int) bool) int {
	x := 0
	for i, seg := range segments {
		if x >= maxX {
			break
		}
		style := r.theme.textStyle()
		if seg.Kind == linkify.KindLink {
			style = r.theme.linkStyle(selected != nil && selected(i))
		}
		x = r.drawClipped(x, y, maxX, seg.Text, style)
	}
	return x
}

// DrawStatus draws a full-width status line at row y.
func (r *Renderer) DrawStatus(y, width int, text string) {
	style := r.theme.statusStyle()
	x := r.drawClipped(0, y, width, text, style)
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// ClearRow blanks row y up to width with the document background.
func (r *Renderer) ClearRow(y, width int) {
	style := r.theme.textStyle()
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *Renderer) drawClipped(startX, y, maxX int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		if x >= maxX {
			break
		}
		mainc := runes[i]
		i++

		// Attach trailing combining runes to their base cell.
		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := runewidth.RuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x+w > maxX {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		for pad := 1; pad < w; pad++ {
			r.screen.SetContent(x+pad, y, ' ', nil, style)
		}
		x += w
	}
	return x
}
