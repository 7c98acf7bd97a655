package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/linkview/internal/textutil"
)

func (app *Application) draw() {
	app.width, app.height = app.screen.Size()
	contentRows := app.height - 1 // bottom row is the status line
	if contentRows < 0 {
		contentRows = 0
	}

	for row := 0; row < contentRows; row++ {
		line := app.top + row
		app.renderer.ClearRow(row, app.width)
		if line >= len(app.doc.Lines) {
			continue
		}
		selectedSeg := app.selectedSegmentOn(line)
		app.renderer.DrawLine(row, app.width, app.doc.Lines[line], func(seg int) bool {
			return seg == selectedSeg
		})
	}

	if app.height > 0 {
		app.renderer.DrawStatus(app.height-1, app.width, app.statusText())
	}
	app.screen.Show()
}

func (app *Application) selectedSegmentOn(line int) int {
	if app.selected < 0 || app.selected >= len(app.doc.Links) {
		return -1
	}
	ref := app.doc.Links[app.selected]
	if ref.Line != line {
		return -1
	}
	return ref.Seg
}

func (app *Application) statusText() string {
	if app.status != "" {
		return app.status
	}
	if len(app.doc.Links) == 0 {
		return "no links · q quit"
	}
	ref := app.doc.Links[app.selected]
	target := textutil.TruncateMiddle(ref.URL, app.width/2)
	return fmt.Sprintf("[%d/%d] %s · Enter open · Tab next · q quit",
		app.selected+1, len(app.doc.Links), target)
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		app.handleKey(ev)
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventResize:
		app.screen.Sync()
	}
}

func (app *Application) handleKey(ev *tcell.EventKey) {
	app.status = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.shouldQuit = true
	case tcell.KeyTab:
		app.selectLink(app.selected + 1)
	case tcell.KeyBacktab:
		app.selectLink(app.selected - 1)
	case tcell.KeyEnter:
		app.openSelected()
	case tcell.KeyUp:
		app.scrollTo(app.top - 1)
	case tcell.KeyDown:
		app.scrollTo(app.top + 1)
	case tcell.KeyPgUp:
		app.scrollTo(app.top - app.contentRows())
	case tcell.KeyPgDn:
		app.scrollTo(app.top + app.contentRows())
	case tcell.KeyHome:
		app.scrollTo(0)
	case tcell.KeyEnd:
		app.scrollTo(len(app.doc.Lines))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			app.shouldQuit = true
		case 'n':
			app.selectLink(app.selected + 1)
		case 'p':
			app.selectLink(app.selected - 1)
		case 'j':
			app.scrollTo(app.top + 1)
		case 'k':
			app.scrollTo(app.top - 1)
		case 'g':
			app.scrollTo(0)
		case 'G':
			app.scrollTo(len(app.doc.Lines))
		}
	}
}

// handleMouse maps primary clicks on a link to open, and the wheel to
// scrolling.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		app.scrollTo(app.top - 3)
		return
	case ev.Buttons()&tcell.WheelDown != 0:
		app.scrollTo(app.top + 3)
		return
	}
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}

	x, y := ev.Position()
	if y >= app.contentRows() {
		return
	}
	line := app.top + y
	if idx := app.doc.LinkAt(line, x); idx >= 0 {
		app.selected = idx
		app.openSelected()
	}
}

func (app *Application) contentRows() int {
	rows := app.height - 1
	if rows < 0 {
		return 0
	}
	return rows
}

func (app *Application) selectLink(idx int) {
	count := len(app.doc.Links)
	if count == 0 {
		return
	}
	// wrap around both directions
	idx = ((idx % count) + count) % count
	app.selected = idx

	// keep the selection visible
	line := app.doc.Links[idx].Line
	if line < app.top {
		app.top = line
	} else if rows := app.contentRows(); rows > 0 && line >= app.top+rows {
		app.top = line - rows + 1
	}
}

func (app *Application) scrollTo(top int) {
	maxTop := len(app.doc.Lines) - app.contentRows()
	if maxTop < 0 {
		maxTop = 0
	}
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	app.top = top
}

func (app *Application) openSelected() {
	if app.selected < 0 || app.selected >= len(app.doc.Links) {
		return
	}
	ref := app.doc.Links[app.selected]
	if err := app.openLink(ref.URL); err != nil {
		app.status = fmt.Sprintf("cannot open %s: %v", ref.URL, err)
		return
	}
	app.status = fmt.Sprintf("opened %s", textutil.TruncateMiddle(ref.URL, app.width/2))
}
