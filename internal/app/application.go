package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/linkview/internal/opener"
	renderui "github.com/kk-code-lab/linkview/internal/ui/render"
)

// Application is the interactive link viewer.
type Application struct {
	screen     tcell.Screen
	renderer   *renderui.Renderer
	doc        *Document
	top        int // first visible line
	selected   int // index into doc.Links, -1 for none
	status     string
	width      int
	height     int
	shouldQuit bool
	openLink   func(string) error
}

// NewApplication sets up the terminal screen for doc.
func NewApplication(doc *Document) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return newApplication(screen, doc), nil
}

// newApplication wires an application onto an existing screen; tests pass a
// simulation screen here.
func newApplication(screen tcell.Screen, doc *Document) *Application {
	app := &Application{
		screen:   screen,
		renderer: renderui.NewRenderer(screen),
		doc:      doc,
		selected: -1,
		openLink: opener.Open,
	}
	app.width, app.height = screen.Size()
	if len(doc.Links) > 0 {
		app.selected = 0
	}
	return app
}

// Close releases the terminal.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// Run drives the event loop until the user quits.
func (app *Application) Run() {
	app.draw()
	for !app.shouldQuit {
		ev := app.screen.PollEvent()
		if ev == nil {
			return
		}
		app.handleEvent(ev)
		app.draw()
	}
}
