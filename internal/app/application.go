package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdtree/internal/format"
	inputui "github.com/kk-code-lab/mdtree/internal/ui/input"
	renderui "github.com/kk-code-lab/mdtree/internal/ui/render"
)

// Application is the interactive document viewer.
type Application struct {
	screen      tcell.Screen
	renderer    *renderui.Renderer
	input       *inputui.InputHandler
	actionCh    chan inputui.Action
	title       string
	lines       [][]format.StyledTextSegment
	headingRows []int
	offset      int
	shouldQuit  bool
}

// NewScreen creates and initializes a terminal screen with mouse reporting.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so wheel scrolling doesn't leak as key events.
	screen.EnableMouse()
	return screen, nil
}

// NewApplication prepares a viewer for lines on an initialized screen.
func NewApplication(screen tcell.Screen, title string, lines [][]format.StyledTextSegment, theme renderui.ColorTheme) *Application {
	actionCh := make(chan inputui.Action, 10)
	return &Application{
		screen:      screen,
		renderer:    renderui.NewRenderer(screen, theme),
		input:       inputui.NewInputHandler(actionCh),
		actionCh:    actionCh,
		title:       title,
		lines:       lines,
		headingRows: headingRows(lines),
	}
}

// Offset returns the index of the first visible line.
func (app *Application) Offset() int {
	return app.offset
}

// Close releases the terminal.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

func (app *Application) view() renderui.View {
	return renderui.View{
		Title:  app.title,
		Lines:  app.lines,
		Offset: app.offset,
	}
}

func headingRows(lines [][]format.StyledTextSegment) []int {
	var rows []int
	for idx, line := range lines {
		if len(line) > 0 && line[0].Style == format.TextStyleHeading {
			rows = append(rows, idx)
		}
	}
	return rows
}
