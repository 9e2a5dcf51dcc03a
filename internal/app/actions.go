package app

import (
	inputui "github.com/kk-code-lab/mdtree/internal/ui/input"
)

// handleAction applies action and reports whether the view changed.
func (app *Application) handleAction(action inputui.Action) bool {
	switch a := action.(type) {
	case inputui.ScrollAction:
		return app.scrollBy(a.Lines)
	case inputui.PageAction:
		step := app.pageSize()
		if a.Half {
			step = app.halfPage()
		}
		return app.scrollBy(a.Pages * step)
	case inputui.JumpTopAction:
		return app.scrollTo(0)
	case inputui.JumpBottomAction:
		return app.scrollTo(app.maxOffset())
	case inputui.HeadingAction:
		if a.Direction < 0 {
			return app.prevHeading()
		}
		return app.nextHeading()
	case inputui.ResizeAction:
		app.screen.Sync()
		app.scrollTo(app.offset)
		return true
	case inputui.RedrawAction:
		app.screen.Sync()
		return true
	case inputui.SuspendAction:
		app.suspendToShell()
		return false
	case inputui.QuitAction:
		app.shouldQuit = true
		return false
	default:
		return false
	}
}

func (app *Application) maxOffset() int {
	limit := len(app.lines) - app.renderer.ContentRows()
	if limit < 0 {
		return 0
	}
	return limit
}

func (app *Application) scrollTo(offset int) bool {
	if offset > app.maxOffset() {
		offset = app.maxOffset()
	}
	if offset < 0 {
		offset = 0
	}
	if offset == app.offset {
		return false
	}
	app.offset = offset
	return true
}

func (app *Application) scrollBy(delta int) bool {
	return app.scrollTo(app.offset + delta)
}

func (app *Application) pageSize() int {
	rows := app.renderer.ContentRows()
	if rows > 1 {
		return rows - 1
	}
	return 1
}

func (app *Application) halfPage() int {
	if half := app.renderer.ContentRows() / 2; half > 0 {
		return half
	}
	return 1
}

// nextHeading scrolls so the first heading below the top line is at the top.
func (app *Application) nextHeading() bool {
	for _, row := range app.headingRows {
		if row > app.offset {
			return app.scrollTo(row)
		}
	}
	return false
}

func (app *Application) prevHeading() bool {
	for i := len(app.headingRows) - 1; i >= 0; i-- {
		if row := app.headingRows[i]; row < app.offset {
			return app.scrollTo(row)
		}
	}
	return false
}
