package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
)

// Run draws the document and processes input until the user quits.
func (app *Application) Run() {
	app.renderer.Render(app.view())
	renderPending := false

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.view())
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}
	}
}

// handleEvent feeds ev through the input handler and applies the resulting
// actions. It reports whether the screen needs redrawing.
func (app *Application) handleEvent(ev tcell.Event) bool {
	redraw := false
	if _, ok := ev.(*tcell.EventInterrupt); ok {
		redraw = true
	}
	if !app.input.ProcessEvent(ev) {
		app.shouldQuit = true
	}
	if app.processActions() {
		redraw = true
	}
	return redraw
}

// processActions drains queued actions without blocking.
func (app *Application) processActions() bool {
	redraw := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				redraw = true
			}
		default:
			return redraw
		}
	}
}
