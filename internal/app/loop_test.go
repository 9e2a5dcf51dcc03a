package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdtree/internal/format"
	inputui "github.com/kk-code-lab/mdtree/internal/ui/input"
	renderui "github.com/kk-code-lab/mdtree/internal/ui/render"
)

func newTestApp(t *testing.T, lineCount int, headings ...int) (*Application, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(20, 5)

	isHeading := make(map[int]bool)
	for _, h := range headings {
		isHeading[h] = true
	}
	lines := make([][]format.StyledTextSegment, lineCount)
	for i := range lines {
		style := format.TextStylePlain
		if isHeading[i] {
			style = format.TextStyleHeading
		}
		lines[i] = []format.StyledTextSegment{{Text: fmt.Sprintf("line %d", i), Style: style}}
	}
	return NewApplication(scr, "test.md", lines, renderui.GetColorTheme("dark")), scr
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestScrollKeys(t *testing.T) {
	// 5 rows leave 4 for content, so 10 lines allow offsets 0..6.
	tests := []struct {
		name   string
		start  int
		event  tcell.Event
		expect int
		redraw bool
	}{
		{"down", 0, runeKey('j'), 1, true},
		{"arrow down", 0, key(tcell.KeyDown), 1, true},
		{"up at top", 0, runeKey('k'), 0, false},
		{"arrow up", 3, key(tcell.KeyUp), 2, true},
		{"page down", 0, runeKey(' '), 3, true},
		{"page down clamps", 5, key(tcell.KeyPgDn), 6, true},
		{"page up", 6, runeKey('b'), 3, true},
		{"half page", 0, runeKey('d'), 2, true},
		{"half page up", 1, runeKey('u'), 0, true},
		{"top", 4, runeKey('g'), 0, true},
		{"home", 4, key(tcell.KeyHome), 0, true},
		{"bottom", 0, runeKey('G'), 6, true},
		{"end at bottom", 6, key(tcell.KeyEnd), 6, false},
		{"unknown rune", 2, runeKey('z'), 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, 10)
			app.offset = tt.start
			redraw := app.handleEvent(tt.event)
			if app.Offset() != tt.expect {
				t.Fatalf("offset = %d, want %d", app.Offset(), tt.expect)
			}
			if redraw != tt.redraw {
				t.Fatalf("redraw = %v, want %v", redraw, tt.redraw)
			}
		})
	}
}

func TestShortDocumentDoesNotScroll(t *testing.T) {
	app, _ := newTestApp(t, 2)
	if app.handleEvent(runeKey('G')) {
		t.Fatalf("expected no redraw for a document that fits")
	}
	if app.Offset() != 0 {
		t.Fatalf("offset = %d, want 0", app.Offset())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []tcell.Event{runeKey('q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		app, _ := newTestApp(t, 3)
		app.handleEvent(ev)
		if !app.shouldQuit {
			t.Fatalf("expected %v to quit", ev)
		}
	}
}

func TestHeadingJumps(t *testing.T) {
	app, _ := newTestApp(t, 12, 0, 4, 7)

	if !app.handleEvent(runeKey('n')) || app.Offset() != 4 {
		t.Fatalf("next heading: offset = %d, want 4", app.Offset())
	}
	if !app.handleEvent(runeKey('n')) || app.Offset() != 7 {
		t.Fatalf("next heading: offset = %d, want 7", app.Offset())
	}
	if app.handleEvent(runeKey('n')) {
		t.Fatalf("expected no heading below 7")
	}
	if !app.handleEvent(runeKey('p')) || app.Offset() != 4 {
		t.Fatalf("previous heading: offset = %d, want 4", app.Offset())
	}
	if !app.handleEvent(runeKey('[')) || app.Offset() != 0 {
		t.Fatalf("previous heading: offset = %d, want 0", app.Offset())
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	app, _ := newTestApp(t, 10)

	if !app.handleEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone)) {
		t.Fatalf("expected wheel down to redraw")
	}
	if app.Offset() != inputui.WheelLines {
		t.Fatalf("offset = %d, want %d", app.Offset(), inputui.WheelLines)
	}
	app.handleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if app.Offset() != 0 {
		t.Fatalf("offset = %d, want 0", app.Offset())
	}
	if app.handleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone)) {
		t.Fatalf("plain clicks should not redraw")
	}
}

func TestResizeClampsOffset(t *testing.T) {
	app, scr := newTestApp(t, 10)
	app.offset = 6
	scr.SetSize(20, 10)
	if !app.handleEvent(tcell.NewEventResize(20, 10)) {
		t.Fatalf("expected resize to redraw")
	}
	if app.Offset() != 1 {
		t.Fatalf("offset = %d, want 1 after growing to 9 content rows", app.Offset())
	}
}

func TestRunProcessesInjectedKeys(t *testing.T) {
	app, scr := newTestApp(t, 10)
	scr.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	finished := make(chan struct{})
	go func() {
		app.Run()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after quit key")
	}
	if app.Offset() != 2 {
		t.Fatalf("offset = %d, want 2", app.Offset())
	}

	mainc, _, _, _ := scr.GetContent(0, 0)
	if mainc != 'l' {
		t.Fatalf("expected rendered content on first row, got %q", mainc)
	}
}
