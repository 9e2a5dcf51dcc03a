package input

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func emitted(t *testing.T, ev tcell.Event) (Action, bool) {
	t.Helper()
	actionChan := make(chan Action, 1)
	handler := NewInputHandler(actionChan)
	keepRunning := handler.ProcessEvent(ev)

	select {
	case action := <-actionChan:
		return action, keepRunning
	default:
		return nil, keepRunning
	}
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name  string
		event tcell.Event
		want  Action
	}{
		{"j scrolls down", tcell.NewEventKey(tcell.KeyRune, 'j', 0), ScrollAction{Lines: 1}},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, 0), ScrollAction{Lines: 1}},
		{"k scrolls up", tcell.NewEventKey(tcell.KeyRune, 'k', 0), ScrollAction{Lines: -1}},
		{"space pages", tcell.NewEventKey(tcell.KeyRune, ' ', 0), PageAction{Pages: 1}},
		{"page up", tcell.NewEventKey(tcell.KeyPgUp, 0, 0), PageAction{Pages: -1}},
		{"d half page", tcell.NewEventKey(tcell.KeyRune, 'd', 0), PageAction{Pages: 1, Half: true}},
		{"g top", tcell.NewEventKey(tcell.KeyRune, 'g', 0), JumpTopAction{}},
		{"end bottom", tcell.NewEventKey(tcell.KeyEnd, 0, 0), JumpBottomAction{}},
		{"n next heading", tcell.NewEventKey(tcell.KeyRune, 'n', 0), HeadingAction{Direction: 1}},
		{"[ previous heading", tcell.NewEventKey(tcell.KeyRune, '[', 0), HeadingAction{Direction: -1}},
		{"ctrl-l redraws", tcell.NewEventKey(tcell.KeyCtrlL, 0, 0), RedrawAction{}},
		{"ctrl-z suspends", tcell.NewEventKey(tcell.KeyCtrlZ, 0, 0), SuspendAction{}},
		{"wheel down", tcell.NewEventMouse(0, 0, tcell.WheelDown, 0), ScrollAction{Lines: WheelLines}},
		{"wheel up", tcell.NewEventMouse(0, 0, tcell.WheelUp, 0), ScrollAction{Lines: -WheelLines}},
		{"resize", tcell.NewEventResize(80, 24), ResizeAction{Width: 80, Height: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, keepRunning := emitted(t, tt.event)
			if !keepRunning {
				t.Fatalf("expected handler to keep running")
			}
			if !reflect.DeepEqual(action, tt.want) {
				t.Fatalf("expected %#v, got %#v", tt.want, action)
			}
		})
	}
}

func TestQuitKeysStopHandler(t *testing.T) {
	events := []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'q', 0),
		tcell.NewEventKey(tcell.KeyEscape, 0, 0),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, 0),
	}
	for _, ev := range events {
		action, keepRunning := emitted(t, ev)
		if keepRunning {
			t.Fatalf("expected %v to stop the handler", ev)
		}
		if _, ok := action.(QuitAction); !ok {
			t.Fatalf("expected QuitAction, got %T", action)
		}
	}
}

func TestUnboundInputEmitsNothing(t *testing.T) {
	events := []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'z', 0),
		tcell.NewEventKey(tcell.KeyF5, 0, 0),
		tcell.NewEventMouse(3, 4, tcell.Button1, 0),
	}
	for _, ev := range events {
		action, keepRunning := emitted(t, ev)
		if !keepRunning || action != nil {
			t.Fatalf("expected no action for %v, got %#v", ev, action)
		}
	}
}
