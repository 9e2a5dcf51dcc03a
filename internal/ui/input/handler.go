package input

import (
	"github.com/gdamore/tcell/v2"
)

// WheelLines is how far one wheel notch scrolls.
const WheelLines = 3

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- ResizeAction{Width: w, Height: h}
		return true
	case *tcell.EventMouse:
		ih.processMouseEvent(ev)
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	// Handle special keys first
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ih.actionChan <- QuitAction{}
		return false
	case tcell.KeyCtrlZ:
		ih.actionChan <- SuspendAction{}
	case tcell.KeyCtrlL:
		ih.actionChan <- RedrawAction{}
	case tcell.KeyDown, tcell.KeyEnter:
		ih.actionChan <- ScrollAction{Lines: 1}
	case tcell.KeyUp:
		ih.actionChan <- ScrollAction{Lines: -1}
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		ih.actionChan <- PageAction{Pages: 1}
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		ih.actionChan <- PageAction{Pages: -1}
	case tcell.KeyCtrlD:
		ih.actionChan <- PageAction{Pages: 1, Half: true}
	case tcell.KeyCtrlU:
		ih.actionChan <- PageAction{Pages: -1, Half: true}
	case tcell.KeyHome:
		ih.actionChan <- JumpTopAction{}
	case tcell.KeyEnd:
		ih.actionChan <- JumpBottomAction{}
	case tcell.KeyRune:
		return ih.processRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		ih.actionChan <- QuitAction{}
		return false
	case 'j':
		ih.actionChan <- ScrollAction{Lines: 1}
	case 'k':
		ih.actionChan <- ScrollAction{Lines: -1}
	case ' ', 'f':
		ih.actionChan <- PageAction{Pages: 1}
	case 'b':
		ih.actionChan <- PageAction{Pages: -1}
	case 'd':
		ih.actionChan <- PageAction{Pages: 1, Half: true}
	case 'u':
		ih.actionChan <- PageAction{Pages: -1, Half: true}
	case 'g':
		ih.actionChan <- JumpTopAction{}
	case 'G':
		ih.actionChan <- JumpBottomAction{}
	case 'n', ']':
		ih.actionChan <- HeadingAction{Direction: 1}
	case 'p', '[':
		ih.actionChan <- HeadingAction{Direction: -1}
	}
	return true
}

func (ih *InputHandler) processMouseEvent(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelDown != 0:
		ih.actionChan <- ScrollAction{Lines: WheelLines}
	case buttons&tcell.WheelUp != 0:
		ih.actionChan <- ScrollAction{Lines: -WheelLines}
	}
}
