package input

// Action is a viewer command decoded from a terminal event.
type Action interface {
	isAction()
}

// ScrollAction moves the view by Lines (negative scrolls up).
type ScrollAction struct {
	Lines int
}

// PageAction scrolls by whole pages, or half pages when Half is set.
type PageAction struct {
	Pages int
	Half  bool
}

// JumpTopAction scrolls to the first line.
type JumpTopAction struct{}

// JumpBottomAction scrolls so the last line is visible.
type JumpBottomAction struct{}

// HeadingAction jumps to the next (Direction > 0) or previous heading.
type HeadingAction struct {
	Direction int
}

// ResizeAction reports a new terminal size.
type ResizeAction struct {
	Width, Height int
}

// RedrawAction forces a full repaint.
type RedrawAction struct{}

// SuspendAction stops the process and returns to the shell.
type SuspendAction struct{}

// QuitAction closes the viewer.
type QuitAction struct{}

func (ScrollAction) isAction()     {}
func (PageAction) isAction()       {}
func (JumpTopAction) isAction()    {}
func (JumpBottomAction) isAction() {}
func (HeadingAction) isAction()    {}
func (ResizeAction) isAction()     {}
func (RedrawAction) isAction()     {}
func (SuspendAction) isAction()    {}
func (QuitAction) isAction()       {}
