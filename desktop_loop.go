package desk

import "time"

// fadeDuration paces the display fade bracketing a desktop session.
const fadeDuration = 300 * time.Millisecond

// Run drives the desktop until Stop is called or Escape is pressed.
// Each frame: wait for vsync, poll input once, dispatch events, repaint
// what changed and composite the cursor, then flush the display.
func (d *Desktop) Run() error {
	d.display.FadeIn(fadeDuration)
	d.running = true
	for d.running {
		d.display.WaitVSync()

		if d.input != nil {
			mouse := d.input.PollMouse()
			d.dispatchMouse(mouse)
			for {
				key, ok := d.input.PollKeyboard()
				if !ok {
					break
				}
				d.dispatchKey(key)
			}
		}

		d.notifyUpdate()

		if err := d.paintFrame(); err != nil {
			d.running = false
			d.cancelDrag()
			return err
		}
	}
	d.cancelDrag()
	d.display.FadeOut(fadeDuration)
	return nil
}

// Stop ends the frame loop after the current iteration.
func (d *Desktop) Stop() {
	d.running = false
}

// Running reports whether the frame loop is active.
func (d *Desktop) Running() bool {
	return d.running
}

// paintFrame repaints as little as the frame needs. A dragging frame and
// a dirty frame repaint everything; otherwise only the cursor moves.
func (d *Desktop) paintFrame() error {
	moved := d.lastMouse.X != d.cursorPos.X || d.lastMouse.Y != d.cursorPos.Y

	switch {
	case d.dragTarget != nil:
		d.cursorSaved = false
		if d.NeedsLayout() {
			d.PerformLayout()
		}
		d.Paint(&PaintEvent{G: d.display.Graphics(), Clip: d.ScreenBounds()})
		// The floating bitmap rides above everything while a drag is
		// in flight, task bar and start menu included.
		d.drawDragBitmap()
		d.drawCursor(d.lastMouse.X, d.lastMouse.Y)
	case d.IsDirty() || d.NeedsLayout():
		d.cursorSaved = false
		if d.NeedsLayout() {
			d.PerformLayout()
		}
		d.Paint(&PaintEvent{G: d.display.Graphics(), Clip: d.ScreenBounds()})
		d.drawCursor(d.lastMouse.X, d.lastMouse.Y)
	case moved:
		d.restoreCursorUnder()
		d.drawCursor(d.lastMouse.X, d.lastMouse.Y)
	default:
		return nil
	}
	return d.display.Flush()
}

// dispatchMouse routes one mouse sample: it advances any drag in
// progress, manages focus and start-menu dismissal on press, and
// forwards the event to the control under the cursor.
func (d *Desktop) dispatchMouse(mouse MouseState) {
	defer func() { d.lastMouse = mouse }()

	if d.dragTarget != nil {
		d.advanceDrag(mouse)
		return
	}

	press := mouse.Left && !d.lastMouse.Left
	target := d.hitTest(mouse.X, mouse.Y)

	if press {
		d.handlePress(mouse, target)
		// handlePress may have started a drag; the press itself is
		// then consumed by the title bar.
		if d.dragTarget != nil {
			return
		}
	}

	ev := MouseEvent{X: mouse.X, Y: mouse.Y, Left: mouse.Left, Right: mouse.Right}

	// A control the pointer left while pressed still gets the sample
	// once, so it can drop its pressed visuals.
	if d.lastTarget != nil && d.lastTarget != target && d.lastTarget.parent != nil {
		d.lastTarget.NotifyMouse(ev)
	}
	d.lastTarget = target

	if target != nil {
		target.NotifyMouse(ev)
	}
}

// handlePress applies the desktop-level press policy before the event
// reaches the target: dismiss the start menu on outside clicks, focus
// the pressed window and start a title-bar drag.
func (d *Desktop) handlePress(mouse MouseState, target *Control) {
	if d.startMenu.Visible() && target != &d.startMenu.Control && !d.taskBar.overStartButton(mouse.X, mouse.Y) {
		d.startMenu.Hide()
	}

	w := windowOf(target)
	if w == nil {
		return
	}
	d.SetFocusedWindow(w)

	sb := w.ScreenBounds()
	inTitleBand := mouse.Y < sb.Y+titleBand
	if inTitleBand && !w.overTitleButton(mouse.X, mouse.Y) && w.state != WindowMaximized {
		d.beginDrag(w, mouse)
	}
}

// dispatchKey routes one key press: Escape stops the desktop, anything
// else goes to the focused window first and then to the desktop's own
// keyboard hook.
func (d *Desktop) dispatchKey(key KeyPress) {
	if key.Rune == KeyEscape {
		d.Stop()
		return
	}
	ev := KeyEvent{Rune: key.Rune, Alt: key.Alt, Ctrl: key.Ctrl, Shift: key.Shift}
	if d.focused != nil {
		d.focused.NotifyKeyboard(ev)
	}
	d.OnKeyboard(ev)
}
