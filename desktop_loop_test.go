package desk

import (
	"errors"
	"testing"
)

func escFrame(m MouseState) InputFrame {
	return InputFrame{Mouse: m, Keys: []KeyPress{{Rune: KeyEscape}}}
}

func TestDesktop_Run_EscapeStopsAndFadesBracketTheSession(t *testing.T) {
	display := NewMockDisplay(640, 480)
	input := &ScriptedInput{Frames: []InputFrame{
		escFrame(MouseState{X: 10, Y: 10}),
	}}
	d := NewDesktop(display, input)

	if err := d.Run(); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if d.Running() {
		t.Error("desktop should not be running after Escape")
	}
	if display.Flushes == 0 {
		t.Error("at least one frame should have been flushed")
	}
	if len(display.Fades) != 2 || display.Fades[0] != "in" || display.Fades[1] != "out" {
		t.Errorf("fades = %v, want [in out]", display.Fades)
	}
}

func TestDesktop_Run_ClickFocusesWindowUnderPointer(t *testing.T) {
	display := NewMockDisplay(640, 480)
	input := &ScriptedInput{Frames: []InputFrame{
		{Mouse: MouseState{X: 130, Y: 200}},
		{Mouse: MouseState{X: 130, Y: 200, Left: true}},
		{Mouse: MouseState{X: 130, Y: 200}},
		escFrame(MouseState{X: 130, Y: 200}),
	}}
	d := NewDesktop(display, input)
	w1 := NewWindow(d, NewRect(100, 100, 150, 150))
	w2 := NewWindow(d, NewRect(300, 100, 150, 150))

	if d.FocusedWindow() != w2 {
		t.Fatal("newest window should start focused")
	}
	if err := d.Run(); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if d.FocusedWindow() != w1 {
		t.Error("clicking inside a window should focus it")
	}
}

func TestDesktop_Run_DragCommitsBoundsOnceOnRelease(t *testing.T) {
	display := NewMockDisplay(640, 480)
	input := &ScriptedInput{Frames: []InputFrame{
		{Mouse: MouseState{X: 110, Y: 105}},
		{Mouse: MouseState{X: 110, Y: 105, Left: true}}, // press in title band
		{Mouse: MouseState{X: 140, Y: 120, Left: true}}, // drag
		{Mouse: MouseState{X: 160, Y: 140, Left: true}}, // drag further
		{Mouse: MouseState{X: 160, Y: 140}},             // release
		escFrame(MouseState{X: 160, Y: 140}),
	}}
	d := NewDesktop(display, input)
	w := NewWindow(d, NewRect(100, 100, 200, 150))

	if err := d.Run(); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	want := NewRect(150, 135, 200, 150)
	if w.Bounds() != want {
		t.Errorf("bounds after drag = %+v, want %+v", w.Bounds(), want)
	}
	if !w.Visible() {
		t.Error("window should be visible again after the drag")
	}
}

func TestDesktop_Run_StopMidDragLeavesBoundsUntouched(t *testing.T) {
	display := NewMockDisplay(640, 480)
	input := &ScriptedInput{Frames: []InputFrame{
		{Mouse: MouseState{X: 110, Y: 105}},
		{Mouse: MouseState{X: 110, Y: 105, Left: true}},
		{Mouse: MouseState{X: 160, Y: 140, Left: true}},
	}}
	d := NewDesktop(display, input)
	w := NewWindow(d, NewRect(100, 100, 200, 150))

	frames := 0
	display.OnVSync = func() {
		frames++
		if frames > 5 {
			d.Stop()
		}
	}

	if err := d.Run(); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	// The button never came up: the window must not have moved, and the
	// abandoned drag must leave it visible.
	want := NewRect(100, 100, 200, 150)
	if w.Bounds() != want {
		t.Errorf("bounds after aborted drag = %+v, want %+v", w.Bounds(), want)
	}
	if !w.Visible() {
		t.Error("window should be visible after an aborted drag")
	}
}

func TestDesktop_Run_FlushErrorMidDragRestoresWindow(t *testing.T) {
	display := NewMockDisplay(640, 480)
	flushErr := errors.New("flush failed")
	display.OnFlush = func() error {
		if display.Flushes >= 3 {
			return flushErr
		}
		return nil
	}
	input := &ScriptedInput{Frames: []InputFrame{
		{Mouse: MouseState{X: 110, Y: 105}},
		{Mouse: MouseState{X: 110, Y: 105, Left: true}}, // press in title band
		{Mouse: MouseState{X: 160, Y: 140, Left: true}}, // drag, flush fails
	}}
	d := NewDesktop(display, input)
	w := NewWindow(d, NewRect(100, 100, 200, 150))

	if err := d.Run(); !errors.Is(err, flushErr) {
		t.Fatalf("Run returned %v, want the flush error", err)
	}

	// The drag never committed, and the window hidden at drag start must
	// come back even on the error exit.
	want := NewRect(100, 100, 200, 150)
	if w.Bounds() != want {
		t.Errorf("bounds after failed frame = %+v, want %+v", w.Bounds(), want)
	}
	if !w.Visible() {
		t.Error("window should be visible after Run fails mid-drag")
	}
	if d.dragTarget != nil {
		t.Error("drag state should be cleared after Run fails")
	}
}

func TestDesktop_Run_TitleButtonsDoNotStartDrags(t *testing.T) {
	display := NewMockDisplay(640, 480)
	d := NewDesktop(display, nil)
	w := NewWindow(d, NewRect(100, 100, 200, 150))

	min := w.minimizeButtonRect()
	d.dispatchMouse(MouseState{X: min.X + 2, Y: min.Y + 2})
	d.dispatchMouse(MouseState{X: min.X + 2, Y: min.Y + 2, Left: true})

	if d.dragTarget != nil {
		t.Error("pressing a title-bar button should not start a drag")
	}
}

func TestDesktop_Run_MaximizedWindowCannotBeDragged(t *testing.T) {
	display := NewMockDisplay(640, 480)
	d := NewDesktop(display, nil)
	w := NewWindow(d, NewRect(100, 100, 200, 150))
	w.Maximize()

	sb := w.ScreenBounds()
	d.dispatchMouse(MouseState{X: sb.X + 30, Y: sb.Y + 5})
	d.dispatchMouse(MouseState{X: sb.X + 30, Y: sb.Y + 5, Left: true})

	if d.dragTarget != nil {
		t.Error("a maximized window should not be draggable")
	}
}

func TestDesktop_OutsidePressHidesStartMenu(t *testing.T) {
	display := NewMockDisplay(640, 480)
	d := NewDesktop(display, nil)
	d.StartMenu().AddItem("item", nil)
	d.StartMenu().Show()

	d.dispatchMouse(MouseState{X: 400, Y: 100})
	d.dispatchMouse(MouseState{X: 400, Y: 100, Left: true})

	if d.StartMenu().Visible() {
		t.Error("pressing outside the start menu should hide it")
	}
}

func TestDesktop_PressInsideStartMenuKeepsItOpen(t *testing.T) {
	display := NewMockDisplay(640, 480)
	d := NewDesktop(display, nil)
	it := d.StartMenu().AddItem("item", nil)
	d.StartMenu().Show()

	b := it.ScreenBounds()
	d.dispatchMouse(MouseState{X: b.X + 2, Y: b.Y + 2})
	d.dispatchMouse(MouseState{X: b.X + 2, Y: b.Y + 2, Left: true})

	if !d.StartMenu().Visible() {
		t.Error("pressing inside the start menu should not hide it")
	}
}

func TestDesktop_DispatchKey_GoesToFocusedWindow(t *testing.T) {
	display := NewMockDisplay(640, 480)
	d := NewDesktop(display, nil)
	w := NewWindow(d, NewRect(100, 100, 200, 150))

	var got rune
	w.onKey = func(ev KeyEvent) { got = ev.Rune }

	d.dispatchKey(KeyPress{Rune: 'q'})

	if got != 'q' {
		t.Errorf("focused window saw %q, want %q", got, 'q')
	}
}

func TestDesktop_DispatchKey_DesktopHookRunsAfterFocusedWindow(t *testing.T) {
	display := NewMockDisplay(640, 480)
	d := NewDesktop(display, nil)
	w := NewWindow(d, NewRect(100, 100, 200, 150))

	var order []string
	w.onKey = func(ev KeyEvent) { order = append(order, "window") }
	d.onKey = func(ev KeyEvent) { order = append(order, "desktop") }

	d.dispatchKey(KeyPress{Rune: 'q'})

	if len(order) != 2 || order[0] != "window" || order[1] != "desktop" {
		t.Errorf("handler order = %v, want [window desktop]", order)
	}
}

func TestDesktop_DispatchKey_EscapeAlwaysStops(t *testing.T) {
	display := NewMockDisplay(640, 480)
	d := NewDesktop(display, nil)
	NewWindow(d, NewRect(100, 100, 200, 150))
	d.running = true

	d.dispatchKey(KeyPress{Rune: KeyEscape})

	if d.Running() {
		t.Error("Escape should stop the desktop even with a focused window")
	}
}
