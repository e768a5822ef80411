package desk

import "testing"

func TestWindow_NewWindow_PanicsWithoutDesktop(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewWindow(nil, ...) should panic")
		}
	}()
	NewWindow(nil, NewRect(0, 0, 100, 100))
}

func TestWindow_ClientBounds_CarvesFrameAndTitleBar(t *testing.T) {
	d, _ := newTestDesktop()
	w := NewWindow(d, NewRect(50, 50, 200, 150))

	got := w.ClientBounds()
	want := NewRect(
		windowFrameWidth,
		windowTitleBarHeight+windowFrameWidth,
		200-windowFrameWidth*2,
		150-windowTitleBarHeight-windowFrameWidth*2,
	)
	if got != want {
		t.Errorf("ClientBounds = %+v, want %+v", got, want)
	}
}

func TestWindow_Maximize_FillsWorkAreaAndRestores(t *testing.T) {
	d, _ := newTestDesktop()
	original := NewRect(50, 50, 200, 150)
	w := NewWindow(d, original)

	w.Maximize()

	if w.State() != WindowMaximized {
		t.Errorf("State = %v, want WindowMaximized", w.State())
	}
	if w.Bounds() != d.WorkArea() {
		t.Errorf("Bounds = %+v, want work area %+v", w.Bounds(), d.WorkArea())
	}
	if w.RestoreBounds() != original {
		t.Errorf("RestoreBounds = %+v, want %+v", w.RestoreBounds(), original)
	}

	w.Restore()

	if w.State() != WindowNormal {
		t.Errorf("State after Restore = %v, want WindowNormal", w.State())
	}
	if w.Bounds() != original {
		t.Errorf("Bounds after Restore = %+v, want %+v", w.Bounds(), original)
	}
}

func TestWindow_Maximize_Twice_KeepsFirstRestoreBounds(t *testing.T) {
	d, _ := newTestDesktop()
	original := NewRect(50, 50, 200, 150)
	w := NewWindow(d, original)

	w.Maximize()
	w.Maximize()

	w.Restore()
	if w.Bounds() != original {
		t.Errorf("Bounds = %+v, want %+v", w.Bounds(), original)
	}
}

func TestWindow_Minimize_HidesAndDropsFocus(t *testing.T) {
	d, _ := newTestDesktop()
	w := NewWindow(d, NewRect(50, 50, 200, 150))

	w.Minimize()

	if w.State() != WindowMinimized {
		t.Errorf("State = %v, want WindowMinimized", w.State())
	}
	if w.Visible() {
		t.Error("minimized window should be hidden")
	}
	if d.FocusedWindow() == w {
		t.Error("minimized window should not keep focus")
	}
}

func TestWindow_Restore_FromMinimizedMaximizedGoesBackToMaximized(t *testing.T) {
	d, _ := newTestDesktop()
	original := NewRect(50, 50, 200, 150)
	w := NewWindow(d, original)

	w.Maximize()
	w.Minimize()
	w.Restore()

	if w.State() != WindowMaximized {
		t.Errorf("State = %v, want WindowMaximized", w.State())
	}
	if !w.Visible() {
		t.Error("restored window should be visible")
	}

	// A second Restore unwinds the maximization too.
	w.Restore()
	if w.State() != WindowNormal || w.Bounds() != original {
		t.Errorf("State = %v, Bounds = %+v, want WindowNormal at %+v", w.State(), w.Bounds(), original)
	}
}

func TestWindow_TitleButtons_ClickOnReleaseOver(t *testing.T) {
	d, _ := newTestDesktop()
	w := NewWindow(d, NewRect(50, 50, 200, 150))

	min := w.minimizeButtonRect()
	x, y := min.X+2, min.Y+2

	// Press alone does nothing.
	w.handleMouse(MouseEvent{X: x, Y: y, Left: true})
	if w.State() == WindowMinimized {
		t.Fatal("press alone should not minimize")
	}

	// Release elsewhere cancels.
	w.handleMouse(MouseEvent{X: 0, Y: 0, Left: false})
	if w.State() == WindowMinimized {
		t.Fatal("release off the button should not minimize")
	}

	// Press then release over the button minimizes.
	w.handleMouse(MouseEvent{X: x, Y: y, Left: true})
	w.handleMouse(MouseEvent{X: x, Y: y, Left: false})
	if w.State() != WindowMinimized {
		t.Error("press and release over the minimize button should minimize")
	}
}

func TestWindow_MaximizeButton_TogglesState(t *testing.T) {
	d, _ := newTestDesktop()
	w := NewWindow(d, NewRect(50, 50, 200, 150))

	max := w.maximizeButtonRect()
	x, y := max.X+2, max.Y+2

	w.handleMouse(MouseEvent{X: x, Y: y, Left: true})
	w.handleMouse(MouseEvent{X: x, Y: y, Left: false})
	if w.State() != WindowMaximized {
		t.Fatal("maximize button should maximize a normal window")
	}

	// Button rect moved with the new bounds; click it again to restore.
	max = w.maximizeButtonRect()
	x, y = max.X+2, max.Y+2
	w.handleMouse(MouseEvent{X: x, Y: y, Left: true})
	w.handleMouse(MouseEvent{X: x, Y: y, Left: false})
	if w.State() != WindowNormal {
		t.Error("maximize button should restore a maximized window")
	}
}

func TestWindow_SetTitle_MarksDesktopDirty(t *testing.T) {
	d, display := newTestDesktop()
	w := NewWindow(d, NewRect(50, 50, 200, 150))
	d.Paint(&PaintEvent{G: display.G, Clip: d.ScreenBounds()})
	if d.IsDirty() {
		t.Fatal("desktop should be clean after painting")
	}

	w.SetTitle("hello")

	if !d.IsDirty() {
		t.Error("title change should invalidate up to the desktop")
	}
}
