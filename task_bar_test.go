package desk

import "testing"

func TestTaskBar_Geometry_SpansBottomEdge(t *testing.T) {
	d, _ := newTestDesktop()

	got := d.taskBar.Bounds()
	want := NewRect(0, 480-taskBarHeight, 640, taskBarHeight)
	if got != want {
		t.Errorf("taskbar bounds = %+v, want %+v", got, want)
	}
}

func TestTaskBar_StartButton_Position(t *testing.T) {
	d, _ := newTestDesktop()

	got := d.taskBar.StartButton().Bounds()
	want := NewRect(startButtonX, startButtonY, startButtonWidth, startButtonHeight)
	if got != want {
		t.Errorf("start button bounds = %+v, want %+v", got, want)
	}
}

func TestTaskBar_WindowButtons_FillSlotsLeftToRight(t *testing.T) {
	d, _ := newTestDesktop()
	w1 := NewWindow(d, NewRect(10, 10, 100, 100))
	w2 := NewWindow(d, NewRect(20, 20, 100, 100))

	b1 := d.taskBar.ButtonFor(w1)
	b2 := d.taskBar.ButtonFor(w2)

	if got := b1.Bounds().X; got != taskBarButtonStartX {
		t.Errorf("first button X = %d, want %d", got, taskBarButtonStartX)
	}
	wantX2 := taskBarButtonStartX + taskBarButtonWidth + taskBarButtonSpacing
	if got := b2.Bounds().X; got != wantX2 {
		t.Errorf("second button X = %d, want %d", got, wantX2)
	}
}

func TestTaskBar_RemoveWindowButton_ReflowsSurvivors(t *testing.T) {
	d, _ := newTestDesktop()
	w1 := NewWindow(d, NewRect(10, 10, 100, 100))
	w2 := NewWindow(d, NewRect(20, 20, 100, 100))

	d.RemoveWindow(w1)

	b2 := d.taskBar.ButtonFor(w2)
	if got := b2.Bounds().X; got != taskBarButtonStartX {
		t.Errorf("surviving button X = %d, want %d", got, taskBarButtonStartX)
	}
}

func TestTaskBar_PressedState_TracksFocus(t *testing.T) {
	d, _ := newTestDesktop()
	w1 := NewWindow(d, NewRect(10, 10, 100, 100))
	w2 := NewWindow(d, NewRect(20, 20, 100, 100))

	if d.taskBar.ButtonFor(w1).Pressed() {
		t.Error("unfocused window's button should be out")
	}
	if !d.taskBar.ButtonFor(w2).Pressed() {
		t.Error("focused window's button should be pressed")
	}

	d.SetFocusedWindow(w1)

	if !d.taskBar.ButtonFor(w1).Pressed() || d.taskBar.ButtonFor(w2).Pressed() {
		t.Error("pressed state should follow focus")
	}
}

func TestTaskBarButton_Activate_Policy(t *testing.T) {
	d, _ := newTestDesktop()
	w1 := NewWindow(d, NewRect(10, 10, 100, 100))
	NewWindow(d, NewRect(20, 20, 100, 100)) // takes focus away from w1

	// Clicking an unfocused window's button focuses it.
	d.taskBar.ButtonFor(w1).activate()
	if d.FocusedWindow() != w1 {
		t.Fatal("activating an unfocused window's button should focus it")
	}

	// Clicking the focused window's button minimizes it.
	d.taskBar.ButtonFor(w1).activate()
	if w1.State() != WindowMinimized {
		t.Fatal("activating the focused window's button should minimize it")
	}

	// Clicking a minimized window's button restores and focuses it.
	d.taskBar.ButtonFor(w1).activate()
	if w1.State() != WindowNormal || d.FocusedWindow() != w1 {
		t.Error("activating a minimized window's button should restore and focus it")
	}
}
