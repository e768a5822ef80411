package desk

// TaskBar geometry. The bar spans the bottom edge of the screen; window
// buttons grow to the right of the start button.
const (
	taskBarHeight = 28

	startButtonX      = 4
	startButtonY      = 4
	startButtonWidth  = 54
	startButtonHeight = 20

	taskBarButtonStartX  = 62
	taskBarButtonWidth   = 120
	taskBarButtonHeight  = 20
	taskBarButtonSpacing = 2
)

// TaskBar is the strip along the bottom of the desktop holding the
// start button, one button per window, and the tray. It paints above
// every window.
type TaskBar struct {
	Control

	desktop     *Desktop
	startButton *Button
	buttons     []*TaskBarButton
	tray        *TaskTray
}

// newTaskBar is called once by NewDesktop.
func newTaskBar(d *Desktop) *TaskBar {
	w, h := d.display.Size()
	t := &TaskBar{desktop: d}
	t.init(t, NewRect(0, h-taskBarHeight, w, taskBarHeight))
	t.paintSelf = t.paint
	t.layout.ParticipatesInLayout = false
	t.layout.AlwaysOnTop = true
	d.AddChild(&t.Control)

	t.startButton = NewButton(&t.Control, NewRect(startButtonX, startButtonY, startButtonWidth, startButtonHeight))
	t.startButton.SetText("Start")
	t.startButton.SetFont(d.font)
	t.startButton.SetOnClick(func(*Button) {
		d.startMenu.Toggle()
	})

	t.tray = newTaskTray(t)
	return t
}

// Tray returns the taskbar's tray area.
func (t *TaskBar) Tray() *TaskTray {
	return t.tray
}

// StartButton returns the start button.
func (t *TaskBar) StartButton() *Button {
	return t.startButton
}

// ButtonFor returns the taskbar button representing w, or nil.
func (t *TaskBar) ButtonFor(w *Window) *TaskBarButton {
	for _, b := range t.buttons {
		if b.window == w {
			return b
		}
	}
	return nil
}

// overStartButton reports whether the screen point is on the start
// button. Pressing it must not count as an outside click dismissing the
// start menu, or Toggle would immediately reopen it.
func (t *TaskBar) overStartButton(x, y int) bool {
	return t.startButton.HitTest(x, y)
}

// addWindowButton appends a button for w at the next slot.
func (t *TaskBar) addWindowButton(w *Window) {
	b := newTaskBarButton(t, w, t.slotBounds(len(t.buttons)))
	t.buttons = append(t.buttons, b)
	t.Invalidate()
}

// removeWindowButton drops w's button and closes the gap.
func (t *TaskBar) removeWindowButton(w *Window) {
	for i, b := range t.buttons {
		if b.window == w {
			t.RemoveChild(&b.Control)
			t.buttons = append(t.buttons[:i], t.buttons[i+1:]...)
			t.reflowButtons()
			return
		}
	}
}

// slotBounds returns the bounds for the window button at index i,
// relative to the bar.
func (t *TaskBar) slotBounds(i int) Rect {
	x := taskBarButtonStartX + i*(taskBarButtonWidth+taskBarButtonSpacing)
	return NewRect(x, startButtonY, taskBarButtonWidth, taskBarButtonHeight)
}

// reflowButtons repositions the surviving buttons left-packed.
func (t *TaskBar) reflowButtons() {
	for i, b := range t.buttons {
		b.SetBounds(t.slotBounds(i))
	}
	t.Invalidate()
}

// refreshPressed syncs every window button's pressed look with the
// focused window.
func (t *TaskBar) refreshPressed() {
	for _, b := range t.buttons {
		b.SetPressed(b.window == t.desktop.focused)
	}
}

func (t *TaskBar) paint(e *PaintEvent) {
	sb := t.ScreenBounds()
	e.G.FillRect(sb, FaceGray)
	// Single highlight line along the top edge instead of a full bevel.
	e.G.Line(sb.X, sb.Y, sb.Right()-1, sb.Y, White)
}

// TaskBarButton is a toggled button bound to one window: pressed while
// its window is focused, with a hatched face to set it apart from an
// idle button.
type TaskBarButton struct {
	Button
	window *Window
}

func newTaskBarButton(t *TaskBar, w *Window, bounds Rect) *TaskBarButton {
	b := &TaskBarButton{window: w}
	b.init(b, bounds)
	b.font = t.desktop.font
	b.paintSelf = b.paint
	b.onMouse = b.Button.handleMouse
	b.preferred = func() Size { return b.bounds.Size() }
	b.onClick = func(*Button) { b.activate() }
	t.AddChild(&b.Control)

	// A new window takes focus before its button exists; sync here.
	b.SetPressed(w == t.desktop.focused)
	return b
}

// activate implements the taskbar click policy: restore a minimized
// window, minimize the focused one, focus anything else.
func (b *TaskBarButton) activate() {
	d := b.window.desktop
	switch {
	case b.window.State() == WindowMinimized:
		b.window.Restore()
		d.SetFocusedWindow(b.window)
	case b.window == d.focused:
		b.window.Minimize()
	default:
		d.SetFocusedWindow(b.window)
	}
}

func (b *TaskBarButton) paint(e *PaintEvent) {
	sb := b.ScreenBounds()
	if b.Pressed() {
		e.G.FillBorder(sb, BorderSunkenDouble)
		e.G.FillHatch(sb.Inset(EdgeAll(2)), HatchChecker, White, FaceGray)
	} else {
		e.G.FillBorder(sb, BorderRaisedDouble)
	}
	if b.window.Title() != "" && b.font != nil {
		x := sb.X + 6
		y := sb.Y + sb.Height/2 + 4
		if b.Pressed() {
			x++
			y++
		}
		e.G.Text(b.window.Title(), b.font, x, y, Black)
	}
}
