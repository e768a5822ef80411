package desk

import "time"

const (
	taskTrayWidth  = 70
	taskTrayHeight = 20
	taskTrayMargin = 4
)

// TaskTray is the sunken panel at the right end of the taskbar showing
// a wall clock. The clock repaints itself when the displayed minute
// changes, through the per-frame update hook.
type TaskTray struct {
	Control

	bar  *TaskBar
	now  func() time.Time
	text string
}

func newTaskTray(t *TaskBar) *TaskTray {
	tb := t.Bounds()
	tr := &TaskTray{bar: t, now: time.Now}
	tr.init(tr, NewRect(tb.Width-taskTrayWidth-taskTrayMargin, startButtonY, taskTrayWidth, taskTrayHeight))
	tr.paintSelf = tr.paint
	tr.onUpdate = tr.tick
	tr.text = tr.now().Format("15:04")
	t.AddChild(&tr.Control)
	return tr
}

// Time returns the string currently shown by the clock.
func (tr *TaskTray) Time() string {
	return tr.text
}

// tick runs once per frame and invalidates only when the minute rolls
// over.
func (tr *TaskTray) tick() {
	text := tr.now().Format("15:04")
	if text == tr.text {
		return
	}
	tr.text = text
	tr.Invalidate()
}

func (tr *TaskTray) paint(e *PaintEvent) {
	sb := tr.ScreenBounds()
	e.G.FillBorder(sb, BorderSunken)
	f := tr.bar.desktop.font
	if f == nil {
		return
	}
	tw := e.G.TextWidth(tr.text, f)
	e.G.Text(tr.text, f, sb.X+(sb.Width-tw)/2, sb.Y+sb.Height/2+4, Black)
}
