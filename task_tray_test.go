package desk

import (
	"testing"
	"time"
)

func TestTaskTray_SitsAtRightEndOfBar(t *testing.T) {
	d, _ := newTestDesktop()
	tr := d.taskBar.Tray()

	want := NewRect(640-taskTrayWidth-taskTrayMargin, startButtonY, taskTrayWidth, taskTrayHeight)
	if tr.Bounds() != want {
		t.Errorf("tray bounds = %+v, want %+v", tr.Bounds(), want)
	}
}

func TestTaskTray_Tick_InvalidatesOnMinuteRollover(t *testing.T) {
	d, display := newTestDesktop()
	tr := d.taskBar.Tray()

	clock := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	tr.now = func() time.Time { return clock }
	tr.tick()
	d.Paint(&PaintEvent{G: display.G, Clip: d.ScreenBounds()})
	if d.IsDirty() {
		t.Fatal("desktop should be clean after painting")
	}

	// Same minute: no repaint.
	clock = clock.Add(20 * time.Second)
	tr.tick()
	if d.IsDirty() {
		t.Error("tick within the same minute should not invalidate")
	}

	// Minute rollover: repaint.
	clock = clock.Add(45 * time.Second)
	tr.tick()
	if !d.IsDirty() {
		t.Error("tick across a minute boundary should invalidate")
	}
	if tr.Time() != "09:31" {
		t.Errorf("Time = %q, want %q", tr.Time(), "09:31")
	}
}
