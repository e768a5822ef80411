package desk

import "testing"

func TestButton_Click_FiresOnReleaseOver(t *testing.T) {
	clicks := 0
	b := NewButton(nil, NewRect(10, 10, 80, 24))
	b.SetOnClick(func(*Button) { clicks++ })

	b.handleMouse(MouseEvent{X: 20, Y: 20, Left: true})
	if clicks != 0 {
		t.Fatal("press alone should not click")
	}

	b.handleMouse(MouseEvent{X: 20, Y: 20, Left: false})
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestButton_Click_CancelledByReleaseOutside(t *testing.T) {
	clicks := 0
	b := NewButton(nil, NewRect(10, 10, 80, 24))
	b.SetOnClick(func(*Button) { clicks++ })

	b.handleMouse(MouseEvent{X: 20, Y: 20, Left: true})
	b.handleMouse(MouseEvent{X: 200, Y: 200, Left: false})

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}

func TestButton_Pressed_TracksMouseAndToggle(t *testing.T) {
	b := NewButton(nil, NewRect(10, 10, 80, 24))

	if b.Pressed() {
		t.Fatal("new button should not be pressed")
	}

	b.handleMouse(MouseEvent{X: 20, Y: 20, Left: true})
	if !b.Pressed() {
		t.Error("held button should look pressed")
	}

	b.handleMouse(MouseEvent{X: 20, Y: 20, Left: false})
	if b.Pressed() {
		t.Error("released button should pop back out")
	}

	b.SetPressed(true)
	if !b.Pressed() {
		t.Error("toggled button should look pressed without the mouse")
	}
}

func TestButton_Paint_BorderFollowsPressedState(t *testing.T) {
	b := NewButton(nil, NewRect(0, 0, 80, 24))
	b.SetText("ok")

	g := &RecordingGraphics{}
	b.Paint(&PaintEvent{G: g, Clip: b.ScreenBounds()})
	if len(g.Ops) == 0 || g.Ops[0].Op != "border" {
		t.Fatalf("first op = %+v, want a border fill", g.Ops)
	}

	b.SetPressed(true)
	g.Reset()
	b.Paint(&PaintEvent{G: g, Clip: b.ScreenBounds()})
	if len(g.Ops) == 0 || g.Ops[0].Op != "border" {
		t.Fatalf("first op = %+v, want a border fill", g.Ops)
	}
}

func TestButton_PreferredSize_IsItsBounds(t *testing.T) {
	b := NewButton(nil, NewRect(5, 5, 80, 24))

	got := b.GetPreferredSize()
	if got.Width != 80 || got.Height != 24 {
		t.Errorf("GetPreferredSize = %+v, want 80x24", got)
	}
}
