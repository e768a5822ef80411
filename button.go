package desk

import "golang.org/x/image/font"

// Button is a push button with a raised bevel that sinks while pressed.
// The pressed look is the union of a persistent toggled state (used by
// the start button and taskbar buttons) and the transient mouse-down
// state. The click handler fires on release while still over the button.
type Button struct {
	Control

	text string
	font font.Face

	toggled      bool
	mouseDown    bool
	wasMouseDown bool

	onClick func(*Button)
}

// NewButton creates a button as a child of parent.
func NewButton(parent *Control, bounds Rect) *Button {
	b := &Button{}
	b.init(b, bounds)
	b.paintSelf = b.paint
	b.onMouse = b.handleMouse
	b.preferred = func() Size { return b.bounds.Size() }
	if parent != nil {
		parent.AddChild(&b.Control)
	}
	return b
}

// Text returns the button label.
func (b *Button) Text() string {
	return b.text
}

// SetText sets the button label.
func (b *Button) SetText(text string) {
	b.text = text
	b.Invalidate()
}

// SetFont sets the label font.
func (b *Button) SetFont(f font.Face) {
	b.font = f
	b.Invalidate()
}

// Pressed reports the visual pressed state: toggled or mouse held down.
func (b *Button) Pressed() bool {
	return b.toggled || b.mouseDown
}

// SetPressed sets the persistent toggled state (an active window's
// taskbar button, an open start menu's start button).
func (b *Button) SetPressed(pressed bool) {
	b.toggled = pressed
	b.Invalidate()
}

// SetOnClick installs the click handler.
func (b *Button) SetOnClick(fn func(*Button)) {
	b.onClick = fn
}

func (b *Button) paint(e *PaintEvent) {
	sb := b.ScreenBounds()
	if b.Pressed() {
		e.G.FillBorder(sb, BorderSunkenDouble)
	} else {
		e.G.FillBorder(sb, BorderRaisedDouble)
	}
	b.paintLabel(e.G, sb)
}

// paintLabel centers the label text; a pressed button nudges it one
// pixel down-right.
func (b *Button) paintLabel(g Graphics, sb Rect) {
	if b.text == "" || b.font == nil {
		return
	}
	tw := g.TextWidth(b.text, b.font)
	x := sb.X + (sb.Width-tw)/2
	y := sb.Y + sb.Height/2 + 4
	if b.Pressed() {
		x++
		y++
	}
	g.Text(b.text, b.font, x, y, Black)
}

func (b *Button) handleMouse(ev MouseEvent) {
	wasVisual := b.Pressed()
	over := b.HitTest(ev.X, ev.Y)

	// Mouse-down tracking never touches the toggled state.
	b.mouseDown = ev.Left && over

	// Click: was pressed, now released while still over the button.
	if b.wasMouseDown && !ev.Left && over && b.onClick != nil {
		b.onClick(b)
	}
	b.wasMouseDown = ev.Left && over

	if b.Pressed() != wasVisual {
		b.Invalidate()
	}
}
