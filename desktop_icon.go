package desk

import "image"

const (
	iconCellWidth  = 64
	iconCellHeight = 56
	iconImageSize  = 32
)

// DesktopIcon is a clickable icon-with-label sitting directly on the
// desktop, below every window. Created through Desktop.AddIcon, which
// handles placement.
type DesktopIcon struct {
	Control

	desktop *Desktop
	label   string
	img     image.Image
	wasDown bool
	onOpen  func()
}

func newDesktopIcon(d *Desktop, bounds Rect, label string, img image.Image, onOpen func()) *DesktopIcon {
	ic := &DesktopIcon{desktop: d, label: label, img: img, onOpen: onOpen}
	ic.init(ic, bounds)
	ic.paintSelf = ic.paint
	ic.onMouse = ic.handleMouse
	ic.preferred = func() Size { return Size{Width: iconCellWidth, Height: iconCellHeight} }
	ic.layout.ParticipatesInLayout = false
	d.AddChild(&ic.Control)
	return ic
}

// Label returns the icon caption.
func (ic *DesktopIcon) Label() string {
	return ic.label
}

// handleMouse opens the icon on release while still over it.
func (ic *DesktopIcon) handleMouse(ev MouseEvent) {
	over := ic.HitTest(ev.X, ev.Y)
	if ic.wasDown && !ev.Left && over && ic.onOpen != nil {
		ic.onOpen()
	}
	ic.wasDown = ev.Left && over
}

func (ic *DesktopIcon) paint(e *PaintEvent) {
	sb := ic.ScreenBounds()
	if ic.img != nil {
		b := ic.img.Bounds()
		x := sb.X + (sb.Width-b.Dx())/2
		e.G.BlitAlpha(ic.img, x, sb.Y, sb.Intersect(e.Clip))
	}
	if f := ic.desktop.font; f != nil && ic.label != "" {
		tw := e.G.TextWidth(ic.label, f)
		x := sb.X + (sb.Width-tw)/2
		e.G.Text(ic.label, f, x, sb.Bottom()-4, White)
	}
}
