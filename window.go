package desk

import "golang.org/x/image/font"

// WindowState is the mutually exclusive window lifecycle state. The
// focused bit is independent of it.
type WindowState uint8

const (
	// WindowNormal is a floating window at its own bounds.
	WindowNormal WindowState = iota
	// WindowMaximized fills the desktop work area.
	WindowMaximized
	// WindowMinimized is hidden; reachable through its taskbar button.
	WindowMinimized
)

const (
	windowTitleBarHeight = 20
	windowFrameWidth     = 3
	// titleBand is the draggable strip at the top of a window, measured
	// from the window's screen top.
	titleBand = windowFrameWidth + windowTitleBarHeight - 1

	titleButtonSize   = 14
	titleButtonMargin = 3
)

// Window is a floating top-level control with a frame and title bar. It
// opts out of its parent's layout pass and keeps externally assigned
// bounds; position changes come from the desktop's drag machinery.
type Window struct {
	Control

	desktop *Desktop
	title   string
	font    font.Face
	focused bool
	state   WindowState
	restore Rect // pre-maximize geometry

	// restoreMaximized remembers that a minimize happened from the
	// maximized state, so the taskbar restore goes back to it.
	restoreMaximized bool

	minWasDown bool
	maxWasDown bool
}

// NewWindow creates a window owned by the desktop and registers it with
// the taskbar. Panics if desktop is nil.
func NewWindow(desktop *Desktop, bounds Rect) *Window {
	if desktop == nil {
		panic("desk: NewWindow requires a desktop")
	}
	w := &Window{desktop: desktop, font: desktop.font}
	w.init(w, bounds)
	w.clientRect = w.computeClientRect
	w.paintSelf = w.paint
	w.onMouse = w.handleMouse
	w.updateClientBounds()

	// Windows are floating: never repositioned by the parent's Arrange.
	w.layout.ParticipatesInLayout = false

	desktop.addChild(&w.Control)
	return w
}

// windowOf returns the Window wrapping c, or nil.
func windowOf(c *Control) *Window {
	if c == nil {
		return nil
	}
	w, _ := c.owner.(*Window)
	return w
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.Invalidate()
}

// SetFont sets the font used for the title text.
func (w *Window) SetFont(f font.Face) {
	w.font = f
	w.Invalidate()
}

// Focused reports whether this window has input focus.
func (w *Window) Focused() bool {
	return w.focused
}

// State returns the window lifecycle state.
func (w *Window) State() WindowState {
	return w.state
}

// RestoreBounds returns the cached pre-maximize geometry.
func (w *Window) RestoreBounds() Rect {
	return w.restore
}

// computeClientRect carves the frame and title bar out of the window
// bounds: a 2px outer frame, the title bar, and a 1px sunken border
// around the client area.
func (w *Window) computeClientRect(b Rect) Rect {
	return NewRect(
		windowFrameWidth,
		windowTitleBarHeight+windowFrameWidth,
		b.Width-windowFrameWidth*2,
		b.Height-windowTitleBarHeight-windowFrameWidth*2,
	)
}

// Maximize grows the window to the desktop work area, caching the
// current geometry for Restore.
func (w *Window) Maximize() {
	if w.state == WindowMaximized {
		return
	}
	if w.state == WindowNormal {
		w.restore = w.bounds
	}
	w.state = WindowMaximized
	w.SetVisible(true)
	w.SetBounds(w.desktop.WorkArea())
	w.InvalidateLayout()
	w.PerformLayout()
	w.desktop.updateSpatialGrid()
}

// Restore returns a maximized or minimized window to its cached normal
// geometry.
func (w *Window) Restore() {
	if w.state == WindowNormal {
		return
	}
	fromMinimized := w.state == WindowMinimized
	w.state = WindowNormal
	w.SetVisible(true)
	if fromMinimized && w.restoreMaximized {
		w.restoreMaximized = false
		w.state = WindowMaximized
		w.SetBounds(w.desktop.WorkArea())
	} else {
		w.SetBounds(w.restore)
	}
	w.InvalidateLayout()
	w.PerformLayout()
	w.desktop.updateSpatialGrid()
}

// Minimize hides the window. It stays in the desktop's child order and
// keeps its taskbar button; painting and hit testing skip it.
func (w *Window) Minimize() {
	if w.state == WindowMinimized {
		return
	}
	w.restoreMaximized = w.state == WindowMaximized
	if w.state == WindowNormal {
		w.restore = w.bounds
	}
	w.state = WindowMinimized
	w.SetVisible(false)
	if w.desktop.FocusedWindow() == w {
		w.desktop.SetFocusedWindow(nil)
	}
	w.desktop.updateSpatialGrid()
	w.desktop.Invalidate()
}

// titleBarRect returns the title bar strip in screen coordinates.
func (w *Window) titleBarRect() Rect {
	sb := w.ScreenBounds()
	return NewRect(sb.X+2, sb.Y+2, sb.Width-4, windowTitleBarHeight)
}

// minimizeButtonRect and maximizeButtonRect are the two title-bar
// buttons, right-aligned in the title bar.
func (w *Window) minimizeButtonRect() Rect {
	tb := w.titleBarRect()
	x := tb.Right() - titleButtonMargin - titleButtonSize*2 - 2
	y := tb.Y + (tb.Height-titleButtonSize)/2
	return NewRect(x, y, titleButtonSize, titleButtonSize)
}

func (w *Window) maximizeButtonRect() Rect {
	tb := w.titleBarRect()
	x := tb.Right() - titleButtonMargin - titleButtonSize
	y := tb.Y + (tb.Height-titleButtonSize)/2
	return NewRect(x, y, titleButtonSize, titleButtonSize)
}

// overTitleButton reports whether the screen point lands on one of the
// title-bar buttons. The desktop uses it to keep clicks on them from
// starting a drag.
func (w *Window) overTitleButton(x, y int) bool {
	return w.minimizeButtonRect().Contains(x, y) || w.maximizeButtonRect().Contains(x, y)
}

func (w *Window) paint(e *PaintEvent) {
	sb := w.ScreenBounds()

	// Window chrome: 2px raised frame around a face fill.
	e.G.FillBorder(sb, BorderWindow)

	// Title bar: blue when focused, dark gray when not.
	tb := w.titleBarRect()
	titleColor := DarkGray
	if w.focused {
		titleColor = DarkBlue
	}
	e.G.FillRect(tb, titleColor)
	if w.title != "" && w.font != nil {
		e.G.Text(w.title, w.font, tb.X+4, tb.Y+tb.Height-6, White)
	}

	w.paintMinimizeButton(e.G, w.minimizeButtonRect())
	w.paintMaximizeButton(e.G, w.maximizeButtonRect(), w.state == WindowMaximized)

	// Client area with a sunken border.
	client := NewRect(sb.X+2, sb.Y+windowTitleBarHeight+2,
		sb.Width-4, sb.Height-windowTitleBarHeight-4)
	e.G.FillBorder(client, BorderSunken)
}

// paintMinimizeButton draws a raised box with a dash glyph.
func (w *Window) paintMinimizeButton(g Graphics, r Rect) {
	g.FillBorder(r, BorderRaisedDouble)
	g.Line(r.X+3, r.Bottom()-4, r.Right()-4, r.Bottom()-4, Black)
}

// paintMaximizeButton draws a raised box with a maximize (or smaller
// restore) square glyph.
func (w *Window) paintMaximizeButton(g Graphics, r Rect, restoreGlyph bool) {
	g.FillBorder(r, BorderRaisedDouble)
	glyph := NewRect(r.X+3, r.Y+3, r.Width-6, r.Height-6)
	if restoreGlyph {
		glyph = NewRect(r.X+4, r.Y+4, r.Width-8, r.Height-8)
	}
	g.Line(glyph.X, glyph.Y, glyph.Right()-1, glyph.Y, Black)
	g.Line(glyph.X, glyph.Bottom()-1, glyph.Right()-1, glyph.Bottom()-1, Black)
	g.Line(glyph.X, glyph.Y, glyph.X, glyph.Bottom()-1, Black)
	g.Line(glyph.Right()-1, glyph.Y, glyph.Right()-1, glyph.Bottom()-1, Black)
}

// handleMouse runs the title-bar button state machines: a click fires on
// release while still over the button. Focus and dragging are managed by
// the desktop before events reach the window.
func (w *Window) handleMouse(ev MouseEvent) {
	overMin := w.minimizeButtonRect().Contains(ev.X, ev.Y)
	overMax := w.maximizeButtonRect().Contains(ev.X, ev.Y)

	if w.minWasDown && !ev.Left && overMin {
		w.Minimize()
	}
	if w.maxWasDown && !ev.Left && overMax {
		if w.state == WindowMaximized {
			w.Restore()
		} else {
			w.Maximize()
		}
	}

	w.minWasDown = ev.Left && overMin
	w.maxWasDown = ev.Left && overMax
}
