package desk

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Desktop is the root of the control tree and the window manager: it
// owns the taskbar, the start menu and every window, assigns focus,
// runs the frame loop and composites the mouse cursor.
type Desktop struct {
	Control

	display Display
	input   Input

	grid SpatialGrid

	font       font.Face
	background color.RGBA
	wallpaper  image.Image
	cursorImg  image.Image

	taskBar   *TaskBar
	startMenu *StartMenu
	focused   *Window

	running bool

	// Per-frame input edge detection and routing.
	lastMouse  MouseState
	lastTarget *Control

	// Drag machinery; see desktop_drag.go.
	dragTarget *Window
	dragBitmap *image.RGBA
	dragOffset Point
	dragPos    Point
	dragMoved  bool

	// Cursor save-under buffer; see desktop_cursor.go.
	cursorSave  *image.RGBA
	cursorPos   Point
	cursorSaved bool

	// Next auto-placement slot for AddIcon.
	iconSlot int
}

// DesktopOption configures a Desktop at construction.
type DesktopOption func(d *Desktop)

// WithFont sets the font windows, buttons and menus inherit.
func WithFont(f font.Face) DesktopOption {
	return func(d *Desktop) { d.font = f }
}

// WithBackground sets the desktop fill color.
func WithBackground(c color.RGBA) DesktopOption {
	return func(d *Desktop) { d.background = c }
}

// WithWallpaper sets an image painted centered over the background.
func WithWallpaper(img image.Image) DesktopOption {
	return func(d *Desktop) { d.wallpaper = img }
}

// WithCursor sets the mouse cursor image. Without it a small arrow is
// drawn directly.
func WithCursor(img image.Image) DesktopOption {
	return func(d *Desktop) { d.cursorImg = img }
}

// NewDesktop creates a desktop filling the display, with its taskbar
// and start menu. Panics if display is nil.
func NewDesktop(display Display, input Input, opts ...DesktopOption) *Desktop {
	if display == nil {
		panic("desk: NewDesktop requires a display")
	}
	w, h := display.Size()
	d := &Desktop{
		display:    display,
		input:      input,
		background: Teal,
	}
	d.init(d, NewRect(0, 0, w, h))
	d.paintSelf = d.paintBackground
	for _, opt := range opts {
		opt(d)
	}

	d.grid.Initialize(w, h)
	d.taskBar = newTaskBar(d)
	d.startMenu = newStartMenu(d)
	d.updateSpatialGrid()
	return d
}

// TaskBar returns the desktop's taskbar.
func (d *Desktop) TaskBar() *TaskBar {
	return d.taskBar
}

// StartMenu returns the desktop's start menu.
func (d *Desktop) StartMenu() *StartMenu {
	return d.startMenu
}

// Font returns the desktop's default font.
func (d *Desktop) Font() font.Face {
	return d.font
}

// SetWallpaper sets (or clears) the centered wallpaper image.
func (d *Desktop) SetWallpaper(img image.Image) {
	d.wallpaper = img
	d.Invalidate()
}

// WorkArea is the desktop region windows may occupy: the screen minus
// the taskbar strip at the bottom.
func (d *Desktop) WorkArea() Rect {
	return NewRect(0, 0, d.bounds.Width, d.bounds.Height-taskBarHeight)
}

// addChild takes ownership of a top-level control. Windows additionally
// get a taskbar button and focus.
func (d *Desktop) addChild(c *Control) {
	d.AddChild(c)
	if w := windowOf(c); w != nil {
		d.taskBar.addWindowButton(w)
		d.SetFocusedWindow(w)
		return
	}
	d.updateSpatialGrid()
}

// RemoveWindow detaches a window from the desktop and drops its taskbar
// button.
func (d *Desktop) RemoveWindow(w *Window) {
	if w == nil {
		return
	}
	if d.focused == w {
		d.SetFocusedWindow(nil)
	}
	d.RemoveChild(&w.Control)
	d.taskBar.removeWindowButton(w)
	d.updateSpatialGrid()
	d.Invalidate()
}

// FocusedWindow returns the window holding input focus, or nil.
func (d *Desktop) FocusedWindow() *Window {
	return d.focused
}

// SetFocusedWindow gives w input focus, raises it to the top of the
// sibling order and rebuilds the hit-test grid. Passing nil clears
// focus.
func (d *Desktop) SetFocusedWindow(w *Window) {
	if d.focused == w {
		return
	}
	if d.focused != nil {
		d.focused.focused = false
		d.focused.Invalidate()
	}
	d.focused = w
	if w != nil {
		w.focused = true
		d.moveChildToEnd(&w.Control)
		w.Invalidate()
	}
	d.updateSpatialGrid()
	d.taskBar.refreshPressed()
	d.Invalidate()
}

// updateSpatialGrid rebuilds the hit-test acceleration grid from the
// visible windows, in child order so later (topmost) windows come last
// in every cell.
func (d *Desktop) updateSpatialGrid() {
	d.grid.Clear()
	for _, c := range d.children {
		if !c.visible {
			continue
		}
		if windowOf(c) == nil {
			continue
		}
		d.grid.Insert(c, c.ScreenBounds())
	}
}

// hitTest resolves a screen point to the topmost control under it,
// honoring the paint tiers: start menu, then taskbar, then always-on-top
// controls, then windows via the spatial grid with a linear fallback for
// everything else.
func (d *Desktop) hitTest(x, y int) *Control {
	if d.startMenu.Visible() && d.startMenu.HitTest(x, y) {
		return &d.startMenu.Control
	}
	if d.taskBar.HitTest(x, y) {
		return &d.taskBar.Control
	}
	for i := len(d.children) - 1; i >= 0; i-- {
		c := d.children[i]
		if c.layout.AlwaysOnTop && c != &d.taskBar.Control && c != &d.startMenu.Control && c.HitTest(x, y) {
			return c
		}
	}
	if c := d.grid.HitTest(x, y); c != nil {
		return c
	}
	// Grid cells drop controls past their capacity, and non-window
	// children (icons) are never inserted. A linear scan catches both.
	for i := len(d.children) - 1; i >= 0; i-- {
		c := d.children[i]
		if c == &d.taskBar.Control || c == &d.startMenu.Control {
			continue
		}
		if c.HitTest(x, y) {
			return c
		}
	}
	return nil
}

// Icon auto-placement: columns of slots flowing top to bottom, then to
// the next column to the right.
const (
	iconMarginX = 20
	iconMarginY = 16
	iconStepX   = 75
	iconStepY   = 70
)

// AddIcon creates a desktop icon at the next free auto-placement slot.
func (d *Desktop) AddIcon(label string, img image.Image, onOpen func()) *DesktopIcon {
	work := d.WorkArea()
	perColumn := (work.Height - iconMarginY*2) / iconStepY
	if perColumn < 1 {
		perColumn = 1
	}
	col := d.iconSlot / perColumn
	row := d.iconSlot % perColumn
	d.iconSlot++

	bounds := NewRect(
		iconMarginX+col*iconStepX,
		iconMarginY+row*iconStepY,
		iconCellWidth,
		iconCellHeight,
	)
	return newDesktopIcon(d, bounds, label, img, onOpen)
}

// Paint repaints the whole desktop in tiers: background, normal
// children, always-on-top children, taskbar, start menu. It shadows
// Control.Paint to impose this order on its direct children; deeper
// subtrees paint in plain sibling order.
func (d *Desktop) Paint(e *PaintEvent) {
	if !d.visible {
		return
	}
	d.paintBackground(e)

	clip := e.Clip.Intersect(d.ScreenClientBounds())
	if clip.IsEmpty() {
		d.dirty = false
		return
	}

	d.paintTier(e.G, clip, func(c *Control) bool {
		return !c.layout.AlwaysOnTop
	})
	d.paintTier(e.G, clip, func(c *Control) bool {
		return c.layout.AlwaysOnTop
	})
	d.taskBar.Paint(&PaintEvent{G: e.G, Clip: clip})
	if d.startMenu.Visible() {
		d.startMenu.Paint(&PaintEvent{G: e.G, Clip: clip})
	}
	d.dirty = false
}

// paintTier paints the direct children selected by keep, in sibling
// order, skipping the tier-managed taskbar and start menu.
func (d *Desktop) paintTier(g Graphics, clip Rect, keep func(c *Control) bool) {
	for _, c := range d.children {
		if c == &d.taskBar.Control || c == &d.startMenu.Control {
			continue
		}
		if !c.visible || !keep(c) {
			continue
		}
		if !c.ScreenBounds().Intersects(clip) {
			continue
		}
		c.Paint(&PaintEvent{G: g, Clip: clip})
	}
}

func (d *Desktop) paintBackground(e *PaintEvent) {
	sb := d.ScreenBounds()
	e.G.FillRect(sb, d.background)
	if d.wallpaper != nil {
		wb := d.wallpaper.Bounds()
		x := sb.X + (sb.Width-wb.Dx())/2
		y := sb.Y + (sb.Height-wb.Dy())/2
		e.G.Blit(d.wallpaper, x, y, sb)
	}
}
