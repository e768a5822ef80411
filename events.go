package desk

// MouseEvent is a pointer snapshot dispatched into the control tree.
// X and Y are screen coordinates.
type MouseEvent struct {
	X, Y  int
	Left  bool
	Right bool
}

// KeyEvent is a key press dispatched into the control tree. Keyboard
// events have no spatial target: every control sees them, and a focused
// control distinguishes itself internally.
type KeyEvent struct {
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

// PaintEvent carries the drawing context and the clip rectangle a
// control may paint within. Clip is a plain axis-aligned rectangle in
// screen coordinates; there are no arbitrary clip regions.
type PaintEvent struct {
	G    Graphics
	Clip Rect
}

// KeyEscape is the rune delivered for the Escape key.
const KeyEscape rune = 27
