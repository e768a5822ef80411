package desk

import (
	"image"
	"image/draw"
)

// cursorSize bounds the cursor image and its save-under buffer.
const cursorSize = 24

// The cursor is composited straight onto the frame surface after
// everything else has painted. Before drawing, the pixels under it are
// copied aside so a cursor-only frame can restore them instead of
// repainting the scene.

// restoreCursorUnder puts back the pixels the last drawCursor covered.
func (d *Desktop) restoreCursorUnder() {
	if !d.cursorSaved {
		return
	}
	d.cursorSaved = false
	dst := d.display.Surface()
	r := image.Rect(d.cursorPos.X, d.cursorPos.Y,
		d.cursorPos.X+cursorSize, d.cursorPos.Y+cursorSize)
	draw.Draw(dst, r, d.cursorSave, image.Point{}, draw.Src)
}

// drawCursor saves the pixels under (x, y) and draws the cursor there.
func (d *Desktop) drawCursor(x, y int) {
	dst := d.display.Surface()

	if d.cursorSave == nil {
		d.cursorSave = image.NewRGBA(image.Rect(0, 0, cursorSize, cursorSize))
	}
	draw.Draw(d.cursorSave, d.cursorSave.Bounds(), dst, image.Pt(x, y), draw.Src)
	d.cursorPos = Point{X: x, Y: y}
	d.cursorSaved = true

	if d.cursorImg != nil {
		g := d.display.Graphics()
		g.BlitAlpha(d.cursorImg, x, y, d.ScreenBounds())
		return
	}
	d.drawArrowCursor(x, y)
}

// drawArrowCursor draws the built-in arrow: a white-filled,
// black-outlined wedge pointing at (x, y).
func (d *Desktop) drawArrowCursor(x, y int) {
	g := d.display.Graphics()
	// Wedge rows widen by one pixel per scanline for the first half,
	// then taper into the tail.
	for row := 0; row < 11; row++ {
		width := row + 1
		if width > 7 {
			width = 7
		}
		g.Line(x, y+row, x+width-1, y+row, White)
	}
	g.Line(x, y, x, y+11, Black)
	g.Line(x, y, x+7, y+7, Black)
	g.Line(x+4, y+8, x+7, y+7, Black)
	g.Line(x+4, y+8, x+5, y+11, Black)
}
