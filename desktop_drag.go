package desk

import (
	"image"
	"image/draw"
)

// Window dragging never moves the real window. On drag start the
// window's pixels are captured from the frame surface and the window is
// hidden; every drag frame blits the captured bitmap at the pointer.
// The window's bounds change exactly once, on release. Observers of the
// tree never see an intermediate position.

// beginDrag captures the window image and enters drag mode.
func (d *Desktop) beginDrag(w *Window, mouse MouseState) {
	sb := w.ScreenBounds()
	d.dragTarget = w
	d.dragOffset = Point{X: mouse.X - sb.X, Y: mouse.Y - sb.Y}
	d.dragPos = Point{X: sb.X, Y: sb.Y}
	d.dragMoved = false
	d.dragBitmap = d.captureWindowBitmap(sb)

	w.SetVisible(false)
	d.updateSpatialGrid()
	d.Invalidate()
}

// advanceDrag moves the floating bitmap with the pointer and commits the
// new bounds when the button is released.
func (d *Desktop) advanceDrag(mouse MouseState) {
	d.dragPos = Point{X: mouse.X - d.dragOffset.X, Y: mouse.Y - d.dragOffset.Y}
	d.dragMoved = d.dragMoved ||
		mouse.X != d.lastMouse.X || mouse.Y != d.lastMouse.Y
	if mouse.Left {
		return
	}

	w := d.dragTarget
	d.dragTarget = nil
	d.dragBitmap = nil

	w.SetVisible(true)
	if d.dragMoved {
		b := w.Bounds()
		w.SetBounds(NewRect(d.dragPos.X, d.dragPos.Y, b.Width, b.Height))
	}
	d.updateSpatialGrid()
	d.Invalidate()
}

// cancelDrag abandons a drag without committing bounds. Used when the
// loop stops mid-drag.
func (d *Desktop) cancelDrag() {
	if d.dragTarget == nil {
		return
	}
	w := d.dragTarget
	d.dragTarget = nil
	d.dragBitmap = nil
	w.SetVisible(true)
	d.updateSpatialGrid()
	d.Invalidate()
}

// captureWindowBitmap copies the window's pixels out of the frame
// surface, after putting back whatever the cursor was drawn over.
func (d *Desktop) captureWindowBitmap(sb Rect) *image.RGBA {
	d.restoreCursorUnder()
	bmp := image.NewRGBA(image.Rect(0, 0, sb.Width, sb.Height))
	draw.Draw(bmp, bmp.Bounds(), d.display.Surface(), image.Pt(sb.X, sb.Y), draw.Src)
	return bmp
}

// drawDragBitmap blits the captured window at the current drag position.
func (d *Desktop) drawDragBitmap() {
	if d.dragBitmap == nil {
		return
	}
	g := d.display.Graphics()
	g.Blit(d.dragBitmap, d.dragPos.X, d.dragPos.Y, d.ScreenBounds())
}
