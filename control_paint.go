package desk

// Paint draws this control's decoration and then its children. The event
// carries the clip rectangle the control was given by its parent;
// everything the subtree draws stays inside it.
func (c *Control) Paint(e *PaintEvent) {
	if !c.visible {
		return
	}
	if c.paintSelf != nil {
		c.paintSelf(e)
	}
	c.PaintClient(e)
	c.dirty = false
}

// PaintClient paints the visible children, each clipped to the
// intersection of this control's client rectangle in screen coordinates
// and the clip rectangle this control was itself given. A child whose
// bounds miss that clip entirely is skipped: not painted, not recursed
// into.
func (c *Control) PaintClient(e *PaintEvent) {
	clip := e.Clip.Intersect(c.ScreenClientBounds())
	if clip.IsEmpty() {
		return
	}
	for _, child := range c.children {
		if !child.visible {
			continue
		}
		if !clip.Intersects(child.ScreenBounds()) {
			continue
		}
		childEvent := PaintEvent{G: e.G, Clip: clip}
		child.Paint(&childEvent)
	}
}

// notifyUpdate runs per-frame update hooks over the subtree, depth
// first. The desktop calls this once per loop iteration before deciding
// whether to repaint.
func (c *Control) notifyUpdate() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
	for _, child := range c.children {
		child.notifyUpdate()
	}
}
