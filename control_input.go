package desk

// HitTest reports whether the screen-space point (x, y) falls inside
// this control. It is a plain rectangle test; there is no per-pixel
// transparency check at this layer. Hidden controls never hit.
func (c *Control) HitTest(x, y int) bool {
	return c.visible && c.ScreenBounds().Contains(x, y)
}

// NotifyMouse delivers a mouse event into the subtree. Children are
// tried in reverse sibling order (last added is topmost) and the event
// goes to the first child whose HitTest succeeds; if none match, this
// control handles it itself. This recursive-first, self-fallback order
// implements implicit z-order for event delivery without consulting the
// spatial grid.
func (c *Control) NotifyMouse(ev MouseEvent) {
	for i := len(c.children) - 1; i >= 0; i-- {
		child := c.children[i]
		if child.HitTest(ev.X, ev.Y) {
			child.NotifyMouse(ev)
			return
		}
	}
	c.OnMouse(ev)
}

// NotifyKeyboard broadcasts a key event to every child and then to this
// control itself. Keyboard has no spatial target; a focused control
// distinguishes itself internally.
func (c *Control) NotifyKeyboard(ev KeyEvent) {
	for _, child := range c.children {
		child.NotifyKeyboard(ev)
	}
	c.OnKeyboard(ev)
}

// OnMouse invokes the control's mouse hook, if bound.
func (c *Control) OnMouse(ev MouseEvent) {
	if c.onMouse != nil {
		c.onMouse(ev)
	}
}

// OnKeyboard invokes the control's keyboard hook, if bound.
func (c *Control) OnKeyboard(ev KeyEvent) {
	if c.onKey != nil {
		c.onKey(ev)
	}
}
