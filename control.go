package desk

// Control is the composable unit of the toolkit: a node in a strictly
// tree-shaped ownership graph. A parent owns its children; sibling order
// is paint order within a tier and reverse hit-test order.
//
// Specializations (Window, Button, TaskBar, ...) are built the Go way:
// they embed a Control and bind its behavior hooks, instead of overriding
// virtual methods. The owner back-reference identifies the wrapping
// specialization for the closed set of kinds the desktop cares about.
type Control struct {
	children []*Control
	parent   *Control

	bounds   Rect // relative to parent's client origin
	client   Rect // relative to own origin, excludes decoration
	visible  bool
	dirty    bool
	layout   LayoutProperties
	measured MeasureResult // valid only between Measure and Arrange

	// Behavior hooks, bound by specializations. All may be nil.
	paintSelf  func(e *PaintEvent) // decoration, before children
	onMouse    func(ev MouseEvent)
	onKey      func(ev KeyEvent)
	preferred  func() Size       // natural content size
	clientRect func(b Rect) Rect // client area from bounds
	onUpdate   func()            // once per frame, before paint

	owner any // wrapping specialization, nil for plain controls
}

// NewControl creates a plain container control with the given bounds
// (relative to its future parent's client origin).
func NewControl(bounds Rect) *Control {
	c := &Control{}
	c.init(nil, bounds)
	return c
}

// init wires a freshly created control. Called by NewControl and by every
// specialization constructor with its owner back-reference.
func (c *Control) init(owner any, bounds Rect) {
	c.bounds = bounds
	c.visible = true
	c.dirty = true
	c.layout = DefaultLayoutProperties()
	c.owner = owner
	c.updateClientBounds()
}

// Parent returns the owning control, or nil for a root.
func (c *Control) Parent() *Control {
	return c.parent
}

// ChildCount returns the number of children.
func (c *Control) ChildCount() int {
	return len(c.children)
}

// Child returns the child at index, or nil if out of range.
func (c *Control) Child(index int) *Control {
	if index < 0 || index >= len(c.children) {
		return nil
	}
	return c.children[index]
}

// Bounds returns the control's rectangle relative to the parent's client
// origin.
func (c *Control) Bounds() Rect {
	return c.bounds
}

// ClientBounds returns the decoration-free interior rectangle, relative
// to the control's own origin.
func (c *Control) ClientBounds() Rect {
	return c.client
}

// Visible reports whether the control is painted and hit-testable.
func (c *Control) Visible() bool {
	return c.visible
}

// SetVisible shows or hides the control (and, transitively, its subtree).
func (c *Control) SetVisible(v bool) {
	if c.visible == v {
		return
	}
	c.visible = v
	c.Invalidate()
}

// Layout returns the control's layout configuration for mutation.
func (c *Control) Layout() *LayoutProperties {
	return &c.layout
}

// Measured returns the size cached by the last Measure pass.
func (c *Control) Measured() MeasureResult {
	return c.measured
}

// SetBounds assigns externally controlled bounds (floating controls) and
// recomputes the client area.
func (c *Control) SetBounds(b Rect) {
	c.bounds = b
	c.updateClientBounds()
	c.Invalidate()
}

// updateClientBounds recomputes the client rectangle from the current
// bounds via the clientRect hook. The default client area is the full
// control with no decoration.
func (c *Control) updateClientBounds() {
	if c.clientRect != nil {
		c.client = c.clientRect(c.bounds)
		return
	}
	c.client = NewRect(0, 0, c.bounds.Width, c.bounds.Height)
}

// ScreenBounds returns the control's rectangle in absolute screen
// coordinates.
func (c *Control) ScreenBounds() Rect {
	if c.parent == nil {
		return c.bounds
	}
	pc := c.parent.ScreenClientBounds()
	return c.bounds.Translate(pc.X, pc.Y)
}

// ScreenClientBounds returns the client rectangle in absolute screen
// coordinates.
func (c *Control) ScreenClientBounds() Rect {
	sb := c.ScreenBounds()
	return c.client.Translate(sb.X, sb.Y)
}

// AddChild appends child to the end of the sibling order (topmost for
// hit testing, last in paint order) and takes ownership of it.
// Panics if child is nil or already owned by a parent.
func (c *Control) AddChild(child *Control) {
	if child == nil {
		panic("desk: AddChild of nil control")
	}
	if child.parent != nil {
		panic("desk: AddChild of a control that already has a parent; RemoveChild it first")
	}
	c.children = append(c.children, child)
	child.parent = c
	c.Invalidate()
}

// RemoveChild detaches child from the tree and releases ownership to the
// caller. It is a no-op if child is not a child of this control.
func (c *Control) RemoveChild(child *Control) {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.parent = nil
			c.Invalidate()
			return
		}
	}
}

// moveChildToEnd moves child to the end of the sibling order, making it
// the topmost sibling for painting and hit testing.
func (c *Control) moveChildToEnd(child *Control) {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.children = append(c.children, child)
			return
		}
	}
}

// Invalidate marks the control dirty and propagates unconditionally to
// the parent. Cheap and idempotent; may be called many times per frame.
func (c *Control) Invalidate() {
	c.dirty = true
	if c.parent != nil {
		c.parent.Invalidate()
	}
}

// IsDirty reports whether the control needs repainting.
func (c *Control) IsDirty() bool {
	return c.dirty
}
