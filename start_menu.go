package desk

const (
	startMenuWidth      = 160
	startMenuSidebar    = 24
	startMenuItemHeight = 24
	startMenuMaxItems   = 12
	startMenuFrame      = 2
)

// StartMenu is the popup anchored above the start button. It is hidden
// until the start button (or Toggle) shows it, and any press outside it
// dismisses it. It paints above everything else on the desktop.
type StartMenu struct {
	Control

	desktop *Desktop
	items   []*MenuItem
	hovered *MenuItem
}

// newStartMenu is called once by NewDesktop. The menu starts hidden and
// empty; its bounds are recomputed from the item count on Show.
func newStartMenu(d *Desktop) *StartMenu {
	m := &StartMenu{desktop: d}
	m.init(m, NewRect(0, 0, startMenuWidth, startMenuFrame*2))
	m.paintSelf = m.paint
	m.onMouse = func(ev MouseEvent) {
		// Reached only when no item contains the pointer.
		m.setHovered(nil)
	}
	m.layout.ParticipatesInLayout = false
	m.layout.AlwaysOnTop = true
	m.visible = false
	d.AddChild(&m.Control)
	return m
}

// AddItem appends a selectable entry. The handler runs after the menu
// hides itself. Panics when the menu is full.
func (m *StartMenu) AddItem(text string, onSelect func()) *MenuItem {
	if len(m.items) >= startMenuMaxItems {
		panic("desk: start menu is full")
	}
	it := newMenuItem(m, m.itemBounds(len(m.items)), text, onSelect)
	m.items = append(m.items, it)
	m.layoutItems()
	return it
}

// ItemCount returns the number of entries.
func (m *StartMenu) ItemCount() int {
	return len(m.items)
}

// itemBounds returns the slot for item index i, relative to the menu.
func (m *StartMenu) itemBounds(i int) Rect {
	return NewRect(
		startMenuFrame+startMenuSidebar,
		startMenuFrame+i*startMenuItemHeight,
		startMenuWidth-startMenuSidebar-startMenuFrame*2,
		startMenuItemHeight,
	)
}

// layoutItems resizes the menu to its item count and re-anchors it just
// above the taskbar.
func (m *StartMenu) layoutItems() {
	height := len(m.items)*startMenuItemHeight + startMenuFrame*2
	work := m.desktop.WorkArea()
	m.SetBounds(NewRect(0, work.Bottom()-height, startMenuWidth, height))
	for i, it := range m.items {
		it.SetBounds(m.itemBounds(i))
	}
}

// Show opens the menu and presses the start button.
func (m *StartMenu) Show() {
	if m.visible {
		return
	}
	m.layoutItems()
	m.SetVisible(true)
	m.desktop.taskBar.startButton.SetPressed(true)
}

// Hide closes the menu, clears the hover highlight and releases the
// start button.
func (m *StartMenu) Hide() {
	if !m.visible {
		return
	}
	m.setHovered(nil)
	m.SetVisible(false)
	m.desktop.taskBar.startButton.SetPressed(false)
}

// Toggle shows a hidden menu and hides a visible one.
func (m *StartMenu) Toggle() {
	if m.visible {
		m.Hide()
		return
	}
	m.Show()
}

// setHovered moves the hover highlight to it (or clears it for nil).
func (m *StartMenu) setHovered(it *MenuItem) {
	if m.hovered == it {
		return
	}
	if m.hovered != nil {
		m.hovered.hovered = false
		m.hovered.Invalidate()
	}
	m.hovered = it
	if it != nil {
		it.hovered = true
		it.Invalidate()
	}
}

func (m *StartMenu) paint(e *PaintEvent) {
	sb := m.ScreenBounds()
	e.G.FillBorder(sb, BorderRaisedDouble)
	// Sidebar band down the left edge.
	e.G.FillRect(NewRect(sb.X+startMenuFrame, sb.Y+startMenuFrame,
		startMenuSidebar, sb.Height-startMenuFrame*2), DarkBlue)
}

// MenuItem is one selectable row of the start menu, highlighted while
// hovered.
type MenuItem struct {
	Control

	menu     *StartMenu
	text     string
	hovered  bool
	wasDown  bool
	onSelect func()
}

func newMenuItem(m *StartMenu, bounds Rect, text string, onSelect func()) *MenuItem {
	it := &MenuItem{menu: m, text: text, onSelect: onSelect}
	it.init(it, bounds)
	it.paintSelf = it.paint
	it.onMouse = it.handleMouse
	m.AddChild(&it.Control)
	return it
}

// Text returns the item label.
func (it *MenuItem) Text() string {
	return it.text
}

func (it *MenuItem) handleMouse(ev MouseEvent) {
	over := it.HitTest(ev.X, ev.Y)
	if over {
		it.menu.setHovered(it)
	}

	if it.wasDown && !ev.Left && over {
		it.menu.Hide()
		if it.onSelect != nil {
			it.onSelect()
		}
	}
	it.wasDown = ev.Left && over
}

func (it *MenuItem) paint(e *PaintEvent) {
	sb := it.ScreenBounds()
	bg, fg := FaceGray, Black
	if it.hovered {
		bg, fg = DarkBlue, White
	}
	e.G.FillRect(sb, bg)
	if f := it.menu.desktop.font; f != nil && it.text != "" {
		e.G.Text(it.text, f, sb.X+8, sb.Y+sb.Height/2+4, fg)
	}
}
