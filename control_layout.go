package desk

// Two-pass layout: Measure walks bottom-up computing preferred sizes for
// an available-space budget, Arrange walks top-down assigning final
// bounds. The two passes are explicitly triggered (PerformLayout) and are
// separate from painting.

// GetPreferredSize returns the control's natural content-based size.
// Leaf specializations bind the preferred hook (a picture reports its
// image dimensions); the default falls back to the current bounds
// clamped to the minimum size.
func (c *Control) GetPreferredSize() Size {
	if c.preferred != nil {
		return c.preferred()
	}
	w := c.bounds.Width
	h := c.bounds.Height
	if w < c.layout.MinWidth {
		w = c.layout.MinWidth
	}
	if h < c.layout.MinHeight {
		h = c.layout.MinHeight
	}
	return Size{Width: w, Height: h}
}

// Measure computes the control's preferred size given the available
// space, recursing into participating children first so that every
// child's measured size is valid before Arrange. The result is cached
// and clamped to the control's min/max.
func (c *Control) Measure(availableWidth, availableHeight int) MeasureResult {
	// Own margins come out of the budget first.
	avW := availableWidth - c.layout.Margin.Horizontal()
	avH := availableHeight - c.layout.Margin.Vertical()
	if avW < 0 {
		avW = 0
	}
	if avH < 0 {
		avH = 0
	}

	pad := c.layout.Padding

	// Children are measured unconditionally, even when this control's own
	// size is Fixed or Fill: their measured sizes must be valid before
	// Arrange regardless of this control's sizing mode.
	contentW, contentH := 0, 0
	participating := 0
	isRow := c.layout.Direction == Row

	for _, child := range c.children {
		if !child.layout.ParticipatesInLayout {
			continue
		}
		participating++

		childSize := child.Measure(avW-pad.Horizontal(), avH-pad.Vertical())
		cw := childSize.PreferredWidth + child.layout.Margin.Horizontal()
		ch := childSize.PreferredHeight + child.layout.Margin.Vertical()

		if isRow {
			contentW += cw
			if ch > contentH {
				contentH = ch
			}
		} else {
			contentH += ch
			if cw > contentW {
				contentW = cw
			}
		}
	}

	if participating > 1 {
		if isRow {
			contentW += c.layout.Gap * (participating - 1)
		} else {
			contentH += c.layout.Gap * (participating - 1)
		}
	}

	contentW += pad.Horizontal()
	contentH += pad.Vertical()

	var resultW, resultH int
	switch c.layout.WidthMode {
	case SizeFixed:
		resultW = c.bounds.Width
	case SizeFill:
		resultW = avW
	default:
		resultW = contentW
	}
	switch c.layout.HeightMode {
	case SizeFixed:
		resultH = c.bounds.Height
	case SizeFill:
		resultH = avH
	default:
		resultH = contentH
	}

	// A leaf with no accumulated content reports its own preferred size
	// on the Auto axes.
	if resultW == 0 && resultH == 0 {
		pref := c.GetPreferredSize()
		if c.layout.WidthMode == SizeAuto {
			resultW = pref.Width
		}
		if c.layout.HeightMode == SizeAuto {
			resultH = pref.Height
		}
	}

	c.measured = MeasureResult{
		PreferredWidth:  c.layout.clampWidth(resultW),
		PreferredHeight: c.layout.clampHeight(resultH),
	}
	return c.measured
}

// Arrange assigns the control its final bounds and positions its
// participating children inside the content rectangle (client area minus
// padding). Non-participating children are re-arranged with their own
// current bounds so their subtrees still get a layout pass without being
// repositioned.
func (c *Control) Arrange(finalBounds Rect) {
	c.bounds = finalBounds
	c.updateClientBounds()

	content := c.client.Inset(c.layout.Padding)
	if content.Width < 0 {
		content.Width = 0
	}
	if content.Height < 0 {
		content.Height = 0
	}

	if c.layout.Wrap == WrapLines {
		c.arrangeWrapped(content)
	} else {
		c.arrangeFlex(content)
	}

	for _, child := range c.children {
		if !child.layout.ParticipatesInLayout {
			child.Arrange(child.bounds)
		}
	}

	c.layout.needsLayout = false
}

// arrangeFlex is the non-wrapping path: one sizing pass over the
// participating children, then placement honoring JustifyContent,
// AlignItems, and FlexGrow.
func (c *Control) arrangeFlex(content Rect) {
	isRow := c.layout.Direction == Row
	gap := c.layout.Gap

	participating := 0
	totalMainSize := 0
	totalFlexGrow := 0

	for _, child := range c.children {
		if !child.layout.ParticipatesInLayout {
			continue
		}
		participating++
		mw := child.measured.PreferredWidth + child.layout.Margin.Horizontal()
		mh := child.measured.PreferredHeight + child.layout.Margin.Vertical()
		if isRow {
			totalMainSize += mw
		} else {
			totalMainSize += mh
		}
		totalFlexGrow += child.layout.FlexGrow
	}
	if participating > 1 {
		totalMainSize += gap * (participating - 1)
	}
	if participating == 0 {
		return
	}

	mainAxisSize := content.Height
	crossAxisSize := content.Width
	if isRow {
		mainAxisSize = content.Width
		crossAxisSize = content.Height
	}

	extraSpace := mainAxisSize - totalMainSize
	if extraSpace < 0 {
		extraSpace = 0
	}

	mainPos := 0
	spaceBetween := 0
	spaceAround := 0
	switch c.layout.JustifyContent {
	case JustifyEnd:
		mainPos = extraSpace
	case JustifyCenter:
		mainPos = extraSpace / 2
	case JustifySpaceBetween:
		if participating > 1 {
			spaceBetween = extraSpace / (participating - 1)
		}
	case JustifySpaceAround:
		spaceAround = extraSpace / (participating * 2)
		mainPos = spaceAround
	}

	for _, child := range c.children {
		if !child.layout.ParticipatesInLayout {
			continue
		}

		m := child.layout.Margin
		finalW := child.measured.PreferredWidth
		finalH := child.measured.PreferredHeight

		// Leftover space is distributed by integer division; remainder
		// pixels are left undistributed.
		grow := 0
		if totalFlexGrow > 0 && child.layout.FlexGrow > 0 && extraSpace > 0 {
			grow = extraSpace * child.layout.FlexGrow / totalFlexGrow
		}

		if isRow {
			finalW += grow
			if c.layout.AlignItems == AlignStretch {
				finalH = crossAxisSize - m.Vertical()
			}
		} else {
			finalH += grow
			if c.layout.AlignItems == AlignStretch {
				finalW = crossAxisSize - m.Horizontal()
			}
		}

		// A child can be grown past its preferred size but never past its
		// declared max.
		finalW = child.layout.clampWidth(finalW)
		finalH = child.layout.clampHeight(finalH)

		var childX, childY int
		if isRow {
			childX = content.X + mainPos + m.Left
			switch c.layout.AlignItems {
			case AlignEnd:
				childY = content.Y + crossAxisSize - finalH - m.Bottom
			case AlignCenter:
				childY = content.Y + (crossAxisSize-finalH-m.Vertical())/2 + m.Top
			default: // AlignStart, AlignStretch
				childY = content.Y + m.Top
			}
			mainPos += finalW + m.Horizontal() + gap + spaceBetween + spaceAround*2
		} else {
			childY = content.Y + mainPos + m.Top
			switch c.layout.AlignItems {
			case AlignEnd:
				childX = content.X + crossAxisSize - finalW - m.Right
			case AlignCenter:
				childX = content.X + (crossAxisSize-finalW-m.Horizontal())/2 + m.Left
			default:
				childX = content.X + m.Left
			}
			mainPos += finalH + m.Vertical() + gap + spaceBetween + spaceAround*2
		}

		child.Arrange(NewRect(childX, childY, finalW, finalH))
	}
}

// arrangeWrapped is the wrapping path: a single forward pass that starts
// a new line when the next child would overrun the main axis. Wrapped
// lines never apply JustifyContent or FlexGrow; children keep their
// measured sizes.
func (c *Control) arrangeWrapped(content Rect) {
	isRow := c.layout.Direction == Row
	gap := c.layout.Gap

	mainAxisSize := content.Height
	if isRow {
		mainAxisSize = content.Width
	}

	mainPos := 0
	crossPos := 0
	lineCross := 0
	onLine := 0

	for _, child := range c.children {
		if !child.layout.ParticipatesInLayout {
			continue
		}

		m := child.layout.Margin
		finalW := child.layout.clampWidth(child.measured.PreferredWidth)
		finalH := child.layout.clampHeight(child.measured.PreferredHeight)

		childMain := finalH + m.Vertical()
		childCross := finalW + m.Horizontal()
		if isRow {
			childMain = finalW + m.Horizontal()
			childCross = finalH + m.Vertical()
		}

		// Advance to a new line when this child would overrun and the
		// line already holds at least one child.
		if onLine > 0 && mainPos+childMain > mainAxisSize {
			crossPos += lineCross + gap
			mainPos = 0
			lineCross = 0
			onLine = 0
		}

		var childX, childY int
		if isRow {
			childX = content.X + mainPos + m.Left
			childY = content.Y + crossPos + m.Top
		} else {
			childX = content.X + crossPos + m.Left
			childY = content.Y + mainPos + m.Top
		}
		child.Arrange(NewRect(childX, childY, finalW, finalH))

		mainPos += childMain + gap
		if childCross > lineCross {
			lineCross = childCross
		}
		onLine++
	}
}

// PerformLayout runs Measure then Arrange over the control's current
// bounds if layout has been invalidated, and is a no-op otherwise.
func (c *Control) PerformLayout() {
	if !c.layout.needsLayout {
		return
	}
	c.Measure(c.bounds.Width, c.bounds.Height)
	c.Arrange(c.bounds)
}

// InvalidateLayout marks the control as needing a layout pass and also
// invalidates it visually.
func (c *Control) InvalidateLayout() {
	c.layout.needsLayout = true
	c.Invalidate()
}

// NeedsLayout reports whether a layout pass is pending.
func (c *Control) NeedsLayout() bool {
	return c.layout.needsLayout
}
