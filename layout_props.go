package desk

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	// Column lays children out top-to-bottom (default).
	Column Direction = iota
	// Row lays children out left-to-right.
	Row
)

// Wrap specifies whether children flow onto new lines when they overrun
// the container's main axis.
type Wrap uint8

const (
	// NoWrap keeps all children on a single line (default).
	NoWrap Wrap = iota
	// WrapLines starts a new line when the next child would overrun the
	// container's main-axis size. Wrapped lines are placed with a single
	// forward pass: JustifyContent and FlexGrow do not apply to them.
	WrapLines
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	// JustifyStart packs children at the start of the main axis (default).
	JustifyStart Justify = iota
	// JustifyCenter centers children along the main axis.
	JustifyCenter
	// JustifyEnd packs children at the end of the main axis.
	JustifyEnd
	// JustifySpaceBetween distributes extra space between children; the
	// first child sits at the content origin and the last at the content end.
	JustifySpaceBetween
	// JustifySpaceAround injects equal space before and after every child.
	JustifySpaceAround
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	// AlignStretch sizes children to fill the cross axis (default).
	AlignStretch Align = iota
	// AlignStart aligns children to the start of the cross axis.
	AlignStart
	// AlignCenter centers children on the cross axis.
	AlignCenter
	// AlignEnd aligns children to the end of the cross axis.
	AlignEnd
)

// SizeMode specifies how one axis of a control's size is determined.
type SizeMode uint8

const (
	// SizeAuto sizes the control from its content and children (default).
	SizeAuto SizeMode = iota
	// SizeFixed keeps the control's explicitly assigned size.
	SizeFixed
	// SizeFill expands the control to the available space in its parent.
	SizeFill
)

// maxDimension is the default upper clamp for a control axis.
const maxDimension = 1 << 15

// LayoutProperties is the flex configuration embedded in every Control.
// It is a value type with no identity; it is copied with its owning control.
type LayoutProperties struct {
	// Container properties (used when this control has children)
	Direction      Direction
	Wrap           Wrap
	JustifyContent Justify
	AlignItems     Align
	Gap            int

	// Item properties (used when this control sits in a flex container)
	FlexGrow   int
	FlexShrink int

	// Sizing
	WidthMode  SizeMode
	HeightMode SizeMode
	MinWidth   int
	MinHeight  int
	MaxWidth   int
	MaxHeight  int

	// Spacing
	Margin  Edges
	Padding Edges

	// Behavior flags. A control with ParticipatesInLayout false is never
	// repositioned by its parent's Arrange pass (floating windows, popups).
	ParticipatesInLayout bool
	// AlwaysOnTop promotes the control to the upper paint tier of the
	// desktop. ZIndex is informational; paint order is sibling order
	// within a tier.
	AlwaysOnTop bool
	ZIndex      int

	needsLayout bool
}

// DefaultLayoutProperties returns a LayoutProperties with the defaults
// every new control starts from.
func DefaultLayoutProperties() LayoutProperties {
	return LayoutProperties{
		Direction:            Column,
		JustifyContent:       JustifyStart,
		AlignItems:           AlignStretch,
		FlexShrink:           1,
		MaxWidth:             maxDimension,
		MaxHeight:            maxDimension,
		ParticipatesInLayout: true,
		needsLayout:          true,
	}
}

// SetDirection sets the layout direction for children.
func (l *LayoutProperties) SetDirection(d Direction) *LayoutProperties {
	l.Direction = d
	return l
}

// SetWrap sets the wrap policy for children.
func (l *LayoutProperties) SetWrap(w Wrap) *LayoutProperties {
	l.Wrap = w
	return l
}

// SetJustifyContent sets the main-axis distribution.
func (l *LayoutProperties) SetJustifyContent(j Justify) *LayoutProperties {
	l.JustifyContent = j
	return l
}

// SetAlignItems sets the cross-axis alignment.
func (l *LayoutProperties) SetAlignItems(a Align) *LayoutProperties {
	l.AlignItems = a
	return l
}

// SetGap sets the space between children on the main axis.
func (l *LayoutProperties) SetGap(g int) *LayoutProperties {
	l.Gap = g
	return l
}

// SetFlexGrow sets the proportional share of leftover main-axis space.
func (l *LayoutProperties) SetFlexGrow(g int) *LayoutProperties {
	l.FlexGrow = g
	return l
}

// SetFlexShrink sets the proportional shrink factor.
func (l *LayoutProperties) SetFlexShrink(s int) *LayoutProperties {
	l.FlexShrink = s
	return l
}

// SetWidthMode sets how the control's width is determined.
func (l *LayoutProperties) SetWidthMode(m SizeMode) *LayoutProperties {
	l.WidthMode = m
	return l
}

// SetHeightMode sets how the control's height is determined.
func (l *LayoutProperties) SetHeightMode(m SizeMode) *LayoutProperties {
	l.HeightMode = m
	return l
}

// SetMinSize sets the minimum size clamps.
func (l *LayoutProperties) SetMinSize(w, h int) *LayoutProperties {
	l.MinWidth = w
	l.MinHeight = h
	return l
}

// SetMaxSize sets the maximum size clamps.
func (l *LayoutProperties) SetMaxSize(w, h int) *LayoutProperties {
	l.MaxWidth = w
	l.MaxHeight = h
	return l
}

// SetMargin sets the outer spacing on all four sides.
func (l *LayoutProperties) SetMargin(e Edges) *LayoutProperties {
	l.Margin = e
	return l
}

// SetPadding sets the inner spacing on all four sides.
func (l *LayoutProperties) SetPadding(e Edges) *LayoutProperties {
	l.Padding = e
	return l
}

// SetParticipatesInLayout marks the control as laid out by its parent
// (true) or floating (false).
func (l *LayoutProperties) SetParticipatesInLayout(p bool) *LayoutProperties {
	l.ParticipatesInLayout = p
	return l
}

// SetAlwaysOnTop moves the control to the upper desktop paint tier.
func (l *LayoutProperties) SetAlwaysOnTop(v bool) *LayoutProperties {
	l.AlwaysOnTop = v
	return l
}

// SetZIndex records an informational z value. Paint order is decided by
// sibling order and the AlwaysOnTop tier, not by this number.
func (l *LayoutProperties) SetZIndex(z int) *LayoutProperties {
	l.ZIndex = z
	return l
}

// clampWidth clamps w to [MinWidth, MaxWidth].
func (l *LayoutProperties) clampWidth(w int) int {
	if w < l.MinWidth {
		w = l.MinWidth
	}
	if w > l.MaxWidth {
		w = l.MaxWidth
	}
	return w
}

// clampHeight clamps h to [MinHeight, MaxHeight].
func (l *LayoutProperties) clampHeight(h int) int {
	if h < l.MinHeight {
		h = l.MinHeight
	}
	if h > l.MaxHeight {
		h = l.MaxHeight
	}
	return h
}

// MeasureResult is the preferred size computed by the Measure pass.
// It is valid only between a Measure call and its matching Arrange call.
type MeasureResult struct {
	PreferredWidth  int
	PreferredHeight int
}
