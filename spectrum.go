package desk

import "image/color"

// Spectrum is a vertical gradient strip running white at the top,
// through a base color at the middle, to black at the bottom. The
// per-row colors are cached and rebuilt only when the base color or the
// height changes, so painting and sampling are table lookups.
type Spectrum struct {
	Control

	base color.RGBA
	rows []color.RGBA
}

// NewSpectrum creates a spectrum strip as a child of parent.
func NewSpectrum(parent *Control, bounds Rect, base color.RGBA) *Spectrum {
	s := &Spectrum{base: base}
	s.init(s, bounds)
	s.paintSelf = s.paint
	s.preferred = func() Size { return s.bounds.Size() }
	if parent != nil {
		parent.AddChild(&s.Control)
	}
	return s
}

// Base returns the middle color of the gradient.
func (s *Spectrum) Base() color.RGBA {
	return s.base
}

// SetBase changes the middle color and drops the cache.
func (s *Spectrum) SetBase(c color.RGBA) {
	if s.base == c {
		return
	}
	s.base = c
	s.rows = nil
	s.Invalidate()
}

// ColorAtY samples the gradient at a row relative to the control's top.
// Rows outside the strip clamp to the nearest end.
func (s *Spectrum) ColorAtY(y int) color.RGBA {
	s.ensureRows()
	if len(s.rows) == 0 {
		return s.base
	}
	if y < 0 {
		y = 0
	}
	if y >= len(s.rows) {
		y = len(s.rows) - 1
	}
	return s.rows[y]
}

// ensureRows rebuilds the row cache for the current height. The top
// half blends white down to the base color, the bottom half blends the
// base color down to black.
func (s *Spectrum) ensureRows() {
	h := s.bounds.Height
	if h <= 0 {
		s.rows = nil
		return
	}
	if len(s.rows) == h {
		return
	}
	s.rows = make([]color.RGBA, h)
	half := h / 2
	for y := 0; y < h; y++ {
		if y < half {
			s.rows[y] = Lerp(White, s.base, float64(y)/float64(half))
		} else if h-half > 1 {
			s.rows[y] = Lerp(s.base, Black, float64(y-half)/float64(h-half-1))
		} else {
			s.rows[y] = s.base
		}
	}
}

func (s *Spectrum) paint(e *PaintEvent) {
	s.ensureRows()
	sb := s.ScreenBounds()
	for y, c := range s.rows {
		e.G.Line(sb.X, sb.Y+y, sb.Right()-1, sb.Y+y, c)
	}
}
