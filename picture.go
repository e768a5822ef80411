package desk

import "image"

// Picture is a passive control showing an image, centered in its
// bounds and clipped to them.
type Picture struct {
	Control

	img    image.Image
	border bool
}

// NewPicture creates a picture as a child of parent.
func NewPicture(parent *Control, bounds Rect, img image.Image) *Picture {
	p := &Picture{img: img}
	p.init(p, bounds)
	p.paintSelf = p.paint
	p.preferred = p.preferredSize
	if parent != nil {
		parent.AddChild(&p.Control)
	}
	return p
}

// SetImage replaces the displayed image.
func (p *Picture) SetImage(img image.Image) {
	p.img = img
	p.Invalidate()
}

// SetBorder toggles a sunken border around the picture.
func (p *Picture) SetBorder(on bool) {
	p.border = on
	p.Invalidate()
}

// preferredSize is the image size plus the border, so an auto-sized
// parent wraps the picture exactly.
func (p *Picture) preferredSize() Size {
	if p.img == nil {
		return p.bounds.Size()
	}
	b := p.img.Bounds()
	w, h := b.Dx(), b.Dy()
	if p.border {
		w += 2
		h += 2
	}
	return Size{Width: w, Height: h}
}

func (p *Picture) paint(e *PaintEvent) {
	sb := p.ScreenBounds()
	if p.border {
		e.G.FillBorder(sb, BorderSunken)
		sb = sb.Inset(EdgeAll(1))
	}
	if p.img == nil {
		return
	}
	b := p.img.Bounds()
	x := sb.X + (sb.Width-b.Dx())/2
	y := sb.Y + (sb.Height-b.Dy())/2
	e.G.Blit(p.img, x, y, sb.Intersect(e.Clip))
}
