// Package soft is the software rendering backend: a rasterizer over a
// plain RGBA buffer and a display that paces itself with the wall
// clock. It has no output of its own; a presenter callback (or the
// raylib backend's texture upload) puts the buffer on screen.
package soft

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/deskforms/go-desk"
)

// Face7x13 is the stock bitmap font, good enough for titles and labels.
var Face7x13 font.Face = basicfont.Face7x13

// Graphics rasterizes desk paint calls into an RGBA buffer.
type Graphics struct {
	dst *image.RGBA
}

var _ desk.Graphics = (*Graphics)(nil)

// NewGraphics creates a rasterizer over dst.
func NewGraphics(dst *image.RGBA) *Graphics {
	return &Graphics{dst: dst}
}

func (g *Graphics) FillRect(r desk.Rect, c color.RGBA) {
	draw.Draw(g.dst, clipToDst(g.dst, r), image.NewUniform(c), image.Point{}, draw.Src)
}

func (g *Graphics) FillBorder(r desk.Rect, s desk.BorderStyle) {
	switch s {
	case desk.BorderRaised:
		g.bevel(r, desk.White, desk.ShadowGray)
		g.FillRect(r.Inset(desk.EdgeAll(1)), desk.FaceGray)
	case desk.BorderSunken:
		g.bevel(r, desk.ShadowGray, desk.White)
		g.FillRect(r.Inset(desk.EdgeAll(1)), desk.FaceGray)
	case desk.BorderRaisedDouble:
		g.bevel(r, desk.White, desk.Black)
		g.bevel(r.Inset(desk.EdgeAll(1)), desk.FaceGray, desk.ShadowGray)
		g.FillRect(r.Inset(desk.EdgeAll(2)), desk.FaceGray)
	case desk.BorderSunkenDouble:
		g.bevel(r, desk.Black, desk.White)
		g.bevel(r.Inset(desk.EdgeAll(1)), desk.ShadowGray, desk.FaceGray)
		g.FillRect(r.Inset(desk.EdgeAll(2)), desk.FaceGray)
	case desk.BorderWindow:
		g.bevel(r, desk.FaceGray, desk.Black)
		g.bevel(r.Inset(desk.EdgeAll(1)), desk.White, desk.ShadowGray)
		g.FillRect(r.Inset(desk.EdgeAll(2)), desk.FaceGray)
	}
}

// bevel draws a one-pixel frame: light on the top and left edges, dark
// on the bottom and right.
func (g *Graphics) bevel(r desk.Rect, light, dark color.RGBA) {
	if r.IsEmpty() {
		return
	}
	g.Line(r.X, r.Y, r.Right()-1, r.Y, light)
	g.Line(r.X, r.Y, r.X, r.Bottom()-1, light)
	g.Line(r.X, r.Bottom()-1, r.Right()-1, r.Bottom()-1, dark)
	g.Line(r.Right()-1, r.Y, r.Right()-1, r.Bottom()-1, dark)
}

func (g *Graphics) FillHatch(r desk.Rect, s desk.HatchStyle, fg, bg color.RGBA) {
	cr := clipToDst(g.dst, r)
	for y := cr.Min.Y; y < cr.Max.Y; y++ {
		for x := cr.Min.X; x < cr.Max.X; x++ {
			if (x+y)%2 == 0 {
				g.dst.SetRGBA(x, y, fg)
			} else {
				g.dst.SetRGBA(x, y, bg)
			}
		}
	}
}

// Line draws with Bresenham's algorithm; axis-aligned lines take the
// fast path through FillRect.
func (g *Graphics) Line(x0, y0, x1, y1 int, c color.RGBA) {
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		g.FillRect(desk.NewRect(x0, y0, x1-x0+1, 1), c)
		return
	}
	if x0 == x1 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		g.FillRect(desk.NewRect(x0, y0, 1, y1-y0+1), c)
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (g *Graphics) Text(s string, f font.Face, x, y int, c color.RGBA) {
	if f == nil || s == "" {
		return
	}
	d := font.Drawer{
		Dst:  g.dst,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (g *Graphics) TextWidth(s string, f font.Face) int {
	if f == nil {
		return 0
	}
	return font.MeasureString(f, s).Ceil()
}

func (g *Graphics) Blit(img image.Image, x, y int, clip desk.Rect) {
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy()).
		Intersect(toImageRect(clip)).
		Intersect(g.dst.Bounds())
	if dst.Empty() {
		return
	}
	src := image.Pt(b.Min.X+dst.Min.X-x, b.Min.Y+dst.Min.Y-y)
	draw.Draw(g.dst, dst, img, src, draw.Src)
}

func (g *Graphics) BlitAlpha(img image.Image, x, y int, clip desk.Rect) {
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy()).
		Intersect(toImageRect(clip)).
		Intersect(g.dst.Bounds())
	for dy := dst.Min.Y; dy < dst.Max.Y; dy++ {
		for dx := dst.Min.X; dx < dst.Max.X; dx++ {
			r, gr, bl, a := img.At(b.Min.X+dx-x, b.Min.Y+dy-y).RGBA()
			if a < 0x8000 {
				continue
			}
			g.dst.SetRGBA(dx, dy, color.RGBA{
				R: uint8(r >> 8), G: uint8(gr >> 8), B: uint8(bl >> 8), A: 255,
			})
		}
	}
}

func (g *Graphics) set(x, y int, c color.RGBA) {
	if image.Pt(x, y).In(g.dst.Bounds()) {
		g.dst.SetRGBA(x, y, c)
	}
}

func toImageRect(r desk.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func clipToDst(dst *image.RGBA, r desk.Rect) image.Rectangle {
	return toImageRect(r).Intersect(dst.Bounds())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
