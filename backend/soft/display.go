package soft

import (
	"image"
	"image/draw"
	"time"

	"github.com/deskforms/go-desk"
)

// frameInterval paces WaitVSync when no real retrace signal exists.
const frameInterval = time.Second / 60

// fadeSteps is the number of presented frames in a fade.
const fadeSteps = 16

// Display is a Display over a plain RGBA back buffer. A presenter
// callback receives the buffer on every Flush; without one the display
// renders into memory only, which is what tests want.
type Display struct {
	buf      *image.RGBA
	gfx      *Graphics
	present  func(*image.RGBA) error
	lastSync time.Time
}

var _ desk.Display = (*Display)(nil)

// Option configures a Display.
type Option func(*Display)

// WithPresenter installs the callback that puts the buffer on screen.
func WithPresenter(fn func(*image.RGBA) error) Option {
	return func(d *Display) { d.present = fn }
}

// NewDisplay creates a software display of the given mode size.
func NewDisplay(width, height int, opts ...Option) *Display {
	buf := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &Display{buf: buf, gfx: NewGraphics(buf)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Display) Size() (int, int) {
	b := d.buf.Bounds()
	return b.Dx(), b.Dy()
}

func (d *Display) Graphics() desk.Graphics {
	return d.gfx
}

func (d *Display) Surface() draw.Image {
	return d.buf
}

// WaitVSync sleeps out the remainder of the frame interval.
func (d *Display) WaitVSync() {
	now := time.Now()
	if !d.lastSync.IsZero() {
		if rest := frameInterval - now.Sub(d.lastSync); rest > 0 {
			time.Sleep(rest)
			now = now.Add(rest)
		}
	}
	d.lastSync = now
}

func (d *Display) Flush() error {
	if d.present == nil {
		return nil
	}
	return d.present(d.buf)
}

// FadeIn presents the buffer scaled up from black to full brightness.
func (d *Display) FadeIn(dur time.Duration) {
	d.fade(dur, false)
}

// FadeOut presents the buffer scaled down from full brightness to black.
func (d *Display) FadeOut(dur time.Duration) {
	d.fade(dur, true)
}

// fade presents brightness-scaled copies of the buffer. The buffer
// itself is left untouched.
func (d *Display) fade(dur time.Duration, out bool) {
	if d.present == nil {
		return
	}
	tmp := image.NewRGBA(d.buf.Bounds())
	step := dur / fadeSteps
	for i := 1; i <= fadeSteps; i++ {
		level := i
		if out {
			level = fadeSteps - i
		}
		scaleBrightness(tmp, d.buf, uint32(level*255/fadeSteps))
		if err := d.present(tmp); err != nil {
			return
		}
		time.Sleep(step)
	}
}

// scaleBrightness writes src into dst with every channel multiplied by
// level/255.
func scaleBrightness(dst, src *image.RGBA, level uint32) {
	for i := 0; i+3 < len(src.Pix); i += 4 {
		dst.Pix[i+0] = uint8(uint32(src.Pix[i+0]) * level / 255)
		dst.Pix[i+1] = uint8(uint32(src.Pix[i+1]) * level / 255)
		dst.Pix[i+2] = uint8(uint32(src.Pix[i+2]) * level / 255)
		dst.Pix[i+3] = src.Pix[i+3]
	}
}
