// Package raylib puts a desk session in a native OS window. The desktop
// still paints into the software back buffer; every Flush uploads the
// buffer into a GPU texture and draws it. Input is translated from
// raylib's polled state into desk snapshots.
package raylib

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/deskforms/go-desk"
	"github.com/deskforms/go-desk/backend/soft"
)

// Display renders the desk back buffer into a raylib window.
type Display struct {
	width, height int

	buf    *image.RGBA
	gfx    *soft.Graphics
	pixels []color.RGBA
	tex    rl.Texture2D
}

var _ desk.Display = (*Display)(nil)

// NewDisplay opens a raylib window of the given size and builds the
// back buffer and streaming texture behind it.
func NewDisplay(width, height int, title string) *Display {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(60)
	rl.HideCursor()
	// The desktop owns the Escape key; keep raylib from closing on it.
	rl.SetExitKey(0)

	buf := image.NewRGBA(image.Rect(0, 0, width, height))
	img := rl.NewImageFromImage(buf)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &Display{
		width:  width,
		height: height,
		buf:    buf,
		gfx:    soft.NewGraphics(buf),
		pixels: make([]color.RGBA, width*height),
		tex:    tex,
	}
}

// Close releases the texture and the window.
func (d *Display) Close() {
	rl.UnloadTexture(d.tex)
	rl.CloseWindow()
}

func (d *Display) Size() (int, int) {
	return d.width, d.height
}

func (d *Display) Graphics() desk.Graphics {
	return d.gfx
}

func (d *Display) Surface() draw.Image {
	return d.buf
}

// WaitVSync defers to raylib's frame pacing, which blocks in EndDrawing
// to hold the target FPS. Nothing to do here.
func (d *Display) WaitVSync() {}

// Flush uploads the back buffer into the texture and presents it.
func (d *Display) Flush() error {
	d.upload(d.buf)
	rl.BeginDrawing()
	rl.DrawTexture(d.tex, 0, 0, rl.White)
	rl.EndDrawing()
	return nil
}

// FadeIn presents brightness-ramped frames from black to the buffer.
func (d *Display) FadeIn(dur time.Duration) {
	d.fade(dur, false)
}

// FadeOut presents brightness-ramped frames from the buffer to black.
func (d *Display) FadeOut(dur time.Duration) {
	d.fade(dur, true)
}

const fadeSteps = 16

func (d *Display) fade(dur time.Duration, out bool) {
	step := dur / fadeSteps
	for i := 1; i <= fadeSteps; i++ {
		level := i
		if out {
			level = fadeSteps - i
		}
		alpha := uint8(255 - level*255/fadeSteps)
		d.upload(d.buf)
		rl.BeginDrawing()
		rl.DrawTexture(d.tex, 0, 0, rl.White)
		rl.DrawRectangle(0, 0, int32(d.width), int32(d.height), rl.NewColor(0, 0, 0, alpha))
		rl.EndDrawing()
		time.Sleep(step)
	}
}

// upload converts the RGBA buffer into raylib's pixel layout and
// streams it into the texture.
func (d *Display) upload(buf *image.RGBA) {
	pix := buf.Pix
	for i := range d.pixels {
		d.pixels[i] = color.RGBA{
			R: pix[i*4+0],
			G: pix[i*4+1],
			B: pix[i*4+2],
			A: pix[i*4+3],
		}
	}
	rl.UpdateTexture(d.tex, d.pixels)
}
