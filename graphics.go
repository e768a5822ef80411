package desk

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// BorderStyle selects one of the pre-defined bevel fills.
type BorderStyle uint8

const (
	// BorderRaised is a single-pixel 3D bevel, light on top-left.
	BorderRaised BorderStyle = iota
	// BorderRaisedDouble is a two-pixel 3D bevel (buttons).
	BorderRaisedDouble
	// BorderSunken is a single-pixel inverted bevel.
	BorderSunken
	// BorderSunkenDouble is a two-pixel inverted bevel (pressed buttons).
	BorderSunkenDouble
	// BorderWindow is the window chrome fill: a two-pixel raised frame
	// around a face-colored interior.
	BorderWindow
)

// HatchStyle selects a fill pattern.
type HatchStyle uint8

const (
	// HatchChecker alternates fg/bg on a one-pixel checkerboard.
	HatchChecker HatchStyle = iota
)

// Graphics is the 2-D drawing collaborator. All coordinates are screen
// pixels; every call clips to the provided clip rectangle where one is
// taken. Painting through Graphics is not expected to fail given valid
// arguments, so no method returns an error.
type Graphics interface {
	// FillRect fills r with a solid color.
	FillRect(r Rect, c color.RGBA)

	// FillBorder fills r with a bevel style: border pixels in the bevel
	// colors, interior in the face color.
	FillBorder(r Rect, s BorderStyle)

	// FillHatch fills r with a two-color pattern.
	FillHatch(r Rect, s HatchStyle, fg, bg color.RGBA)

	// Line draws a one-pixel line from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1 int, c color.RGBA)

	// Text draws s with its baseline-left origin at (x, y).
	Text(s string, f font.Face, x, y int, c color.RGBA)

	// TextWidth returns the advance of s in pixels.
	TextWidth(s string, f font.Face) int

	// Blit copies img to (x, y), clipped to clip.
	Blit(img image.Image, x, y int, clip Rect)

	// BlitAlpha copies img to (x, y) skipping pixels with alpha < 128,
	// clipped to clip.
	BlitAlpha(img image.Image, x, y int, clip Rect)
}
