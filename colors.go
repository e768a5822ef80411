package desk

import "image/color"

// The classic system palette used by the stock widgets.
var (
	White      = color.RGBA{255, 255, 255, 255}
	Black      = color.RGBA{0, 0, 0, 255}
	Gray       = color.RGBA{192, 192, 192, 255}
	DarkGray   = color.RGBA{128, 128, 128, 255}
	DarkBlue   = color.RGBA{0, 0, 128, 255}
	Teal       = color.RGBA{0, 128, 128, 255}
	Red        = color.RGBA{255, 0, 0, 255}
	FaceGray   = Gray     // widget face fill
	ShadowGray = DarkGray // bevel shadow
)

// Lerp linearly interpolates between two colors. t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
