package soft

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scale resamples img to w by h with approximate bilinear filtering.
// Used to fit wallpapers and icons to the display mode.
func Scale(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
