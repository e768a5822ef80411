// Command deskdemo opens a small desktop session in a native window:
// a couple of windows with flex-laid-out content, desktop icons, the
// taskbar and the start menu. Escape ends the session.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/deskforms/go-desk"
	rlbackend "github.com/deskforms/go-desk/backend/raylib"
	"github.com/deskforms/go-desk/backend/soft"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "deskdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	display := rlbackend.NewDisplay(screenWidth, screenHeight, "go-desk demo")
	defer display.Close()

	desktop := desk.NewDesktop(display, rlbackend.NewInput(),
		desk.WithFont(soft.Face7x13),
		desk.WithWallpaper(soft.Scale(makeWallpaper(), screenWidth, screenHeight)),
	)

	desktop.AddIcon("Colors", makeIcon(desk.Red), func() {
		openColorsWindow(desktop)
	})
	desktop.AddIcon("Buttons", makeIcon(desk.DarkBlue), func() {
		openButtonsWindow(desktop)
	})

	menu := desktop.StartMenu()
	menu.AddItem("Colors", func() { openColorsWindow(desktop) })
	menu.AddItem("Buttons", func() { openButtonsWindow(desktop) })
	menu.AddItem("Shut Down", desktop.Stop)

	openButtonsWindow(desktop)
	return desktop.Run()
}

// openButtonsWindow shows a window whose client is a flex column of
// rows, exercising gap, padding, grow and alignment.
func openButtonsWindow(d *desk.Desktop) {
	w := desk.NewWindow(d, desk.NewRect(60, 50, 280, 200))
	w.SetTitle("Buttons")

	panel := desk.NewControl(desk.NewRect(0, 0, 0, 0))
	panel.Layout().
		SetDirection(desk.Column).
		SetPadding(desk.EdgeAll(8)).
		SetGap(6)
	w.AddChild(panel)

	for i := 0; i < 3; i++ {
		label := fmt.Sprintf("Button %d", i+1)
		row := desk.NewButton(panel, desk.NewRect(0, 0, 0, 28))
		row.SetText(label)
		row.SetFont(d.Font())
		row.Layout().
			SetHeightMode(desk.SizeFixed).
			SetWidthMode(desk.SizeFill)
		row.SetOnClick(func(b *desk.Button) {
			w.SetTitle(label + " clicked")
		})
	}

	filler := desk.NewControl(desk.NewRect(0, 0, 0, 0))
	filler.Layout().SetFlexGrow(1)
	panel.AddChild(filler)

	w.InvalidateLayout()
	w.PerformLayout()
}

// openColorsWindow shows a window with a spectrum strip next to a
// swatch grid laid out with wrapping.
func openColorsWindow(d *desk.Desktop) {
	w := desk.NewWindow(d, desk.NewRect(180, 120, 260, 220))
	w.SetTitle("Colors")

	body := desk.NewControl(desk.NewRect(0, 0, 0, 0))
	body.Layout().
		SetDirection(desk.Row).
		SetPadding(desk.EdgeAll(6)).
		SetGap(6)
	w.AddChild(body)

	strip := desk.NewSpectrum(body, desk.NewRect(0, 0, 40, 0), desk.Teal)
	strip.Layout().SetWidthMode(desk.SizeFixed)

	grid := desk.NewControl(desk.NewRect(0, 0, 0, 0))
	grid.Layout().
		SetDirection(desk.Row).
		SetWrap(desk.WrapLines).
		SetGap(4).
		SetFlexGrow(1)
	body.AddChild(grid)

	swatches := []color.RGBA{
		desk.Red, desk.Teal, desk.DarkBlue, desk.DarkGray,
		desk.White, desk.Black, desk.Gray,
	}
	for _, c := range swatches {
		p := desk.NewPicture(grid, desk.NewRect(0, 0, 48, 48), makeSwatch(c))
		p.SetBorder(true)
		p.Layout().SetWidthMode(desk.SizeFixed).SetHeightMode(desk.SizeFixed)
	}

	w.InvalidateLayout()
	w.PerformLayout()
}

func makeSwatch(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 44, 44))
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = 255
	}
	return img
}

func makeIcon(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			// Rounded-off diamond silhouette on a transparent field.
			if abs(x-16)+abs(y-16) < 15 {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

func makeWallpaper() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 160, 120))
	for y := 0; y < 120; y++ {
		c := desk.Lerp(desk.Teal, desk.DarkBlue, float64(y)/119)
		for x := 0; x < 160; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
