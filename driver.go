package desk

import (
	"image/draw"
	"time"
)

// Display is the video collaborator: a back buffer the desktop paints
// into once per frame, plus the vsync pacing for the cooperative loop.
// WaitVSync is the only intentional stall point in the system.
type Display interface {
	// Size returns the display mode dimensions in pixels.
	Size() (width, height int)

	// WaitVSync blocks until the next vertical retrace. Implementations
	// without a real retrace signal should sleep to a fixed frame rate.
	WaitVSync()

	// Graphics returns a drawing context bound to the back buffer.
	Graphics() Graphics

	// Surface exposes the back buffer pixels directly. The desktop uses
	// it for cursor save-under compositing and drag bitmap capture, and
	// only during the paint phase of a frame.
	Surface() draw.Image

	// Flush presents the back buffer to the display.
	Flush() error

	// FadeIn and FadeOut run a simple linear fade at loop start and exit.
	FadeIn(d time.Duration)
	FadeOut(d time.Duration)
}

// MouseState is an instantaneous snapshot of the pointer, not an event.
// Edge detection (press vs. hold vs. release) is computed by Desktop by
// diffing against the previous frame's snapshot.
type MouseState struct {
	X, Y  int
	Left  bool
	Right bool
}

// KeyPress is a single decoded key with modifier flags.
type KeyPress struct {
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

// Input is the input-device collaborator, polled once per loop iteration.
type Input interface {
	// PollMouse returns the current pointer snapshot.
	PollMouse() MouseState

	// PollKeyboard returns the next pending key press, or ok=false when
	// no key is waiting.
	PollKeyboard() (key KeyPress, ok bool)
}
