package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/deskforms/go-desk"
)

// Input translates raylib's polled device state into desk snapshots.
type Input struct{}

var _ desk.Input = Input{}

// NewInput returns the raylib input poller. Raylib's device state is
// global, so the value is stateless.
func NewInput() Input {
	return Input{}
}

func (Input) PollMouse() desk.MouseState {
	pos := rl.GetMousePosition()
	return desk.MouseState{
		X:     int(pos.X),
		Y:     int(pos.Y),
		Left:  rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Right: rl.IsMouseButtonDown(rl.MouseButtonRight),
	}
}

// PollKeyboard drains one key per call: printable runes come from
// GetCharPressed, a few control keys are mapped onto rune values the
// desktop understands.
func (Input) PollKeyboard() (desk.KeyPress, bool) {
	mods := desk.KeyPress{
		Alt:   rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
		Ctrl:  rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Shift: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
	}

	if r := rl.GetCharPressed(); r > 0 {
		mods.Rune = r
		return mods, true
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		mods.Rune = desk.KeyEscape
	case rl.IsKeyPressed(rl.KeyEnter):
		mods.Rune = '\r'
	case rl.IsKeyPressed(rl.KeyBackspace):
		mods.Rune = '\b'
	case rl.IsKeyPressed(rl.KeyTab):
		mods.Rune = '\t'
	default:
		return desk.KeyPress{}, false
	}
	return mods, true
}
