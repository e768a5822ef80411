package desk

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
)

// MockDisplay is an in-memory Display for tests. Its Graphics records
// every paint call in order, so tests can assert on paint sequence and
// tiering, and it keeps a real surface so cursor compositing and drag
// capture work.
type MockDisplay struct {
	W, H    int
	Surf    *image.RGBA
	G       *RecordingGraphics
	Flushes int
	VSyncs  int
	Fades   []string

	// OnVSync, when set, runs at the top of every frame. Tests use it
	// to drive and stop Desktop.Run.
	OnVSync func()

	// OnFlush, when set, supplies the result of each Flush. Tests use
	// it to fail a frame and exercise the render-error path.
	OnFlush func() error
}

var _ Display = (*MockDisplay)(nil)

// NewMockDisplay creates a mock display of the given size.
func NewMockDisplay(w, h int) *MockDisplay {
	return &MockDisplay{
		W:    w,
		H:    h,
		Surf: image.NewRGBA(image.Rect(0, 0, w, h)),
		G:    &RecordingGraphics{},
	}
}

func (m *MockDisplay) Size() (int, int)    { return m.W, m.H }
func (m *MockDisplay) Graphics() Graphics  { return m.G }
func (m *MockDisplay) Surface() draw.Image { return m.Surf }
func (m *MockDisplay) Flush() error {
	m.Flushes++
	if m.OnFlush != nil {
		return m.OnFlush()
	}
	return nil
}
func (m *MockDisplay) FadeIn(time.Duration) { m.Fades = append(m.Fades, "in") }
func (m *MockDisplay) FadeOut(time.Duration) {
	m.Fades = append(m.Fades, "out")
}

func (m *MockDisplay) WaitVSync() {
	m.VSyncs++
	if m.OnVSync != nil {
		m.OnVSync()
	}
}

// PaintOp is one recorded Graphics call.
type PaintOp struct {
	Op     string // "fill", "border", "hatch", "line", "text", "blit", "blitalpha"
	Bounds Rect
	Color  color.RGBA
	Text   string
}

// RecordingGraphics implements Graphics by appending each call to Ops.
// Text metrics are synthetic: every rune is 7 pixels wide.
type RecordingGraphics struct {
	Ops []PaintOp
}

var _ Graphics = (*RecordingGraphics)(nil)

// Reset clears the recorded operations.
func (g *RecordingGraphics) Reset() {
	g.Ops = g.Ops[:0]
}

// FillsOf returns the bounds of every recorded op of the given kind.
func (g *RecordingGraphics) FillsOf(op string) []Rect {
	var out []Rect
	for _, o := range g.Ops {
		if o.Op == op {
			out = append(out, o.Bounds)
		}
	}
	return out
}

func (g *RecordingGraphics) FillRect(r Rect, c color.RGBA) {
	g.Ops = append(g.Ops, PaintOp{Op: "fill", Bounds: r, Color: c})
}

func (g *RecordingGraphics) FillBorder(r Rect, style BorderStyle) {
	g.Ops = append(g.Ops, PaintOp{Op: "border", Bounds: r})
}

func (g *RecordingGraphics) FillHatch(r Rect, style HatchStyle, fg, bg color.RGBA) {
	g.Ops = append(g.Ops, PaintOp{Op: "hatch", Bounds: r, Color: fg})
}

func (g *RecordingGraphics) Line(x0, y0, x1, y1 int, c color.RGBA) {
	g.Ops = append(g.Ops, PaintOp{
		Op:     "line",
		Bounds: NewRect(x0, y0, x1-x0+1, y1-y0+1),
		Color:  c,
	})
}

func (g *RecordingGraphics) Text(s string, f font.Face, x, y int, c color.RGBA) {
	g.Ops = append(g.Ops, PaintOp{
		Op:     "text",
		Bounds: NewRect(x, y, g.TextWidth(s, f), 0),
		Color:  c,
		Text:   s,
	})
}

func (g *RecordingGraphics) TextWidth(s string, f font.Face) int {
	return 7 * len([]rune(s))
}

func (g *RecordingGraphics) Blit(img image.Image, x, y int, clip Rect) {
	b := img.Bounds()
	g.Ops = append(g.Ops, PaintOp{Op: "blit", Bounds: NewRect(x, y, b.Dx(), b.Dy())})
}

func (g *RecordingGraphics) BlitAlpha(img image.Image, x, y int, clip Rect) {
	b := img.Bounds()
	g.Ops = append(g.Ops, PaintOp{Op: "blitalpha", Bounds: NewRect(x, y, b.Dx(), b.Dy())})
}

// ScriptedInput replays a fixed sequence of input frames: one mouse
// sample per frame plus any number of key presses. After the script
// runs out it repeats the last mouse sample with no keys.
type ScriptedInput struct {
	Frames []InputFrame

	frame int
	keys  []KeyPress
	last  MouseState
}

var _ Input = (*ScriptedInput)(nil)

// InputFrame is the input for one frame of a scripted session.
type InputFrame struct {
	Mouse MouseState
	Keys  []KeyPress
}

func (s *ScriptedInput) PollMouse() MouseState {
	if s.frame >= len(s.Frames) {
		s.keys = nil
		return s.last
	}
	f := s.Frames[s.frame]
	s.frame++
	s.keys = f.Keys
	s.last = f.Mouse
	return f.Mouse
}

func (s *ScriptedInput) PollKeyboard() (KeyPress, bool) {
	if len(s.keys) == 0 {
		return KeyPress{}, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}
