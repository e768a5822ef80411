package desk

import "testing"

func TestSpectrum_ColorAtY_Endpoints(t *testing.T) {
	s := NewSpectrum(nil, NewRect(0, 0, 20, 100), Teal)

	if got := s.ColorAtY(0); got != White {
		t.Errorf("top color = %v, want %v", got, White)
	}
	if got := s.ColorAtY(99); got != Black {
		t.Errorf("bottom color = %v, want %v", got, Black)
	}
}

func TestSpectrum_ColorAtY_MiddleIsBase(t *testing.T) {
	s := NewSpectrum(nil, NewRect(0, 0, 20, 100), Teal)

	if got := s.ColorAtY(50); got != Teal {
		t.Errorf("middle color = %v, want %v", got, Teal)
	}
}

func TestSpectrum_ColorAtY_ClampsOutOfRange(t *testing.T) {
	s := NewSpectrum(nil, NewRect(0, 0, 20, 100), Teal)

	if got := s.ColorAtY(-5); got != s.ColorAtY(0) {
		t.Error("negative row should clamp to the top")
	}
	if got := s.ColorAtY(500); got != s.ColorAtY(99) {
		t.Error("overlarge row should clamp to the bottom")
	}
}

func TestSpectrum_SetBase_RebuildsGradient(t *testing.T) {
	s := NewSpectrum(nil, NewRect(0, 0, 20, 100), Teal)
	before := s.ColorAtY(50)

	s.SetBase(Red)
	after := s.ColorAtY(50)

	if before == after {
		t.Error("changing the base color should change the sampled gradient")
	}
	if after != Red {
		t.Errorf("middle color = %v, want %v", after, Red)
	}
}

func TestSpectrum_Paint_OneLinePerRow(t *testing.T) {
	s := NewSpectrum(nil, NewRect(0, 0, 20, 40), Teal)

	g := &RecordingGraphics{}
	s.Paint(&PaintEvent{G: g, Clip: s.ScreenBounds()})

	lines := 0
	for _, op := range g.Ops {
		if op.Op == "line" {
			lines++
		}
	}
	if lines != 40 {
		t.Errorf("painted %d lines, want 40", lines)
	}
}
