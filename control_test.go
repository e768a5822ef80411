package desk

import "testing"

func TestControl_AddChild_SetsParentAndOrder(t *testing.T) {
	root := NewControl(NewRect(0, 0, 100, 100))
	a := NewControl(NewRect(0, 0, 10, 10))
	b := NewControl(NewRect(0, 0, 10, 10))

	root.AddChild(a)
	root.AddChild(b)

	if a.Parent() != root || b.Parent() != root {
		t.Error("AddChild should set the parent")
	}
	if root.ChildCount() != 2 {
		t.Errorf("ChildCount = %d, want 2", root.ChildCount())
	}
	if root.Child(0) != a || root.Child(1) != b {
		t.Error("children should keep insertion order")
	}
}

func TestControl_AddChild_PanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AddChild(nil) should panic")
		}
	}()
	NewControl(NewRect(0, 0, 10, 10)).AddChild(nil)
}

func TestControl_AddChild_PanicsOnReparent(t *testing.T) {
	a := NewControl(NewRect(0, 0, 100, 100))
	b := NewControl(NewRect(0, 0, 100, 100))
	child := NewControl(NewRect(0, 0, 10, 10))
	a.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Error("AddChild of an owned control should panic")
		}
	}()
	b.AddChild(child)
}

func TestControl_RemoveChild_DetachesAndAllowsReparent(t *testing.T) {
	a := NewControl(NewRect(0, 0, 100, 100))
	b := NewControl(NewRect(0, 0, 100, 100))
	child := NewControl(NewRect(0, 0, 10, 10))

	a.AddChild(child)
	a.RemoveChild(child)

	if child.Parent() != nil {
		t.Error("RemoveChild should clear the parent")
	}
	if a.ChildCount() != 0 {
		t.Errorf("ChildCount = %d, want 0", a.ChildCount())
	}

	b.AddChild(child) // must not panic
	if child.Parent() != b {
		t.Error("detached control should be addable to a new parent")
	}
}

func TestControl_RemoveChild_IgnoresStrangers(t *testing.T) {
	a := NewControl(NewRect(0, 0, 100, 100))
	stranger := NewControl(NewRect(0, 0, 10, 10))

	a.RemoveChild(stranger) // no-op, no panic
	if a.ChildCount() != 0 {
		t.Errorf("ChildCount = %d, want 0", a.ChildCount())
	}
}

func TestControl_Invalidate_PropagatesToRoot(t *testing.T) {
	root := NewControl(NewRect(0, 0, 100, 100))
	mid := NewControl(NewRect(0, 0, 50, 50))
	leaf := NewControl(NewRect(0, 0, 10, 10))
	root.AddChild(mid)
	mid.AddChild(leaf)

	// Clear the construction-time dirty flags.
	g := &RecordingGraphics{}
	root.Paint(&PaintEvent{G: g, Clip: root.ScreenBounds()})
	if root.IsDirty() {
		t.Fatal("root should be clean after painting")
	}

	leaf.Invalidate()

	if !leaf.IsDirty() || !mid.IsDirty() || !root.IsDirty() {
		t.Error("Invalidate on a leaf should mark every ancestor dirty")
	}
}

func TestControl_ScreenBounds_AccumulatesClientOffsets(t *testing.T) {
	root := NewControl(NewRect(5, 5, 100, 100))
	mid := NewControl(NewRect(10, 20, 50, 50))
	leaf := NewControl(NewRect(3, 4, 10, 10))
	root.AddChild(mid)
	mid.AddChild(leaf)

	got := leaf.ScreenBounds()
	want := NewRect(5+10+3, 5+20+4, 10, 10)
	if got != want {
		t.Errorf("ScreenBounds = %+v, want %+v", got, want)
	}
}

func TestControl_SetVisible_InvalidatesOnChangeOnly(t *testing.T) {
	root := NewControl(NewRect(0, 0, 100, 100))
	g := &RecordingGraphics{}
	root.Paint(&PaintEvent{G: g, Clip: root.ScreenBounds()})

	root.SetVisible(true) // already visible
	if root.IsDirty() {
		t.Error("SetVisible with no change should not invalidate")
	}

	root.SetVisible(false)
	if !root.IsDirty() {
		t.Error("SetVisible(false) should invalidate")
	}
}
