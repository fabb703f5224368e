// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package retained

import (
	"image/color"
	"testing"
)

// fixedFont measures every rune as a square of the font size, which makes
// centering math exact in tests.
type fixedFont struct{}

func (fixedFont) Measure(text string, size float64) (w, h float64) {
	return float64(len(text)) * size, size
}

func buildStaticScene(u *Ui, root, label ID) {
	b := u.SetWidgets()
	Canvas().Color(color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}).Borderless().Set(root, b)
	Text("hello").Color(color.RGBA{A: 0xff}).MiddleOf(root).Set(label, b)
}

func TestGeneratorMonotonic(t *testing.T) {
	u := New(640, 480)
	g := u.Generator()

	a, b := g.Next(), g.Next()
	if a == b {
		t.Fatalf("Next returned duplicate ID %d", a)
	}
	if b != a+1 {
		t.Errorf("IDs not monotonic: %d then %d", a, b)
	}
	if got := g.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestIdentifierStabilityAcrossFrames(t *testing.T) {
	u := New(640, 480)
	u.SetFont(fixedFont{})
	g := u.Generator()
	root, label := g.Next(), g.Next()

	for frame := 0; frame < 5; frame++ {
		buildStaticScene(u, root, label)
		u.DrawIfChanged()
	}

	if got := g.Count(); got != 2 {
		t.Errorf("after 5 frames Count() = %d, want 2 (no mid-run allocation)", got)
	}
}

func TestDrawIfChangedGating(t *testing.T) {
	u := New(640, 480)
	u.SetFont(fixedFont{})
	g := u.Generator()
	root, label := g.Next(), g.Next()

	buildStaticScene(u, root, label)
	first := u.DrawIfChanged()
	if first == nil {
		t.Fatal("first frame should produce primitives")
	}

	// Identical rebuild: content unchanged, no GPU submission.
	buildStaticScene(u, root, label)
	if again := u.DrawIfChanged(); again != nil {
		t.Errorf("unchanged rebuild produced %d primitives, want none", len(again))
	}

	// Input with no visual effect still doesn't force a draw.
	u.HandleEvent(PointerEvent{X: 10, Y: 10})
	buildStaticScene(u, root, label)
	if again := u.DrawIfChanged(); again != nil {
		t.Errorf("pointer move over static scene produced %d primitives, want none", len(again))
	}
}

func TestNeedsRedrawOverridesContentCheck(t *testing.T) {
	u := New(640, 480)
	u.SetFont(fixedFont{})
	g := u.Generator()
	root, label := g.Next(), g.Next()

	buildStaticScene(u, root, label)
	if u.DrawIfChanged() == nil {
		t.Fatal("first frame should produce primitives")
	}

	u.NeedsRedraw()
	buildStaticScene(u, root, label)
	if u.DrawIfChanged() == nil {
		t.Fatal("forced redraw should yield primitives despite unchanged content")
	}

	// The force flag is consumed by one draw.
	buildStaticScene(u, root, label)
	if again := u.DrawIfChanged(); again != nil {
		t.Errorf("force flag leaked into a later frame: got %d primitives", len(again))
	}
}

func TestViewportResizeChangesOutput(t *testing.T) {
	u := New(640, 480)
	u.SetFont(fixedFont{})
	g := u.Generator()
	root, label := g.Next(), g.Next()

	buildStaticScene(u, root, label)
	u.DrawIfChanged()

	u.HandleEvent(ViewportEvent{Width: 800, Height: 600})
	if w, h := u.Size(); w != 800 || h != 600 {
		t.Fatalf("Size() = %vx%v after resize, want 800x600", w, h)
	}

	buildStaticScene(u, root, label)
	prims := u.DrawIfChanged()
	if prims == nil {
		t.Fatal("resized scene should produce primitives")
	}
	rootRect := prims[0].(RectPrimitive).Rect
	if rootRect.W != 800 || rootRect.H != 600 {
		t.Errorf("root rect = %+v, want full 800x600 surface", rootRect)
	}
}

func TestHandleEventInputState(t *testing.T) {
	u := New(640, 480)

	u.HandleEvent(PointerEvent{X: 12, Y: 34})
	if x, y := u.Pointer(); x != 12 || y != 34 {
		t.Errorf("Pointer() = (%v, %v), want (12, 34)", x, y)
	}

	// Zero-size viewports are ignored.
	u.HandleEvent(ViewportEvent{Width: 0, Height: 600})
	if w, h := u.Size(); w != 640 || h != 480 {
		t.Errorf("zero-size viewport resized UI to %vx%v", w, h)
	}
}

func TestDrawIfChangedEmptyBeforeFirstBuild(t *testing.T) {
	u := New(640, 480)
	if prims := u.DrawIfChanged(); prims != nil {
		t.Errorf("no frame built yet, got %d primitives", len(prims))
	}
}
