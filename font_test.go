// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import "testing"

func TestLoadFont(t *testing.T) {
	f, err := LoadFont()
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	w, h := f.Measure("hello", 18)
	if w <= 0 || h <= 0 {
		t.Errorf("Measure(hello, 18) = (%v, %v), want positive size", w, h)
	}

	// Wider text measures wider; larger sizes measure larger.
	w2, _ := f.Measure("hello, world", 18)
	if w2 <= w {
		t.Errorf("longer text measured %v, shorter %v", w2, w)
	}
	w3, h3 := f.Measure("hello", 36)
	if w3 <= w || h3 <= h {
		t.Errorf("36px measured (%v, %v), 18px (%v, %v)", w3, h3, w, h)
	}
}

func TestFontFace(t *testing.T) {
	f, err := LoadFont()
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	face := f.Face(24)
	if face.Size != 24 {
		t.Errorf("face size = %v, want 24", face.Size)
	}
	if face.Source == nil {
		t.Error("face has no source")
	}
}
