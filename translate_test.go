// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/daboross/simpler-conrod-example/retained"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name   string
		in     Event
		want   retained.Event
		wantOK bool
	}{
		{
			name:   "cursor",
			in:     CursorEvent{X: 10, Y: 20},
			want:   retained.PointerEvent{X: 10, Y: 20},
			wantOK: true,
		},
		{
			name:   "left button down",
			in:     MouseButtonEvent{Button: ebiten.MouseButtonLeft, Pressed: true},
			want:   retained.ButtonEvent{Button: int(ebiten.MouseButtonLeft), Pressed: true},
			wantOK: true,
		},
		{
			name:   "escape key",
			in:     KeyEvent{Key: ebiten.KeyEscape, Pressed: true},
			want:   retained.KeyEvent{Key: retained.KeyEscape, Pressed: true},
			wantOK: true,
		},
		{
			name:   "letter key has no UI mapping",
			in:     KeyEvent{Key: ebiten.KeyA, Pressed: true},
			wantOK: false,
		},
		{
			name:   "char",
			in:     CharEvent{Rune: 'x'},
			want:   retained.CharEvent{Rune: 'x'},
			wantOK: true,
		},
		{
			name:   "wheel",
			in:     WheelEvent{X: 0, Y: -3},
			want:   retained.ScrollEvent{X: 0, Y: -3},
			wantOK: true,
		},
		{
			name:   "resize",
			in:     ResizeEvent{Width: 800, Height: 600},
			want:   retained.ViewportEvent{Width: 800, Height: 600},
			wantOK: true,
		},
		{"close is not a UI event", CloseEvent{}, nil, false},
		{"refresh is not a UI event", RefreshEvent{}, nil, false},
		{"update is not a UI event", UpdateEvent{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateEvent(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestKeyToUIKeyVariants(t *testing.T) {
	// Left/right modifier variants collapse onto one UI key.
	for _, k := range []ebiten.Key{ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight} {
		if got := keyToUIKey(k); got != retained.KeyShift {
			t.Errorf("keyToUIKey(%v) = %v, want KeyShift", k, got)
		}
	}
	if got := keyToUIKey(ebiten.KeyNumpadEnter); got != retained.KeyEnter {
		t.Errorf("keyToUIKey(NumpadEnter) = %v, want KeyEnter", got)
	}
}
