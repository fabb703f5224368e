// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputSource reads the platform input state once per tick and converts the
// edges into events. It remembers the previous cursor position, window size
// and focus state so only actual changes produce events.
type inputSource struct {
	surface *WindowSurface

	cursorX, cursorY int
	hasCursor        bool
	width, height    int
	focused          bool
}

func newInputSource(surface *WindowSurface) *inputSource {
	w, h := surface.Size()
	return &inputSource{surface: surface, width: w, height: h}
}

var sourceButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Append implements Source.
func (s *inputSource) Append(events []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		events = append(events, CloseEvent{})
	}

	if w, h := s.surface.Size(); w != s.width || h != s.height {
		s.width, s.height = w, h
		events = append(events, ResizeEvent{Width: w, Height: h})
	}

	if focused := ebiten.IsFocused(); focused != s.focused {
		s.focused = focused
		if focused {
			events = append(events, RefreshEvent{})
		}
	}

	if x, y := ebiten.CursorPosition(); !s.hasCursor || x != s.cursorX || y != s.cursorY {
		s.cursorX, s.cursorY = x, y
		s.hasCursor = true
		events = append(events, CursorEvent{X: x, Y: y})
	}

	for _, b := range sourceButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, MouseButtonEvent{Button: b, Pressed: true})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			events = append(events, MouseButtonEvent{Button: b, Pressed: false})
		}
	}

	if x, y := ebiten.Wheel(); x != 0 || y != 0 {
		events = append(events, WheelEvent{X: x, Y: y})
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		events = append(events, KeyEvent{Key: k, Pressed: true})
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		events = append(events, CharEvent{Rune: r})
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		events = append(events, KeyEvent{Key: k, Pressed: false})
	}

	return events
}
