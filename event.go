// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import "github.com/hajimehoshi/ebiten/v2"

// Event is one item delivered by the event loop: either a platform event or
// the synthetic UpdateEvent manufactured when a redraw pass should run.
type Event interface {
	isEvent()
}

// UpdateEvent signals that the widget tree should be rebuilt and, if its
// output changed, redrawn. It is produced by the loop glue, never by the
// platform.
type UpdateEvent struct{}

// KeyEvent reports a key press or release.
type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

// CharEvent reports a character from the platform text input system, which
// accounts for shift, layout and IME.
type CharEvent struct {
	Rune rune
}

// CursorEvent reports a new cursor position in surface pixels.
type CursorEvent struct {
	X, Y int
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	Button  ebiten.MouseButton
	Pressed bool
}

// WheelEvent reports scroll wheel movement.
type WheelEvent struct {
	X, Y float64
}

// ResizeEvent reports a new window size in pixels.
type ResizeEvent struct {
	Width, Height int
}

// RefreshEvent signals that the window contents must be repainted even
// though no input changed, such as after the window regains focus.
type RefreshEvent struct{}

// CloseEvent reports that the user asked to close the window. The loop does
// not exit by itself; the handler decides by calling Control.Exit.
type CloseEvent struct{}

func (UpdateEvent) isEvent()      {}
func (KeyEvent) isEvent()         {}
func (CharEvent) isEvent()        {}
func (CursorEvent) isEvent()      {}
func (MouseButtonEvent) isEvent() {}
func (WheelEvent) isEvent()       {}
func (ResizeEvent) isEvent()      {}
func (RefreshEvent) isEvent()     {}
func (CloseEvent) isEvent()       {}
