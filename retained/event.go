// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package retained

// Event is an input event in the runtime's own vocabulary. Platform layers
// translate their native events into these before calling Ui.HandleEvent.
type Event interface {
	isEvent()
}

// PointerEvent reports the cursor position in surface pixels.
type PointerEvent struct {
	X, Y float64
}

// ButtonEvent reports a pointer button press or release.
type ButtonEvent struct {
	Button  int
	Pressed bool
}

// KeyEvent reports a keyboard key press or release.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// CharEvent reports a typed character from the platform's text input system.
type CharEvent struct {
	Rune rune
}

// ScrollEvent reports scroll wheel movement.
type ScrollEvent struct {
	X, Y float64
}

// ViewportEvent reports a new surface size in pixels.
type ViewportEvent struct {
	Width, Height float64
}

func (PointerEvent) isEvent()  {}
func (ButtonEvent) isEvent()   {}
func (KeyEvent) isEvent()      {}
func (CharEvent) isEvent()     {}
func (ScrollEvent) isEvent()   {}
func (ViewportEvent) isEvent() {}

// Key identifies a non-character key. Printable input arrives as CharEvent
// instead, so only keys the runtime or applications act on are enumerated.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyDelete
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
)
