// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package retained

// Font measures text for layout. The runtime does not rasterize glyphs
// itself; whatever text stack ultimately draws the frame supplies the same
// metrics here so layout and rendering agree.
type Font interface {
	// Measure returns the width and height in pixels of a single line of
	// text at the given size.
	Measure(text string, size float64) (w, h float64)
}

// DefaultFontSize is used by text widgets that do not set an explicit size.
const DefaultFontSize = 18

// Ui is the retained-mode runtime state. Widget trees are rebuilt from
// scratch every frame via SetWidgets; Ui retains each widget's placed
// rectangle between rebuilds and compares the produced primitives against the
// previously drawn frame so that unchanged frames cost no GPU work.
//
// Ui is not safe for concurrent use. The intended model is a single
// cooperative event loop that alternates HandleEvent and SetWidgets calls.
type Ui struct {
	width, height float64

	gen  Generator
	font Font

	// frame is the primitive list being built (or last built) by SetWidgets.
	// drawn is the list most recently handed out by DrawIfChanged.
	frame []Primitive
	drawn []Primitive

	// rects holds each widget's rectangle for the current frame, so that
	// later widgets can position themselves relative to earlier ones.
	rects map[ID]Rect

	forceRedraw bool

	// Aggregated input state. A static scene ignores most of it, but the
	// runtime tracks it so stateful widgets have something to read.
	pointerX, pointerY float64
	buttonsDown        map[int]bool
	keysDown           map[Key]bool
}

// New creates a runtime sized to the given surface dimensions in pixels.
func New(width, height float64) *Ui {
	return &Ui{
		width:       width,
		height:      height,
		rects:       make(map[ID]Rect),
		buttonsDown: make(map[int]bool),
		keysDown:    make(map[Key]bool),
	}
}

// Generator returns the runtime's widget ID generator.
func (u *Ui) Generator() *Generator {
	return &u.gen
}

// SetFont installs the font used for text measurement.
func (u *Ui) SetFont(f Font) {
	u.font = f
}

// Size returns the current surface dimensions.
func (u *Ui) Size() (w, h float64) {
	return u.width, u.height
}

// HandleEvent feeds one translated input event into the runtime. Events only
// update retained input state; whether anything changed visually is decided
// by DrawIfChanged after the next rebuild.
func (u *Ui) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case PointerEvent:
		u.pointerX, u.pointerY = ev.X, ev.Y
	case ButtonEvent:
		if ev.Pressed {
			u.buttonsDown[ev.Button] = true
		} else {
			delete(u.buttonsDown, ev.Button)
		}
	case KeyEvent:
		if ev.Pressed {
			u.keysDown[ev.Key] = true
		} else {
			delete(u.keysDown, ev.Key)
		}
	case ViewportEvent:
		if ev.Width > 0 && ev.Height > 0 {
			u.width, u.height = ev.Width, ev.Height
		}
	case CharEvent, ScrollEvent:
		// No retained state in this runtime reads these yet.
	}
}

// Pointer returns the last reported cursor position.
func (u *Ui) Pointer() (x, y float64) {
	return u.pointerX, u.pointerY
}

// NeedsRedraw forces the next DrawIfChanged call to return primitives even if
// the rebuilt frame is identical to the previous one. Platform layers call
// this after resize or refresh events, where the backbuffer contents can no
// longer be trusted.
func (u *Ui) NeedsRedraw() {
	u.forceRedraw = true
}

// SetWidgets begins a frame rebuild, discarding the previous frame's
// primitive list, and returns the builder widgets place themselves into.
func (u *Ui) SetWidgets() *Builder {
	u.frame = u.frame[:0]
	clear(u.rects)
	return &Builder{ui: u}
}

// DrawIfChanged returns the frame's primitives if they differ from the last
// drawn frame, or nil when the output is unchanged and no redraw was forced.
// The returned slice is owned by the caller's render pass and stays valid
// until the next DrawIfChanged that reports a change.
func (u *Ui) DrawIfChanged() []Primitive {
	if !u.forceRedraw && primitivesEqual(u.frame, u.drawn) {
		return nil
	}
	u.forceRedraw = false
	u.drawn = append([]Primitive(nil), u.frame...)
	return u.drawn
}

// Builder collects widgets for one frame. Obtain one from Ui.SetWidgets;
// a Builder must not outlive the frame it was created for.
type Builder struct {
	ui *Ui
}

// Viewport returns the full surface rectangle.
func (b *Builder) Viewport() Rect {
	return Rect{W: b.ui.width, H: b.ui.height}
}

// WidgetRect returns the rectangle a widget was placed at earlier in this
// frame. Widgets are set in back-to-front order, so parents come first.
func (b *Builder) WidgetRect(id ID) (Rect, bool) {
	r, ok := b.ui.rects[id]
	return r, ok
}

func (b *Builder) place(id ID, r Rect) {
	b.ui.rects[id] = r
}

func (b *Builder) emit(p Primitive) {
	b.ui.frame = append(b.ui.frame, p)
}

func (b *Builder) measure(text string, size float64) (w, h float64) {
	if b.ui.font != nil {
		return b.ui.font.Measure(text, size)
	}
	// Rough fallback so layout stays sane before a font is installed.
	return float64(len(text)) * size * 0.6, size
}
