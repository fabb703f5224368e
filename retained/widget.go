// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package retained

import "image/color"

// Widgets are cheap throwaway builders: construct one, chain setters, then
// Set it into the frame. Set decides position and size, records the widget's
// rect under its ID, and emits primitives.

// CanvasWidget is a solid background panel. Without a parent it fills the
// whole viewport, which is how root canvases are made.
type CanvasWidget struct {
	color       color.RGBA
	border      float64
	borderColor color.RGBA
	parent      ID
	hasParent   bool
}

// Canvas creates a canvas with a black border one pixel wide.
func Canvas() *CanvasWidget {
	return &CanvasWidget{
		border:      1,
		borderColor: color.RGBA{A: 0xff},
	}
}

// Color sets the canvas fill color.
func (c *CanvasWidget) Color(col color.RGBA) *CanvasWidget {
	c.color = col
	return c
}

// Border sets the border width in pixels. Zero disables the border.
func (c *CanvasWidget) Border(px float64) *CanvasWidget {
	c.border = px
	return c
}

// Borderless removes the border entirely.
func (c *CanvasWidget) Borderless() *CanvasWidget {
	c.border = 0
	return c
}

// BorderColor sets the border color.
func (c *CanvasWidget) BorderColor(col color.RGBA) *CanvasWidget {
	c.borderColor = col
	return c
}

// InsideOf places the canvas inside a previously set widget instead of the
// viewport.
func (c *CanvasWidget) InsideOf(id ID) *CanvasWidget {
	c.parent = id
	c.hasParent = true
	return c
}

// Set places the canvas into the frame under id.
func (c *CanvasWidget) Set(id ID, b *Builder) {
	r := b.Viewport()
	if c.hasParent {
		if pr, ok := b.WidgetRect(c.parent); ok {
			r = pr
		}
	}
	b.place(id, r)
	b.emit(RectPrimitive{ID: id, Rect: r, Color: c.color})
	if c.border > 0 {
		for _, edge := range borderEdges(r, c.border) {
			b.emit(RectPrimitive{ID: id, Rect: edge, Color: c.borderColor})
		}
	}
}

// borderEdges returns the four edge strips of width px just inside r,
// in top, bottom, left, right order.
func borderEdges(r Rect, px float64) [4]Rect {
	return [4]Rect{
		{X: r.X, Y: r.Y, W: r.W, H: px},
		{X: r.X, Y: r.Y + r.H - px, W: r.W, H: px},
		{X: r.X, Y: r.Y + px, W: px, H: r.H - 2*px},
		{X: r.X + r.W - px, Y: r.Y + px, W: px, H: r.H - 2*px},
	}
}

// TextWidget is a single-line text label.
type TextWidget struct {
	text      string
	color     color.RGBA
	hasColor  bool
	size      float64
	middleOf  ID
	hasMiddle bool
	x, y      float64
}

// Text creates a label with the given content. The default color is black
// and the default size is DefaultFontSize.
func Text(s string) *TextWidget {
	return &TextWidget{text: s}
}

// Color sets the text color.
func (t *TextWidget) Color(col color.RGBA) *TextWidget {
	t.color = col
	t.hasColor = true
	return t
}

// FontSize sets the text size in pixels.
func (t *TextWidget) FontSize(size float64) *TextWidget {
	t.size = size
	return t
}

// MiddleOf centers the label inside a previously set widget.
func (t *TextWidget) MiddleOf(id ID) *TextWidget {
	t.middleOf = id
	t.hasMiddle = true
	return t
}

// TopLeftAt places the label's top-left corner at the given surface position.
// Ignored when MiddleOf is also set.
func (t *TextWidget) TopLeftAt(x, y float64) *TextWidget {
	t.x, t.y = x, y
	return t
}

// Set measures the text, resolves its position, and places it into the frame
// under id.
func (t *TextWidget) Set(id ID, b *Builder) {
	size := t.size
	if size == 0 {
		size = DefaultFontSize
	}
	col := t.color
	if !t.hasColor {
		col = color.RGBA{A: 0xff}
	}

	w, h := b.measure(t.text, size)
	r := Rect{X: t.x, Y: t.y, W: w, H: h}
	if t.hasMiddle {
		target := b.Viewport()
		if tr, ok := b.WidgetRect(t.middleOf); ok {
			target = tr
		}
		r = target.CenterOf(w, h)
	}
	b.place(id, r)
	b.emit(TextPrimitive{ID: id, Rect: r, Text: t.text, Color: col, Size: size})
}

// ImageWidget shows a texture from the application's image registry.
type ImageWidget struct {
	image     ImageID
	rect      Rect
	middleOf  ID
	hasMiddle bool
}

// Image creates an image widget drawing the given registry entry into rect.
func Image(img ImageID, rect Rect) *ImageWidget {
	return &ImageWidget{image: img, rect: rect}
}

// MiddleOf centers the image inside a previously set widget, keeping its size.
func (i *ImageWidget) MiddleOf(id ID) *ImageWidget {
	i.middleOf = id
	i.hasMiddle = true
	return i
}

// Set places the image into the frame under id.
func (i *ImageWidget) Set(id ID, b *Builder) {
	r := i.rect
	if i.hasMiddle {
		target := b.Viewport()
		if tr, ok := b.WidgetRect(i.middleOf); ok {
			target = tr
		}
		r = target.CenterOf(r.W, r.H)
	}
	b.place(id, r)
	b.emit(ImagePrimitive{ID: id, Rect: r, Image: i.image})
}
