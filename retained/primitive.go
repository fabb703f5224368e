// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package retained

import "image/color"

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CenterOf returns a rect of size (w, h) centered inside r.
func (r Rect) CenterOf(w, h float64) Rect {
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// ImageID is an opaque handle into the application's image registry. The
// runtime never dereferences it; the renderer resolves it to a texture.
type ImageID uint32

// Primitive is one unit of visual output produced by a frame. All concrete
// primitive types are plain comparable structs so that the draw-if-changed
// check reduces to element-wise equality against the previous frame.
type Primitive interface {
	isPrimitive()
}

// RectPrimitive is a solid filled rectangle.
type RectPrimitive struct {
	ID    ID
	Rect  Rect
	Color color.RGBA
}

// TextPrimitive is a single run of text. Rect is the text's bounding box as
// measured by the runtime's font; renderers draw from its top-left corner.
type TextPrimitive struct {
	ID    ID
	Rect  Rect
	Text  string
	Color color.RGBA
	Size  float64
}

// ImagePrimitive references a texture from the image registry, scaled to Rect.
type ImagePrimitive struct {
	ID    ID
	Rect  Rect
	Image ImageID
}

func (RectPrimitive) isPrimitive()  {}
func (TextPrimitive) isPrimitive()  {}
func (ImagePrimitive) isPrimitive() {}

// primitivesEqual reports whether two frames produce identical visual output.
// Element order matters: primitives are drawn back to front.
func primitivesEqual(a, b []Primitive) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
