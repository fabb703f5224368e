// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/daboross/simpler-conrod-example/retained"
)

type cmdKind int

const (
	cmdRect cmdKind = iota
	cmdText
	cmdImage
)

// drawCommand is one resolved draw call. Fill produces the list; Draw
// replays it onto the frame target.
type drawCommand struct {
	kind  cmdKind
	rect  retained.Rect
	color color.RGBA
	text  string
	size  float64
	image *ebiten.Image
}

// Renderer converts the runtime's primitives into draw calls against the
// surface. Fill runs only when the runtime reports changed output; the
// resulting command list is replayed cheaply on every presented frame.
type Renderer struct {
	surface   Surface
	font      *Font
	antialias bool
	cmds      []drawCommand
}

// NewRenderer binds a renderer to a drawing surface.
func NewRenderer(surface Surface, cfg Config) (*Renderer, error) {
	if surface == nil {
		return nil, errors.New("renderer needs a surface")
	}
	return &Renderer{
		surface:   surface,
		antialias: cfg.Window.Samples > 1,
	}, nil
}

// SetFont installs the font used to draw text primitives.
func (r *Renderer) SetFont(f *Font) {
	r.font = f
}

// Fill rebuilds the command list from a frame's primitives, resolving image
// handles through the registry. Unknown handles are skipped with a warning
// rather than failing the frame.
func (r *Renderer) Fill(prims []retained.Primitive, images *ImageMap) {
	r.cmds = r.cmds[:0]
	for _, p := range prims {
		switch p := p.(type) {
		case retained.RectPrimitive:
			r.cmds = append(r.cmds, drawCommand{kind: cmdRect, rect: p.Rect, color: p.Color})
		case retained.TextPrimitive:
			r.cmds = append(r.cmds, drawCommand{
				kind:  cmdText,
				rect:  p.Rect,
				color: p.Color,
				text:  p.Text,
				size:  p.Size,
			})
		case retained.ImagePrimitive:
			img, ok := images.Get(p.Image)
			if !ok {
				Logger().Warn("skipping unknown image", "image", uint32(p.Image), "widget", uint32(p.ID))
				continue
			}
			r.cmds = append(r.cmds, drawCommand{kind: cmdImage, rect: p.Rect, image: img})
		}
	}
	Logger().Debug("filled", "commands", len(r.cmds))
}

// Draw replays the current command list onto the frame target.
func (r *Renderer) Draw(dst *ebiten.Image) error {
	for _, c := range r.cmds {
		switch c.kind {
		case cmdRect:
			vector.DrawFilledRect(dst,
				float32(c.rect.X), float32(c.rect.Y),
				float32(c.rect.W), float32(c.rect.H),
				c.color, r.antialias)
		case cmdText:
			if r.font == nil {
				return fmt.Errorf("drawing %q: no font loaded", c.text)
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(c.rect.X, c.rect.Y)
			op.ColorScale.ScaleWithColor(c.color)
			text.Draw(dst, c.text, r.font.Face(c.size), op)
		case cmdImage:
			w := c.image.Bounds().Dx()
			h := c.image.Bounds().Dy()
			if w == 0 || h == 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(c.rect.W/float64(w), c.rect.H/float64(h))
			op.GeoM.Translate(c.rect.X, c.rect.Y)
			dst.DrawImage(c.image, op)
		}
	}
	return nil
}
