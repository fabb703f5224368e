// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/text/language"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps a parsed font source and hands out sized faces. It implements
// retained.Font so the runtime lays text out with the same metrics the
// renderer draws with.
type Font struct {
	source *text.GoTextFaceSource
}

// LoadFont parses the font bundled into the binary (Go Regular). The bytes
// are fixed at build time, so a parse failure is a build defect and the
// caller is expected to abort on it.
func LoadFont() (*Font, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parsing embedded font: %w", err)
	}
	return &Font{source: src}, nil
}

// Face returns a drawable face at the given pixel size.
func (f *Font) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{
		Source:   f.source,
		Size:     size,
		Language: language.Make("en"),
	}
}

// Measure returns the bounding size of a single line of text. Implements
// retained.Font.
func (f *Font) Measure(s string, size float64) (w, h float64) {
	face := f.Face(size)
	m := face.Metrics()
	return text.Advance(s, face), m.HAscent + m.HDescent
}
