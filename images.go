// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/daboross/simpler-conrod-example/retained"
)

// ImageMap is the registry mapping the runtime's opaque image handles to GPU
// textures. This application registers nothing in it, but the renderer
// resolves ImagePrimitives through it so image widgets work out of the box.
type ImageMap struct {
	m    map[retained.ImageID]*ebiten.Image
	next retained.ImageID
}

// NewImageMap creates an empty registry.
func NewImageMap() *ImageMap {
	return &ImageMap{m: make(map[retained.ImageID]*ebiten.Image)}
}

// Add registers a texture and returns its handle.
func (im *ImageMap) Add(img *ebiten.Image) retained.ImageID {
	id := im.next
	im.next++
	im.m[id] = img
	return id
}

// Get resolves a handle.
func (im *ImageMap) Get(id retained.ImageID) (*ebiten.Image, bool) {
	img, ok := im.m[id]
	return img, ok
}

// Len reports the number of registered textures.
func (im *ImageMap) Len() int {
	return len(im.m)
}

// LoadAll decodes every image file under dir in fsys and registers the
// results, returning handles keyed by path. Paths sort lexically so handle
// assignment is deterministic.
func (im *ImageMap) LoadAll(fsys fs.FS, dir string) (map[string]retained.ImageID, error) {
	var paths []string
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := path.Ext(p); ext == ".png" {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(paths)

	ids := make(map[string]retained.ImageID, len(paths))
	for _, p := range paths {
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", p, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", p, err)
		}
		ids[p] = im.Add(ebiten.NewImageFromImage(img))
	}
	return ids, nil
}
