// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import "github.com/hajimehoshi/ebiten/v2"

// Surface is the drawable target a window presents. The renderer and the
// application only need its pixel size; tests substitute a fixed-size fake.
type Surface interface {
	// Size returns the surface dimensions in pixels. Both are zero when
	// the size is not yet known.
	Size() (w, h int)
}

// WindowSurface is the real window-backed surface. Its size tracks the live
// window: the game adapter feeds every layout pass back into it.
type WindowSurface struct {
	width, height int
}

// OpenWindow applies the window configuration to the platform window and
// returns its surface. The window itself only materializes once Run starts
// the event loop; creation failures surface as errors there.
func OpenWindow(cfg Config) *WindowSurface {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(cfg.Window.Vsync)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Close requests are delivered as events so the dispatch handler decides
	// when to exit, matching the Escape key path.
	ebiten.SetWindowClosingHandled(true)

	Logger().Info("window configured",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"title", cfg.Window.Title,
		"vsync", cfg.Window.Vsync)

	return &WindowSurface{width: cfg.Window.Width, height: cfg.Window.Height}
}

// Size implements Surface.
func (s *WindowSurface) Size() (w, h int) {
	return s.width, s.height
}

func (s *WindowSurface) setSize(w, h int) {
	s.width, s.height = w, h
}
