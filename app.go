// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/daboross/simpler-conrod-example/retained"
)

// Ids holds the application's widget identifiers, allocated once at startup.
// Every frame rebuild references exactly these; no identifiers are allocated
// mid-run.
type Ids struct {
	Root  retained.ID
	Label retained.ID
}

// NewIds drains the generator once for each widget the application needs.
func NewIds(g *retained.Generator) Ids {
	return Ids{
		Root:  g.Next(),
		Label: g.Next(),
	}
}

// App bundles everything the dispatch handler needs: the runtime state, the
// drawing surface, the image registry, the widget identifiers and the
// renderer. It is owned exclusively by the event loop's thread.
type App struct {
	UI       *retained.Ui
	Surface  Surface
	Images   *ImageMap
	IDs      Ids
	Renderer *Renderer
	Theme    Theme
}

// NewApp assembles the application state in one step: it queries the surface
// size, builds the runtime at those dimensions, binds the renderer to the
// surface, creates the (empty) image registry and allocates the widget
// identifiers. No partially constructed App is ever returned.
func NewApp(surface Surface, cfg Config) (*App, error) {
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("window size unavailable: %dx%d", w, h)
	}

	theme, err := cfg.ResolveTheme()
	if err != nil {
		return nil, fmt.Errorf("resolving theme: %w", err)
	}

	renderer, err := NewRenderer(surface, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	ui := retained.New(float64(w), float64(h))
	return &App{
		UI:       ui,
		Surface:  surface,
		Images:   NewImageMap(),
		IDs:      NewIds(ui.Generator()),
		Renderer: renderer,
		Theme:    theme,
	}, nil
}

// SetFont installs the loaded font into both the runtime (for measurement)
// and the renderer (for drawing).
func (a *App) SetFont(f *Font) {
	a.UI.SetFont(f)
	a.Renderer.SetFont(f)
}

// HandleLoopEvent is the dispatch step the event loop drives.
//
// Platform events are translated and fed to the runtime, which warrants
// another update pass. Independently, Escape or a close request exits the
// loop, and resize or refresh events force a full redraw since the
// backbuffer contents are stale. Update events rebuild the scene and submit
// it to the renderer only when the runtime reports changed output.
func (a *App) HandleLoopEvent(ctl *Control, ev Event) {
	switch ev := ev.(type) {
	case UpdateEvent:
		CreateUI(a)
		if prims := a.UI.DrawIfChanged(); prims != nil {
			Logger().Debug("redrawing", "primitives", len(prims))
			a.Renderer.Fill(prims, a.Images)
		}

	default:
		if uiEv, ok := translateEvent(ev); ok {
			a.UI.HandleEvent(uiEv)
			ctl.NeedsUpdate()
		}

		switch ev := ev.(type) {
		case KeyEvent:
			if ev.Pressed && ev.Key == ebiten.KeyEscape {
				ctl.Exit()
			}
		case CloseEvent:
			ctl.Exit()
		case ResizeEvent, RefreshEvent:
			a.UI.NeedsRedraw()
			ctl.NeedsUpdate()
		}
	}
}
