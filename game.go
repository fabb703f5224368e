// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts the event loop to the platform's fixed-cadence run loop. Each
// tick runs one loop iteration; each presented frame replays the renderer's
// cached commands. The tick cadence is what puts the "promptly" in update
// delivery: a requested update rides the next tick.
type game struct {
	loop     *EventLoop
	handler  Handler
	renderer *Renderer
	surface  *WindowSurface

	drawErr error
}

func (g *game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	if g.loop.Step(g.handler) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// Draw has no error return; surface failures are carried to the next
	// Update, which aborts the loop.
	if err := g.renderer.Draw(screen); err != nil && g.drawErr == nil {
		g.drawErr = fmt.Errorf("drawing frame: %w", err)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.surface.setSize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run drives the indefinite event loop: it creates the platform event
// source, wires it to the handler through the loop glue, and blocks until
// the handler requests exit or a fatal error occurs. Window and graphics
// context creation happen here; their failures are returned, not recovered.
func Run(surface *WindowSurface, handler Handler, renderer *Renderer) error {
	g := &game{
		loop:     NewEventLoop(newInputSource(surface)),
		handler:  handler,
		renderer: renderer,
		surface:  surface,
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("event loop: %w", err)
	}
	return nil
}
