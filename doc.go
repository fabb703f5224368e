// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

// Package conrodapp wires a small retained-mode GUI runtime to Ebitengine's
// window, event loop and GPU backend, in the shape popularized by conrod:
// rebuild the widget tree every update, let the runtime diff the output, and
// only touch the GPU when something actually changed.
//
// Basic usage:
//
//	cfg := conrodapp.DefaultConfig()
//	font, err := conrodapp.LoadFont()
//	if err != nil { ... }
//
//	surface := conrodapp.OpenWindow(cfg)
//	app, err := conrodapp.NewApp(surface, cfg)
//	if err != nil { ... }
//	app.SetFont(font)
//
//	if err := conrodapp.Run(surface, app.HandleLoopEvent, app.Renderer); err != nil { ... }
//
// The event loop delivers platform events (keyboard, cursor, resize, close)
// and a synthetic update event to the handler. The default handler,
// [App.HandleLoopEvent], translates platform events for the runtime, exits on
// Escape or a close request, forces a redraw after resize or refresh, and on
// each update rebuilds the scene via [CreateUI] and submits it to the
// renderer only if the runtime's draw-if-changed check reports new output.
//
// The widget runtime itself lives in the retained subpackage. It is
// deliberately narrow: an identifier generator, an event-ingestion call, a
// per-frame widget builder, and the draw-if-changed / force-redraw pair.
//
// The font is bundled into the binary; there is no file system dependency at
// runtime. Window parameters and theme colors come from [Config], which can
// be overridden from a TOML file via [LoadConfig].
package conrodapp
