// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package retained

// ID is an opaque, stable handle naming one persistent widget across frames.
// Retained per-widget state (currently the widget's placed rectangle) is keyed
// by ID, so the same ID must be used for the same logical widget every frame.
type ID uint32

// Generator hands out widget IDs from a monotonic counter. IDs are never
// reused. A Generator is obtained from Ui.Generator and is expected to be
// drained once at startup; allocating mid-run works but defeats the point of
// retained state.
type Generator struct {
	next ID
}

// Next returns a fresh ID.
func (g *Generator) Next() ID {
	id := g.next
	g.next++
	return id
}

// Count reports how many IDs have been allocated so far.
func (g *Generator) Count() int {
	return int(g.next)
}
