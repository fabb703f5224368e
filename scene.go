// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import "github.com/daboross/simpler-conrod-example/retained"

// CreateUI rebuilds the declarative widget tree from current state: a
// borderless themed canvas filling the window with a centered "hello" label.
// Rebuilding is cheap and idempotent; whether any GPU work follows is decided
// separately by the runtime's draw-if-changed check.
func CreateUI(a *App) {
	b := a.UI.SetWidgets()

	retained.Canvas().
		Color(a.Theme.Background).
		Borderless().
		Set(a.IDs.Root, b)

	retained.Text("hello").
		Color(a.Theme.Foreground).
		MiddleOf(a.IDs.Root).
		Set(a.IDs.Label, b)
}
