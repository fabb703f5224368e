// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/daboross/simpler-conrod-example/retained"
)

// translateEvent converts a platform event into the runtime's vocabulary.
// Events with no meaning to the runtime (close requests, refreshes and the
// synthetic update) report ok == false.
func translateEvent(ev Event) (retained.Event, bool) {
	switch ev := ev.(type) {
	case CursorEvent:
		return retained.PointerEvent{X: float64(ev.X), Y: float64(ev.Y)}, true
	case MouseButtonEvent:
		return retained.ButtonEvent{Button: int(ev.Button), Pressed: ev.Pressed}, true
	case KeyEvent:
		k := keyToUIKey(ev.Key)
		if k == retained.KeyUnknown {
			return nil, false
		}
		return retained.KeyEvent{Key: k, Pressed: ev.Pressed}, true
	case CharEvent:
		return retained.CharEvent{Rune: ev.Rune}, true
	case WheelEvent:
		return retained.ScrollEvent{X: ev.X, Y: ev.Y}, true
	case ResizeEvent:
		return retained.ViewportEvent{Width: float64(ev.Width), Height: float64(ev.Height)}, true
	default:
		return nil, false
	}
}

// keyToUIKey maps the keys the runtime acts on. Printable characters travel
// as CharEvents instead, so letters and digits stay unmapped.
func keyToUIKey(key ebiten.Key) retained.Key {
	switch key {
	case ebiten.KeyEscape:
		return retained.KeyEscape
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return retained.KeyEnter
	case ebiten.KeySpace:
		return retained.KeySpace
	case ebiten.KeyTab:
		return retained.KeyTab
	case ebiten.KeyBackspace:
		return retained.KeyBackspace
	case ebiten.KeyDelete:
		return retained.KeyDelete
	case ebiten.KeyArrowLeft:
		return retained.KeyArrowLeft
	case ebiten.KeyArrowRight:
		return retained.KeyArrowRight
	case ebiten.KeyArrowUp:
		return retained.KeyArrowUp
	case ebiten.KeyArrowDown:
		return retained.KeyArrowDown
	case ebiten.KeyHome:
		return retained.KeyHome
	case ebiten.KeyEnd:
		return retained.KeyEnd
	case ebiten.KeyPageUp:
		return retained.KeyPageUp
	case ebiten.KeyPageDown:
		return retained.KeyPageDown
	case ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
		return retained.KeyShift
	case ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight:
		return retained.KeyControl
	case ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight:
		return retained.KeyAlt
	case ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
		return retained.KeyMeta
	default:
		return retained.KeyUnknown
	}
}
