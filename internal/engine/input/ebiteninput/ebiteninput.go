// Package ebiteninput reads raw keyboard and pointer state from Ebiten.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Faultbox/inputstate/internal/engine/input"
)

// Source implements input.KeySource and input.PointerSource using Ebiten's
// polled input API. It is only meaningful inside ebiten.Game.Update.
type Source struct{}

// New creates an Ebiten input source.
func New() *Source {
	return &Source{}
}

// Key converts an Ebiten key to a keyboard tracker key.
func Key(k ebiten.Key) input.Key {
	return input.Key(k)
}

// KeyCount covers every ebiten.Key up to and including KeyMax.
func (s *Source) KeyCount() int {
	return int(ebiten.KeyMax) + 1
}

// ReadKeys fills dst with ebiten.IsKeyPressed for each key.
func (s *Source) ReadKeys(dst []bool) {
	for i := range dst {
		dst[i] = ebiten.IsKeyPressed(ebiten.Key(i))
	}
}

var modKeys = []struct {
	key ebiten.Key
	mod input.Mod
}{
	{ebiten.KeyShift, input.ModShift},
	{ebiten.KeyControl, input.ModCtrl},
	{ebiten.KeyAlt, input.ModAlt},
	{ebiten.KeyMeta, input.ModGUI},
}

// Modifiers derives the modifier mask from the virtual modifier keys.
// Ebiten does not expose lock state, so ModCaps and ModNum are never set.
func (s *Source) Modifiers() input.Mod {
	var m input.Mod
	for _, e := range modKeys {
		if ebiten.IsKeyPressed(e.key) {
			m |= e.mod
		}
	}
	return m
}

// PointerButtons returns the left and right mouse button state.
func (s *Source) PointerButtons() (left, right bool) {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
}

// PointerPosition returns the cursor position in Ebiten's layout space.
func (s *Source) PointerPosition() (x, y int) {
	return ebiten.CursorPosition()
}
