// Package sdlinput reads raw keyboard and pointer state from SDL2.
//
// SDL refreshes its state tables while pumping events, so the host must
// drain the event queue (sdl.PollEvent or sdl.PumpEvents) before calling
// Update on the trackers each frame.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/inputstate/internal/engine/input"
	"github.com/Faultbox/inputstate/internal/logger"
)

// Source implements input.KeySource and input.PointerSource on top of SDL2.
// SDL must be initialized with INIT_VIDEO before a Source is created.
type Source struct {
	keyCount int
}

// New creates an SDL input source.
func New() *Source {
	s := &Source{keyCount: len(sdl.GetKeyboardState())}
	logger.Debug("SDL input source ready", zap.Int("scancodes", s.keyCount))
	return s
}

// Scancode converts an SDL scancode to a keyboard tracker key.
func Scancode(sc sdl.Scancode) input.Key {
	return input.Key(sc)
}

// KeyCount returns the number of scancodes SDL reports.
func (s *Source) KeyCount() int {
	return s.keyCount
}

// ReadKeys copies SDL's keyboard table into dst.
func (s *Source) ReadKeys(dst []bool) {
	fillKeys(dst, sdl.GetKeyboardState())
}

// Modifiers returns the SDL modifier state as an input.Mod.
func (s *Source) Modifiers() input.Mod {
	return translateMod(uint32(sdl.GetModState()))
}

// PointerButtons returns the left and right mouse button state.
func (s *Source) PointerButtons() (left, right bool) {
	_, _, state := sdl.GetMouseState()
	return state&sdl.ButtonLMask() != 0, state&sdl.ButtonRMask() != 0
}

// PointerPosition returns the mouse position relative to the focused window.
func (s *Source) PointerPosition() (x, y int) {
	mx, my, _ := sdl.GetMouseState()
	return int(mx), int(my)
}

// fillKeys converts an SDL state table into dst. Entries past the end of
// state read as released.
func fillKeys(dst []bool, state []uint8) {
	n := min(len(dst), len(state))
	for i := 0; i < n; i++ {
		dst[i] = state[i] != 0
	}
	clear(dst[n:])
}

var modTable = []struct {
	sdl uint32
	mod input.Mod
}{
	{uint32(sdl.KMOD_SHIFT), input.ModShift},
	{uint32(sdl.KMOD_CTRL), input.ModCtrl},
	{uint32(sdl.KMOD_ALT), input.ModAlt},
	{uint32(sdl.KMOD_GUI), input.ModGUI},
	{uint32(sdl.KMOD_CAPS), input.ModCaps},
	{uint32(sdl.KMOD_NUM), input.ModNum},
}

// translateMod folds SDL's left/right modifier bits into input.Mod.
func translateMod(m uint32) input.Mod {
	var out input.Mod
	for _, e := range modTable {
		if m&e.sdl != 0 {
			out |= e.mod
		}
	}
	return out
}
