package sdlinput

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/inputstate/internal/engine/input"
)

func TestFillKeys(t *testing.T) {
	tests := []struct {
		name  string
		dst   int
		state []uint8
		want  []bool
	}{
		{"same size", 3, []uint8{0, 1, 0}, []bool{false, true, false}},
		{"short table", 4, []uint8{1, 1}, []bool{true, true, false, false}},
		{"long table", 2, []uint8{0, 1, 1, 1}, []bool{false, true}},
		{"nonzero counts as down", 2, []uint8{255, 2}, []bool{true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]bool, tt.dst)
			for i := range dst {
				dst[i] = true
			}
			fillKeys(dst, tt.state)
			for i := range tt.want {
				if dst[i] != tt.want[i] {
					t.Errorf("dst = %v, want %v", dst, tt.want)
					break
				}
			}
		})
	}
}

func TestTranslateMod(t *testing.T) {
	tests := []struct {
		in   uint32
		want input.Mod
	}{
		{uint32(sdl.KMOD_NONE), input.ModNone},
		{uint32(sdl.KMOD_LSHIFT), input.ModShift},
		{uint32(sdl.KMOD_RSHIFT), input.ModShift},
		{uint32(sdl.KMOD_LCTRL | sdl.KMOD_RALT), input.ModCtrl | input.ModAlt},
		{uint32(sdl.KMOD_LGUI | sdl.KMOD_CAPS | sdl.KMOD_NUM), input.ModGUI | input.ModCaps | input.ModNum},
	}

	for _, tt := range tests {
		if got := translateMod(tt.in); got != tt.want {
			t.Errorf("translateMod(%#x) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestScancode(t *testing.T) {
	if got := Scancode(sdl.SCANCODE_A); got != input.Key(4) {
		t.Errorf("Scancode(SCANCODE_A) = %d, want 4", got)
	}
}
