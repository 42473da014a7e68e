package input

import "testing"

func TestKeyboardDefaultSafety(t *testing.T) {
	kb := NewKeyboard(&scriptedKeys{count: 16})

	if kb.Count() != 16 {
		t.Fatalf("Count() = %d, want 16", kb.Count())
	}
	for k := Key(0); k < 16; k++ {
		if kb.IsPressed(k) || kb.IsHeld(k) || kb.WasJustPressed(k) || kb.WasJustReleased(k) {
			t.Errorf("key %d reports state before the first Update", k)
		}
	}
	if kb.ModifierActive(ModShift | ModCtrl | ModAlt) {
		t.Error("no modifier should be active before the first Update")
	}
}

func TestKeyboardBoundsSafety(t *testing.T) {
	all := keysDown(4, 0, 1, 2, 3)
	kb := NewKeyboard(&scriptedKeys{count: 4, frames: [][]bool{all, all}})
	kb.Update()
	kb.Update()

	for _, k := range []Key{-100, -1, 4, 512} {
		if kb.IsPressed(k) || kb.IsHeld(k) || kb.WasJustPressed(k) || kb.WasJustReleased(k) {
			t.Errorf("out-of-range key %d reports state", k)
		}
	}
}

func TestKeyboardEdgeDetection(t *testing.T) {
	const key = Key(2)
	src := &scriptedKeys{
		count: 4,
		frames: [][]bool{
			keysDown(4),
			keysDown(4, 2),
			keysDown(4, 2),
			keysDown(4),
		},
	}
	kb := NewKeyboard(src)

	want := []struct {
		justPressed, justReleased, held bool
	}{
		{false, false, false},
		{true, false, false},
		{false, false, true},
		{false, true, false},
	}

	for i, w := range want {
		kb.Update()
		if got := kb.WasJustPressed(key); got != w.justPressed {
			t.Errorf("update %d: WasJustPressed = %v, want %v", i+1, got, w.justPressed)
		}
		if got := kb.WasJustReleased(key); got != w.justReleased {
			t.Errorf("update %d: WasJustReleased = %v, want %v", i+1, got, w.justReleased)
		}
		if got := kb.IsHeld(key); got != w.held {
			t.Errorf("update %d: IsHeld = %v, want %v", i+1, got, w.held)
		}
	}
}

func TestKeyboardScenario(t *testing.T) {
	src := &scriptedKeys{
		count: 4,
		frames: [][]bool{
			{false, false, true, false},
			{false, false, true, false},
			{false, false, false, false},
		},
	}
	kb := NewKeyboard(src)

	kb.Update()
	if !kb.WasJustPressed(2) {
		t.Error("after update 1: expected WasJustPressed(2)")
	}
	if kb.IsHeld(2) {
		t.Error("after update 1: key 2 should not be held yet")
	}

	kb.Update()
	if !kb.IsHeld(2) {
		t.Error("after update 2: expected IsHeld(2)")
	}
	if kb.WasJustPressed(2) {
		t.Error("after update 2: WasJustPressed(2) should be false")
	}

	kb.Update()
	if !kb.WasJustReleased(2) {
		t.Error("after update 3: expected WasJustReleased(2)")
	}
	if kb.IsPressed(2) {
		t.Error("after update 3: key 2 should be released")
	}
}

func TestKeyboardQueriesAreIdempotent(t *testing.T) {
	kb := NewKeyboard(&scriptedKeys{count: 3, frames: [][]bool{keysDown(3, 1)}})
	kb.Update()

	for k := Key(0); k < 3; k++ {
		if kb.IsPressed(k) != kb.IsPressed(k) ||
			kb.IsHeld(k) != kb.IsHeld(k) ||
			kb.WasJustPressed(k) != kb.WasJustPressed(k) ||
			kb.WasJustReleased(k) != kb.WasJustReleased(k) {
			t.Errorf("key %d: repeated query changed its answer", k)
		}
	}
	if !kb.WasJustPressed(1) || !kb.WasJustPressed(1) {
		t.Error("WasJustPressed(1) should stay true until the next Update")
	}
}

func TestKeyboardIdenticalSnapshot(t *testing.T) {
	snap := keysDown(5, 0, 3)
	kb := NewKeyboard(&scriptedKeys{count: 5, frames: [][]bool{snap, snap, snap}})

	kb.Update()
	kb.Update()
	heldBefore := make([]bool, 5)
	for k := range heldBefore {
		heldBefore[k] = kb.IsHeld(Key(k))
	}

	kb.Update()
	for k := Key(0); k < 5; k++ {
		if kb.WasJustPressed(k) || kb.WasJustReleased(k) {
			t.Errorf("key %d: edge reported for an unchanged snapshot", k)
		}
		if kb.IsHeld(k) != heldBefore[k] {
			t.Errorf("key %d: IsHeld changed for an unchanged snapshot", k)
		}
	}
}

func TestKeyboardModifiers(t *testing.T) {
	src := &scriptedKeys{
		count:  1,
		frames: [][]bool{{false}, {false}},
		mods:   []Mod{ModShift | ModCtrl, ModNone},
	}
	kb := NewKeyboard(src)

	kb.Update()
	tests := []struct {
		mod  Mod
		want bool
	}{
		{ModShift, true},
		{ModCtrl, true},
		{ModAlt, false},
		{ModAlt | ModShift, true},
		{ModNone, false},
	}
	for _, tt := range tests {
		if got := kb.ModifierActive(tt.mod); got != tt.want {
			t.Errorf("ModifierActive(%#x) = %v, want %v", tt.mod, got, tt.want)
		}
	}

	kb.Update()
	if kb.ModifierActive(ModShift) {
		t.Error("shift should be released after the second Update")
	}
}

func TestKeyboardReset(t *testing.T) {
	src := &scriptedKeys{
		count:  2,
		frames: [][]bool{keysDown(2, 0), keysDown(2, 0), keysDown(2)},
		mods:   []Mod{ModAlt},
	}
	kb := NewKeyboard(src)
	kb.Update()
	kb.Update()

	kb.Reset()
	if kb.IsPressed(0) || kb.IsHeld(0) || kb.ModifierActive(ModAlt) {
		t.Error("Reset should clear keys and modifiers")
	}

	kb.Update()
	if kb.WasJustReleased(0) {
		t.Error("no release should be reported after Reset")
	}
}

func TestKeyboardAppendEdges(t *testing.T) {
	src := &scriptedKeys{
		count:  8,
		frames: [][]bool{keysDown(8, 1, 5), keysDown(8, 5, 6)},
	}
	kb := NewKeyboard(src)
	kb.Update()
	kb.Update()

	var buf [8]Key
	pressed := kb.AppendJustPressed(buf[:0])
	if len(pressed) != 1 || pressed[0] != 6 {
		t.Errorf("AppendJustPressed = %v, want [6]", pressed)
	}
	released := kb.AppendJustReleased(buf[:0])
	if len(released) != 1 || released[0] != 1 {
		t.Errorf("AppendJustReleased = %v, want [1]", released)
	}
}

func TestKeyboardInstancesAreIndependent(t *testing.T) {
	a := NewKeyboard(&scriptedKeys{count: 2, frames: [][]bool{keysDown(2, 0)}})
	b := NewKeyboard(&scriptedKeys{count: 2, frames: [][]bool{keysDown(2, 1)}})

	a.Update()
	if b.IsPressed(1) {
		t.Error("updating one keyboard must not affect another")
	}
	b.Update()
	if a.IsPressed(1) || !a.IsPressed(0) {
		t.Error("keyboard a picked up state from keyboard b")
	}
}
