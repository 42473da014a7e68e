package input

// Keyboard tracks the pressed state of every key reported by a KeySource.
type Keyboard struct {
	src  KeySource
	keys *Bank[Key]
	mods Mod
}

// NewKeyboard creates a keyboard tracker sized to src.KeyCount().
// Before the first Update every key reads as released.
func NewKeyboard(src KeySource) *Keyboard {
	return &Keyboard{
		src:  src,
		keys: NewBank[Key](src.KeyCount()),
	}
}

// Update reads a new generation from the source. Call once per frame.
func (k *Keyboard) Update() {
	k.keys.Advance(k.src.ReadKeys)
	k.mods = k.src.Modifiers()
}

// Reset releases every key in both generations and clears the modifiers.
func (k *Keyboard) Reset() {
	k.keys.Reset()
	k.mods = ModNone
}

// Count returns the size of the key universe.
func (k *Keyboard) Count() int {
	return k.keys.Count()
}

// IsPressed reports whether key is down. Unknown keys are never pressed.
func (k *Keyboard) IsPressed(key Key) bool {
	return k.keys.Pressed(key)
}

// IsHeld reports whether key was down in this frame and the previous one.
func (k *Keyboard) IsHeld(key Key) bool {
	return k.keys.Held(key)
}

// WasJustPressed reports whether key went down this frame.
func (k *Keyboard) WasJustPressed(key Key) bool {
	return k.keys.JustPressed(key)
}

// WasJustReleased reports whether key went up this frame.
func (k *Keyboard) WasJustReleased(key Key) bool {
	return k.keys.JustReleased(key)
}

// ModifierActive reports whether any modifier in m was asserted at the last
// Update.
func (k *Keyboard) ModifierActive(m Mod) bool {
	return k.mods&m != 0
}

// Modifiers returns the modifier mask sampled at the last Update.
func (k *Keyboard) Modifiers() Mod {
	return k.mods
}

// AppendJustPressed appends the keys that went down this frame to dst.
func (k *Keyboard) AppendJustPressed(dst []Key) []Key {
	return k.keys.AppendJustPressed(dst)
}

// AppendJustReleased appends the keys that went up this frame to dst.
func (k *Keyboard) AppendJustReleased(dst []Key) []Key {
	return k.keys.AppendJustReleased(dst)
}
