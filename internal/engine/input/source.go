// Package input tracks polled keyboard and pointer state across frames.
//
// Each tracker keeps two generations of raw state: the snapshot read by the
// latest Update and the one before it. Press, hold and release facts are
// derived by comparing the two. Queries are valid until the next Update.
//
// Trackers are not safe for concurrent use. Update and the queries that
// follow it must run on the same goroutine, normally the main loop.
package input

// Key identifies a control in the keyboard universe of a KeySource.
// For SDL this is the scancode, for Ebiten the ebiten.Key value.
type Key int

// Button identifies a tracked pointer button.
type Button int

// Pointer buttons.
const (
	ButtonLeft Button = iota
	ButtonRight

	buttonCount = int(ButtonRight) + 1
)

// Mod is a bitmask of keyboard modifiers.
type Mod uint16

// Modifier bits. Left and right variants are folded together.
const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModGUI
	ModCaps
	ModNum

	ModNone Mod = 0
)

// KeySource reads raw keyboard state from the platform.
type KeySource interface {
	// KeyCount returns the size of the key universe. It must not change
	// for the lifetime of the source.
	KeyCount() int
	// ReadKeys fills dst with the current down state of every key.
	// It must not consume events.
	ReadKeys(dst []bool)
	// Modifiers returns the currently asserted modifiers.
	Modifiers() Mod
}

// PointerSource reads raw pointer state from the platform.
type PointerSource interface {
	PointerButtons() (left, right bool)
	PointerPosition() (x, y int)
}
