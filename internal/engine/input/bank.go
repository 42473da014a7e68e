package input

// Control is any integer type usable as a control index.
type Control interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bank holds two generations of a fixed-size bank of boolean controls.
// The zero value is an empty bank; use NewBank.
type Bank[C Control] struct {
	current  []bool
	previous []bool
}

// NewBank creates a bank of count controls, all released.
// A negative count is treated as zero.
func NewBank[C Control](count int) *Bank[C] {
	count = max(count, 0)
	return &Bank[C]{
		current:  make([]bool, count),
		previous: make([]bool, count),
	}
}

// Count returns the number of controls in the bank.
func (b *Bank[C]) Count() int {
	return len(b.current)
}

// Advance retires the current generation and lets fill write the next one.
// fill receives a buffer of length Count holding the retired values and is
// expected to overwrite all of it.
func (b *Bank[C]) Advance(fill func(dst []bool)) {
	copy(b.previous, b.current)
	fill(b.current)
}

// Reset releases every control in both generations.
func (b *Bank[C]) Reset() {
	clear(b.current)
	clear(b.previous)
}

// index converts c to a slice index. ok is false when c is outside the bank.
func (b *Bank[C]) index(c C) (int, bool) {
	// Compare before narrowing so huge unsigned values cannot wrap into range.
	if c < 0 || uint64(c) >= uint64(len(b.current)) {
		return 0, false
	}
	return int(c), true
}

// Pressed reports whether c is down in the current generation.
func (b *Bank[C]) Pressed(c C) bool {
	i, ok := b.index(c)
	return ok && b.current[i]
}

// Held reports whether c is down in both the current and previous generation.
func (b *Bank[C]) Held(c C) bool {
	i, ok := b.index(c)
	return ok && b.current[i] && b.previous[i]
}

// JustPressed reports a rising edge on c.
func (b *Bank[C]) JustPressed(c C) bool {
	i, ok := b.index(c)
	return ok && b.current[i] && !b.previous[i]
}

// JustReleased reports a falling edge on c.
func (b *Bank[C]) JustReleased(c C) bool {
	i, ok := b.index(c)
	return ok && !b.current[i] && b.previous[i]
}

// AppendJustPressed appends every control with a rising edge to dst.
func (b *Bank[C]) AppendJustPressed(dst []C) []C {
	for i, down := range b.current {
		if down && !b.previous[i] {
			dst = append(dst, C(i))
		}
	}
	return dst
}

// AppendJustReleased appends every control with a falling edge to dst.
func (b *Bank[C]) AppendJustReleased(dst []C) []C {
	for i, down := range b.current {
		if !down && b.previous[i] {
			dst = append(dst, C(i))
		}
	}
	return dst
}

// clampMin returns v, or lo if v is smaller.
func clampMin(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}
