package input

// Pointer tracks the left and right pointer buttons and the raw pointer
// position, along with the logical size the renderer maps positions into.
type Pointer struct {
	src     PointerSource
	buttons *Bank[Button]

	x, y         int
	prevX, prevY int

	logicalW, logicalH int
}

// NewPointer creates a pointer tracker with both generations zeroed and a
// 1x1 logical size.
func NewPointer(src PointerSource) *Pointer {
	return &Pointer{
		src:      src,
		buttons:  NewBank[Button](buttonCount),
		logicalW: 1,
		logicalH: 1,
	}
}

// Update reads a new generation with a 1x1 logical size.
func (p *Pointer) Update() {
	p.UpdateLogical(1, 1)
}

// UpdateLogical stores the logical size, clamped to at least 1x1, and reads a
// new generation of buttons and position from the source.
func (p *Pointer) UpdateLogical(width, height int) {
	p.SetLogicalWidth(width)
	p.SetLogicalHeight(height)

	p.buttons.Advance(p.readButtons)
	p.prevX, p.prevY = p.x, p.y
	p.x, p.y = p.src.PointerPosition()
}

func (p *Pointer) readButtons(dst []bool) {
	dst[ButtonLeft], dst[ButtonRight] = p.src.PointerButtons()
}

// Reset zeroes both generations and restores the 1x1 logical size. Call it
// when the window regains focus so stale buttons do not report a release.
func (p *Pointer) Reset() {
	p.buttons.Reset()
	p.x, p.y = 0, 0
	p.prevX, p.prevY = 0, 0
	p.logicalW, p.logicalH = 1, 1
}

// SetLogicalWidth stores w, clamped to at least 1.
func (p *Pointer) SetLogicalWidth(w int) {
	p.logicalW = clampMin(w, 1)
}

// SetLogicalHeight stores h, clamped to at least 1.
func (p *Pointer) SetLogicalHeight(h int) {
	p.logicalH = clampMin(h, 1)
}

func (p *Pointer) LogicalWidth() int  { return p.logicalW }
func (p *Pointer) LogicalHeight() int { return p.logicalH }

// X returns the raw device x coordinate.
func (p *Pointer) X() int { return p.x }

// Y returns the raw device y coordinate.
func (p *Pointer) Y() int { return p.y }

// Position returns the raw device position.
func (p *Pointer) Position() (x, y int) {
	return p.x, p.y
}

// PreviousPosition returns the raw position from the previous generation.
func (p *Pointer) PreviousPosition() (x, y int) {
	return p.prevX, p.prevY
}

// Delta returns the movement since the previous generation.
func (p *Pointer) Delta() (dx, dy int) {
	return p.x - p.prevX, p.y - p.prevY
}

// WasMoved reports whether the position changed since the previous generation.
func (p *Pointer) WasMoved() bool {
	return p.x != p.prevX || p.y != p.prevY
}

// IsPressed reports whether b is down. Unknown buttons are never pressed.
func (p *Pointer) IsPressed(b Button) bool {
	return p.buttons.Pressed(b)
}

// IsHeld reports whether b was down in this frame and the previous one.
func (p *Pointer) IsHeld(b Button) bool {
	return p.buttons.Held(b)
}

// WasJustPressed reports whether b went down this frame.
func (p *Pointer) WasJustPressed(b Button) bool {
	return p.buttons.JustPressed(b)
}

// WasJustReleased reports whether b went up this frame.
func (p *Pointer) WasJustReleased(b Button) bool {
	return p.buttons.JustReleased(b)
}

func (p *Pointer) IsLeftPressed() bool  { return p.buttons.Pressed(ButtonLeft) }
func (p *Pointer) IsRightPressed() bool { return p.buttons.Pressed(ButtonRight) }

func (p *Pointer) IsLeftHeld() bool  { return p.buttons.Held(ButtonLeft) }
func (p *Pointer) IsRightHeld() bool { return p.buttons.Held(ButtonRight) }

func (p *Pointer) WasLeftPressed() bool  { return p.buttons.JustPressed(ButtonLeft) }
func (p *Pointer) WasRightPressed() bool { return p.buttons.JustPressed(ButtonRight) }

func (p *Pointer) WasLeftReleased() bool  { return p.buttons.JustReleased(ButtonLeft) }
func (p *Pointer) WasRightReleased() bool { return p.buttons.JustReleased(ButtonRight) }
