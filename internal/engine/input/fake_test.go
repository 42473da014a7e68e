package input

// scriptedKeys replays one snapshot per ReadKeys call. Once the script runs
// out the last snapshot repeats.
type scriptedKeys struct {
	count  int
	frames [][]bool
	mods   []Mod
	reads  int
}

func (s *scriptedKeys) KeyCount() int { return s.count }

func (s *scriptedKeys) ReadKeys(dst []bool) {
	clear(dst)
	if len(s.frames) > 0 {
		copy(dst, s.frames[min(s.reads, len(s.frames)-1)])
	}
	s.reads++
}

func (s *scriptedKeys) Modifiers() Mod {
	if len(s.mods) == 0 {
		return ModNone
	}
	return s.mods[min(s.reads-1, len(s.mods)-1)]
}

type pointerFrame struct {
	left, right bool
	x, y        int
}

type scriptedPointer struct {
	frames []pointerFrame
	reads  int
}

func (s *scriptedPointer) frame() pointerFrame {
	if len(s.frames) == 0 {
		return pointerFrame{}
	}
	return s.frames[min(s.reads, len(s.frames)-1)]
}

// PointerButtons is read before PointerPosition on every update, so only
// PointerPosition advances the script.
func (s *scriptedPointer) PointerButtons() (bool, bool) {
	f := s.frame()
	return f.left, f.right
}

func (s *scriptedPointer) PointerPosition() (int, int) {
	f := s.frame()
	s.reads++
	return f.x, f.y
}

// keysDown builds a snapshot of n keys with the given keys down.
func keysDown(n int, down ...int) []bool {
	snap := make([]bool, n)
	for _, k := range down {
		snap[k] = true
	}
	return snap
}
