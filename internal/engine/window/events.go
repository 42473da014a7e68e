package window

import "github.com/veandco/go-sdl2/sdl"

// Frame summarizes the window events drained by one Pump call.
type Frame struct {
	Quit        bool
	FocusGained bool
	FocusLost   bool
	Resized     bool
	Width       int
	Height      int
}

// Pump drains the SDL event queue. Draining also refreshes SDL's keyboard
// and mouse state tables, so call it before updating input trackers.
func (w *Window) Pump() Frame {
	var f Frame
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			f.Quit = true
		case *sdl.WindowEvent:
			applyWindowEvent(&f, e.Event, e.Data1, e.Data2)
		}
	}
	return f
}

func applyWindowEvent(f *Frame, kind uint8, data1, data2 int32) {
	switch kind {
	case sdl.WINDOWEVENT_CLOSE:
		f.Quit = true
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		f.FocusGained = true
	case sdl.WINDOWEVENT_FOCUS_LOST:
		f.FocusLost = true
	case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
		f.Resized = true
		f.Width = int(data1)
		f.Height = int(data2)
	}
}
