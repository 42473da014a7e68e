// Package viewer drives the keyboard and pointer trackers once per frame and
// turns their state into something visible.
package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/inputstate/internal/config"
	"github.com/Faultbox/inputstate/internal/engine/input"
	"github.com/Faultbox/inputstate/internal/logger"
)

// Viewer owns one keyboard tracker and one pointer tracker. Like the
// trackers, it must be driven from a single goroutine.
type Viewer struct {
	cfg     config.InputConfig
	log     *zap.Logger
	quitKey input.Key

	Keyboard *input.Keyboard
	Pointer  *input.Pointer

	edges  []input.Key
	frames uint64
}

// New creates a viewer reading from the given sources. Pressing quitKey ends
// the session.
func New(cfg config.InputConfig, keys input.KeySource, pointer input.PointerSource, quitKey input.Key) *Viewer {
	v := &Viewer{
		cfg:      cfg,
		log:      logger.Named("viewer"),
		quitKey:  quitKey,
		Keyboard: input.NewKeyboard(keys),
		Pointer:  input.NewPointer(pointer),
	}
	v.edges = make([]input.Key, 0, 16)

	v.log.Info("input trackers ready",
		zap.String("backend", cfg.Backend),
		zap.Int("keys", v.Keyboard.Count()),
		zap.Bool("trace_edges", cfg.TraceEdges),
	)
	return v
}

// Update advances both trackers by one generation. drawableW and drawableH
// are used as the pointer's logical size unless the config fixes one.
// It returns true once the quit key goes down.
func (v *Viewer) Update(drawableW, drawableH int) bool {
	v.frames++

	w, h := v.logicalSize(drawableW, drawableH)
	v.Keyboard.Update()
	v.Pointer.UpdateLogical(w, h)

	if v.cfg.TraceEdges {
		v.trace()
	}

	return v.Keyboard.WasJustPressed(v.quitKey)
}

func (v *Viewer) logicalSize(drawableW, drawableH int) (int, int) {
	w, h := drawableW, drawableH
	if v.cfg.LogicalWidth > 0 {
		w = v.cfg.LogicalWidth
	}
	if v.cfg.LogicalHeight > 0 {
		h = v.cfg.LogicalHeight
	}
	return w, h
}

// FocusGained drops stale state so keys released while the window was in
// the background do not show up as releases.
func (v *Viewer) FocusGained() {
	v.Keyboard.Reset()
	v.Pointer.Reset()
	v.log.Debug("focus gained, input state reset", zap.Uint64("frame", v.frames))
}

// Frames returns the number of Update calls so far.
func (v *Viewer) Frames() uint64 {
	return v.frames
}

// Tint maps the current input state to a clear colour: red for the left
// button, green for the right button, blue while shift is down.
func (v *Viewer) Tint() (r, g, b float32) {
	const base, lit = 0.1, 0.7
	r, g, b = base, base, base
	if v.Pointer.IsLeftPressed() {
		r += lit
	}
	if v.Pointer.IsRightPressed() {
		g += lit
	}
	if v.Keyboard.ModifierActive(input.ModShift) {
		b += lit
	}
	return r, g, b
}

func (v *Viewer) trace() {
	v.edges = v.Keyboard.AppendJustPressed(v.edges[:0])
	for _, k := range v.edges {
		v.log.Debug("key pressed", zap.Int("key", int(k)), zap.Uint64("frame", v.frames))
	}
	v.edges = v.Keyboard.AppendJustReleased(v.edges[:0])
	for _, k := range v.edges {
		v.log.Debug("key released", zap.Int("key", int(k)), zap.Uint64("frame", v.frames))
	}

	p := v.Pointer
	for _, e := range []struct {
		name     string
		down, up bool
	}{
		{"left", p.WasLeftPressed(), p.WasLeftReleased()},
		{"right", p.WasRightPressed(), p.WasRightReleased()},
	} {
		switch {
		case e.down:
			v.log.Debug("button pressed", zap.String("button", e.name), zap.Int("x", p.X()), zap.Int("y", p.Y()))
		case e.up:
			v.log.Debug("button released", zap.String("button", e.name), zap.Int("x", p.X()), zap.Int("y", p.Y()))
		}
	}
}
