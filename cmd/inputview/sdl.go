package main

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/inputstate/internal/config"
	"github.com/Faultbox/inputstate/internal/engine/input/sdlinput"
	"github.com/Faultbox/inputstate/internal/engine/window"
	"github.com/Faultbox/inputstate/internal/logger"
	"github.com/Faultbox/inputstate/internal/viewer"
)

func runSDL(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	src := sdlinput.New()
	v := viewer.New(cfg.Input, src, src, sdlinput.Scancode(sdl.SCANCODE_ESCAPE))

	start := time.Now()
	for {
		// Pump first: it refreshes the tables the trackers read.
		f := win.Pump()
		if f.Quit {
			break
		}
		if f.Resized {
			logger.Debug("window resized", zap.Int("width", f.Width), zap.Int("height", f.Height))
		}
		if f.FocusGained {
			v.FocusGained()
		}

		if v.Update(win.DrawableSize()) {
			break
		}

		win.Clear(v.Tint())
		win.SwapBuffers()
	}

	logger.Info("input view closed",
		zap.Uint64("frames", v.Frames()),
		zap.Duration("uptime", time.Since(start)),
	)
	return nil
}
