package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/inputstate/internal/config"
	"github.com/Faultbox/inputstate/internal/engine/input/ebiteninput"
	"github.com/Faultbox/inputstate/internal/logger"
	"github.com/Faultbox/inputstate/internal/viewer"
)

// ebitenGame adapts the viewer to ebiten.Game.
type ebitenGame struct {
	v             *viewer.Viewer
	width, height int
	focused       bool
}

func (g *ebitenGame) Update() error {
	focused := ebiten.IsFocused()
	if focused && !g.focused {
		g.v.FocusGained()
	}
	g.focused = focused

	if g.v.Update(g.width, g.height) {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	r, gr, b := g.v.Tint()
	screen.Fill(color.RGBA{R: channel(r), G: channel(gr), B: channel(b), A: 0xff})
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func channel(v float32) uint8 {
	return uint8(min(max(v, 0), 1) * 0xff)
}

func runEbiten(cfg *config.Config) error {
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	src := ebiteninput.New()
	g := &ebitenGame{
		v:      viewer.New(cfg.Input, src, src, ebiteninput.Key(ebiten.KeyEscape)),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}

	logger.Info("input view closed", zap.Uint64("frames", g.v.Frames()))
	return nil
}
