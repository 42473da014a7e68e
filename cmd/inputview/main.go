// Package main is a small input viewer: it polls the keyboard and mouse once
// per frame, tints the window by what is held and, with -debug, logs every
// press and release.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/inputstate/internal/config"
	"github.com/Faultbox/inputstate/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Input View ===", zap.String("backend", cfg.Input.Backend))

	switch cfg.Input.Backend {
	case config.BackendEbiten:
		err = runEbiten(cfg)
	default:
		err = runSDL(cfg)
	}
	if err != nil {
		logger.Error("input view failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
