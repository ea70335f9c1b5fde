package main

import (
	"flag"
	"log"
	"os"

	"github.com/1siamBot/pyramid-viewer/engine/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the viewer YAML config")
	flag.Parse()

	logger := log.New(os.Stderr, "viewer: ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	// One Update per displayed frame: input is applied, then the frame drawn.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	viewer, err := NewViewer(cfg, logger)
	if err != nil {
		logger.Fatalf("init: %v", err)
	}

	if err := ebiten.RunGame(viewer); err != nil {
		logger.Fatalf("graphics context: %v", err)
	}
}
