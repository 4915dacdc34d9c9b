package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/collage/config"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "YAML settings file (optional)")
	assetsDir := flag.String("assets", "", "directory listed in the asset panel (overrides config)")
	outDir := flag.String("out", "", "directory exports are written to (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}
	if *outDir != "" {
		cfg.Export.Dir = *outDir
	}

	// Validate already rejected unknown levels.
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(cfg, logger)
	defer game.Close()

	logger.Info("collage starting", "assets", cfg.AssetsDir, "export_dir", cfg.Export.Dir)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run", "err", err)
		game.Close()
		os.Exit(1)
	}
}
