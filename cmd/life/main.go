//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifepaint/internal/app"
	"lifepaint/internal/core"
	"lifepaint/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	core.SetLogger(logger)

	world, err := life.New(cfg.Life(), core.SystemClock{})
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg, core.SystemClock{})

	ebiten.SetWindowTitle("lifepaint")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.SurfaceW+app.HUDWidth, cfg.SurfaceH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "w", cfg.Width, "h", cfg.Height, "fps", cfg.FPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
