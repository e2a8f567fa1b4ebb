package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"lifepaint/internal/app"
	"lifepaint/internal/core"
	"lifepaint/internal/life"
	"lifepaint/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", filepath.Join(os.TempDir(), "lifeterm.log"), "log file (the terminal is busy drawing)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	logger, err := cfg.Logger(logFile)
	if err != nil {
		log.Fatal(err)
	}
	core.SetLogger(logger)

	world, err := life.New(cfg.Life(), core.SystemClock{})
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fe := term.New(screen, world, core.SystemClock{}, cfg.TPS)
	fe.ShowGrid = cfg.ShowGrid
	err = fe.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	logger.Info("exit", "generation", world.Generation(), "population", world.Stats().Population)
}
