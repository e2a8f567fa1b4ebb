package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"lifepaint/internal/core"
	"lifepaint/internal/life"
)

// Config represents the command-line parameters for the front ends.
type Config struct {
	Width    int
	Height   int
	FPS      int
	TPS      int
	SurfaceW int
	SurfaceH int
	Seed     int64
	Live     float64
	ShowGrid bool
	Paused   bool
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Width:    d.Width,
		Height:   d.Height,
		FPS:      d.FPS,
		TPS:      60,
		SurfaceW: 600,
		SurfaceH: 600,
		Seed:     d.Seed,
		Live:     d.LiveChance,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.FPS, "fps", c.FPS, "simulation steps per second cap")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host ticks per second")
	fs.IntVar(&c.SurfaceW, "width", c.SurfaceW, "drawing surface width in pixels")
	fs.IntVar(&c.SurfaceH, "height", c.SurfaceH, "drawing surface height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.Float64Var(&c.Live, "live", c.Live, "probability of a live cell in random patterns")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw cell borders")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", core.ErrInvalidConfig, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", core.ErrInvalidConfig, c.FPS)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", core.ErrInvalidConfig, c.TPS)
	case c.SurfaceW <= 0 || c.SurfaceH <= 0:
		return fmt.Errorf("%w: surface %dx%d", core.ErrInvalidConfig, c.SurfaceW, c.SurfaceH)
	case c.Live < 0 || c.Live > 1:
		return fmt.Errorf("%w: live chance %v", core.ErrInvalidConfig, c.Live)
	}
	if _, err := core.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Life converts the flags into the World configuration.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:      c.Width,
		Height:     c.Height,
		FPS:        c.FPS,
		LiveChance: c.Live,
		Seed:       c.Seed,
		Paused:     c.Paused,
	}
}

// Logger builds a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := core.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
