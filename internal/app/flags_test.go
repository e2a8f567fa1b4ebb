package app

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"lifepaint/internal/core"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-w", "80", "-h", "40", "-fps", "25", "-live", "0.33", "-grid", "-paused", "-seed", "7"})
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	lc := cfg.Life()
	if lc.Width != 80 || lc.Height != 40 || lc.FPS != 25 || lc.LiveChance != 0.33 || !lc.Paused || lc.Seed != 7 {
		t.Fatalf("Life() = %+v", lc)
	}
	if !cfg.ShowGrid {
		t.Fatal("-grid not applied")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"zero surface", func(c *Config) { c.SurfaceW = 0 }},
		{"live chance", func(c *Config) { c.Live = 1.5 }},
		{"log level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoggerLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer
	l, err := cfg.Logger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("log output = %q", out)
	}
}
