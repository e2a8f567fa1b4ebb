package ui

import (
	"slices"
	"testing"
	"time"

	"lifepaint/internal/core"
)

func TestReadoutThrottles(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewReadout(time.Second)
	if got := r.Text(); got != "--" {
		t.Fatalf("initial text = %q", got)
	}
	if got := r.Update(start, 9.96); got != "10.0" {
		t.Fatalf("first update = %q, want 10.0", got)
	}
	if got := r.Update(start.Add(500*time.Millisecond), 3); got != "10.0" {
		t.Fatalf("update within interval = %q, want 10.0", got)
	}
	if got := r.Update(start.Add(time.Second), 3); got != "3.0" {
		t.Fatalf("update after interval = %q, want 3.0", got)
	}
}

func TestInfoLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Simulation",
		Params: []core.Parameter{
			core.IntParam("generation", "Generation", 12),
			core.IntParam("population", "Population", 5),
			core.BoolParam("paused", "Paused", true),
		},
	}}}
	got := InfoLines(snap, "9.5")
	want := []string{"FPS: 9.5", "Generation: 12", "Population: 5", "PAUSED"}
	if !slices.Equal(got, want) {
		t.Fatalf("InfoLines = %q, want %q", got, want)
	}
}
