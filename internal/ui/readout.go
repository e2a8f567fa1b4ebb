package ui

import (
	"strconv"
	"time"

	"lifepaint/internal/core"
)

// FPSRefresh is how often the FPS readout changes.
const FPSRefresh = time.Second

// Readout holds a value that is re-formatted at most once per interval so
// the number stays legible.
type Readout struct {
	every time.Duration
	last  time.Time
	text  string
}

// NewReadout returns a Readout refreshing every interval.
func NewReadout(every time.Duration) *Readout {
	return &Readout{every: every, text: "--"}
}

// Update refreshes the text when the interval has elapsed and returns the
// current text.
func (r *Readout) Update(now time.Time, fps float64) string {
	if !r.last.IsZero() && now.Sub(r.last) < r.every {
		return r.text
	}
	r.last = now
	r.text = strconv.FormatFloat(fps, 'f', 1, 64)
	return r.text
}

// Text returns the last formatted value.
func (r *Readout) Text() string { return r.text }

// InfoLines renders the read-only part of a snapshot as label/value rows.
func InfoLines(snap core.ParameterSnapshot, fps string) []string {
	lines := []string{"FPS: " + fps}
	for _, key := range []string{"generation", "population", "w", "h"} {
		if p, ok := snap.Lookup(key); ok {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	if p, ok := snap.Lookup("paused"); ok && p.Value == "true" {
		lines = append(lines, "PAUSED")
	}
	return lines
}
