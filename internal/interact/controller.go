// Package interact turns pointer drags into cell edits.
package interact

import "lifepaint/internal/core"

// Mode selects what a pointer sample does.
type Mode uint8

const (
	// ModeNone releases both drag channels.
	ModeNone Mode = iota
	// ModePaint writes Alive cells.
	ModePaint
	// ModeErase writes Dead cells.
	ModeErase
)

func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "paint"
	case ModeErase:
		return "erase"
	default:
		return "none"
	}
}

// Buttons is the set of pointer buttons held during a sample.
type Buttons uint8

const (
	ButtonPaint Buttons = 1 << iota
	ButtonErase
)

// CellWriter receives cell edits. Writes outside the grid must be ignored.
type CellWriter interface {
	Set(x, y int, state core.Cell)
}

type channel struct {
	prev   core.Point
	active bool
}

// Controller tracks one drag channel per edit mode. Each channel is IDLE
// until its first sample and DRAGGING until released.
type Controller struct {
	dst      CellWriter
	channels [2]channel
}

// NewController returns a Controller writing into dst.
func NewController(dst CellWriter) *Controller {
	return &Controller{dst: dst}
}

func (c *Controller) channel(mode Mode) *channel {
	switch mode {
	case ModePaint:
		return &c.channels[0]
	case ModeErase:
		return &c.channels[1]
	default:
		return nil
	}
}

func stateFor(mode Mode) core.Cell {
	if mode == ModePaint {
		return core.Alive
	}
	return core.Dead
}

// OnPointerSample applies one pointer sample at grid cell (x, y). ModeNone
// releases both channels without writing.
func (c *Controller) OnPointerSample(mode Mode, x, y int) {
	ch := c.channel(mode)
	if ch == nil {
		c.Reset()
		return
	}
	state := stateFor(mode)
	if ch.active {
		for _, p := range core.Interpolate(ch.prev.X, ch.prev.Y, x, y) {
			c.dst.Set(p.X, p.Y, state)
		}
	}
	c.dst.Set(x, y, state)
	ch.prev = core.Point{X: x, Y: y}
	ch.active = true
}

// Release returns the channel of mode to IDLE without writing.
func (c *Controller) Release(mode Mode) {
	if ch := c.channel(mode); ch != nil {
		*ch = channel{}
	}
}

// Reset releases both channels.
func (c *Controller) Reset() {
	c.channels = [2]channel{}
}

// Sample feeds a sample for every held button and releases the channels whose
// button is up.
func (c *Controller) Sample(held Buttons, x, y int) {
	if held&ButtonPaint != 0 {
		c.OnPointerSample(ModePaint, x, y)
	} else {
		c.Release(ModePaint)
	}
	if held&ButtonErase != 0 {
		c.OnPointerSample(ModeErase, x, y)
	} else {
		c.Release(ModeErase)
	}
}

// Dragging reports whether the channel of mode holds a previous point.
func (c *Controller) Dragging(mode Mode) bool {
	ch := c.channel(mode)
	return ch != nil && ch.active
}
