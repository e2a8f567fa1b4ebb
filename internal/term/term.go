// Package term runs a World in a terminal using tcell. Each grid cell is two
// columns wide so cells look roughly square.
package term

import (
	"context"
	"fmt"
	"time"

	"lifepaint/internal/app"
	"lifepaint/internal/core"
	"lifepaint/internal/interact"
	"lifepaint/internal/life"
	"lifepaint/internal/render"
	"lifepaint/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	cellCols = 2
	cellRows = 1
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Frontend drives a World from a tcell screen. All World access happens on
// the goroutine calling Run or HandleEvent.
type Frontend struct {
	screen   tcell.Screen
	world    *life.World
	clock    core.Clock
	tps      int
	fps      *ui.Readout
	ShowGrid bool
}

// New returns a Frontend for an initialised screen. tps is the host refresh
// rate, i.e. how often the World is polled.
func New(screen tcell.Screen, world *life.World, clock core.Clock, tps int) *Frontend {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if tps <= 0 {
		tps = 60
	}
	screen.EnableMouse()
	return &Frontend{screen: screen, world: world, clock: clock, tps: tps, fps: ui.NewReadout(ui.FPSRefresh)}
}

// Run polls the World every host tick and services input until the user
// quits or ctx is done.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go f.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(f.tps))
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if f.HandleEvent(ev) {
				return nil
			}
			f.Draw()
		case <-ticker.C:
			if f.world.Tick(f.clock.Now()) {
				f.Draw()
			}
		}
	}
}

// HandleEvent applies one input event and reports whether the user quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		f.handleMouse(ev)
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	action := app.ActionNone
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		action = app.ActionQuit
	case tcell.KeyUp:
		action = app.ActionFaster
	case tcell.KeyDown:
		action = app.ActionSlower
	case tcell.KeyRune:
		action = app.KeyAction(ev.Rune())
	}
	res := app.Apply(f.world, action)
	if res.ToggleGrid {
		f.ShowGrid = !f.ShowGrid
	}
	return res.Quit
}

func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	var held interact.Buttons
	if _, h := f.screen.Size(); y < h-1 {
		if buttons&tcell.Button1 != 0 {
			held |= interact.ButtonPaint
		}
		if buttons&tcell.Button2 != 0 {
			held |= interact.ButtonErase
		}
	}
	cx, cy := render.CellAt(x, y, cellCols, cellRows)
	f.world.Pointer(held, cx, cy)
}

// Draw renders the board and the status line.
func (f *Frontend) Draw() {
	f.screen.Clear()
	sw, sh := f.screen.Size()
	rows := sh - 1
	f.world.Each(func(x, y int, c core.Cell) {
		col := x * cellCols
		if y >= rows || col+cellCols > sw {
			return
		}
		switch {
		case c == core.Alive:
			f.screen.SetContent(col, y, '█', nil, aliveStyle)
			f.screen.SetContent(col+1, y, '█', nil, aliveStyle)
		case f.ShowGrid:
			f.screen.SetContent(col, y, '·', nil, deadStyle)
			f.screen.SetContent(col+1, y, ' ', nil, deadStyle)
		default:
			f.screen.SetContent(col, y, ' ', nil, deadStyle)
			f.screen.SetContent(col+1, y, ' ', nil, deadStyle)
		}
	})
	if rows >= 0 {
		drawText(f.screen, 0, rows, sw, f.statusLine(), statusStyle)
	}
	f.screen.Show()
}

func (f *Frontend) statusLine() string {
	st := f.world.Stats()
	fps := f.fps.Update(f.clock.Now(), st.ObservedFPS)
	state := "running"
	if st.Paused {
		state = "paused"
	}
	return fmt.Sprintf(" %dx%d gen %d pop %d | %s fps (cap %d) | %s | space pause  n step  c clear  r random  q quit",
		st.Size.W, st.Size.H, st.Generation, st.Population, fps, st.TargetFPS, state)
}

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}
