package term

import (
	"context"
	"testing"
	"time"

	"lifepaint/internal/life"

	"github.com/gdamore/tcell/v2"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func newFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen, *life.World) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 10, 8
	cfg.Paused = true
	w, err := life.New(cfg, fixedClock(time.Unix(0, 0)))
	if err != nil {
		t.Fatal(err)
	}
	return New(screen, w, fixedClock(time.Unix(0, 0)), 60), screen, w
}

func runeAt(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return 0
	}
	return c.Runes[0]
}

func TestMouseDragPaints(t *testing.T) {
	f, _, w := newFrontend(t)
	f.HandleEvent(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	f.HandleEvent(tcell.NewEventMouse(9, 1, tcell.Button1, tcell.ModNone))
	for x := 1; x <= 4; x++ {
		if !w.Grid().IsAlive(x, 1) {
			t.Fatalf("cell (%d,1) not painted", x)
		}
	}
	if got := w.Stats().Population; got != 4 {
		t.Fatalf("population = %d, want 4", got)
	}

	f.HandleEvent(tcell.NewEventMouse(9, 1, tcell.ButtonNone, tcell.ModNone))
	f.HandleEvent(tcell.NewEventMouse(4, 1, tcell.Button2, tcell.ModNone))
	if w.Grid().IsAlive(2, 1) || !w.Grid().IsAlive(1, 1) {
		t.Fatal("right button should erase only the pressed cell")
	}
}

func TestStatusRowDoesNotPaint(t *testing.T) {
	f, _, w := newFrontend(t)
	f.HandleEvent(tcell.NewEventMouse(0, 11, tcell.Button1, tcell.ModNone))
	if w.Stats().Population != 0 {
		t.Fatal("click on the status row painted a cell")
	}
}

func TestDrawShowsCells(t *testing.T) {
	f, s, w := newFrontend(t)
	w.Set(3, 2, 1)
	f.Draw()
	if r := runeAt(t, s, 6, 2); r != '█' {
		t.Fatalf("rune at (6,2) = %q, want block", r)
	}
	if r := runeAt(t, s, 7, 2); r != '█' {
		t.Fatalf("rune at (7,2) = %q, want block", r)
	}
	if r := runeAt(t, s, 0, 0); r != ' ' {
		t.Fatalf("dead cell rune = %q, want space", r)
	}
	if r := runeAt(t, s, 1, 11); r != '1' {
		t.Fatalf("status line starts with %q, want grid width", r)
	}

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone))
	f.Draw()
	if r := runeAt(t, s, 0, 0); r != '·' {
		t.Fatalf("grid overlay rune = %q, want dot", r)
	}
}

func TestKeys(t *testing.T) {
	f, _, w := newFrontend(t)
	w.Set(1, 1, 1)
	if f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)) {
		t.Fatal("step key quit")
	}
	if w.Generation() != 1 {
		t.Fatal("step key did not advance a paused world")
	}
	f.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if w.TargetFPS() != 11 {
		t.Fatalf("fps = %d, want 11", w.TargetFPS())
	}
	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if w.Paused() {
		t.Fatal("space did not resume")
	}
	if !f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape did not quit")
	}
}

func TestRunQuits(t *testing.T) {
	f, s, _ := newFrontend(t)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.Run(ctx); err != nil {
		t.Fatalf("Run() = %v, want nil after quit key", err)
	}
}
