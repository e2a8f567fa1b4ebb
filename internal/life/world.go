package life

import (
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/interact"
)

// Config holds the initial World settings.
type Config struct {
	Width      int
	Height     int
	FPS        int
	LiveChance float64
	Seed       int64
	Paused     bool
}

// DefaultConfig mirrors the defaults of the browser version: a 50×50 grid
// stepping ten times per second.
func DefaultConfig() Config {
	return Config{Width: 50, Height: 50, FPS: 10, LiveChance: core.DefaultLiveChance, Seed: 42}
}

// Stats is the telemetry a front end displays.
type Stats struct {
	Size        core.Size
	Generation  int
	Population  int
	Paused      bool
	TargetFPS   int
	ObservedFPS float64
	Interval    time.Duration
}

// World owns the current generation and everything that mutates it: the
// frame scheduler, the pause flag and the pointer drag channels. It is not
// safe for concurrent use; a single host loop drives it.
type World struct {
	grid   *core.Grid
	sched  *core.FrameScheduler
	src    *core.RandomSource
	drag   *interact.Controller
	paused bool
	gen    int
}

// New builds a World with a cleared grid. clock provides the reference time
// for the first step.
func New(cfg Config, clock core.Clock) (*World, error) {
	if clock == nil {
		clock = core.SystemClock{}
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	sched, err := core.NewFrameScheduler(cfg.FPS, clock.Now())
	if err != nil {
		return nil, err
	}
	src, err := core.NewRandomSource(cfg.Seed, cfg.LiveChance)
	if err != nil {
		return nil, err
	}
	w := &World{grid: grid, sched: sched, src: src, paused: cfg.Paused}
	w.drag = interact.NewController(w)
	return w, nil
}

// Grid returns the current generation. Callers must treat it as read-only;
// it is replaced, not modified, by each step.
func (w *World) Grid() *core.Grid { return w.grid }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Each iterates the current generation for rendering.
func (w *World) Each(fn func(x, y int, c core.Cell)) { w.grid.Each(fn) }

// Get reads one cell of the current generation.
func (w *World) Get(x, y int) (core.Cell, error) { return w.grid.Get(x, y) }

// Set writes one cell of the current generation, ignoring positions outside
// the grid.
func (w *World) Set(x, y int, state core.Cell) { w.grid.Set(x, y, state) }

// Generation counts steps since the last resize or refill.
func (w *World) Generation() int { return w.gen }

// Tick is called once per host frame. It reports whether a step ran and the
// surface needs redrawing. Paused worlds never poll the scheduler.
func (w *World) Tick(now time.Time) bool {
	if w.paused {
		return false
	}
	if !w.sched.ShouldStep(now) {
		return false
	}
	w.Step()
	return true
}

// Step replaces the current generation with its successor.
func (w *World) Step() {
	w.grid = NextGeneration(w.grid)
	w.gen++
}

// SingleStep advances one generation while paused. It is a no-op otherwise.
func (w *World) SingleStep() bool {
	if !w.paused {
		return false
	}
	w.Step()
	return true
}

// Paused reports whether scheduled stepping is suspended.
func (w *World) Paused() bool { return w.paused }

// SetPaused suspends or resumes scheduled stepping. Pointer edits keep
// working while paused.
func (w *World) SetPaused(p bool) {
	if w.paused == p {
		return
	}
	w.paused = p
	core.Logger().Debug("pause toggled", "paused", p)
}

// TogglePause flips the pause flag and returns the new state.
func (w *World) TogglePause() bool {
	w.SetPaused(!w.paused)
	return w.paused
}

// Clear kills every cell.
func (w *World) Clear() {
	w.grid.Fill(core.PatternClear, nil)
	w.gen = 0
}

// Randomize refills every cell from the random source.
func (w *World) Randomize() {
	w.grid.Fill(core.PatternRandom, w.src)
	w.gen = 0
}

// Reseed restarts the random source so the next Randomize is reproducible.
func (w *World) Reseed(seed int64) {
	w.src.Seed(seed)
}

// Resize reinitializes the grid to w×h with pattern and drops any drag in
// progress. Invalid sizes leave the World untouched.
func (w *World) Resize(width, height int, pattern core.Pattern) error {
	if err := w.grid.Resize(width, height, pattern, w.src); err != nil {
		core.Logger().Warn("resize rejected", "w", width, "h", height, "err", err)
		return err
	}
	w.drag.Reset()
	w.gen = 0
	core.Logger().Info("grid resized", "w", width, "h", height, "pattern", pattern.String())
	return nil
}

// SetTargetFPS changes the step rate cap.
func (w *World) SetTargetFPS(fps int) error {
	if err := w.sched.SetTargetFPS(fps); err != nil {
		core.Logger().Warn("fps cap rejected", "fps", fps, "err", err)
		return err
	}
	core.Logger().Info("fps cap changed", "fps", fps)
	return nil
}

// TargetFPS returns the step rate cap.
func (w *World) TargetFPS() int { return w.sched.TargetFPS() }

// SetLiveChance changes the probability used by Randomize.
func (w *World) SetLiveChance(p float64) error {
	if err := w.src.SetChance(p); err != nil {
		core.Logger().Warn("live chance rejected", "chance", p, "err", err)
		return err
	}
	return nil
}

// PointerSample forwards one sample to the drag controller.
func (w *World) PointerSample(mode interact.Mode, x, y int) {
	w.drag.OnPointerSample(mode, x, y)
}

// Pointer feeds the held buttons at grid cell (x, y) to the drag controller.
func (w *World) Pointer(held interact.Buttons, x, y int) {
	w.drag.Sample(held, x, y)
}

// Dragging reports whether the channel of mode has a previous point.
func (w *World) Dragging(mode interact.Mode) bool { return w.drag.Dragging(mode) }

// Stats snapshots the telemetry for display.
func (w *World) Stats() Stats {
	return Stats{
		Size:        w.grid.Size(),
		Generation:  w.gen,
		Population:  w.grid.Population(),
		Paused:      w.paused,
		TargetFPS:   w.sched.TargetFPS(),
		ObservedFPS: w.sched.ObservedFPS(),
		Interval:    w.sched.ObservedInterval(),
	}
}
