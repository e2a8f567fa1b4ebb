//go:build ebiten

package app

import (
	"image/color"

	"lifepaint/internal/core"
	"lifepaint/internal/interact"
	"lifepaint/internal/life"
	"lifepaint/internal/render"
	"lifepaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the control panel right of the board.
const HUDWidth = 220

var keyActions = map[ebiten.Key]Action{
	ebiten.KeySpace:        ActionTogglePause,
	ebiten.KeyN:            ActionStep,
	ebiten.KeyC:            ActionClear,
	ebiten.KeyR:            ActionRandomize,
	ebiten.KeyS:            ActionReseed,
	ebiten.KeyG:            ActionToggleGrid,
	ebiten.KeyArrowUp:      ActionFaster,
	ebiten.KeyArrowDown:    ActionSlower,
	ebiten.KeyBracketRight: ActionGrow,
	ebiten.KeyBracketLeft:  ActionShrink,
	ebiten.KeyQ:            ActionQuit,
	ebiten.KeyEscape:       ActionQuit,
}

// Game adapts a World to the ebiten.Game interface. ebiten calls Update at
// its TPS; the World's scheduler decides which of those ticks step.
type Game struct {
	world   *life.World
	painter *render.GridPainter
	hud     *ui.HUD
	clock   core.Clock

	boardW, boardH int
}

// New constructs a Game for the provided world.
func New(world *life.World, cfg *Config, clock core.Clock) *Game {
	if clock == nil {
		clock = core.SystemClock{}
	}
	gp := render.NewGridPainter()
	gp.ShowGrid = cfg.ShowGrid
	return &Game{
		world:   world,
		painter: gp,
		hud:     ui.NewHUD(world, HUDWidth),
		clock:   clock,
		boardW:  cfg.SurfaceW,
		boardH:  cfg.SurfaceH,
	}
}

func (g *Game) cellSize() int {
	return render.CellSize(g.boardW, g.boardH, g.world.Size())
}

// Update handles input and advances the simulation when due.
func (g *Game) Update() error {
	for key, action := range keyActions {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		res := Apply(g.world, action)
		if res.Quit {
			return ebiten.Termination
		}
		if res.ToggleGrid {
			g.painter.ShowGrid = !g.painter.ShowGrid
		}
	}

	now := g.clock.Now()
	g.hud.Update(g.boardW, now)

	mx, my := ebiten.CursorPosition()
	var held interact.Buttons
	if mx < g.boardW {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			held |= interact.ButtonPaint
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			held |= interact.ButtonErase
		}
	}
	cs := g.cellSize()
	cx, cy := render.CellAt(mx, my, cs, cs)
	g.world.Pointer(held, cx, cy)

	g.world.Tick(now)
	return nil
}

// Draw renders the current generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})
	g.painter.Draw(screen, g.world, g.cellSize())
	g.hud.Draw(screen, g.boardW, g.boardH)
}

// Layout keeps the logical screen equal to the window so the board can be
// re-fitted whenever the window is resized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.boardW = max(outsideWidth-g.hud.Width(), 1)
	g.boardH = max(outsideHeight, 1)
	return outsideWidth, outsideHeight
}
