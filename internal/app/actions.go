package app

import (
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/life"
)

// Action is a front-end independent user command.
type Action uint8

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionStep
	ActionClear
	ActionRandomize
	ActionReseed
	ActionToggleGrid
	ActionFaster
	ActionSlower
	ActionGrow
	ActionShrink
	ActionQuit
)

// SizeStep is how many cells the grow and shrink actions change the side by.
const SizeStep = 5

// Result tells the front end what an action requires of it.
type Result struct {
	Redraw     bool
	ToggleGrid bool
	Quit       bool
}

// Apply runs a on w. Rejected settings, such as shrinking below one cell or
// slowing below one step per second, leave w unchanged.
func Apply(w *life.World, a Action) Result {
	switch a {
	case ActionTogglePause:
		w.TogglePause()
		return Result{Redraw: true}
	case ActionStep:
		return Result{Redraw: w.SingleStep()}
	case ActionClear:
		w.Clear()
		return Result{Redraw: true}
	case ActionRandomize:
		w.Randomize()
		return Result{Redraw: true}
	case ActionReseed:
		w.Reseed(time.Now().UnixNano())
		w.Randomize()
		return Result{Redraw: true}
	case ActionToggleGrid:
		return Result{Redraw: true, ToggleGrid: true}
	case ActionFaster:
		return Result{Redraw: w.SetTargetFPS(w.TargetFPS()+1) == nil}
	case ActionSlower:
		return Result{Redraw: w.SetTargetFPS(w.TargetFPS()-1) == nil}
	case ActionGrow, ActionShrink:
		side := w.Size().W
		if a == ActionGrow {
			side += SizeStep
		} else {
			side -= SizeStep
		}
		return Result{Redraw: w.Resize(side, side, core.PatternClear) == nil}
	case ActionQuit:
		return Result{Quit: true}
	default:
		return Result{}
	}
}

// KeyAction maps a typed character to its action.
func KeyAction(r rune) Action {
	switch r {
	case ' ', 'p':
		return ActionTogglePause
	case 'n':
		return ActionStep
	case 'c':
		return ActionClear
	case 'r':
		return ActionRandomize
	case 's':
		return ActionReseed
	case 'g':
		return ActionToggleGrid
	case '+', '=':
		return ActionFaster
	case '-', '_':
		return ActionSlower
	case ']':
		return ActionGrow
	case '[':
		return ActionShrink
	case 'q':
		return ActionQuit
	default:
		return ActionNone
	}
}
