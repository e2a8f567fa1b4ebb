package core

import "fmt"

// Grid stores one generation of cells in row-major order. The grid is bounded:
// positions outside [0,W)×[0,H) do not exist.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates an all-Dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if err := checkDims(w, h); err != nil {
		return nil, err
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}, nil
}

func checkDims(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidConfig, w, h)
	}
	return nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Get returns the state at (x, y) or ErrOutOfBounds.
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Dead, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	return g.cells[g.Index(x, y)], nil
}

// IsAlive reports whether (x, y) is inside the grid and Alive.
func (g *Grid) IsAlive(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.Index(x, y)] == Alive
}

// Set writes state to (x, y). Writes outside the grid are ignored: pointer
// input routinely lands just past the play area.
func (g *Grid) Set(x, y int, state Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = state
}

// Resize reinitializes the grid to w×h using pattern. src is only consulted
// for PatternRandom and must be non-nil in that case.
func (g *Grid) Resize(w, h int, pattern Pattern, src Source) error {
	if err := checkDims(w, h); err != nil {
		return err
	}
	if pattern == PatternRandom && src == nil {
		return fmt.Errorf("%w: random pattern without a source", ErrInvalidConfig)
	}
	if pattern != PatternClear && pattern != PatternRandom {
		return fmt.Errorf("%w: unknown pattern %d", ErrInvalidConfig, pattern)
	}
	if g.w*g.h != w*h || g.cells == nil {
		g.cells = make([]Cell, w*h)
	}
	g.w, g.h = w, h
	g.Fill(pattern, src)
	Logger().Debug("grid filled", "w", w, "h", h, "pattern", pattern.String())
	return nil
}

// Fill rewrites every cell according to pattern without changing dimensions.
func (g *Grid) Fill(pattern Pattern, src Source) {
	switch pattern {
	case PatternRandom:
		for i := range g.cells {
			if src.Alive() {
				g.cells[i] = Alive
			} else {
				g.cells[i] = Dead
			}
		}
	default:
		clear(g.cells)
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < g.h; y++ {
		row := g.cells[y*g.w : (y+1)*g.w]
		for x, c := range row {
			fn(x, y, c)
		}
	}
}

// Population counts Alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	cp := &Grid{w: g.w, h: g.h, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}
