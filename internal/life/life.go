// Package life implements Conway's Game of Life on a bounded grid.
package life

import "lifepaint/internal/core"

// Rule applies B3/S23: a live cell survives with two or three neighbours and
// a dead cell is born with exactly three.
func Rule(state core.Cell, neighbors int) core.Cell {
	if neighbors == 3 || (state == core.Alive && neighbors == 2) {
		return core.Alive
	}
	return core.Dead
}

// CountNeighbors counts live cells among the up to eight positions adjacent
// to (x, y). Positions outside the grid do not exist and never count.
func CountNeighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsAlive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// NextGeneration computes the generation following cur into a new grid.
// cur is only read, so the result can replace it wholesale.
func NextGeneration(cur *core.Grid) *core.Grid {
	next := cur.Clone()
	cur.Each(func(x, y int, c core.Cell) {
		next.Set(x, y, Rule(c, CountNeighbors(cur, x, y)))
	})
	return next
}
