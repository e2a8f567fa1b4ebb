package render

import "lifepaint/internal/core"

// CellView is the read-only grid access a renderer needs.
type CellView interface {
	Size() core.Size
	Each(fn func(x, y int, c core.Cell))
}

// CellSize returns the largest square cell, in pixels, that fits a grid of
// size into a surface of surfaceW×surfaceH. The result is at least one.
func CellSize(surfaceW, surfaceH int, size core.Size) int {
	if size.W <= 0 || size.H <= 0 {
		return 1
	}
	cs := min(surfaceW/size.W, surfaceH/size.H)
	if cs < 1 {
		cs = 1
	}
	return cs
}

// CellAt maps a surface pixel to the grid cell under it. Pixels left of or
// above the origin map to negative cells, which grid writes ignore.
func CellAt(px, py, cellW, cellH int) (int, int) {
	return floorDiv(px, cellW), floorDiv(py, cellH)
}

func floorDiv(a, b int) int {
	if b <= 0 {
		b = 1
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
