package core

import "errors"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead Cell = iota
	// Alive marks a populated cell.
	Alive
)

func (c Cell) String() string {
	switch c {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	default:
		return "invalid"
	}
}

// Pattern selects how Resize fills a grid.
type Pattern uint8

const (
	// PatternClear sets every cell Dead.
	PatternClear Pattern = iota
	// PatternRandom draws every cell independently from a Source.
	PatternRandom
)

func (p Pattern) String() string {
	switch p {
	case PatternClear:
		return "clear"
	case PatternRandom:
		return "random"
	default:
		return "invalid"
	}
}

var (
	// ErrOutOfBounds is returned when reading a cell outside the grid extent.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrInvalidConfig is returned for non-positive dimensions or rates and
	// other rejected settings. State is left unchanged when it is returned.
	ErrInvalidConfig = errors.New("invalid configuration")
)
