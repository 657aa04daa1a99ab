package core

import "fmt"

// Cell is the two-valued state of a grid position.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead Cell = iota
	// Alive marks a live cell.
	Alive
)

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) addresses a cell of a grid of this size.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Center returns the cell the selection cursor starts on.
func (s Size) Center() Point { return Point{X: s.W / 2, Y: s.H / 2} }

// Point is a grid coordinate.
type Point struct {
	X int
	Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is one of the four cursor moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Offset returns the unit step for d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("core: unknown direction %d", d))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Factory produces the live cells of a seed pattern for a grid of the given
// size. The seed only matters to randomized patterns.
type Factory func(size Size, seed int64) []Point

var patterns = map[string]Factory{}

// Register adds a seed pattern under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available seed patterns.
func Patterns() map[string]Factory {
	return patterns
}
