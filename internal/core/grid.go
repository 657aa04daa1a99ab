package core

import "fmt"

// Grid stores a 2D grid of cells in row-major order. Every cell always has a
// state; the dimensions are fixed at allocation.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a grid with every cell Dead.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y). Out-of-range
// coordinates are a programming error and panic.
func (g *Grid) Index(x, y int) int {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return y*g.W + x
}

// At returns the state of cell (x, y).
func (g *Grid) At(x, y int) Cell { return g.data[g.Index(x, y)] }

// Put overwrites cell (x, y).
func (g *Grid) Put(x, y int, c Cell) { g.data[g.Index(x, y)] = c }

// CopyFrom overwrites g with the contents of src, which must have the same
// dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if src.W != g.W || src.H != g.H {
		panic(fmt.Sprintf("core: copy %dx%d grid into %dx%d grid", src.W, src.H, g.W, g.H))
	}
	copy(g.data, src.data)
}
