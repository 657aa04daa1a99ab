package life

import (
	"fmt"

	"github.com/Skepar/lychen/internal/core"
)

// MinSize is the smallest grid edge the model accepts: the evolution rule
// needs one inert border cell on each side of at least one live cell.
const MinSize = 3

// Model owns a Conway's Game of Life grid and the selection cursor. Every
// mutating operation returns the set of cells that must be redrawn.
//
// Only the interior (1 <= x < w-1, 1 <= y < h-1) evolves. The outermost ring
// is never evaluated by Update, so it stays as Set and Paint left it.
type Model struct {
	cur, nxt *core.Grid
	cursor   core.Point
	alive    int
}

// New returns a w x h model with every cell Dead and the cursor at the
// centre. It panics when either dimension is below MinSize.
func New(w, h int) *Model {
	if w < MinSize || h < MinSize {
		panic(fmt.Sprintf("life: grid %dx%d is smaller than %dx%d", w, h, MinSize, MinSize))
	}
	cur := core.NewGrid(w, h)
	return &Model{
		cur:    cur,
		nxt:    core.NewGrid(w, h),
		cursor: cur.Size().Center(),
	}
}

// Size returns the grid dimensions.
func (m *Model) Size() core.Size { return m.cur.Size() }

// Selected returns the cursor position.
func (m *Model) Selected() core.Point { return m.cursor }

// Population returns the number of live cells.
func (m *Model) Population() int { return m.alive }

// Get returns the state of cell (x, y). It panics on out-of-range coordinates.
func (m *Model) Get(x, y int) core.Cell { return m.cur.At(x, y) }

// Set overwrites cell (x, y) and reports it with the given selection flag.
func (m *Model) Set(x, y int, state core.Cell, selected bool) core.ChangeSet {
	m.put(x, y, state)
	cs := core.NewChangeSet(1)
	cs.Add(core.Change{X: x, Y: y, State: state, Selected: selected})
	return cs
}

// Update advances the interior by one generation. The rule reads only the
// previous generation: results are written to a scratch grid which is then
// swapped in. The returned set holds one change per flipped cell.
func (m *Model) Update() core.ChangeSet {
	w, h := m.cur.W, m.cur.H
	cur := m.cur.Cells()
	m.nxt.CopyFrom(m.cur)
	nxt := m.nxt.Cells()

	cs := core.NewChangeSet(0)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*w + x
			n := neighbors(cur, w, idx)
			state := cur[idx]
			switch n {
			case 2:
				continue
			case 3:
				state = core.Alive
			default:
				state = core.Dead
			}
			if state == cur[idx] {
				continue
			}
			nxt[idx] = state
			if state == core.Alive {
				m.alive++
			} else {
				m.alive--
			}
			cs.Add(core.Change{X: x, Y: y, State: state, Selected: m.cursor.X == x && m.cursor.Y == y})
		}
	}
	m.cur, m.nxt = m.nxt, m.cur
	return cs
}

// OffsetSelected moves the cursor one cell in direction d. A move past the
// edge leaves the cursor where it is. The set reports the old position as
// unselected and then the new one as selected, so a clamped move ends with
// the cursor's cell selected.
func (m *Model) OffsetSelected(d core.Direction) core.ChangeSet {
	dx, dy := d.Offset()
	to := core.Point{X: m.cursor.X + dx, Y: m.cursor.Y + dy}
	if !m.Size().Contains(to.X, to.Y) {
		to = m.cursor
	}
	return m.moveCursor(to)
}

// MoveSelected puts the cursor on (x, y), which must be inside the grid.
func (m *Model) MoveSelected(x, y int) core.ChangeSet {
	if !m.Size().Contains(x, y) {
		panic(fmt.Sprintf("life: cursor target (%d,%d) outside %dx%d grid", x, y, m.cur.W, m.cur.H))
	}
	return m.moveCursor(core.Point{X: x, Y: y})
}

// FlipSelected toggles the cell under the cursor.
func (m *Model) FlipSelected() core.ChangeSet {
	x, y := m.cursor.X, m.cursor.Y
	return m.Set(x, y, m.cur.At(x, y).Flip(), true)
}

// Paint makes cell (x, y) alive without moving the cursor.
func (m *Model) Paint(x, y int) core.ChangeSet {
	return m.Set(x, y, core.Alive, false)
}

// Seed makes every listed cell alive. Points outside the grid are skipped.
func (m *Model) Seed(points []core.Point) core.ChangeSet {
	cs := core.NewChangeSet(len(points))
	size := m.Size()
	for _, p := range points {
		if !size.Contains(p.X, p.Y) {
			continue
		}
		m.put(p.X, p.Y, core.Alive)
		cs.Add(core.Change{X: p.X, Y: p.Y, State: core.Alive, Selected: p == m.cursor})
	}
	return cs
}

// Snapshot returns a change for every cell, used for the first full draw.
func (m *Model) Snapshot() core.ChangeSet {
	w, h := m.cur.W, m.cur.H
	cs := core.NewChangeSet(w * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cs.Add(core.Change{X: x, Y: y, State: m.cur.At(x, y), Selected: m.cursor.X == x && m.cursor.Y == y})
		}
	}
	return cs
}

func (m *Model) moveCursor(to core.Point) core.ChangeSet {
	from := m.cursor
	cs := core.NewChangeSet(2)
	cs.Add(core.Change{X: from.X, Y: from.Y, State: m.cur.At(from.X, from.Y), Selected: false})
	m.cursor = to
	cs.Add(core.Change{X: to.X, Y: to.Y, State: m.cur.At(to.X, to.Y), Selected: true})
	return cs
}

func (m *Model) put(x, y int, state core.Cell) {
	if m.cur.At(x, y) == state {
		return
	}
	if state == core.Alive {
		m.alive++
	} else {
		m.alive--
	}
	m.cur.Put(x, y, state)
}

// neighbors sums the eight cells around the interior index idx.
func neighbors(cells []core.Cell, w, idx int) int {
	up, down := idx-w, idx+w
	return int(cells[up-1]) + int(cells[up]) + int(cells[up+1]) +
		int(cells[idx-1]) + int(cells[idx+1]) +
		int(cells[down-1]) + int(cells[down]) + int(cells[down+1])
}
