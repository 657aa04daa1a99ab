package core

import "sort"

// Change describes one cell whose on-screen representation must be redrawn:
// its life state changed, its selection highlight changed, or both.
type Change struct {
	X, Y     int
	State    Cell
	Selected bool
}

// Point returns the redraw target of the change.
func (c Change) Point() Point { return Point{X: c.X, Y: c.Y} }

// ChangeSet maps a redraw target to the change that won it. Adding a second
// change at a position replaces the first: the last write wins.
type ChangeSet map[Point]Change

// NewChangeSet returns an empty set sized for n changes.
func NewChangeSet(n int) ChangeSet { return make(ChangeSet, n) }

// Add records c, replacing any earlier change at the same position.
func (s ChangeSet) Add(c Change) { s[c.Point()] = c }

// Len returns the number of distinct positions in the set.
func (s ChangeSet) Len() int { return len(s) }

// Sorted returns the changes in row-major order.
func (s ChangeSet) Sorted() []Change {
	out := make([]Change, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
