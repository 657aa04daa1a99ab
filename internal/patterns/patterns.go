// Package patterns registers the named seed patterns a grid can start with.
package patterns

import "github.com/Skepar/lychen/internal/core"

// sample is the eight-cell arrangement the simulator has always opened with.
var sample = []core.Point{
	{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 4, Y: 5}, {X: 6, Y: 6},
	{X: 6, Y: 4}, {X: 2, Y: 4}, {X: 7, Y: 6}, {X: 6, Y: 7},
}

// centered translates cells so that their bounding box sits in the middle of
// the grid.
func centered(size core.Size, cells []core.Point) []core.Point {
	maxX, maxY := 0, 0
	for _, p := range cells {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	ox := (size.W - maxX - 1) / 2
	oy := (size.H - maxY - 1) / 2
	out := make([]core.Point, len(cells))
	for i, p := range cells {
		out[i] = core.Point{X: p.X + ox, Y: p.Y + oy}
	}
	return out
}

func fixed(cells ...core.Point) core.Factory {
	return func(size core.Size, _ int64) []core.Point {
		return centered(size, cells)
	}
}

// Random fills roughly a third of the interior using the seed.
func Random(size core.Size, seed int64) []core.Point {
	rng := core.NewRNG(seed)
	var out []core.Point
	for y := 1; y < size.H-1; y++ {
		for x := 1; x < size.W-1; x++ {
			if rng.Chance(3) {
				out = append(out, core.Point{X: x, Y: y})
			}
		}
	}
	return out
}

func init() {
	core.Register("empty", func(core.Size, int64) []core.Point { return nil })
	core.Register("sample", func(core.Size, int64) []core.Point {
		return append([]core.Point(nil), sample...)
	})
	core.Register("block", fixed(core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0}, core.Point{X: 0, Y: 1}, core.Point{X: 1, Y: 1}))
	core.Register("blinker", fixed(core.Point{X: 1, Y: 0}, core.Point{X: 1, Y: 1}, core.Point{X: 1, Y: 2}))
	core.Register("glider", fixed(core.Point{X: 1, Y: 0}, core.Point{X: 2, Y: 1}, core.Point{X: 0, Y: 2}, core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: 2}))
	core.Register("random", Random)
}
