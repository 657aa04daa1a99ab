package render

import (
	"testing"

	"github.com/Skepar/lychen/internal/core"
)

func TestPaletteDistinct(t *testing.T) {
	p := DefaultPalette()
	seen := map[[4]uint8]string{}
	for _, state := range []core.Cell{core.Dead, core.Alive} {
		for _, selected := range []bool{false, true} {
			c := p.Color(state, selected)
			key := [4]uint8{c.R, c.G, c.B, c.A}
			name := state.String()
			if selected {
				name += "+selected"
			}
			if prev, ok := seen[key]; ok {
				t.Fatalf("%s and %s share color %v", prev, name, c)
			}
			seen[key] = name
		}
	}
}

func TestCellAtFloors(t *testing.T) {
	cases := []struct {
		px, py, unit int
		x, y         int
	}{
		{0, 0, 10, 0, 0},
		{9, 9, 10, 0, 0},
		{10, 19, 10, 1, 1},
		{35, 7, 7, 5, 1},
		{-1, -10, 10, -1, -1},
		{-11, 3, 10, -2, 0},
	}
	for _, c := range cases {
		x, y := CellAt(c.px, c.py, c.unit)
		if x != c.x || y != c.y {
			t.Fatalf("CellAt(%d,%d,%d) = (%d,%d), expected (%d,%d)", c.px, c.py, c.unit, x, y, c.x, c.y)
		}
	}
}

func TestFrameApplyPaintsSquares(t *testing.T) {
	f := NewFrame(core.Size{W: 3, H: 2}, 4)
	if f.W != 12 || f.H != 8 {
		t.Fatalf("frame size %dx%d", f.W, f.H)
	}
	if f.At(11, 7) != f.Palette.Dead {
		t.Fatal("new frame not painted dead")
	}

	cs := core.NewChangeSet(2)
	cs.Add(core.Change{X: 1, Y: 0, State: core.Alive})
	cs.Add(core.Change{X: 2, Y: 1, State: core.Dead, Selected: true})
	f.Apply(cs)

	for py := 0; py < 4; py++ {
		for px := 4; px < 8; px++ {
			if f.At(px, py) != f.Palette.Alive {
				t.Fatalf("pixel (%d,%d) = %v, expected alive", px, py, f.At(px, py))
			}
		}
	}
	if f.At(8, 4) != f.Palette.DeadSelected || f.At(11, 7) != f.Palette.DeadSelected {
		t.Fatal("selected dead square not painted")
	}
	if f.At(3, 0) != f.Palette.Dead || f.At(8, 3) != f.Palette.Dead {
		t.Fatal("paint leaked outside its square")
	}
}
