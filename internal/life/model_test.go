package life

import (
	"testing"

	"github.com/Skepar/lychen/internal/core"
)

func alive(m *Model) map[core.Point]bool {
	out := map[core.Point]bool{}
	size := m.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if m.Get(x, y) == core.Alive {
				out[core.Point{X: x, Y: y}] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, m *Model, want ...core.Point) {
	t.Helper()
	got := alive(m)
	if len(got) != len(want) {
		t.Fatalf("alive cells = %v, expected %v", got, want)
	}
	for _, p := range want {
		if !got[p] {
			t.Fatalf("cell %v dead, expected alive (alive: %v)", p, got)
		}
	}
	if m.Population() != len(want) {
		t.Fatalf("population = %d, expected %d", m.Population(), len(want))
	}
}

func expectChanges(t *testing.T, cs core.ChangeSet, want ...core.Change) {
	t.Helper()
	if cs.Len() != len(want) {
		t.Fatalf("change set = %v, expected %v", cs.Sorted(), want)
	}
	for _, c := range want {
		got, ok := cs[c.Point()]
		if !ok || got != c {
			t.Fatalf("change at %v = %+v (present=%v), expected %+v", c.Point(), got, ok, c)
		}
	}
}

func TestNewRejectsSmallGrids(t *testing.T) {
	for _, size := range []core.Size{{W: 2, H: 5}, {W: 5, H: 2}, {W: 0, H: 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%d, %d) did not panic", size.W, size.H)
				}
			}()
			New(size.W, size.H)
		}()
	}
}

func TestNewStartsEmptyWithCenteredCursor(t *testing.T) {
	m := New(7, 4)
	expectAlive(t, m)
	if m.Selected() != (core.Point{X: 3, Y: 2}) {
		t.Fatalf("cursor = %v", m.Selected())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	m := New(5, 5)
	m.Seed([]core.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}})

	cs := m.Update()
	expectAlive(t, m, core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: 2}, core.Point{X: 3, Y: 2})
	expectChanges(t, cs,
		core.Change{X: 2, Y: 1, State: core.Dead},
		core.Change{X: 2, Y: 3, State: core.Dead},
		core.Change{X: 1, Y: 2, State: core.Alive},
		core.Change{X: 3, Y: 2, State: core.Alive},
	)

	cs = m.Update()
	expectAlive(t, m, core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 3})
	expectChanges(t, cs,
		core.Change{X: 2, Y: 1, State: core.Alive},
		core.Change{X: 2, Y: 3, State: core.Alive},
		core.Change{X: 1, Y: 2, State: core.Dead},
		core.Change{X: 3, Y: 2, State: core.Dead},
	)
}

func TestBlockIsStill(t *testing.T) {
	m := New(6, 6)
	block := []core.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}}
	m.Seed(block)

	for i := 0; i < 3; i++ {
		if cs := m.Update(); cs.Len() != 0 {
			t.Fatalf("generation %d: still life produced changes %v", i, cs.Sorted())
		}
	}
	expectAlive(t, m, block...)
}

func TestUpdateNeverTouchesBorder(t *testing.T) {
	m := New(6, 5)
	// A live border cell with three live interior neighbours would be
	// evaluated by an unbounded rule; the border must stay as painted.
	m.Paint(0, 2)
	m.Paint(5, 0)
	m.Seed([]core.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 4, Y: 1}})

	border := map[core.Point]core.Cell{}
	size := m.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if x == 0 || y == 0 || x == size.W-1 || y == size.H-1 {
				border[core.Point{X: x, Y: y}] = m.Get(x, y)
			}
		}
	}

	for i := 0; i < 5; i++ {
		cs := m.Update()
		for p := range cs {
			if _, ok := border[p]; ok {
				t.Fatalf("generation %d reported border cell %v", i, p)
			}
		}
		for p, want := range border {
			if got := m.Get(p.X, p.Y); got != want {
				t.Fatalf("generation %d changed border cell %v from %v to %v", i, p, want, got)
			}
		}
	}
}

func TestUpdateIgnoresCellsWithTwoNeighbours(t *testing.T) {
	m := New(5, 5)
	// (2,2) is dead with exactly two live neighbours and must be left out.
	m.Seed([]core.Point{{X: 1, Y: 1}, {X: 3, Y: 3}})
	cs := m.Update()
	if _, ok := cs[core.Point{X: 2, Y: 2}]; ok {
		t.Fatalf("cell with two neighbours reported: %v", cs.Sorted())
	}
	if m.Get(2, 2) != core.Dead {
		t.Fatal("cell with two neighbours changed state")
	}
}

func TestUpdateReadsPreviousGeneration(t *testing.T) {
	m := New(5, 5)
	// A vertical blinker scanned in place kills (2,1) before (1,2) is
	// counted, and (1,2) is never born.
	m.Seed([]core.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}})
	m.Update()
	expectAlive(t, m, core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: 2}, core.Point{X: 3, Y: 2})

	m = New(5, 5)
	m.Seed([]core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}})
	m.Update()
	expectAlive(t, m, core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 1}, core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: 2})
}

func TestFlipThenOffsetScenario(t *testing.T) {
	m := New(5, 5)

	cs := m.FlipSelected()
	expectChanges(t, cs, core.Change{X: 2, Y: 2, State: core.Alive, Selected: true})
	expectAlive(t, m, core.Point{X: 2, Y: 2})

	cs = m.OffsetSelected(core.Right)
	expectChanges(t, cs,
		core.Change{X: 2, Y: 2, State: core.Alive, Selected: false},
		core.Change{X: 3, Y: 2, State: core.Dead, Selected: true},
	)
	if m.Selected() != (core.Point{X: 3, Y: 2}) {
		t.Fatalf("cursor = %v", m.Selected())
	}
}

func TestFlipTwiceRestores(t *testing.T) {
	m := New(5, 5)
	first := m.FlipSelected()
	second := m.FlipSelected()

	expectChanges(t, first, core.Change{X: 2, Y: 2, State: core.Alive, Selected: true})
	expectChanges(t, second, core.Change{X: 2, Y: 2, State: core.Dead, Selected: true})
	expectAlive(t, m)
}

func TestOffsetClampsAtEdges(t *testing.T) {
	m := New(3, 3)
	m.MoveSelected(0, 0)

	for _, d := range []core.Direction{core.Up, core.Left} {
		cs := m.OffsetSelected(d)
		expectChanges(t, cs, core.Change{X: 0, Y: 0, State: core.Dead, Selected: true})
		if m.Selected() != (core.Point{}) {
			t.Fatalf("cursor escaped to %v moving %v", m.Selected(), d)
		}
	}

	m.MoveSelected(2, 2)
	for _, d := range []core.Direction{core.Down, core.Right} {
		cs := m.OffsetSelected(d)
		expectChanges(t, cs, core.Change{X: 2, Y: 2, State: core.Dead, Selected: true})
	}
}

func TestOffsetWalkStaysInBounds(t *testing.T) {
	m := New(4, 3)
	dirs := []core.Direction{core.Right, core.Right, core.Right, core.Down, core.Down, core.Left, core.Up, core.Up, core.Up}
	for _, d := range dirs {
		cs := m.OffsetSelected(d)
		if cs.Len() < 1 || cs.Len() > 2 {
			t.Fatalf("moving %v returned %d changes", d, cs.Len())
		}
		p := m.Selected()
		if !m.Size().Contains(p.X, p.Y) {
			t.Fatalf("cursor %v out of bounds after %v", p, d)
		}
		if c, ok := cs[p]; !ok || !c.Selected {
			t.Fatalf("cursor cell %v not reported selected after %v", p, d)
		}
	}
}

func TestMoveSelected(t *testing.T) {
	m := New(5, 5)
	m.Paint(4, 4)
	cs := m.MoveSelected(4, 4)
	expectChanges(t, cs,
		core.Change{X: 2, Y: 2, State: core.Dead, Selected: false},
		core.Change{X: 4, Y: 4, State: core.Alive, Selected: true},
	)

	cs = m.MoveSelected(4, 4)
	expectChanges(t, cs, core.Change{X: 4, Y: 4, State: core.Alive, Selected: true})
}

func TestMoveSelectedOutOfRangePanics(t *testing.T) {
	m := New(5, 5)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	m.MoveSelected(5, 0)
}

func TestPaintKeepsCursor(t *testing.T) {
	m := New(5, 5)
	cs := m.Paint(1, 3)
	expectChanges(t, cs, core.Change{X: 1, Y: 3, State: core.Alive, Selected: false})
	if m.Selected() != (core.Point{X: 2, Y: 2}) {
		t.Fatalf("paint moved the cursor to %v", m.Selected())
	}
	m.Paint(1, 3)
	expectAlive(t, m, core.Point{X: 1, Y: 3})
}

func TestSetIsUnconditional(t *testing.T) {
	m := New(5, 5)
	cs := m.Set(0, 0, core.Dead, true)
	expectChanges(t, cs, core.Change{X: 0, Y: 0, State: core.Dead, Selected: true})
	m.Set(0, 0, core.Alive, false)
	m.Set(0, 0, core.Alive, false)
	expectAlive(t, m, core.Point{})
}

func TestSnapshotCoversGrid(t *testing.T) {
	m := New(4, 3)
	m.Paint(1, 1)
	cs := m.Snapshot()
	if cs.Len() != 12 {
		t.Fatalf("snapshot has %d changes, expected 12", cs.Len())
	}
	if c := cs[core.Point{X: 1, Y: 1}]; c.State != core.Alive || c.Selected {
		t.Fatalf("snapshot (1,1) = %+v", c)
	}
	if c := cs[m.Selected()]; !c.Selected {
		t.Fatalf("snapshot cursor cell not selected: %+v", c)
	}
}

func TestSeedSkipsOutOfRange(t *testing.T) {
	m := New(3, 3)
	cs := m.Seed([]core.Point{{X: 1, Y: 1}, {X: 3, Y: 0}, {X: -1, Y: 2}})
	if cs.Len() != 1 {
		t.Fatalf("seed reported %d changes", cs.Len())
	}
	expectAlive(t, m, core.Point{X: 1, Y: 1})
}
