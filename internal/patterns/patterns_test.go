package patterns

import (
	"slices"
	"testing"

	"github.com/Skepar/lychen/internal/core"
	"github.com/Skepar/lychen/internal/life"
)

func TestRegistered(t *testing.T) {
	for _, name := range []string{"empty", "sample", "block", "blinker", "glider", "random"} {
		if _, ok := core.Patterns()[name]; !ok {
			t.Fatalf("pattern %q not registered", name)
		}
	}
}

func TestFixedPatternsFitInterior(t *testing.T) {
	size := core.Size{W: 9, H: 9}
	for _, name := range []string{"block", "blinker", "glider"} {
		for _, p := range core.Patterns()[name](size, 0) {
			if p.X < 1 || p.Y < 1 || p.X >= size.W-1 || p.Y >= size.H-1 {
				t.Fatalf("%s: cell %v outside the interior", name, p)
			}
		}
	}
}

func TestBlinkerPatternOscillates(t *testing.T) {
	m := life.New(7, 7)
	cells := core.Patterns()["blinker"](m.Size(), 0)
	m.Seed(cells)
	m.Update()
	m.Update()
	for _, p := range cells {
		if m.Get(p.X, p.Y) != core.Alive {
			t.Fatalf("blinker cell %v dead after a full period", p)
		}
	}
	if m.Population() != len(cells) {
		t.Fatalf("population = %d, expected %d", m.Population(), len(cells))
	}
}

func TestRandomDeterministic(t *testing.T) {
	size := core.Size{W: 20, H: 12}
	a := Random(size, 7)
	b := Random(size, 7)
	if !slices.Equal(a, b) {
		t.Fatal("random pattern not deterministic for a fixed seed")
	}
	if len(a) == 0 {
		t.Fatal("random pattern is empty")
	}
	for _, p := range a {
		if p.X < 1 || p.Y < 1 || p.X >= size.W-1 || p.Y >= size.H-1 {
			t.Fatalf("random cell %v outside the interior", p)
		}
	}
}
