package app

import (
	"fmt"
	"io"
	"time"

	"github.com/Skepar/lychen/internal/life"

	"github.com/cheggaaa/pb/v3"
	"github.com/logrusorgru/aurora"
)

// Summary reports the outcome of a headless run.
type Summary struct {
	Generations int
	Population  int
	Changed     int
	Elapsed     time.Duration
}

// RunHeadless computes the given number of generations without drawing,
// reporting progress on progress. Changed counts the cell flips over the run.
func RunHeadless(m *life.Model, generations int, progress io.Writer) Summary {
	bar := pb.New(generations)
	bar.SetWriter(progress)
	bar.Start()
	defer bar.Finish()

	start := time.Now()
	s := Summary{Generations: generations}
	for i := 0; i < generations; i++ {
		s.Changed += m.Update().Len()
		bar.Increment()
	}
	s.Elapsed = time.Since(start)
	s.Population = m.Population()
	return s
}

// Print writes the summary.
func (s Summary) Print(w io.Writer, colors bool) {
	au := aurora.NewAurora(colors)
	fmt.Fprintln(w, au.Bold("Finished:"))
	fmt.Fprintf(w, "  %s: %d\n", au.Green("Generations"), s.Generations)
	fmt.Fprintf(w, "  %s: %d\n", au.Green("Live cells"), s.Population)
	fmt.Fprintf(w, "  %s: %d\n", au.Green("Cell flips"), s.Changed)
	fmt.Fprintf(w, "  %s: %v\n", au.Green("Total time"), s.Elapsed.Round(time.Millisecond))
}
