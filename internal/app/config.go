package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Skepar/lychen/internal/core"
	"github.com/Skepar/lychen/internal/life"

	"github.com/integrii/flaggy"
)

// Frontend names accepted by --frontend.
const (
	FrontendTerm     = "term"
	FrontendWindow   = "window"
	FrontendHeadless = "headless"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	Unit        int
	Interval    time.Duration
	Frontend    string
	Pattern     string
	Seed        int64
	Generations int
	LogFile     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       50,
		Height:      30,
		Interval:    core.DefaultStepInterval,
		Frontend:    FrontendTerm,
		Pattern:     "sample",
		Seed:        42,
		Generations: 100,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "Width of the grid in cells")
	p.Int(&c.Height, "y", "height", "Height of the grid in cells")
	p.Int(&c.Unit, "s", "square-size", "Size of a cell in pixels (window, default 10) or characters (term, default 1)")
	p.Duration(&c.Interval, "i", "interval", "Initial interval between generations, for example 50ms")
	p.String(&c.Frontend, "f", "frontend", "Frontend to use ["+strings.Join([]string{FrontendTerm, FrontendWindow, FrontendHeadless}, "|")+"]")
	p.String(&c.Pattern, "p", "pattern", "Seed pattern ["+strings.Join(PatternNames(), "|")+"]")
	p.Int64(&c.Seed, "", "seed", "Seed for the random pattern")
	p.Int(&c.Generations, "g", "generations", "Generations to compute with the headless frontend")
	p.String(&c.LogFile, "", "log", "Write the log to this file")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Width < life.MinSize || c.Height < life.MinSize {
		return fmt.Errorf("grid must be at least %dx%d, got %dx%d", life.MinSize, life.MinSize, c.Width, c.Height)
	}
	if c.Unit < 0 {
		return fmt.Errorf("square-size must not be negative, got %d", c.Unit)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	switch c.Frontend {
	case FrontendTerm, FrontendWindow:
	case FrontendHeadless:
		if c.Generations < 0 {
			return fmt.Errorf("generations must not be negative, got %d", c.Generations)
		}
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if _, ok := core.Patterns()[c.Pattern]; !ok {
		return fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	return nil
}

// SquareSize returns the configured cell size, or the frontend's default
// when none was given.
func (c *Config) SquareSize() int {
	if c.Unit > 0 {
		return c.Unit
	}
	if c.Frontend == FrontendWindow {
		return 10
	}
	return 1
}

// Logger opens the log destination: the --log file when set, otherwise
// nothing for the terminal frontend (it owns the screen) and stderr for the
// others. The returned closer must be called on exit.
func (c *Config) Logger() (*log.Logger, io.Closer, error) {
	flags := log.LstdFlags | log.Lmicroseconds
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return log.New(f, "lychen ", flags), f, nil
	}
	if c.Frontend == FrontendTerm {
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	}
	return log.New(os.Stderr, "lychen ", flags), nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// PatternNames lists the registered seed patterns in name order.
func PatternNames() []string {
	names := make([]string, 0, len(core.Patterns()))
	for k := range core.Patterns() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NewModel builds a model from the configuration and seeds it with the chosen
// pattern.
func (c *Config) NewModel() *life.Model {
	m := life.New(c.Width, c.Height)
	if factory, ok := core.Patterns()[c.Pattern]; ok {
		m.Seed(factory(m.Size(), c.Seed))
	}
	return m
}
