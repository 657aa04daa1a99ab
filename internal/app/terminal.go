package app

import (
	"fmt"
	"log"

	"github.com/Skepar/lychen/internal/life"
	"github.com/Skepar/lychen/internal/render"
	"github.com/Skepar/lychen/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal runs the simulation in the terminal until the user quits.
func RunTerminal(cfg *Config, m *life.Model, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	ctrl := NewController(m, render.NewTerminal(screen, cfg.SquareSize()), Options{
		Interval: cfg.Interval,
		Unit:     cfg.SquareSize(),
		Logger:   logger,
	})
	logger.Printf("terminal frontend started: %dx%d grid, square size %d", cfg.Width, cfg.Height, cfg.SquareSize())
	ctrl.Start()
	ctrl.Run(ui.NewTermInput(screen))
	logger.Printf("stopped after %d generations", ctrl.Status().Generation)
	return nil
}
