//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Skepar/lychen/internal/life"
	"github.com/Skepar/lychen/internal/render"
	"github.com/Skepar/lychen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// hudWidth is the width in pixels of the status panel right of the grid.
const hudWidth = 200

// Game adapts a Controller to the ebiten.Game interface. ebiten calls Update
// at a fixed rate, which serves as the control loop's idle period.
type Game struct {
	ctrl    *Controller
	painter *render.Painter
	input   *ui.WindowInput
	hud     *ui.HUD
	started bool
}

// New constructs a Game for the provided controller and painter.
func New(ctrl *Controller, painter *render.Painter) *Game {
	return &Game{
		ctrl:    ctrl,
		painter: painter,
		input:   ui.NewWindowInput(),
		hud:     ui.NewHUD(hudWidth),
	}
}

// Update handles input and advances the simulation when it is due.
func (g *Game) Update() error {
	if !g.started {
		g.ctrl.Start()
		g.started = true
	}
	for _, ev := range g.input.Collect() {
		if g.ctrl.Handle(ev) {
			return ebiten.Termination
		}
	}
	g.ctrl.Tick()
	g.hud.Update(g.ctrl.Status())
	return nil
}

// Draw renders the grid and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	w, _ := g.painter.Size()
	g.hud.Draw(screen, w)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + hudWidth, h
}

// RunWindow opens a window and runs the simulation until it is closed.
func RunWindow(cfg *Config, m *life.Model, logger *log.Logger) error {
	painter := render.NewPainter(m.Size(), cfg.SquareSize())
	ctrl := NewController(m, painter, Options{
		Interval: cfg.Interval,
		Unit:     cfg.SquareSize(),
		Logger:   logger,
	})
	game := New(ctrl, painter)

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(fmt.Sprintf("lychen %dx%d", cfg.Width, cfg.Height))
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(int(time.Second / DefaultIdle))
	ebiten.SetWindowClosingHandled(true)

	logger.Printf("window frontend started: %dx%d grid, square size %d", cfg.Width, cfg.Height, cfg.SquareSize())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	logger.Printf("stopped after %d generations", ctrl.Status().Generation)
	return nil
}
