package app

import (
	"io"
	"log"
	"time"

	"github.com/Skepar/lychen/internal/core"
	"github.com/Skepar/lychen/internal/life"
	"github.com/Skepar/lychen/internal/render"
)

// DefaultIdle is the pause between two passes of the control loop.
const DefaultIdle = 10 * time.Millisecond

// Renderer draws a change set and presents the result once.
type Renderer interface {
	Render(cs core.ChangeSet)
}

// InputSource hands out pending input events without blocking.
type InputSource interface {
	Poll() (core.Event, bool)
}

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	// Interval is the initial and default step interval.
	Interval time.Duration
	// Unit is the size of a cell in the renderer's pointer coordinates.
	Unit int
	// Idle is the sleep between loop passes in Run.
	Idle   time.Duration
	Now    func() time.Time
	Sleep  func(time.Duration)
	Logger *log.Logger
}

// Controller paces the model and turns input events into model operations.
// It is owned by a single loop and is not safe for concurrent use.
type Controller struct {
	model    *life.Model
	renderer Renderer
	pacer    *core.Pacer

	paused     bool
	generation int
	unit       int
	idle       time.Duration
	now        func() time.Time
	sleep      func(time.Duration)
	log        *log.Logger
}

// NewController wires a model to a renderer.
func NewController(m *life.Model, r Renderer, o Options) *Controller {
	if o.Unit <= 0 {
		o.Unit = 1
	}
	if o.Idle <= 0 {
		o.Idle = DefaultIdle
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return &Controller{
		model:    m,
		renderer: r,
		pacer:    core.NewPacer(o.Interval, o.Now()),
		unit:     o.Unit,
		idle:     o.Idle,
		now:      o.Now,
		sleep:    o.Sleep,
		log:      o.Logger,
	}
}

// Start draws every cell once.
func (c *Controller) Start() {
	c.renderer.Render(c.model.Snapshot())
}

// Paused reports whether stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Interval returns the current step interval.
func (c *Controller) Interval() time.Duration { return c.pacer.Interval() }

// Status returns a snapshot for display.
func (c *Controller) Status() core.Status {
	return core.Status{
		Generation: c.generation,
		Population: c.model.Population(),
		Paused:     c.paused,
		Interval:   c.pacer.Interval(),
		Cursor:     c.model.Selected(),
		Size:       c.model.Size(),
	}
}

// Tick advances the model one generation when running and the step interval
// has elapsed. It reports whether a generation was computed.
func (c *Controller) Tick() bool {
	if c.paused {
		return false
	}
	now := c.now()
	if !c.pacer.ShouldStep(now) {
		return false
	}
	c.renderer.Render(c.model.Update())
	c.generation++
	c.pacer.RecordStep(now)
	return true
}

// Handle applies one input event and reports whether the loop should stop.
func (c *Controller) Handle(ev core.Event) (quit bool) {
	switch ev.Kind {
	case core.EventQuit:
		c.log.Print("quit requested")
		return true
	case core.EventKeyDown:
		if ev.Repeat {
			return false
		}
		return c.apply(CommandFor(ev.Key))
	case core.EventPointerDown:
		if x, y, ok := c.cellAt(ev.X, ev.Y); ok {
			c.renderer.Render(c.model.MoveSelected(x, y))
		}
	case core.EventPointerDrag:
		if x, y, ok := c.cellAt(ev.X, ev.Y); ok {
			c.renderer.Render(c.model.Paint(x, y))
		}
	case core.EventExpose:
		c.Start()
	}
	return false
}

// Run drives the loop until a quit event: step when due, sleep for the idle
// period, then handle at most one pending event.
func (c *Controller) Run(src InputSource) {
	for {
		c.Tick()
		c.sleep(c.idle)
		ev, ok := src.Poll()
		if !ok {
			continue
		}
		if c.Handle(ev) {
			return
		}
	}
}

func (c *Controller) apply(cmd Command) bool {
	switch cmd.Action {
	case ActionTogglePause:
		c.paused = !c.paused
		c.log.Printf("paused=%v", c.paused)
	case ActionSpeedUp:
		if c.pacer.Faster() {
			c.log.Printf("interval=%v", c.pacer.Interval())
		} else {
			c.log.Printf("interval already at minimum %v", c.pacer.Interval())
		}
	case ActionSpeedDown:
		c.pacer.Slower()
		c.log.Printf("interval=%v", c.pacer.Interval())
	case ActionResetSpeed:
		c.pacer.ResetInterval()
		c.log.Printf("interval=%v", c.pacer.Interval())
	case ActionMoveCursor:
		c.paused = true
		c.renderer.Render(c.model.OffsetSelected(cmd.Dir))
	case ActionToggleCell:
		c.paused = true
		c.renderer.Render(c.model.FlipSelected())
	case ActionQuit:
		c.log.Print("quit requested")
		return true
	}
	return false
}

func (c *Controller) cellAt(px, py int) (x, y int, ok bool) {
	x, y = render.CellAt(px, py, c.unit)
	return x, y, c.model.Size().Contains(x, y)
}
