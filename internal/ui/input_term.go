package ui

import (
	"time"

	"github.com/Skepar/lychen/internal/core"

	"github.com/gdamore/tcell/v2"
)

// KeyRepeatWindow is the longest gap between two events of the same key
// that still counts as auto-repeat.
const KeyRepeatWindow = 100 * time.Millisecond

// TermInput reads tcell events without blocking. Terminals report no key
// repeat flag, so a key arriving again within KeyRepeatWindow of its previous
// event is marked as a repeat.
type TermInput struct {
	screen       tcell.Screen
	held         bool
	lastX, lastY int
	lastKey      core.Key
	lastKeyAt    time.Time
}

// NewTermInput returns an input source reading from screen.
func NewTermInput(screen tcell.Screen) *TermInput {
	return &TermInput{screen: screen}
}

// Poll returns the next pending event the controller understands, skipping
// the rest. It returns false once no event is pending. A finalized screen
// yields a quit.
func (in *TermInput) Poll() (core.Event, bool) {
	for in.screen.HasPendingEvent() {
		tev := in.screen.PollEvent()
		if tev == nil {
			return core.Event{Kind: core.EventQuit}, true
		}
		if ev, ok := in.Translate(tev); ok {
			return ev, true
		}
	}
	return core.Event{}, false
}

// Translate converts a tcell event. Mouse events are tracked across calls so
// that the first event with the primary button down is a press and later
// motion with it held is a drag.
func (in *TermInput) Translate(ev tcell.Event) (core.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key := termKey(ev)
		if key == core.KeyUnknown {
			return core.Event{}, false
		}
		return core.Event{Kind: core.EventKeyDown, Key: key, Repeat: in.repeated(key, ev.When())}, true
	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		wasHeld, moved := in.held, x != in.lastX || y != in.lastY
		in.held, in.lastX, in.lastY = down, x, y
		switch {
		case down && !wasHeld:
			return core.Event{Kind: core.EventPointerDown, X: x, Y: y}, true
		case down && moved:
			return core.Event{Kind: core.EventPointerDrag, X: x, Y: y}, true
		}
	case *tcell.EventResize:
		in.screen.Sync()
		return core.Event{Kind: core.EventExpose}, true
	case *tcell.EventError:
		return core.Event{Kind: core.EventQuit}, true
	}
	return core.Event{}, false
}

// repeated records a key event at time at and reports whether it continues a
// run of the same key. Each repeat extends the run, so a held key stays
// repeated for as long as events keep coming.
func (in *TermInput) repeated(key core.Key, at time.Time) bool {
	gap := at.Sub(in.lastKeyAt)
	rep := key == in.lastKey && !in.lastKeyAt.IsZero() && gap >= 0 && gap < KeyRepeatWindow
	in.lastKey, in.lastKeyAt = key, at
	return rep
}

func termKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyLeft:
		return core.KeyLeft
	case tcell.KeyRight:
		return core.KeyRight
	case tcell.KeyEnter:
		return core.KeyEnter
	case tcell.KeyEscape:
		return core.KeyEscape
	case tcell.KeyCtrlC:
		return core.KeyCtrlC
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return core.KeySpace
		case 'f', 'F':
			return core.KeyF
		case 's', 'S':
			return core.KeyS
		case 'd', 'D':
			return core.KeyD
		case 'q', 'Q':
			return core.KeyQ
		}
	}
	return core.KeyUnknown
}
