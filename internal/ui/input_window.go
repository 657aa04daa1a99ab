//go:build ebiten

package ui

import (
	"github.com/Skepar/lychen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var windowKeys = map[ebiten.Key]core.Key{
	ebiten.KeySpace:       core.KeySpace,
	ebiten.KeyEnter:       core.KeyEnter,
	ebiten.KeyNumpadEnter: core.KeyEnter,
	ebiten.KeyEscape:      core.KeyEscape,
	ebiten.KeyArrowUp:     core.KeyUp,
	ebiten.KeyArrowDown:   core.KeyDown,
	ebiten.KeyArrowLeft:   core.KeyLeft,
	ebiten.KeyArrowRight:  core.KeyRight,
	ebiten.KeyF:           core.KeyF,
	ebiten.KeyS:           core.KeyS,
	ebiten.KeyD:           core.KeyD,
	ebiten.KeyQ:           core.KeyQ,
}

// WindowInput turns ebiten's per-frame input state into events. Only the
// frame a key goes down produces an event, so held keys never repeat.
type WindowInput struct {
	lastX, lastY int
	keys         []ebiten.Key
}

// NewWindowInput returns an input source for the ebiten window.
func NewWindowInput() *WindowInput {
	return &WindowInput{}
}

// Collect returns the events of the current frame. Call it once per Update.
func (in *WindowInput) Collect() []core.Event {
	var out []core.Event
	if ebiten.IsWindowBeingClosed() {
		out = append(out, core.Event{Kind: core.EventQuit})
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	for _, k := range in.keys {
		if ctrl && k == ebiten.KeyC {
			out = append(out, core.Event{Kind: core.EventKeyDown, Key: core.KeyCtrlC})
			continue
		}
		if key, ok := windowKeys[k]; ok {
			out = append(out, core.Event{Kind: core.EventKeyDown, Key: key})
		}
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		out = append(out, core.Event{Kind: core.EventPointerDown, X: x, Y: y})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (x != in.lastX || y != in.lastY):
		out = append(out, core.Event{Kind: core.EventPointerDrag, X: x, Y: y})
	}
	in.lastX, in.lastY = x, y
	return out
}
