package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/Skepar/lychen/internal/core"

	"github.com/logrusorgru/aurora"
)

// Action is what a key press asks the controller to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionSpeedUp
	ActionSpeedDown
	ActionResetSpeed
	ActionMoveCursor
	ActionToggleCell
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionTogglePause:
		return "toggle pause"
	case ActionSpeedUp:
		return "speed up"
	case ActionSpeedDown:
		return "speed down"
	case ActionResetSpeed:
		return "reset speed"
	case ActionMoveCursor:
		return "move cursor"
	case ActionToggleCell:
		return "toggle cell"
	case ActionQuit:
		return "quit"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Command is an action plus the direction ActionMoveCursor needs.
type Command struct {
	Action Action
	Dir    core.Direction
}

// CommandFor maps a key to its command. Unbound keys map to ActionNone.
func CommandFor(k core.Key) Command {
	switch k {
	case core.KeySpace:
		return Command{Action: ActionTogglePause}
	case core.KeyF:
		return Command{Action: ActionSpeedUp}
	case core.KeyS:
		return Command{Action: ActionSpeedDown}
	case core.KeyD:
		return Command{Action: ActionResetSpeed}
	case core.KeyUp:
		return Command{Action: ActionMoveCursor, Dir: core.Up}
	case core.KeyDown:
		return Command{Action: ActionMoveCursor, Dir: core.Down}
	case core.KeyLeft:
		return Command{Action: ActionMoveCursor, Dir: core.Left}
	case core.KeyRight:
		return Command{Action: ActionMoveCursor, Dir: core.Right}
	case core.KeyEnter:
		return Command{Action: ActionToggleCell}
	case core.KeyEscape, core.KeyQ, core.KeyCtrlC:
		return Command{Action: ActionQuit}
	}
	return Command{}
}

type keyBinding struct {
	name  string
	descr string
}

var keyBindings = []keyBinding{
	{"SPACE", "Pause / resume"},
	{"F", "Faster"},
	{"S", "Slower"},
	{"D", "Default speed"},
	{"ARROWS", "Move cursor (pauses)"},
	{"ENTER", "Toggle cell (pauses)"},
	{"MOUSE", "Click to select, drag to draw"},
	{"ESC/Q", "Exit"},
}

// Help writes the key bindings on one line.
func Help(w io.Writer, colors bool) {
	au := aurora.NewAurora(colors)
	var b strings.Builder
	b.WriteString("KEYBINDINGS: ")
	for i, k := range keyBindings {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(au.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	fmt.Fprintln(w, b.String())
}
