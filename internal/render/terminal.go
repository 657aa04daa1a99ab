package render

import (
	"github.com/Skepar/lychen/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws cells as unit x unit blocks of terminal character cells.
type Terminal struct {
	screen  tcell.Screen
	unit    int
	palette Palette
}

// NewTerminal returns a renderer drawing onto screen.
func NewTerminal(screen tcell.Screen, unit int) *Terminal {
	if unit <= 0 {
		unit = 1
	}
	return &Terminal{screen: screen, unit: unit, palette: DefaultPalette()}
}

// Render draws the changes and shows the screen once.
func (t *Terminal) Render(cs core.ChangeSet) {
	for _, c := range cs {
		style := t.style(c.State, c.Selected)
		ox, oy := Origin(c.X, c.Y, t.unit)
		for y := oy; y < oy+t.unit; y++ {
			for x := ox; x < ox+t.unit; x++ {
				t.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
	t.screen.Show()
}

func (t *Terminal) style(state core.Cell, selected bool) tcell.Style {
	col := t.palette.Color(state, selected)
	bg := tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
	return tcell.StyleDefault.Background(bg).Foreground(bg)
}
