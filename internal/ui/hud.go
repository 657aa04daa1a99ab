//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/Skepar/lychen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the grid.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	status     core.Status
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Update stores the status shown on the next Draw.
func (h *HUD) Update(s core.Status) {
	if h == nil {
		return
	}
	h.status = s
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	labelColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Life", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += infoSpacing

	s := h.status
	modeColor := color.RGBA{R: 80, G: 200, B: 220, A: 255}
	if s.Paused {
		modeColor = color.RGBA{R: 230, G: 90, B: 80, A: 255}
	}
	rows := []struct {
		label string
		value string
		col   color.Color
	}{
		{"Mode", s.Mode(), modeColor},
		{"Generation", fmt.Sprint(s.Generation), valueColor},
		{"Live cells", fmt.Sprint(s.Population), valueColor},
		{"Interval", s.Interval.Round(time.Millisecond).String(), valueColor},
		{"Cursor", s.Cursor.String(), valueColor},
		{"Grid", fmt.Sprintf("%d x %d", s.Size.W, s.Size.H), valueColor},
	}
	for _, r := range rows {
		text.Draw(h.panel, r.label, face, panelPadding, y, labelColor)
		bounds := text.BoundString(face, r.value)
		text.Draw(h.panel, r.value, face, h.width-panelPadding-bounds.Dx(), y, r.col)
		y += lineHeight
	}

	y += infoSpacing / 2
	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		y += lineHeight
	}
}

var helpLines = []string{
	"SPACE  pause/resume",
	"F / S  faster / slower",
	"D      default speed",
	"ARROWS move cursor",
	"ENTER  toggle cell",
	"MOUSE  select / draw",
	"ESC    quit",
}

const (
	panelPadding   = 12
	lineHeight     = 18
	headerBaseline = 18
	infoSpacing    = 28
)
