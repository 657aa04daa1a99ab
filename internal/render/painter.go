//go:build ebiten

package render

import (
	"github.com/Skepar/lychen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter keeps the grid in an ebiten image and updates only the squares a
// change set names. Each Render uploads the frame once.
type Painter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewPainter allocates a painter for a grid of the given size.
func NewPainter(size core.Size, unit int) *Painter {
	f := NewFrame(size, unit)
	return &Painter{frame: f, img: ebiten.NewImage(f.W, f.H)}
}

// Render paints the changes and presents the result.
func (p *Painter) Render(cs core.ChangeSet) {
	p.frame.Apply(cs)
	p.img.WritePixels(p.frame.Pix)
}

// Draw copies the painted grid onto dst.
func (p *Painter) Draw(dst *ebiten.Image) {
	dst.DrawImage(p.img, nil)
}

// Size returns the pixel dimensions of the painted grid.
func (p *Painter) Size() (int, int) { return p.frame.W, p.frame.H }
