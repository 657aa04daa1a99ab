package render

import (
	"image/color"

	"github.com/Skepar/lychen/internal/core"
)

// Palette maps the four visual states of a cell to colors.
type Palette struct {
	Dead          color.RGBA
	Alive         color.RGBA
	DeadSelected  color.RGBA
	AliveSelected color.RGBA
}

// DefaultPalette returns the standard colors:
//
//	dead            black      (0, 0, 0)
//	alive           light grey (200, 200, 200)
//	dead, selected  dark blue  (40, 60, 140)
//	alive, selected white      (255, 255, 255)
func DefaultPalette() Palette {
	return Palette{
		Dead:          color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Alive:         color.RGBA{R: 200, G: 200, B: 200, A: 255},
		DeadSelected:  color.RGBA{R: 40, G: 60, B: 140, A: 255},
		AliveSelected: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Color returns the color a cell is drawn with.
func (p Palette) Color(state core.Cell, selected bool) color.RGBA {
	switch {
	case state == core.Alive && selected:
		return p.AliveSelected
	case state == core.Alive:
		return p.Alive
	case selected:
		return p.DeadSelected
	default:
		return p.Dead
	}
}

// CellAt converts a pointer position into the grid cell under it, flooring so
// that negative positions map to negative cells.
func CellAt(px, py, unit int) (x, y int) {
	return floorDiv(px, unit), floorDiv(py, unit)
}

// Origin converts a grid cell into the position of its top-left pixel.
func Origin(x, y, unit int) (px, py int) {
	return x * unit, y * unit
}

func floorDiv(n, d int) int {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}

// Frame is an RGBA pixel buffer for a grid drawn with unit x unit squares.
type Frame struct {
	W, H    int
	Unit    int
	Pix     []byte
	Palette Palette
}

// NewFrame allocates a frame for a grid of the given size, every pixel
// painted with the dead color.
func NewFrame(size core.Size, unit int) *Frame {
	if unit <= 0 {
		unit = 1
	}
	w, h := size.W*unit, size.H*unit
	f := &Frame{W: w, H: h, Unit: unit, Pix: make([]byte, 4*w*h), Palette: DefaultPalette()}
	dead := f.Palette.Dead
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i+0] = dead.R
		f.Pix[i+1] = dead.G
		f.Pix[i+2] = dead.B
		f.Pix[i+3] = dead.A
	}
	return f
}

// Apply paints the square of every change in cs.
func (f *Frame) Apply(cs core.ChangeSet) {
	for _, c := range cs {
		f.fillSquare(c.X, c.Y, f.Palette.Color(c.State, c.Selected))
	}
}

// At returns the color of pixel (px, py).
func (f *Frame) At(px, py int) color.RGBA {
	base := 4 * (py*f.W + px)
	return color.RGBA{R: f.Pix[base], G: f.Pix[base+1], B: f.Pix[base+2], A: f.Pix[base+3]}
}

func (f *Frame) fillSquare(x, y int, col color.RGBA) {
	ox, oy := Origin(x, y, f.Unit)
	for py := oy; py < oy+f.Unit; py++ {
		row := 4 * (py*f.W + ox)
		for i := 0; i < f.Unit; i++ {
			base := row + 4*i
			f.Pix[base+0] = col.R
			f.Pix[base+1] = col.G
			f.Pix[base+2] = col.B
			f.Pix[base+3] = col.A
		}
	}
}
