// Package surface provides drawing targets for the rain effect: an
// in-memory cell grid, ANSI terminals, tcell screens and raster images.
package surface

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"digital_rain/rain"
)

// snapDistance is how close, in RGB distance, a faded color must come to
// the fill color before it is considered equal to it.
const snapDistance = 1.0 / 255

// Cell is one character cell of a Grid.
type Cell struct {
	Glyph rune // 0 when the cell shows only background
	Fg    colorful.Color
	Bg    colorful.Color
}

// Grid is an in-memory surface of character cells. Colors are kept at full
// precision so that repeated fading converges instead of stalling on 8-bit
// rounding.
type Grid struct {
	width, height int
	cells         []Cell
	background    colorful.Color
}

// NewGrid creates a grid filled with the background color.
func NewGrid(width, height int, background rain.Color) *Grid {
	g := &Grid{background: background.Colorful()}
	g.resize(max(width, 0), max(height, 0))
	return g
}

// CellSize returns the glyph size, in cells, to use for an alphabet on a
// terminal: as wide as the widest glyph and one row high.
func CellSize(alphabet []rune) (width, height int) {
	width = 1
	for _, r := range alphabet {
		width = max(width, uniseg.StringWidth(string(r)))
	}
	return width, 1
}

// Size returns the grid size in cells.
func (g *Grid) Size() (width, height int, err error) {
	return g.width, g.height, nil
}

// Resize changes the grid size, keeping the content of cells that remain.
func (g *Grid) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	if width != g.width || height != g.height {
		g.resize(width, height)
	}
	return nil
}

func (g *Grid) resize(width, height int) {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Fg: g.background, Bg: g.background}
	}
	for y := range min(height, g.height) {
		copy(cells[y*width:y*width+min(width, g.width)], g.cells[y*g.width:])
	}
	g.width, g.height, g.cells = width, height, cells
}

// FillRect composites c over the cells of the rectangle. Glyphs whose color
// reaches the cell background are removed.
func (g *Grid) FillRect(x, y, width, height int, c rain.Color, opacity float64) {
	target := c.Colorful()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, g.width), min(y+height, g.height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			cell := &g.cells[row*g.width+col]
			cell.Fg = fade(cell.Fg, target, opacity)
			cell.Bg = fade(cell.Bg, target, opacity)
			if cell.Glyph != 0 && cell.Fg == cell.Bg {
				cell.Glyph = 0
			}
		}
	}
}

func fade(from, to colorful.Color, opacity float64) colorful.Color {
	c := from.BlendRgb(to, opacity)
	if c.DistanceRgb(to) < snapDistance {
		return to
	}
	return c
}

// DrawGlyph sets the glyph and foreground color of the cell at (x, y).
func (g *Grid) DrawGlyph(x, y int, r rune, c rain.Color) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	cell := &g.cells[y*g.width+x]
	cell.Glyph = r
	cell.Fg = c.Colorful()
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.width+x]
}
