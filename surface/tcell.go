package surface

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"digital_rain/rain"
)

// Tcell is a Grid presented on a tcell screen.
type Tcell struct {
	*Grid
	screen tcell.Screen
}

// OpenTcell initializes the terminal through tcell.
func OpenTcell(background rain.Color) (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rain.ErrSurfaceUnavailable, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", rain.ErrSurfaceUnavailable, err)
	}
	return NewTcell(screen, background), nil
}

// NewTcell wraps an initialized screen.
func NewTcell(screen tcell.Screen, background rain.Color) *Tcell {
	screen.HideCursor()
	width, height := screen.Size()
	return &Tcell{Grid: NewGrid(width, height, background), screen: screen}
}

// Present copies the grid to the screen and shows it.
func (t *Tcell) Present() error {
	for y := range t.height {
		for x := 0; x < t.width; x++ {
			cell := t.cells[y*t.width+x]
			glyph := cell.Glyph
			if glyph == 0 {
				glyph = ' '
			}
			t.screen.SetContent(x, y, glyph, nil, cellStyle(cell))
			x += max(uniseg.StringWidth(string(glyph)), 1) - 1
		}
	}
	t.screen.Show()
	return nil
}

func cellStyle(cell Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(rain.FromColorful(cell.Fg))).
		Background(tcellColor(rain.FromColorful(cell.Bg)))
}

func tcellColor(c rain.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Watch polls screen events until the screen is closed. Resize events are
// passed to onResize; Escape, Ctrl-C and q call onQuit.
func (t *Tcell) Watch(onResize func(width, height int), onQuit func()) {
	go func() {
		for {
			switch ev := t.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				onResize(ev.Size())
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					onQuit()
				}
			}
		}
	}()
}

// Close restores the terminal.
func (t *Tcell) Close() {
	t.screen.Fini()
}
