package surface

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"

	"digital_rain/rain"
)

// ansiCell is a cell as last written to the terminal.
type ansiCell struct {
	glyph  rune
	fg, bg rain.Color
}

// ANSI is a Grid presented on a terminal with escape sequences. Only cells
// that changed since the previous frame are rewritten.
type ANSI struct {
	*Grid
	w        io.Writer
	out      *termenv.Output
	previous []ansiCell
	colors   map[rain.Color]termenv.Color
	b        strings.Builder
}

// NewTerminal creates an ANSI surface on a terminal file, sized to the
// terminal. It fails with rain.ErrSurfaceUnavailable if f is not a terminal.
func NewTerminal(f *os.File, background rain.Color) (*ANSI, error) {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil, fmt.Errorf("%w: %s is not a terminal", rain.ErrSurfaceUnavailable, f.Name())
	}
	width, height, err := TerminalSize(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rain.ErrSurfaceUnavailable, err)
	}
	return newANSI(f, termenv.NewOutput(f), width, height, background), nil
}

// NewANSI creates an ANSI surface of a fixed size writing to w with the
// given color profile.
func NewANSI(w io.Writer, width, height int, profile termenv.Profile, background rain.Color) *ANSI {
	return newANSI(w, termenv.NewOutput(w, termenv.WithProfile(profile)), width, height, background)
}

func newANSI(w io.Writer, out *termenv.Output, width, height int, background rain.Color) *ANSI {
	return &ANSI{
		Grid:   NewGrid(width, height, background),
		w:      w,
		out:    out,
		colors: make(map[rain.Color]termenv.Color),
	}
}

// Setup switches to the alternate screen and hides the cursor.
func (a *ANSI) Setup() {
	a.out.AltScreen()
	a.out.HideCursor()
	a.out.ClearScreen()
	a.previous = nil
}

// Restore returns the terminal to its original state.
func (a *ANSI) Restore() {
	a.out.ShowCursor()
	a.out.ExitAltScreen()
}

// Resize resizes the grid. The next frame is written in full.
func (a *ANSI) Resize(width, height int) error {
	if err := a.Grid.Resize(width, height); err != nil {
		return err
	}
	a.previous = nil
	return nil
}

// Present writes the frame to the terminal.
func (a *ANSI) Present() error {
	full := len(a.previous) != len(a.Grid.cells)
	if full {
		a.previous = make([]ansiCell, len(a.Grid.cells))
	}

	a.b.Reset()
	var (
		pen    ansiCell // colors currently set on the terminal
		penSet bool
		curX   = -1
		curY   = -1
	)
	for y := range a.height {
		for x := 0; x < a.width; x++ {
			i := y*a.width + x
			cell := a.cells[i]
			next := ansiCell{glyph: cell.Glyph, fg: rain.FromColorful(cell.Fg), bg: rain.FromColorful(cell.Bg)}
			if next.glyph == 0 {
				next.glyph = ' '
			}
			width := max(uniseg.StringWidth(string(next.glyph)), 1)
			if !full && next == a.previous[i] {
				x += width - 1
				continue
			}
			a.previous[i] = next

			if curX != x || curY != y {
				a.b.WriteString(termenv.CSI + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H")
			}
			if !penSet || pen.fg != next.fg || pen.bg != next.bg {
				a.writeColors(next.fg, next.bg)
				pen, penSet = next, true
			}
			a.b.WriteRune(next.glyph)
			curX, curY = x+width, y
			x += width - 1
		}
	}
	if a.b.Len() == 0 {
		return nil
	}
	a.b.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	_, err := io.WriteString(a.w, a.b.String())
	return err
}

// writeColors sets the foreground and background colors, converted to the
// output's color profile.
func (a *ANSI) writeColors(fg, bg rain.Color) {
	var seqs []string
	if s := a.color(fg).Sequence(false); s != "" {
		seqs = append(seqs, s)
	}
	if s := a.color(bg).Sequence(true); s != "" {
		seqs = append(seqs, s)
	}
	if len(seqs) == 0 {
		return
	}
	a.b.WriteString(termenv.CSI + strings.Join(seqs, ";") + "m")
}

func (a *ANSI) color(c rain.Color) termenv.Color {
	tc, ok := a.colors[c]
	if !ok {
		tc = a.out.Color(c.Hex())
		a.colors[c] = tc
	}
	return tc
}
