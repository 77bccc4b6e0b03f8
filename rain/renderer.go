package rain

// Surface is the drawing target of the effect.
type Surface interface {
	// Size reports the current size in pixels.
	Size() (width, height int, err error)
	// FillRect composites c at the given opacity over the rectangle.
	FillRect(x, y, width, height int, c Color, opacity float64)
	// DrawGlyph draws g with its top-left corner at (x, y).
	DrawGlyph(x, y int, g rune, c Color)
}

// Presenter is implemented by surfaces that buffer drawing and need to
// push a finished frame to their output.
type Presenter interface {
	Present() error
}

// Resizer is implemented by surfaces whose backing store follows the size
// reported to the Scheduler.
type Resizer interface {
	Resize(width, height int) error
}

// head is where a column's leading glyph was painted.
type head struct {
	x, y  int
	glyph rune
	shown bool
}

// Renderer paints a Field onto a Surface.
type Renderer struct {
	cfg   Config
	heads []head
}

// NewRenderer creates a Renderer for the given configuration.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Paint fades the previous frame toward the background and draws the
// leading glyph of every column. The glyph that led last frame is repainted
// in the trail color so that only the current head carries the lead color.
func (r *Renderer) Paint(s Surface, f *Field) {
	width, height := f.Size()
	s.FillRect(0, 0, width, height, r.cfg.Background, r.cfg.FadeOpacity)

	columns := f.Columns()
	if len(r.heads) > len(columns) {
		r.heads = r.heads[:len(columns)]
	}
	for len(r.heads) < len(columns) {
		r.heads = append(r.heads, head{})
	}

	for i, c := range columns {
		if prev := r.heads[i]; prev.shown {
			s.DrawGlyph(prev.x, prev.y, prev.glyph, r.cfg.TrailColor)
		}
		py := c.Y * r.cfg.GlyphHeight
		if c.Y < 0 || py >= height {
			r.heads[i] = head{}
			continue
		}
		s.DrawGlyph(c.X, py, c.Glyph, r.cfg.LeadColor)
		r.heads[i] = head{x: c.X, y: py, glyph: c.Glyph, shown: true}
	}
}
