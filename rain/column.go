package rain

import "math/rand"

// Column is one independent vertical stream of glyphs.
type Column struct {
	X     int  // Horizontal pixel position, index × glyph width
	Y     int  // Rows descended; negative while waiting above the top
	Glyph rune // Glyph shown at the leading edge this frame

	random Random
	glyphs *GlyphSource
}

// ColumnState is a comparable snapshot of a Column.
type ColumnState struct {
	X     int
	Y     int
	Glyph rune
}

// newColumn creates the column for slot index. The column gets its own random
// stream seeded from random, so it never shares state with its siblings.
func newColumn(index int, cfg *Config, random Random) (*Column, error) {
	own := rand.New(rand.NewSource(random.Int63()))
	glyphs, err := NewGlyphSource(cfg.Alphabet, own)
	if err != nil {
		return nil, err
	}
	c := &Column{
		X:      index * cfg.GlyphWidth,
		random: own,
		glyphs: glyphs,
	}
	c.Y = c.entry(cfg.Stagger)
	c.Glyph = glyphs.Next()
	return c, nil
}

// entry returns a row in [-stagger, 0] for the column to (re)enter from.
func (c *Column) entry(stagger int) int {
	return -c.random.Intn(stagger + 1)
}

// update advances the column by one row. The column restarts from the top
// when it has passed the bottom of a surface of the given height, and
// independently with probability cfg.ResetChance. A new glyph is drawn
// every tick.
func (c *Column) update(height int, cfg *Config) {
	c.Y++
	chance := c.random.Float64() < cfg.ResetChance
	if c.Y*cfg.GlyphHeight > height || chance {
		c.Y = c.entry(cfg.Stagger)
	}
	c.Glyph = c.glyphs.Next()
}

// State returns a snapshot of the column.
func (c *Column) State() ColumnState {
	return ColumnState{X: c.X, Y: c.Y, Glyph: c.Glyph}
}
