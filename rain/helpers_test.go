package rain

import (
	"errors"
	"sync"
)

// fixedRandom replays fixed sequences, cycling when exhausted.
type fixedRandom struct {
	ints   []int
	floats []float64
	seed   int64
	i, f   int
}

func (r *fixedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *fixedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

func (r *fixedRandom) Int63() int64 { return r.seed }

type fillOp struct {
	x, y, w, h int
	c          Color
	opacity    float64
}

type glyphOp struct {
	x, y int
	g    rune
	c    Color
}

// recordSurface records every drawing call.
type recordSurface struct {
	mu         sync.Mutex
	width      int
	height     int
	sizeErr    error
	presentErr error
	fills      []fillOp
	glyphs     []glyphOp
	presents   int
	resizes    []size
}

func newRecordSurface(width, height int) *recordSurface {
	return &recordSurface{width: width, height: height}
}

func (s *recordSurface) Size() (int, int, error) {
	return s.width, s.height, s.sizeErr
}

func (s *recordSurface) FillRect(x, y, w, h int, c Color, opacity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fills = append(s.fills, fillOp{x, y, w, h, c, opacity})
}

func (s *recordSurface) DrawGlyph(x, y int, g rune, c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.glyphs = append(s.glyphs, glyphOp{x, y, g, c})
}

func (s *recordSurface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presents++
	return s.presentErr
}

func (s *recordSurface) Resize(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width < 0 || height < 0 {
		return errors.New("negative size")
	}
	s.width, s.height = width, height
	s.resizes = append(s.resizes, size{width, height})
	return nil
}

func (s *recordSurface) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fills = nil
	s.glyphs = nil
}

// countingTicks counts Start and Stop calls and fires ticks on demand.
type countingTicks struct {
	ManualTicks
	starts, stops int
}

func (c *countingTicks) Start(tick func()) {
	c.starts++
	c.ManualTicks.Start(tick)
}

func (c *countingTicks) Stop() {
	c.stops++
	c.ManualTicks.Stop()
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Alphabet = []rune("01")
	cfg.GlyphWidth = 10
	cfg.GlyphHeight = 10
	cfg.ResetChance = 0
	cfg.Stagger = 0
	return cfg
}

func contains(alphabet []rune, g rune) bool {
	for _, r := range alphabet {
		if r == g {
			return true
		}
	}
	return false
}
