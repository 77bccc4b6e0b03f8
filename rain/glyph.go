package rain

// Random is the source of randomness used by the effect. *math/rand.Rand
// satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
	Int63() int64
}

// GlyphSource draws glyphs uniformly at random from a fixed alphabet.
type GlyphSource struct {
	alphabet []rune
	random   Random
}

// NewGlyphSource creates a GlyphSource. The alphabet must not be empty.
func NewGlyphSource(alphabet []rune, random Random) (*GlyphSource, error) {
	if len(alphabet) == 0 {
		return nil, &ConfigError{Field: "alphabet", Reason: "must not be empty"}
	}
	return &GlyphSource{alphabet: alphabet, random: random}, nil
}

// Next returns a glyph from the alphabet. Each call consumes one Intn draw.
func (s *GlyphSource) Next() rune {
	return s.alphabet[s.random.Intn(len(s.alphabet))]
}
