// Package rain implements the digital rain effect: independent columns of
// glyphs falling down a surface, leaving trails that fade out by repeated
// translucent overlays.
//
// The effect is host-agnostic. A host supplies a Surface to draw on and a
// TickSource that fires once per display refresh; the Scheduler then updates
// the Field and paints it through the Renderer on every tick.
package rain

import (
	"errors"
	"fmt"
)

// Default configuration values for the effect.
const (
	DefaultFadeOpacity = 0.08
	DefaultResetChance = 0.02
	DefaultStagger     = 12
)

// DefaultAlphabet is used when no alphabet is configured.
var DefaultAlphabet = []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ0123456789")

// ErrSurfaceUnavailable is returned when the drawing target cannot be
// acquired. There is no automatic retry.
var ErrSurfaceUnavailable = errors.New("rain: surface unavailable")

// ConfigError reports an invalid configuration value. It is only ever
// returned at initialization; a running effect has no configuration errors.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rain: invalid %s: %s", e.Field, e.Reason)
}

// Config holds the configuration of the effect.
type Config struct {
	Alphabet    []rune  // Glyphs drawn uniformly at random
	GlyphWidth  int     // Width of one column slot in surface pixels
	GlyphHeight int     // Height of one row in surface pixels
	FadeOpacity float64 // Opacity of the per-frame background overlay, in (0,1]
	ResetChance float64 // Per-tick probability of a column restarting at the top, in [0,1]
	Stagger     int     // Maximum rows above the top a column re-enters from
	LeadColor   Color   // Color of the leading glyph
	TrailColor  Color   // Color of the glyph left behind by the head
	Background  Color   // Color the fade converges to
	Debug       bool    // Enable debug logging
}

// DefaultConfig returns a green-on-black configuration for a surface whose
// pixels are terminal cells.
func DefaultConfig() Config {
	return Config{
		Alphabet:    DefaultAlphabet,
		GlyphWidth:  1,
		GlyphHeight: 1,
		FadeOpacity: DefaultFadeOpacity,
		ResetChance: DefaultResetChance,
		Stagger:     DefaultStagger,
		LeadColor:   Color{200, 255, 200},
		TrailColor:  Color{0, 255, 0},
		Background:  Color{0, 0, 0},
	}
}

// Validate checks the configuration for validity.
func (c *Config) Validate() error {
	if len(c.Alphabet) == 0 {
		return &ConfigError{Field: "alphabet", Reason: "must not be empty"}
	}
	if c.GlyphWidth <= 0 || c.GlyphHeight <= 0 {
		return &ConfigError{
			Field:  "glyph size",
			Reason: fmt.Sprintf("must be positive: got %dx%d", c.GlyphWidth, c.GlyphHeight),
		}
	}
	// The negated form also rejects NaN.
	if !(c.FadeOpacity > 0 && c.FadeOpacity <= 1) {
		return &ConfigError{Field: "fade opacity", Reason: fmt.Sprintf("out of range (0,1]: got %v", c.FadeOpacity)}
	}
	if !(c.ResetChance >= 0 && c.ResetChance <= 1) {
		return &ConfigError{Field: "reset probability", Reason: fmt.Sprintf("out of range [0,1]: got %v", c.ResetChance)}
	}
	if c.Stagger < 0 {
		return &ConfigError{Field: "stagger", Reason: fmt.Sprintf("must not be negative: got %d", c.Stagger)}
	}
	return nil
}
