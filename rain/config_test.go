package rain

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty alphabet", func(c *Config) { c.Alphabet = nil }, "alphabet"},
		{"zero glyph width", func(c *Config) { c.GlyphWidth = 0 }, "glyph size"},
		{"negative glyph height", func(c *Config) { c.GlyphHeight = -1 }, "glyph size"},
		{"zero fade", func(c *Config) { c.FadeOpacity = 0 }, "fade opacity"},
		{"fade above one", func(c *Config) { c.FadeOpacity = 1.5 }, "fade opacity"},
		{"NaN fade", func(c *Config) { c.FadeOpacity = math.NaN() }, "fade opacity"},
		{"negative reset", func(c *Config) { c.ResetChance = -0.1 }, "reset probability"},
		{"reset above one", func(c *Config) { c.ResetChance = 1.01 }, "reset probability"},
		{"negative stagger", func(c *Config) { c.Stagger = -2 }, "stagger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestValidateAcceptsBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeOpacity = 1
	cfg.ResetChance = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("fade=1 reset=0: %v", err)
	}
	cfg.ResetChance = 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("reset=1: %v", err)
	}
}
