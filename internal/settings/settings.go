// Package settings turns command-line flags and config files into a
// rain.Config.
package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"digital_rain/rain"
)

// Default setting values.
const (
	defaultFPS      = 20
	defaultColor    = "green"
	defaultCharSet  = "matrix"
	defaultSurface  = "ansi"
	defaultSize     = "640x480"
	defaultFrames   = 120
	defaultOut      = "rain.png"
	defaultFontSize = 16
)

// Settings holds user-facing settings, as read from flags and config files.
type Settings struct {
	Color      string  `toml:"color" yaml:"color"`           // Theme name or hex trail color
	Chars      string  `toml:"chars" yaml:"chars"`           // Character set name or literal glyphs
	FPS        int     `toml:"fps" yaml:"fps"`               // Ticks per second
	Fade       float64 `toml:"fade" yaml:"fade"`             // Fade opacity per frame
	Reset      float64 `toml:"reset" yaml:"reset"`           // Per-tick reset probability
	Stagger    int     `toml:"stagger" yaml:"stagger"`       // Maximum re-entry offset in rows
	Lead       string  `toml:"lead" yaml:"lead"`             // Lead glyph color, derived from Color when empty
	Trail      string  `toml:"trail" yaml:"trail"`           // Trail color, Color when empty
	Background string  `toml:"background" yaml:"background"` // Background color
	Surface    string  `toml:"surface" yaml:"surface"`       // ansi, tcell or png
	Size       string  `toml:"size" yaml:"size"`             // WxH in pixels for image surfaces
	Frames     int     `toml:"frames" yaml:"frames"`         // Frames to render for png
	Out        string  `toml:"out" yaml:"out"`               // Output path for png, may contain %d
	FontSize   int     `toml:"font_size" yaml:"font_size"`   // Glyph height in pixels for image surfaces
	Seed       int64   `toml:"seed" yaml:"seed"`             // Random seed, 0 for time based
	Debug      bool    `toml:"debug" yaml:"debug"`           // Enable debug logging
	LogFile    string  `toml:"log" yaml:"log"`               // Log destination

	ConfigFile string `toml:"-" yaml:"-"`
	List       bool   `toml:"-" yaml:"-"`
}

// Defaults returns the default settings.
func Defaults() Settings {
	return Settings{
		Color:      defaultColor,
		Chars:      defaultCharSet,
		FPS:        defaultFPS,
		Fade:       rain.DefaultFadeOpacity,
		Reset:      rain.DefaultResetChance,
		Stagger:    rain.DefaultStagger,
		Background: "#000000",
		Surface:    defaultSurface,
		Size:       defaultSize,
		Frames:     defaultFrames,
		Out:        defaultOut,
		FontSize:   defaultFontSize,
	}
}

// validate checks the settings that rain.Config does not cover.
func (s *Settings) validate() error {
	if s.FPS < 1 || s.FPS > 60 {
		return fmt.Errorf("fps out of range (1-60): got %d", s.FPS)
	}
	switch s.Surface {
	case "ansi", "tcell", "png":
	default:
		return fmt.Errorf("unknown surface %q (ansi, tcell, png)", s.Surface)
	}
	if s.Frames < 1 {
		return fmt.Errorf("frames must be positive: got %d", s.Frames)
	}
	if s.FontSize < 1 {
		return fmt.Errorf("font size must be positive: got %d", s.FontSize)
	}
	if _, _, err := s.Dimensions(); err != nil {
		return err
	}
	return nil
}

// Dimensions parses Size.
func (s *Settings) Dimensions() (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s.Size), "x")
	if ok {
		width, err = strconv.Atoi(ws)
		if err == nil {
			height, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s.Size)
	}
	return width, height, nil
}

// LoadFile decodes a TOML or YAML config file into s. Keys missing from the
// file leave s unchanged.
func LoadFile(path string, s *Settings) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, s)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
	return nil
}
