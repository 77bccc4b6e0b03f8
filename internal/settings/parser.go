package settings

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"digital_rain/rain"
)

// ErrListed is returned by Parse after the available options were printed.
var ErrListed = errors.New("list options requested")

// leadBrightness is how far the lead color is moved toward white from the
// trail color when no lead color is given.
const leadBrightness = 0.7

// Parser parses command-line flags and config files into Settings.
type Parser struct {
	configData ConfigData // Predefined themes and character sets
	out        io.Writer  // Destination of -list output
}

// NewParser creates a new Parser with the given ConfigData.
func NewParser(configData ConfigData, out io.Writer) *Parser {
	return &Parser{configData: configData, out: out}
}

// Parse processes command-line arguments. If -config names a file, it is
// loaded first and flags given on the command line override it.
func (p *Parser) Parse(name string, args []string) (*Settings, error) {
	s := Defaults()
	if err := p.flagSet(name, &s).Parse(args); err != nil {
		return nil, err
	}
	if s.ConfigFile != "" {
		if err := LoadFile(s.ConfigFile, &s); err != nil {
			return nil, err
		}
		if err := p.flagSet(name, &s).Parse(args); err != nil {
			return nil, err
		}
	}
	if s.List {
		return nil, p.listOptions()
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if _, err := p.RainConfig(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// flagSet binds flags to s, using the current values of s as defaults.
func (p *Parser) flagSet(name string, s *Settings) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&s.Color, "color", s.Color, "color theme (green, amber, red, etc.) or #rrggbb")
	fs.StringVar(&s.Chars, "chars", s.Chars, "character set name or custom string")
	fs.IntVar(&s.FPS, "fps", s.FPS, "frames per second (1-60)")
	fs.Float64Var(&s.Fade, "fade", s.Fade, "fade opacity per frame (0-1]")
	fs.Float64Var(&s.Reset, "reset", s.Reset, "per-frame probability of a column restarting [0-1]")
	fs.IntVar(&s.Stagger, "stagger", s.Stagger, "maximum rows above the top a column re-enters from")
	fs.StringVar(&s.Lead, "lead", s.Lead, "lead glyph color (default: brightened theme color)")
	fs.StringVar(&s.Trail, "trail", s.Trail, "trail color (default: theme color)")
	fs.StringVar(&s.Background, "bg", s.Background, "background color")
	fs.StringVar(&s.Surface, "surface", s.Surface, "drawing surface: ansi, tcell or png")
	fs.StringVar(&s.Size, "size", s.Size, "image size WxH in pixels")
	fs.IntVar(&s.Frames, "frames", s.Frames, "number of frames to render for png")
	fs.StringVar(&s.Out, "out", s.Out, "png output path; a %d verb writes every frame")
	fs.IntVar(&s.FontSize, "font-size", s.FontSize, "glyph height in pixels for image surfaces")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "random seed (0: time based)")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable debug logging")
	fs.StringVar(&s.LogFile, "log", s.LogFile, "write log output to this file")
	fs.StringVar(&s.ConfigFile, "config", s.ConfigFile, "TOML or YAML config file")
	fs.BoolVar(&s.List, "list", s.List, "list available options")
	return fs
}

// RainConfig resolves settings into an effect configuration. The glyph size
// is left at one pixel; it depends on the surface.
func (p *Parser) RainConfig(s *Settings) (rain.Config, error) {
	trail, err := p.resolveColor(s.Color)
	if err != nil {
		return rain.Config{}, err
	}
	if s.Trail != "" {
		if trail, err = p.resolveColor(s.Trail); err != nil {
			return rain.Config{}, err
		}
	}
	lead := trail.Brighten(leadBrightness)
	if s.Lead != "" {
		if lead, err = p.resolveColor(s.Lead); err != nil {
			return rain.Config{}, err
		}
	}
	background, err := p.resolveColor(s.Background)
	if err != nil {
		return rain.Config{}, err
	}
	alphabet, err := p.resolveCharSet(s.Chars)
	if err != nil {
		return rain.Config{}, err
	}

	cfg := rain.Config{
		Alphabet:    alphabet,
		GlyphWidth:  1,
		GlyphHeight: 1,
		FadeOpacity: s.Fade,
		ResetChance: s.Reset,
		Stagger:     s.Stagger,
		LeadColor:   lead,
		TrailColor:  trail,
		Background:  background,
		Debug:       s.Debug,
	}
	if err := cfg.Validate(); err != nil {
		return rain.Config{}, err
	}
	return cfg, nil
}

// listOptions prints available options and returns ErrListed.
func (p *Parser) listOptions() error {
	fmt.Fprintln(p.out, "Available options:")
	fmt.Fprintln(p.out, "Colors:")
	for _, name := range slices.Sorted(maps.Keys(p.configData.ColorThemes)) {
		fmt.Fprintln(p.out, "  ", name)
	}
	fmt.Fprintln(p.out, "\nCharacter Sets:")
	for _, name := range slices.Sorted(maps.Keys(p.configData.CharSets)) {
		fmt.Fprintln(p.out, "  ", name)
	}
	fmt.Fprintln(p.out, "\nSurfaces: ansi, tcell, png")
	fmt.Fprintln(p.out, "FPS: 1-60")
	fmt.Fprintln(p.out, "Fade: (0-1]  Reset: [0-1]")
	fmt.Fprintln(p.out, "Debug: enable with --debug")
	return ErrListed
}

// resolveColor converts a theme name or hex string to a color.
func (p *Parser) resolveColor(name string) (rain.Color, error) {
	if c, ok := p.configData.ColorThemes[strings.ToLower(name)]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		return rain.ParseColor(name)
	}
	return rain.Color{}, fmt.Errorf("unknown color theme: %s", name)
}

// resolveCharSet converts a character set name or string to a rune slice.
func (p *Parser) resolveCharSet(name string) ([]rune, error) {
	if set, ok := p.configData.CharSets[strings.ToLower(name)]; ok {
		return set, nil
	}
	if name == "" {
		return nil, errors.New("character set cannot be empty")
	}
	return []rune(name), nil
}
