// Command rainwindow shows the digital rain effect in a desktop window. The
// window's refresh drives the ticks and resizing the window re-lays the
// columns.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"digital_rain/internal/settings"
	"digital_rain/rain"
)

// canvas is a rain.Surface backed by an offscreen image that persists
// between frames, so the translucent fills accumulate into trails.
type canvas struct {
	image      *ebiten.Image
	face       *text.GoTextFace
	background rain.Color
}

func newCanvas(width, height int, face *text.GoTextFace, background rain.Color) *canvas {
	image := ebiten.NewImage(width, height)
	image.Fill(background)
	return &canvas{image: image, face: face, background: background}
}

func (c *canvas) Size() (width, height int, err error) {
	b := c.image.Bounds()
	return b.Dx(), b.Dy(), nil
}

func (c *canvas) FillRect(x, y, width, height int, col rain.Color, opacity float64) {
	fill := color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(math.Round(opacity * 255))}
	vector.DrawFilledRect(c.image, float32(x), float32(y), float32(width), float32(height), fill, false)
}

func (c *canvas) DrawGlyph(x, y int, g rune, col rain.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.image, string(g), c.face, op)
}

// Resize replaces the image, keeping the overlapping part of the old one.
func (c *canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	next := ebiten.NewImage(width, height)
	next.Fill(c.background)
	next.DrawImage(c.image, nil)
	c.image.Deallocate()
	c.image = next
	return nil
}

// game adapts the scheduler to ebiten's Update/Draw/Layout loop.
type game struct {
	ticks         *rain.ManualTicks
	sched         *rain.Scheduler
	canvas        *canvas
	width, height int
}

func newGame(cfg rain.Config, random rain.Random, width, height, fontSize int) (*game, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: float64(fontSize)}
	cfg.GlyphWidth = int(math.Ceil(text.Advance("M", face)))
	cfg.GlyphHeight = fontSize

	ticks := &rain.ManualTicks{}
	sched, err := rain.NewScheduler(cfg, random, ticks)
	if err != nil {
		return nil, err
	}
	g := &game{
		ticks:  ticks,
		sched:  sched,
		canvas: newCanvas(width, height, face, cfg.Background),
		width:  width,
		height: height,
	}
	if err := sched.Start(g.canvas); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.ticks.Tick()
	return g.sched.Err()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.image, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.sched.OnResize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func run(args []string) error {
	parser := settings.NewParser(settings.DefaultConfigData, os.Stdout)
	s, err := parser.Parse("rainwindow", args)
	if err != nil {
		return err
	}
	cfg, err := parser.RainConfig(s)
	if err != nil {
		return err
	}
	width, height, err := s.Dimensions()
	if err != nil {
		return err
	}
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := newGame(cfg, rand.New(rand.NewSource(seed)), width, height, s.FontSize)
	if err != nil {
		return err
	}
	defer g.sched.Stop()

	ebiten.SetWindowTitle("Digital Rain")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.FPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	log.SetFlags(log.Lshortfile | log.Ltime)
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, settings.ErrListed) || errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
