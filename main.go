// Command digital_rain renders the digital rain effect in a terminal, or
// into PNG frames.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"digital_rain/internal/settings"
	"digital_rain/rain"
	"digital_rain/surface"
)

// === MATRIX RAIN ===

// MatrixRain holds the components of the rain animation.
type MatrixRain struct {
	settings *settings.Settings
	cfg      rain.Config
	random   *rand.Rand
	tty      *os.File
	logFile  *os.File
	ctx      context.Context
	stop     context.CancelFunc
}

// NewMatrixRain parses args and configures the rain animation.
func NewMatrixRain(configData settings.ConfigData, args []string, out *os.File) (*MatrixRain, error) {
	parser := settings.NewParser(configData, out)
	s, err := parser.Parse("digital_rain", args)
	if err != nil {
		return nil, err
	}
	cfg, err := parser.RainConfig(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	logFile, err := setupLog(s)
	if err != nil {
		return nil, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if s.Debug {
		log.Printf("Seed %d, surface %s, %d glyphs", seed, s.Surface, len(cfg.Alphabet))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &MatrixRain{
		settings: s,
		cfg:      cfg,
		random:   rand.New(rand.NewSource(seed)),
		tty:      out,
		logFile:  logFile,
		ctx:      ctx,
		stop:     stop,
	}, nil
}

// setupLog directs log output. Terminal surfaces own the screen, so their
// log output is dropped unless a log file is given or debugging is on.
func setupLog(s *settings.Settings) (*os.File, error) {
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	}
	if s.Surface != "png" && !s.Debug {
		log.SetOutput(io.Discard)
	}
	return nil, nil
}

// Run starts the rain animation on the configured surface.
func (r *MatrixRain) Run() error {
	switch r.settings.Surface {
	case "tcell":
		return r.runTcell()
	case "png":
		return r.runPNG()
	default:
		return r.runANSI()
	}
}

// Close releases the signal handler and the log file.
func (r *MatrixRain) Close() error {
	r.stop()
	if r.logFile != nil {
		log.SetOutput(os.Stderr)
		return r.logFile.Close()
	}
	return nil
}

func (r *MatrixRain) runANSI() error {
	term, err := surface.NewTerminal(r.tty, r.cfg.Background)
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}
	r.cfg.GlyphWidth, r.cfg.GlyphHeight = surface.CellSize(r.cfg.Alphabet)
	sched, err := rain.NewScheduler(r.cfg, r.random, rain.NewTickerFPS(r.settings.FPS))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	term.Setup()
	defer term.Restore()
	stopWatch := surface.WatchResize(r.tty, sched.OnResize)
	defer stopWatch()

	return wait(r.ctx, sched, term)
}

func (r *MatrixRain) runTcell() error {
	screen, err := surface.OpenTcell(r.cfg.Background)
	if err != nil {
		return fmt.Errorf("cannot open screen: %w", err)
	}
	defer screen.Close()
	r.cfg.GlyphWidth, r.cfg.GlyphHeight = surface.CellSize(r.cfg.Alphabet)
	sched, err := rain.NewScheduler(r.cfg, r.random, rain.NewTickerFPS(r.settings.FPS))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, quit := context.WithCancel(r.ctx)
	defer quit()
	screen.Watch(sched.OnResize, quit)

	return wait(ctx, sched, screen)
}

// runPNG renders a fixed number of frames without a wall clock. If the
// output path contains a %d verb every frame is written, otherwise only the
// last one.
func (r *MatrixRain) runPNG() error {
	width, height, err := r.settings.Dimensions()
	if err != nil {
		return err
	}
	raster, err := surface.NewRaster(width, height, r.settings.FontSize, r.cfg.Background)
	if err != nil {
		return fmt.Errorf("cannot create image: %w", err)
	}
	defer raster.Close()
	r.cfg.GlyphWidth, r.cfg.GlyphHeight = raster.CellSize()

	ticks := &rain.ManualTicks{}
	sched, err := rain.NewScheduler(r.cfg, r.random, ticks)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := sched.Start(raster); err != nil {
		return err
	}
	defer sched.Stop()

	out := r.settings.Out
	perFrame := strings.Contains(out, "%d")
	for frame := range r.settings.Frames {
		if r.ctx.Err() != nil {
			break
		}
		ticks.Tick()
		if err := sched.Err(); err != nil {
			return err
		}
		if perFrame {
			if err := raster.SavePNG(fmt.Sprintf(out, frame)); err != nil {
				return fmt.Errorf("failed to save frame %d: %w", frame, err)
			}
		}
	}
	if !perFrame {
		if err := raster.SavePNG(out); err != nil {
			return fmt.Errorf("failed to save image: %w", err)
		}
	}
	if r.cfg.Debug {
		log.Printf("Rendered %d frames to %s", sched.Frames(), out)
	}
	return nil
}

// wait runs the scheduler on s until ctx is cancelled or the scheduler
// stops on its own.
func wait(ctx context.Context, sched *rain.Scheduler, s rain.Surface) error {
	if err := sched.Start(s); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
	case <-sched.Done():
	}
	sched.Stop()
	return sched.Err()
}

// === MAIN ===

func run(args []string) error {
	app, err := NewMatrixRain(settings.DefaultConfigData, args, os.Stdout)
	if err != nil {
		return err
	}
	defer app.Close()
	return app.Run()
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
