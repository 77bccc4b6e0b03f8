package rain

import (
	"fmt"
	"log"
	"sync"
)

type size struct{ width, height int }

// Scheduler drives the tick cycle of one effect instance: on every tick it
// applies any pending resize, updates the Field and paints it.
type Scheduler struct {
	cfg    Config
	random Random
	ticks  TickSource

	mu       sync.Mutex
	running  bool
	surface  Surface
	field    *Field
	renderer *Renderer
	resize   *size
	frames   int
	done     chan struct{}
	err      error
}

// NewScheduler creates a Scheduler. The configuration is validated here;
// an invalid configuration never starts.
func NewScheduler(cfg Config, random Random, ticks TickSource) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if random == nil {
		return nil, &ConfigError{Field: "random", Reason: "must not be nil"}
	}
	if ticks == nil {
		return nil, &ConfigError{Field: "tick source", Reason: "must not be nil"}
	}
	return &Scheduler{cfg: cfg, random: random, ticks: ticks}, nil
}

// Start lays out a fresh Field for the surface and begins ticking. Calling
// Start on a running Scheduler does nothing.
func (s *Scheduler) Start(surface Surface) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}
	if surface == nil {
		return fmt.Errorf("%w: no surface", ErrSurfaceUnavailable)
	}
	width, height, err := surface.Size()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}

	field, err := NewField(s.cfg, s.random)
	if err != nil {
		return err
	}
	if err := field.Resize(width, height); err != nil {
		return err
	}
	s.surface = surface
	s.field = field
	s.renderer = NewRenderer(s.cfg)
	s.frames = 0
	s.err = nil
	s.done = make(chan struct{})
	s.running = true
	if s.cfg.Debug {
		log.Printf("Started rain on %dx%d surface with %d columns", width, height, field.Len())
	}

	s.ticks.Start(s.tick)
	return nil
}

// Stop cancels pending ticks. It is safe to call more than once and before
// Start. No tick runs after Stop returns.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(nil)
}

func (s *Scheduler) stopLocked(err error) {
	if !s.running {
		return
	}
	s.running = false
	s.err = err
	s.resize = nil
	s.ticks.Stop()
	close(s.done)
	if s.cfg.Debug {
		log.Printf("Stopped rain after %d frames", s.frames)
	}
}

// OnResize records a new surface size. It may be called from any goroutine
// at any time; the size takes effect at the start of the next tick. A size
// still pending when the Scheduler stops is dropped, since the next Start
// reads the size from its surface.
func (s *Scheduler) OnResize(width, height int) {
	s.mu.Lock()
	s.resize = &size{width, height}
	s.mu.Unlock()
}

// tick runs one update and paint cycle.
func (s *Scheduler) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}

	if r := s.resize; r != nil {
		s.resize = nil
		if err := s.applyResize(r.width, r.height); err != nil {
			log.Printf("Resize to %dx%d failed: %v", r.width, r.height, err)
			s.stopLocked(err)
			return
		}
	}

	s.field.Update()
	s.renderer.Paint(s.surface, s.field)
	if p, ok := s.surface.(Presenter); ok {
		if err := p.Present(); err != nil {
			log.Printf("Presenting frame %d failed: %v", s.frames, err)
			s.stopLocked(fmt.Errorf("failed to present frame: %w", err))
			return
		}
	}
	s.frames++
}

func (s *Scheduler) applyResize(width, height int) error {
	if r, ok := s.surface.(Resizer); ok {
		if err := r.Resize(width, height); err != nil {
			return fmt.Errorf("failed to resize surface: %w", err)
		}
	}
	return s.field.Resize(width, height)
}

// Running reports whether the Scheduler is started.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Done returns a channel that is closed when the current run stops, either
// through Stop or because a frame could not be presented. It is nil before
// the first Start.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Err returns the error that stopped the last run, if any.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Frames returns the number of frames painted in the current run.
func (s *Scheduler) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// State returns a snapshot of the columns, or nil before the first Start.
func (s *Scheduler) State() []ColumnState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.field == nil {
		return nil
	}
	return s.field.State()
}
