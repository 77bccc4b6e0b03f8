package rain

import (
	"sync"
	"time"
)

// TickSource fires the host's refresh signal. The effect advances one row
// per tick, whatever the time between ticks.
//
// The Scheduler calls Start and Stop with its lock held, and Stop may be
// called from inside tick. Start must therefore not call tick before it
// returns, and Stop must not wait for a tick in flight.
type TickSource interface {
	// Start begins calling tick once per refresh. tick is never called
	// concurrently with itself.
	Start(tick func())
	// Stop cancels pending ticks.
	Stop()
}

// Ticker is a TickSource driven by the wall clock.
type Ticker struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// NewTicker creates a Ticker firing every interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// NewTickerFPS creates a Ticker firing fps times per second.
func NewTickerFPS(fps int) *Ticker {
	return NewTicker(time.Second / time.Duration(max(fps, 1)))
}

// Start launches the tick loop on its own goroutine.
func (t *Ticker) Start(tick func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	stop := make(chan struct{})
	t.stop = stop
	go t.loop(stop, tick)
}

func (t *Ticker) loop(stop <-chan struct{}, tick func()) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			tick()
		}
	}
}

// Stop ends the tick loop. It does not wait for a tick in flight, so it is
// safe to call from inside tick.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// ManualTicks is a TickSource whose ticks are fired by calling Tick, from a
// host frame callback or a test.
type ManualTicks struct {
	mu   sync.Mutex
	tick func()
}

// Start records the tick callback.
func (m *ManualTicks) Start(tick func()) {
	m.mu.Lock()
	m.tick = tick
	m.mu.Unlock()
}

// Stop forgets the tick callback.
func (m *ManualTicks) Stop() {
	m.mu.Lock()
	m.tick = nil
	m.mu.Unlock()
}

// Tick fires one tick synchronously. It reports false if the source is
// not started.
func (m *ManualTicks) Tick() bool {
	m.mu.Lock()
	tick := m.tick
	m.mu.Unlock()
	if tick == nil {
		return false
	}
	tick()
	return true
}
