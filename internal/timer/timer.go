// Package timer provides the game clock shown next to the board.
package timer

import (
	"sync"
	"time"
)

// Timer counts elapsed seconds while a game is running. Start and Stop are
// idempotent and safe to call in any order.
type Timer struct {
	interval time.Duration
	onTick   func(elapsed int)

	mu      sync.Mutex
	elapsed int
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// New creates a stopped timer. onTick, if non-nil, is called from the timer
// goroutine after every tick with the updated elapsed count.
func New(interval time.Duration, onTick func(elapsed int)) *Timer {
	return &Timer{
		interval: interval,
		onTick:   onTick,
	}
}

// Start begins ticking. Calling Start on a running timer does nothing.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.stop, t.done)
}

// Stop halts the timer and waits for its goroutine to exit. The elapsed count
// is kept.
func (t *Timer) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	close(t.stop)
	done := t.done
	t.mu.Unlock()

	<-done
}

// Reset stops the timer and zeroes the elapsed count.
func (t *Timer) Reset() {
	t.Stop()
	t.mu.Lock()
	t.elapsed = 0
	t.mu.Unlock()
}

// Elapsed returns the number of ticks counted so far.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Running reports whether the timer is ticking.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Timer) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			t.elapsed++
			elapsed := t.elapsed
			t.mu.Unlock()

			if t.onTick != nil {
				t.onTick(elapsed)
			}
		}
	}
}
