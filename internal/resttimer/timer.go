// Package resttimer is the countdown shown between sets. It lives in memory
// only and is never persisted.
package resttimer

import (
	"fmt"
	"sync"
	"time"

	errorvalues "github.com/limbo/rexfit/internal/error_values"
)

type State struct {
	Running   bool `json:"running"`
	Paused    bool `json:"paused"`
	Remaining int  `json:"remaining"`
	Total     int  `json:"total"`
}

// Label renders the remaining time as m:ss.
func (s State) Label() string {
	return fmt.Sprintf("%d:%02d", s.Remaining/60, s.Remaining%60)
}

type Option func(*Timer)

// WithTick overrides the one second step.
func WithTick(d time.Duration) Option {
	return func(t *Timer) { t.tick = d }
}

// OnTick is called after every step that leaves time on the clock.
func OnTick(f func(State)) Option {
	return func(t *Timer) { t.onTick = f }
}

// OnDone is called once when the countdown reaches zero.
func OnDone(f func(State)) Option {
	return func(t *Timer) { t.onDone = f }
}

type Timer struct {
	mu        sync.Mutex
	tick      time.Duration
	remaining int
	total     int
	paused    bool
	// stop is non-nil while a countdown is active
	stop   chan struct{}
	onTick func(State)
	onDone func(State)
}

func New(opts ...Option) *Timer {
	t := &Timer{
		tick:   time.Second,
		onTick: func(State) {},
		onDone: func(State) {},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins a countdown of the given seconds, replacing any running one.
func (t *Timer) Start(seconds int) (State, error) {
	if seconds <= 0 {
		return t.State(), fmt.Errorf("%w: rest of %d seconds", errorvalues.ErrInvalidInput, seconds)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.remaining = seconds
	t.total = seconds
	t.paused = false
	t.stop = make(chan struct{})
	go t.run(t.stop)
	return t.stateLocked(), nil
}

// Toggle pauses a running countdown or resumes a paused one.
func (t *Timer) Toggle() (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return t.stateLocked(), errorvalues.ErrTimerNotRunning
	}
	t.paused = !t.paused
	return t.stateLocked(), nil
}

func (t *Timer) Cancel() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.remaining = 0
	t.paused = false
	return t.stateLocked()
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *Timer) stateLocked() State {
	return State{
		Running:   t.stop != nil && !t.paused,
		Paused:    t.stop != nil && t.paused,
		Remaining: t.remaining,
		Total:     t.total,
	}
}

func (t *Timer) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *Timer) run(stop chan struct{}) {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		t.mu.Lock()
		if t.stop != stop {
			t.mu.Unlock()
			return
		}
		if t.paused {
			t.mu.Unlock()
			continue
		}
		t.remaining--
		finished := t.remaining <= 0
		if finished {
			t.remaining = 0
			t.stop = nil
		}
		state := t.stateLocked()
		t.mu.Unlock()

		if finished {
			t.onDone(state)
			return
		}
		t.onTick(state)
	}
}
