package inquiry_test

import (
	"sync"
	"time"

	"go-landing-backend/internal/inquiry"
)

// manualScheduler queues completions until the test fires them
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) inquiry.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTimer{delay: d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// Pending returns the delays of timers that are neither stopped nor fired
func (s *manualScheduler) Pending() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []time.Duration
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			out = append(out, t.delay)
		}
	}
	return out
}

// FireAll runs every pending timer and returns how many ran
func (s *manualScheduler) FireAll() int {
	s.mu.Lock()
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Timer returns the i-th scheduled timer regardless of its state
func (s *manualScheduler) Timer(i int) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timers[i]
}
