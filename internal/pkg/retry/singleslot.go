package retry

import (
	"sync"
	"time"
)

// SingleSlot schedules at most one pending retry at a time. Arming while a
// retry is already pending replaces it instead of stacking a second timer,
// and Cancel drops the pending retry entirely. The zero delay is rejected
// at construction to avoid busy re-arm loops.
type SingleSlot struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// DefaultDelay is the fixed backoff used when no delay is configured
const DefaultDelay = 3 * time.Second

// NewSingleSlot creates a single-slot retry timer with the given delay
func NewSingleSlot(delay time.Duration) *SingleSlot {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &SingleSlot{delay: delay}
}

// Arm schedules fn to run once after the configured delay, replacing any
// retry that is still pending.
func (s *SingleSlot) Arm(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		s.timer = nil
		s.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending retry, if any
func (s *SingleSlot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Armed reports whether a retry is currently pending
func (s *SingleSlot) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
