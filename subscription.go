package rx

import "sync"

// A Subscription is one live connection between a producer and an Observer.
// It owns the teardown list for every resource acquired on its behalf, all
// the way up an operator chain.
type Subscription struct {
	mu        sync.Mutex
	closed    bool
	teardowns []Teardown
}

func (s *Subscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Add registers a teardown to run when the subscription ends. Adding to an
// already-closed subscription runs the teardown immediately, so resources
// acquired during a subscribe call that terminated synchronously still get
// released.
func (s *Subscription) Add(t Teardown) {
	if t == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		t()
		return
	}
	s.teardowns = append(s.teardowns, t)
	s.mu.Unlock()
}

// Unsubscribe closes the subscription and runs its teardowns. Idempotent:
// only the first call has any effect.
func (s *Subscription) Unsubscribe() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	tds := s.teardowns
	s.teardowns = nil
	s.mu.Unlock()

	for _, t := range tds {
		t()
	}
}
