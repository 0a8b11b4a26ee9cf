package rx

import "sync"

// A Subscriber is the gate handed to producers. It forwards events to the
// destination Observer while enforcing the delivery protocol: nothing is
// delivered after a terminal event or an unsubscription, terminal events
// close the Subscription and run its teardowns, and handler invocations for
// one subscription are never concurrent.
type Subscriber struct {
	mu   sync.Mutex
	dest Observer
	sub  *Subscription
}

func newSubscriber(dest Observer, sub *Subscription) *Subscriber {
	return &Subscriber{dest: dest, sub: sub}
}

// Closed reports whether the subscription has ended. Producers that emit in
// a loop should check this between emissions and stop once it returns true.
func (s *Subscriber) Closed() bool {
	return s.sub.Closed()
}

// Add registers a teardown on the underlying Subscription.
func (s *Subscriber) Add(t Teardown) {
	s.sub.Add(t)
}

func (s *Subscriber) Next(value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub.Closed() {
		return
	}
	if s.dest.Next != nil {
		s.dest.Next(value)
	}
}

func (s *Subscriber) Error(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub.Closed() {
		return
	}
	s.sub.Unsubscribe()
	if s.dest.Error != nil {
		s.dest.Error(err)
		return
	}
	logger.Error().Err(err).Msg("unhandled stream error")
}

func (s *Subscriber) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub.Closed() {
		return
	}
	s.sub.Unsubscribe()
	if s.dest.Complete != nil {
		s.dest.Complete()
	}
}

// Notify dispatches a materialized Notification to the matching handler.
func (s *Subscriber) Notify(n Notification) {
	switch n.Kind {
	case OnNext:
		s.Next(n.Value)
	case OnError:
		s.Error(n.Err)
	case OnComplete:
		s.Complete()
	}
}
