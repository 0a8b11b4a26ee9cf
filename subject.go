package rx

import "sync"

// A Subject is both a producer and an Observable: values pushed with Next
// are multicast to every subscriber attached at that moment. This is the one
// place the engine shares a producer across Observers; plain Observables
// stay cold and per-subscription.
//
// After Error or Complete the Subject is terminal: later values are dropped
// and late subscribers receive the terminal event immediately.
type Subject struct {
	mu      sync.Mutex
	targets map[int]*Subscriber
	nextID  int
	done    bool
	failed  bool
	err     error
}

func NewSubject() *Subject {
	return &Subject{targets: make(map[int]*Subscriber)}
}

func (s *Subject) Next(value any) {
	for _, t := range s.snapshot() {
		t.Next(value)
	}
}

func (s *Subject) Error(err error) {
	for _, t := range s.terminate(true, err) {
		t.Error(err)
	}
}

func (s *Subject) Complete() {
	for _, t := range s.terminate(false, nil) {
		t.Complete()
	}
}

// AsObservable exposes the subscriber side, so a Subject can be piped
// through operators like any other source.
func (s *Subject) AsObservable() Observable {
	return Create(s.attach)
}

func (s *Subject) Subscribe(dest Observer) *Subscription {
	return s.AsObservable().Subscribe(dest)
}

func (s *Subject) attach(sub *Subscriber) {
	s.mu.Lock()
	if s.done {
		failed, err := s.failed, s.err
		s.mu.Unlock()
		if failed {
			sub.Error(err)
		} else {
			sub.Complete()
		}
		return
	}
	id := s.nextID
	s.nextID++
	s.targets[id] = sub
	s.mu.Unlock()

	sub.Add(func() {
		s.mu.Lock()
		delete(s.targets, id)
		s.mu.Unlock()
	})
}

// snapshot copies the current targets so delivery runs outside the lock;
// a handler may unsubscribe, or attach a new subscriber, mid-delivery.
func (s *Subject) snapshot() []*Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	out := make([]*Subscriber, 0, len(s.targets))
	for _, t := range s.targets {
		out = append(out, t)
	}
	return out
}

func (s *Subject) terminate(failed bool, err error) []*Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	s.done = true
	s.failed = failed
	s.err = err
	out := make([]*Subscriber, 0, len(s.targets))
	for _, t := range s.targets {
		out = append(out, t)
	}
	s.targets = nil
	return out
}
