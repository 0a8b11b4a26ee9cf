package rx

import "sync"

// An EventTarget is the host-environment registration primitive FromEvent
// builds on: anything that can attach a listener for a named event and hand
// back its removal.
type EventTarget interface {
	// AddListener registers fn for the named event and returns a function
	// that removes exactly that registration.
	AddListener(event string, fn func(any)) (remove func())
}

// FromEvent forwards every dispatched event as a value. The stream never
// completes on its own; unsubscribing removes the underlying listener
// exactly once. The listener is attached per subscription, at Subscribe
// time.
func FromEvent(target EventTarget, event string) Observable {
	if target == nil {
		panic("rx: FromEvent called with a nil target")
	}
	return Create(func(sub *Subscriber) {
		remove := target.AddListener(event, func(data any) {
			sub.Next(data)
		})
		sub.Add(remove)
	})
}

// An EventEmitter is a minimal in-process EventTarget: named events, any
// number of listeners each.
type EventEmitter struct {
	mu        sync.Mutex
	nextID    int
	listeners map[string]map[int]func(any)
}

func NewEventEmitter() *EventEmitter {
	return &EventEmitter{listeners: make(map[string]map[int]func(any))}
}

func (e *EventEmitter) AddListener(event string, fn func(any)) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	if e.listeners[event] == nil {
		e.listeners[event] = make(map[int]func(any))
	}
	e.listeners[event][id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.listeners[event], id)
		e.mu.Unlock()
	}
}

// Emit dispatches data to every listener currently registered for event.
func (e *EventEmitter) Emit(event string, data any) {
	e.mu.Lock()
	fns := make([]func(any), 0, len(e.listeners[event]))
	for _, fn := range e.listeners[event] {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(data)
	}
}

// ListenerCount reports the number of listeners registered for event.
func (e *EventEmitter) ListenerCount(event string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[event])
}
