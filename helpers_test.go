package rx

import (
	"sync"
	"time"
)

// recording collects everything a subscription delivers, safe to inspect
// from the test goroutine while producers emit from timers.
type recording struct {
	mu        sync.Mutex
	values    []any
	stamps    []time.Time
	err       error
	completed bool
	done      chan struct{}
}

func record() *recording {
	return &recording{done: make(chan struct{})}
}

func (r *recording) observer() Observer {
	return Observer{
		Next: func(v any) {
			r.mu.Lock()
			r.values = append(r.values, v)
			r.stamps = append(r.stamps, time.Now())
			r.mu.Unlock()
		},
		Error: func(err error) {
			r.mu.Lock()
			r.err = err
			r.mu.Unlock()
			close(r.done)
		},
		Complete: func() {
			r.mu.Lock()
			r.completed = true
			r.mu.Unlock()
			close(r.done)
		},
	}
}

func (r *recording) wait(timeout time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (r *recording) snapshot() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.values...)
}

func (r *recording) isCompleted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

func (r *recording) lastErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
