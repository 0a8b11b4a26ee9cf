package rx

import (
	"sync"
	"time"
)

// Delay re-emits every upstream value after a fixed duration, preserving
// relative order. Completion is delayed by the same amount. Errors are not
// delayed: an upstream error drops any pending emissions and forwards
// immediately. Unsubscribing cancels whatever is still queued.
func Delay(d time.Duration) Operator {
	if d < 0 {
		panic("rx: Delay called with a negative duration")
	}
	return func(source Observable) Observable {
		return Create(func(down *Subscriber) {
			q := startDelayQueue(down, d)
			upstream := source.Subscribe(Observer{
				Next: func(v any) { q.push(Next(v)) },
				Error: func(err error) {
					q.stop()
					down.Error(err)
				},
				Complete: func() { q.push(Complete()) },
			})
			down.Add(upstream.Unsubscribe)
			down.Add(q.stop)
		})
	}
}

type delayed struct {
	due time.Time
	n   Notification
}

// delayQueue owns the single pump goroutine of one Delay subscription. A
// per-subscription goroutine keeps intra-stream order strict, which a timer
// per value would not guarantee.
type delayQueue struct {
	down *Subscriber
	d    time.Duration

	mu    sync.Mutex
	items []delayed

	wake    chan struct{}
	stopCh  chan struct{}
	stopped sync.Once
}

func startDelayQueue(down *Subscriber, d time.Duration) *delayQueue {
	q := &delayQueue{
		down:   down,
		d:      d,
		wake:   make(chan struct{}, 1),
		stopCh: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *delayQueue) push(n Notification) {
	q.mu.Lock()
	q.items = append(q.items, delayed{due: time.Now().Add(q.d), n: n})
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *delayQueue) stop() {
	q.stopped.Do(func() { close(q.stopCh) })
}

func (q *delayQueue) run() {
	for {
		q.mu.Lock()
		ok := len(q.items) > 0
		var head delayed
		if ok {
			head = q.items[0]
		}
		q.mu.Unlock()

		if !ok {
			select {
			case <-q.wake:
				continue
			case <-q.stopCh:
				return
			}
		}

		if wait := time.Until(head.due); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-q.stopCh:
				timer.Stop()
				return
			}
		}

		q.mu.Lock()
		q.items = q.items[1:]
		q.mu.Unlock()

		q.down.Notify(head.n)
		if head.n.Kind != OnNext {
			return
		}
	}
}
