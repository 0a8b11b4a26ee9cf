package rx

import "sync"

// Merge interleaves the values of any number of sources into one stream.
// The merged stream completes once every source has completed, and errors as
// soon as any source errors. Merging nothing completes immediately.
// Unsubscribing releases every underlying source.
func Merge(sources ...Observable) Observable {
	return Create(func(down *Subscriber) {
		if len(sources) == 0 {
			down.Complete()
			return
		}
		var mu sync.Mutex
		remaining := len(sources)
		for _, source := range sources {
			upstream := source.Subscribe(Observer{
				Next:  down.Next,
				Error: down.Error,
				Complete: func() {
					mu.Lock()
					remaining--
					last := remaining == 0
					mu.Unlock()
					if last {
						down.Complete()
					}
				},
			})
			down.Add(upstream.Unsubscribe)
		}
	})
}
