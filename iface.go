package rx

// An Observer is the sink side of a subscription. Any handler may be nil;
// missing handlers default to no-ops, except that an error arriving at an
// Observer with no Error handler is reported through the package logger so
// failures are never silently dropped.
type Observer struct {
	Next     func(any)
	Error    func(error)
	Complete func()
}

// A Teardown releases a resource owned by a subscription: stop a ticker,
// remove an event listener. It runs exactly once, on completion, error, or
// explicit unsubscription, whichever comes first.
type Teardown func()

// An Operator derives a new Observable from a source Observable. Operators
// are pure: applying one subscribes to nothing and allocates no resources.
type Operator func(Observable) Observable
