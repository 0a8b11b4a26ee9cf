package rx

import "fmt"

// An Observable is a lazy description of a value-producing stream: a value
// wrapping a subscribe function. Construction has no side effects; resources
// are acquired only when Subscribe runs the producer, and each Subscribe call
// runs it from scratch with no state shared between subscriptions.
type Observable struct {
	onSub func(*Subscriber)
}

// Create builds an Observable from a function that feeds a Subscriber. The
// function runs once per Subscribe call. It may emit synchronously before
// returning, or register a resource plus its teardown and emit later from a
// timer or listener callback.
func Create(onSub func(*Subscriber)) Observable {
	if onSub == nil {
		panic("rx: Create called with a nil subscribe function")
	}
	return Observable{onSub: onSub}
}

// Subscribe connects dest to the stream and returns the Subscription owning
// its teardown. A panic inside the producer is routed to dest's error handler
// rather than escaping the call. The returned Subscription closes itself when
// the stream completes or errors.
func (o Observable) Subscribe(dest Observer) *Subscription {
	sub := &Subscription{}
	s := newSubscriber(dest, sub)
	func() {
		defer func() {
			if r := recover(); r != nil {
				s.Error(recoveredError(r))
			}
		}()
		o.onSub(s)
	}()
	return sub
}

// Pipe applies operators left to right, so Pipe(o, a, b) is b(a(o)).
func (o Observable) Pipe(ops ...Operator) Observable {
	return Pipe(o, ops...)
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("rx: %v", r)
}
