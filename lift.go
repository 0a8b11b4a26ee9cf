package rx

// lift is the canonical operator construction: the derived Observable's
// subscribe function subscribes upstream with a synthetic Observer that
// materializes each event into a Notification and hands it to forward, which
// decides what the downstream Subscriber sees. newForward runs once per
// subscription, so any state it closes over is private to that subscription.
//
// The upstream Subscription is chained into the downstream one, so
// unsubscribing downstream (explicitly or via a terminal event) always
// releases the upstream producer too. A panic inside forward becomes a
// downstream error, which closes the chain the same way.
func lift(source Observable, newForward func() func(*Subscriber, Notification)) Observable {
	return Create(func(down *Subscriber) {
		forward := newForward()
		upstream := source.Subscribe(Observer{
			Next:     func(v any) { applyForward(down, forward, Next(v)) },
			Error:    func(err error) { applyForward(down, forward, Error(err)) },
			Complete: func() { applyForward(down, forward, Complete()) },
		})
		down.Add(upstream.Unsubscribe)
	})
}

func applyForward(down *Subscriber, forward func(*Subscriber, Notification), n Notification) {
	defer func() {
		if r := recover(); r != nil {
			down.Error(recoveredError(r))
		}
	}()
	forward(down, n)
}

// stateless adapts a forward function with no per-subscription state to the
// factory shape lift expects.
func stateless(forward func(*Subscriber, Notification)) func() func(*Subscriber, Notification) {
	return func() func(*Subscriber, Notification) {
		return forward
	}
}
