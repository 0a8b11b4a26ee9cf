package rx

// Map forwards f(v) for every upstream value. Completion and errors mirror
// upstream; a panic inside f errors the stream and releases the upstream
// producer.
func Map(f func(any) any) Operator {
	if f == nil {
		panic("rx: Map called with a nil transform")
	}
	return func(source Observable) Observable {
		return lift(source, stateless(func(down *Subscriber, n Notification) {
			if n.Kind == OnNext {
				down.Next(f(n.Value))
				return
			}
			down.Notify(n)
		}))
	}
}

// MapTo forwards the constant value for every upstream value.
func MapTo(value any) Operator {
	return func(source Observable) Observable {
		return lift(source, stateless(func(down *Subscriber, n Notification) {
			if n.Kind == OnNext {
				down.Next(value)
				return
			}
			down.Notify(n)
		}))
	}
}

// Tap calls fn for its side effect and forwards the value unchanged.
func Tap(fn func(any)) Operator {
	if fn == nil {
		panic("rx: Tap called with a nil function")
	}
	return func(source Observable) Observable {
		return lift(source, stateless(func(down *Subscriber, n Notification) {
			if n.Kind == OnNext {
				fn(n.Value)
			}
			down.Notify(n)
		}))
	}
}
