package rx

// Filter forwards only the values for which pred returns true.
func Filter(pred func(any) bool) Operator {
	if pred == nil {
		panic("rx: Filter called with a nil predicate")
	}
	return func(source Observable) Observable {
		return lift(source, stateless(func(down *Subscriber, n Notification) {
			if n.Kind == OnNext && !pred(n.Value) {
				return
			}
			down.Notify(n)
		}))
	}
}

// Take forwards the first n values, then completes and releases the upstream
// producer regardless of whether it ever completes on its own. Take(0) never
// subscribes upstream at all: the result completes synchronously and no
// upstream side effects occur.
func Take(n int) Operator {
	if n < 0 {
		panic("rx: Take called with a negative count")
	}
	return func(source Observable) Observable {
		if n == 0 {
			return Create(func(down *Subscriber) {
				down.Complete()
			})
		}
		return lift(source, func() func(*Subscriber, Notification) {
			seen := 0
			return func(down *Subscriber, n2 Notification) {
				if n2.Kind != OnNext {
					down.Notify(n2)
					return
				}
				seen++
				down.Next(n2.Value)
				if seen == n {
					down.Complete()
				}
			}
		})
	}
}
