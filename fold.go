package rx

// Scan folds upstream values with f, starting from seed, and forwards the
// running accumulator on every value. The accumulator is created fresh for
// each subscription; earlier subscriptions never leak state into later ones.
func Scan(f func(acc, value any) any, seed any) Operator {
	if f == nil {
		panic("rx: Scan called with a nil accumulator")
	}
	return func(source Observable) Observable {
		return lift(source, func() func(*Subscriber, Notification) {
			acc := seed
			return func(down *Subscriber, n Notification) {
				if n.Kind != OnNext {
					down.Notify(n)
					return
				}
				acc = f(acc, n.Value)
				down.Next(acc)
			}
		})
	}
}

// Reduce folds upstream values with f, starting from seed, and emits the
// final accumulator exactly once when the upstream completes. An upstream
// error forwards the error instead; nothing is ever emitted before the
// terminal event.
func Reduce(f func(acc, value any) any, seed any) Operator {
	if f == nil {
		panic("rx: Reduce called with a nil accumulator")
	}
	return func(source Observable) Observable {
		return lift(source, func() func(*Subscriber, Notification) {
			acc := seed
			return func(down *Subscriber, n Notification) {
				switch n.Kind {
				case OnNext:
					acc = f(acc, n.Value)
				case OnComplete:
					down.Next(acc)
					down.Complete()
				case OnError:
					down.Error(n.Err)
				}
			}
		})
	}
}
