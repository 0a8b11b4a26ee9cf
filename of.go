package rx

// Of emits the given values in argument order and then completes, entirely
// within the Subscribe call. A downstream operator that closes the stream
// mid-sequence (Take, an error) stops the remaining emissions.
func Of(values ...any) Observable {
	return Create(func(sub *Subscriber) {
		for _, v := range values {
			if sub.Closed() {
				return
			}
			sub.Next(v)
		}
		sub.Complete()
	})
}
