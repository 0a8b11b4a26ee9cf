package rx

// Debug logs every notification passing through the stream under the given
// name, at debug level, and forwards it untouched. Handy while wiring up a
// pipeline; costs one log call per event when the level is enabled.
func Debug(name string) Operator {
	return func(source Observable) Observable {
		return lift(source, stateless(func(down *Subscriber, n Notification) {
			switch n.Kind {
			case OnNext:
				logger.Debug().Str("stream", name).Interface("value", n.Value).Msg("next")
			case OnError:
				logger.Debug().Str("stream", name).Err(n.Err).Msg("error")
			case OnComplete:
				logger.Debug().Str("stream", name).Msg("complete")
			}
			down.Notify(n)
		}))
	}
}
