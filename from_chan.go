package rx

import "reflect"

// FromChan adapts any readable Go channel into an Observable. Values
// received from the channel are forwarded; closing the channel completes the
// stream. Unsubscribing stops the reader without closing the caller's
// channel. Passing anything but a readable channel is a composition-time
// mistake and panics.
func FromChan(source any) Observable {
	val := reflect.ValueOf(source)
	if val.Kind() != reflect.Chan || val.Type().ChanDir() == reflect.SendDir {
		panic("rx: FromChan requires a readable channel")
	}
	return Create(func(sub *Subscriber) {
		stop := make(chan struct{})
		sub.Add(func() {
			close(stop)
		})
		go func() {
			cases := []reflect.SelectCase{
				{Dir: reflect.SelectRecv, Chan: val},
				{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(stop)},
			}
			for {
				chosen, v, ok := reflect.Select(cases)
				if chosen == 1 {
					return
				}
				if !ok {
					sub.Complete()
					return
				}
				sub.Next(v.Interface())
			}
		}()
	})
}
