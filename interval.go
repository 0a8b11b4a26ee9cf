package rx

import "time"

// Interval emits an increasing int starting at 0 every period, indefinitely,
// until unsubscribed. Each subscription runs its own ticker; the ticker is
// created when Subscribe runs, never earlier, and stopped by teardown.
func Interval(period time.Duration) Observable {
	if period <= 0 {
		panic("rx: Interval requires a positive period")
	}
	return Create(func(sub *Subscriber) {
		ticker := time.NewTicker(period)
		stop := make(chan struct{})
		sub.Add(func() {
			ticker.Stop()
			close(stop)
		})
		go func() {
			for i := 0; ; i++ {
				select {
				case <-ticker.C:
					sub.Next(i)
				case <-stop:
					return
				}
			}
		}()
	})
}
