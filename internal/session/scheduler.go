package session

import "time"

// Scheduler calls fire once per interval until the returned cancel function
// is called. A call to fire may still be in flight when cancel returns.
type Scheduler interface {
	Schedule(interval time.Duration, fire func()) (cancel func())
}

// TickerScheduler delivers ticks from a time.Ticker on its own goroutine.
type TickerScheduler struct{}

func (TickerScheduler) Schedule(
	interval time.Duration,
	fire func(),
) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fire()
			}
		}
	}()

	return func() {
		close(done)
	}
}
