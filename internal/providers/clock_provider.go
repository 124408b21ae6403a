package providers

import "time"

type Timer interface {
	Stop() bool
}

// Clock is the time source for the simulated scan latency and the copied window.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func NewClockProvider() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
